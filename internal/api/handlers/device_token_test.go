package handlers_test

import (
	"net/http"
	"testing"

	"vehicle-maintenance-backend/internal/api/handlers"
	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/service"
	"vehicle-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupDeviceTokenRouter(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockDeviceTokenServiceInterface, uuid.UUID) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDeviceTokenServiceInterface(ctrl)
	handler := handlers.NewDeviceTokenHandler(mockService)
	userID := uuid.New()

	suite := testutils.SetupHTTPTest()
	group := suite.Router.Group("/device-tokens", withUser(userID))
	group.POST("", handler.RegisterDeviceToken)
	group.DELETE("", handler.RemoveDeviceToken)
	group.GET("", handler.ListDeviceTokens)

	return suite, mockService, userID
}

func TestRegisterDeviceToken(t *testing.T) {
	httpSuite, mockService, userID := setupDeviceTokenRouter(t)
	mockService.EXPECT().Register(userID, &service.RegisterDeviceTokenRequest{Token: "fcm-abc", DeviceType: "android"}).
		Return(&models.DeviceToken{UserID: userID, Token: "fcm-abc", DeviceType: models.DeviceTypeAndroid}, nil)

	w := httpSuite.MakeRequest(http.MethodPost, "/device-tokens", map[string]string{"token": "fcm-abc", "device_type": "android"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"device_type":"android"`)
}

func TestRemoveDeviceToken(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		body       interface{}
		token      string
		err        error
		wantStatus int
	}{
		{name: "token in body", url: "/device-tokens", body: map[string]string{"token": "fcm-abc"}, token: "fcm-abc", wantStatus: http.StatusOK},
		{name: "token in query", url: "/device-tokens?token=fcm-q", token: "fcm-q", wantStatus: http.StatusOK},
		{name: "unknown token", url: "/device-tokens?token=nope", token: "nope", err: apperrors.ErrDeviceTokenNotFound, wantStatus: http.StatusNotFound},
		{name: "missing token", url: "/device-tokens", token: "", err: apperrors.NewValidationError("token", "is required"), wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpSuite, mockService, userID := setupDeviceTokenRouter(t)
			mockService.EXPECT().Remove(userID, tt.token).Return(tt.err)

			w := httpSuite.MakeRequest(http.MethodDelete, tt.url, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestListDeviceTokens(t *testing.T) {
	httpSuite, mockService, userID := setupDeviceTokenRouter(t)
	mockService.EXPECT().List(userID).Return([]models.DeviceToken{{Token: "a"}, {Token: "b"}}, nil)

	w := httpSuite.MakeRequest(http.MethodGet, "/device-tokens", nil)

	var got []models.DeviceToken
	testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
	assert.Len(t, got, 2)
}
