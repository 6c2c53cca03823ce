package service_test

import (
	"errors"
	"testing"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeviceTokenService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDeviceTokenRepositoryInterface(ctrl)
	svc := service.NewDeviceTokenService(repo, service.NewValidator())
	userID := uuid.New()

	repo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(token *models.DeviceToken) error {
		assert.Equal(t, userID, token.UserID)
		assert.Equal(t, "fcm-abc", token.Token)
		return nil
	})

	token, err := svc.Register(userID, &service.RegisterDeviceTokenRequest{Token: " fcm-abc ", DeviceType: "ios"})

	require.NoError(t, err)
	assert.Equal(t, models.DeviceTypeIOS, token.DeviceType)
}

func TestDeviceTokenService_RegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewDeviceTokenService(mocks.NewMockDeviceTokenRepositoryInterface(ctrl), service.NewValidator())

	_, err := svc.Register(uuid.New(), &service.RegisterDeviceTokenRequest{DeviceType: "blackberry"})

	group, ok := apperrors.AsValidationErrors(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"token", "device_type"}, group.FieldNames())
}

func TestDeviceTokenService_Remove(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name     string
		removed  int64
		repoErr  error
		expected error
	}{
		{name: "removed", removed: 1},
		{name: "unknown token", removed: 0, expected: apperrors.ErrDeviceTokenNotFound},
		{name: "repository failure", repoErr: errors.New("db down"), expected: apperrors.ErrDeletionFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDeviceTokenRepositoryInterface(ctrl)
			svc := service.NewDeviceTokenService(repo, service.NewValidator())

			repo.EXPECT().DeleteByToken(userID, "fcm-abc").Return(tc.removed, tc.repoErr)

			err := svc.Remove(userID, "fcm-abc")
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}
