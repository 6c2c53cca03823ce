package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// newProviderServer fakes the token and userinfo endpoints of an OAuth2 provider
func newProviderServer(t *testing.T, profile map[string]interface{}) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"provider-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(profile)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newSSOService(t *testing.T, server *httptest.Server, users *mocks.MockUserRepositoryInterface, deviceTokens *mocks.MockDeviceTokenRepositoryInterface) *AuthService {
	t.Helper()

	cfg := testConfig()
	cfg.Providers["acme"] = ProviderConfig{
		ClientID:     "acme-client",
		ClientSecret: "acme-secret",
		RedirectURL:  "http://localhost:8000/api/v1/auth/sso/acme/callback",
		AuthURL:      server.URL + "/authorize",
		TokenURL:     server.URL + "/token",
		UserInfoURL:  server.URL + "/userinfo",
		Scopes:       []string{"email"},
	}

	svc, err := NewAuthService(cfg, users, nil, deviceTokens, &recordingNotifier{}, service.NewValidator())
	require.NoError(t, err)
	svc.bcryptCost = bcrypt.MinCost
	return svc
}

func stateFrom(t *testing.T, redirectURL string) string {
	t.Helper()
	parsed, err := url.Parse(redirectURL)
	require.NoError(t, err)
	return parsed.Query().Get("state")
}

func TestSSORedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := newProviderServer(t, nil)
	svc := newSSOService(t, server, mocks.NewMockUserRepositoryInterface(ctrl), nil)

	t.Run("configured provider", func(t *testing.T) {
		resp, err := svc.SSORedirect("acme")

		require.NoError(t, err)
		parsed, err := url.Parse(resp.RedirectURL)
		require.NoError(t, err)
		assert.Equal(t, "/authorize", parsed.Path)
		assert.Equal(t, "acme-client", parsed.Query().Get("client_id"))
		assert.Equal(t, "http://localhost:8000/api/v1/auth/sso/acme/callback", parsed.Query().Get("redirect_uri"))
		assert.NotEmpty(t, parsed.Query().Get("state"))
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := svc.SSORedirect("twitter")
		assert.ErrorIs(t, err, apperrors.ErrSSONotConfigured)
	})
}

func TestSSOCallback_CreatesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	deviceTokens := mocks.NewMockDeviceTokenRepositoryInterface(ctrl)
	server := newProviderServer(t, map[string]interface{}{
		"sub":     "acme-42",
		"email":   "Ana@Example.com",
		"name":    "Ana Lima",
		"picture": "https://cdn.example.com/ana.png",
	})
	svc := newSSOService(t, server, users, deviceTokens)

	redirect, err := svc.SSORedirect("acme")
	require.NoError(t, err)

	users.EXPECT().GetByProvider("acme", "acme-42").Return(nil, gorm.ErrRecordNotFound)
	users.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(t, "acme", user.Provider)
		assert.Equal(t, "acme-42", user.ProviderID)
		assert.Equal(t, models.UserTypeUser, user.UserType)
		assert.NotEmpty(t, user.Password)
		assert.NotNil(t, user.EmailVerifiedAt)
		user.ID = uuid.New()
		return nil
	})
	deviceTokens.EXPECT().GetByUserID(gomock.Any()).Return(nil, nil)

	resp, err := svc.SSOCallback(context.Background(), "acme", "good-code", stateFrom(t, redirect.RedirectURL))

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, "Ana Lima", resp.User.Name)
	assert.Equal(t, "https://cdn.example.com/ana.png", resp.User.Avatar)
	assert.NotEmpty(t, resp.Token)
}

func TestSSOCallback_BindsExistingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	deviceTokens := mocks.NewMockDeviceTokenRepositoryInterface(ctrl)
	server := newProviderServer(t, map[string]interface{}{"id": 987654, "email": "joao@example.com", "name": "João"})
	svc := newSSOService(t, server, users, deviceTokens)

	existing := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "joao@example.com", UserType: models.UserTypeWorkshop}

	redirect, err := svc.SSORedirect("acme")
	require.NoError(t, err)

	users.EXPECT().GetByProvider("acme", "987654").Return(nil, gorm.ErrRecordNotFound)
	users.EXPECT().GetByEmail("joao@example.com").Return(existing, nil)
	users.EXPECT().Update(existing).Return(nil)
	deviceTokens.EXPECT().GetByUserID(existing.ID).Return(nil, nil)

	resp, err := svc.SSOCallback(context.Background(), "acme", "good-code", stateFrom(t, redirect.RedirectURL))

	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)
	assert.Equal(t, "acme", existing.Provider)
	assert.Equal(t, "987654", existing.ProviderID)
	assert.Equal(t, models.UserTypeWorkshop, resp.User.UserType)
}

func TestSSOCallback_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := newProviderServer(t, map[string]interface{}{"sub": "acme-1", "email": "x@example.com"})
	svc := newSSOService(t, server, mocks.NewMockUserRepositoryInterface(ctrl), nil)

	t.Run("unknown state", func(t *testing.T) {
		_, err := svc.SSOCallback(context.Background(), "acme", "good-code", "forged")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOAuthState)
	})

	t.Run("state is single use", func(t *testing.T) {
		redirect, err := svc.SSORedirect("acme")
		require.NoError(t, err)
		state := stateFrom(t, redirect.RedirectURL)

		_, err = svc.SSOCallback(context.Background(), "acme", "bad-code", state)
		assert.True(t, apperrors.IsAuthentication(err))

		_, err = svc.SSOCallback(context.Background(), "acme", "good-code", state)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOAuthState)
	})

	t.Run("missing code", func(t *testing.T) {
		redirect, err := svc.SSORedirect("acme")
		require.NoError(t, err)

		_, err = svc.SSOCallback(context.Background(), "acme", "", stateFrom(t, redirect.RedirectURL))
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		_, err := svc.SSOCallback(context.Background(), "facebook", "good-code", "state")
		assert.ErrorIs(t, err, apperrors.ErrSSONotConfigured)
	})
}

func TestSSOHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	server := newProviderServer(t, nil)
	handler := NewAuthHandler(newSSOService(t, server, mocks.NewMockUserRepositoryInterface(ctrl), nil))

	router := gin.New()
	router.GET("/auth/sso/:provider/redirect", handler.SSORedirect)
	router.GET("/auth/sso/:provider/callback", handler.SSOCallback)

	t.Run("redirect", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/sso/acme/redirect", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body SSORedirectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.RedirectURL, server.URL+"/authorize")
	})

	t.Run("not configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/sso/google/redirect", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("provider reported an error", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/sso/acme/callback?error=access_denied", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "access_denied")
	})

	t.Run("invalid state", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/sso/acme/callback?code=good-code&state=nope", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
