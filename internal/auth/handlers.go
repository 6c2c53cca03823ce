package auth

import (
	"net/http"

	"vehicle-maintenance-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new account
// @Description Create a user or workshop account and return a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse "Malformed body"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Register(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
// @Summary Login with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Logout
// @Description Tokens are stateless; clients drop the token
// @Tags authentication
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /api/v1/auth/me
// @Summary Get the authenticated user
// @Tags authentication
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "User no longer exists"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authentication required"})
		return
	}

	me, err := h.service.Me(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, me)
}

// SSORedirect handles GET /api/v1/auth/sso/{provider}/redirect
// @Summary Start SSO login
// @Description Returns the consent page URL of the provider
// @Tags authentication
// @Produce json
// @Param provider path string true "SSO provider (e.g. google)"
// @Success 200 {object} SSORedirectResponse
// @Failure 503 {object} response.ErrorResponse "Provider not configured"
// @Router /auth/sso/{provider}/redirect [get]
func (h *AuthHandler) SSORedirect(c *gin.Context) {
	resp, err := h.service.SSORedirect(c.Param("provider"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SSOCallback handles GET /api/v1/auth/sso/{provider}/callback
// @Summary Complete SSO login
// @Tags authentication
// @Produce json
// @Param provider path string true "SSO provider (e.g. google)"
// @Param code query string true "Authorization code"
// @Param state query string true "State returned by the redirect endpoint"
// @Param error query string false "Error reported by the provider"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorResponse "Invalid state or failed exchange"
// @Failure 503 {object} response.ErrorResponse "Provider not configured"
// @Router /auth/sso/{provider}/callback [get]
func (h *AuthHandler) SSOCallback(c *gin.Context) {
	if providerErr := c.Query("error"); providerErr != "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "SSO login was not completed: " + providerErr})
		return
	}

	resp, err := h.service.SSOCallback(c, c.Param("provider"), c.Query("code"), c.Query("state"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
