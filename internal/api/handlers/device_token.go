package handlers

import (
	"net/http"

	"vehicle-maintenance-backend/internal/api/response"
	"vehicle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeviceTokenHandler handles push-notification token registration
type DeviceTokenHandler struct {
	deviceTokenService service.DeviceTokenServiceInterface
}

// NewDeviceTokenHandler creates a new device token handler
func NewDeviceTokenHandler(deviceTokenService service.DeviceTokenServiceInterface) *DeviceTokenHandler {
	return &DeviceTokenHandler{
		deviceTokenService: deviceTokenService,
	}
}

// RemoveDeviceTokenRequest names the token to unregister
type RemoveDeviceTokenRequest struct {
	Token string `json:"token"`
}

// RegisterDeviceToken stores a device token for the authenticated user
// @Summary Register a device token
// @Tags device-tokens
// @Accept json
// @Produce json
// @Param token body service.RegisterDeviceTokenRequest true "Device token"
// @Success 200 {object} models.DeviceToken
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Security BearerAuth
// @Router /device-tokens [post]
func (h *DeviceTokenHandler) RegisterDeviceToken(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.RegisterDeviceTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.deviceTokenService.Register(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// RemoveDeviceToken unregisters one of the authenticated user's tokens
// @Summary Remove a device token
// @Description The token may be sent in the JSON body or as the token query parameter
// @Tags device-tokens
// @Accept json
// @Produce json
// @Param token body RemoveDeviceTokenRequest false "Device token"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Token not found"
// @Failure 422 {object} response.ValidationResponse "Token missing"
// @Security BearerAuth
// @Router /device-tokens [delete]
func (h *DeviceTokenHandler) RemoveDeviceToken(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	token := c.Query("token")
	if token == "" && c.Request.ContentLength != 0 {
		var req RemoveDeviceTokenRequest
		if !bindJSON(c, &req) {
			return
		}
		token = req.Token
	}

	if err := h.deviceTokenService.Remove(userID, token); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Device token removed successfully"})
}

// ListDeviceTokens lists the authenticated user's tokens
// @Summary List device tokens
// @Tags device-tokens
// @Produce json
// @Success 200 {array} models.DeviceToken
// @Security BearerAuth
// @Router /device-tokens [get]
func (h *DeviceTokenHandler) ListDeviceTokens(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	tokens, err := h.deviceTokenService.List(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}
