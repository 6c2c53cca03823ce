package response

import (
	"errors"
	"net/http"

	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"vehicle not found"`
}

// ValidationResponse represents a 422 response with per-field messages
type ValidationResponse struct {
	Message string              `json:"message" example:"The given data was invalid."`
	Errors  map[string][]string `json:"errors"`
}

// MessageResponse represents a plain confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// Error writes the HTTP response for a service error
func Error(c *gin.Context, err error) {
	if group, ok := apperrors.AsValidationErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Message: "The given data was invalid.",
			Errors:  group.Fields(),
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err), apperrors.IsFileMissing(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case apperrors.IsOperation(err):
		var opErr *apperrors.OperationError
		errors.As(err, &opErr)
		logger.WithContext(c).WithField("op", opErr.Op).Errorf("request failed: %v", opErr.Cause)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: opErr.Error()})
	default:
		logger.WithContext(c).Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// BadRequest writes a 400 with the given message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// InvalidField writes a 422 for a single malformed field
func InvalidField(c *gin.Context, field, message string) {
	Error(c, apperrors.NewValidationError(field, message))
}
