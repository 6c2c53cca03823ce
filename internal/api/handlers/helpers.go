package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vehicle-maintenance-backend/internal/api/response"
	"vehicle-maintenance-backend/internal/auth"
	apperrors "vehicle-maintenance-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 15
)

// actorID returns the authenticated user or writes a 401
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a UUID path parameter or writes a 400
func pathUUID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "Invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and a page-size query parameter; malformed numbers write a 400
func pagination(c *gin.Context, sizeParam string) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil {
		response.Error(c, apperrors.ErrInvalidPaginationParams)
		return 0, 0, false
	}
	size, err := strconv.Atoi(c.DefaultQuery(sizeParam, strconv.Itoa(defaultPageSize)))
	if err != nil {
		response.Error(c, apperrors.ErrInvalidPaginationParams)
		return 0, 0, false
	}
	return page, size, true
}

// bindJSON decodes the body; type mismatches become field errors, anything else a 400
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	writeDecodeError(c, err)
	return false
}

func writeDecodeError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.InvalidField(c, typeErr.Field, "has an invalid type")
		return
	}
	response.BadRequest(c, "Invalid request body")
}

// isMultipart reports whether the request carries form-data
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
