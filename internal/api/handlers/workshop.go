package handlers

import (
	"net/http"

	"vehicle-maintenance-backend/internal/api/response"
	"vehicle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkshopHandler handles HTTP requests for the workshop directory
type WorkshopHandler struct {
	workshopService service.WorkshopServiceInterface
}

// NewWorkshopHandler creates a new workshop handler
func NewWorkshopHandler(workshopService service.WorkshopServiceInterface) *WorkshopHandler {
	return &WorkshopHandler{
		workshopService: workshopService,
	}
}

// ListWorkshops searches the workshop directory
// @Summary List workshops
// @Description Case-insensitive search over name, city and neighborhood
// @Tags workshops
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(15)
// @Success 200 {object} service.WorkshopListResponse
// @Failure 400 {object} response.ErrorResponse "Invalid pagination parameters"
// @Router /workshops [get]
func (h *WorkshopHandler) ListWorkshops(c *gin.Context) {
	page, pageSize, ok := pagination(c, "page_size")
	if !ok {
		return
	}

	workshops, err := h.workshopService.Search(c.Query("search"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, workshops)
}

// GetWorkshop retrieves a workshop by ID
// @Summary Get workshop by ID
// @Tags workshops
// @Produce json
// @Param id path string true "Workshop ID (UUID)"
// @Success 200 {object} models.Workshop
// @Failure 400 {object} response.ErrorResponse "Invalid workshop ID"
// @Failure 404 {object} response.ErrorResponse "Workshop not found"
// @Router /workshops/{id} [get]
func (h *WorkshopHandler) GetWorkshop(c *gin.Context) {
	id, ok := pathUUID(c, "id", "workshop")
	if !ok {
		return
	}

	workshop, err := h.workshopService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// CreateWorkshop adds a workshop to the directory
// @Summary Create a workshop
// @Tags workshops
// @Accept json
// @Produce json
// @Param workshop body service.CreateWorkshopRequest true "Workshop data"
// @Success 201 {object} models.Workshop
// @Failure 409 {object} response.ErrorResponse "CNPJ already registered"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Security BearerAuth
// @Router /workshops [post]
func (h *WorkshopHandler) CreateWorkshop(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateWorkshopRequest
	if !bindJSON(c, &req) {
		return
	}

	workshop, err := h.workshopService.Create(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, workshop)
}

// UpdateWorkshop updates a workshop
// @Summary Update a workshop
// @Tags workshops
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID (UUID)"
// @Param workshop body service.UpdateWorkshopRequest true "Fields to change"
// @Success 200 {object} models.Workshop
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Workshop not found"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Security BearerAuth
// @Router /workshops/{id} [put]
func (h *WorkshopHandler) UpdateWorkshop(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "workshop")
	if !ok {
		return
	}

	var req service.UpdateWorkshopRequest
	if !bindJSON(c, &req) {
		return
	}

	workshop, err := h.workshopService.Update(userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// DeleteWorkshop removes a workshop that no maintenance references
// @Summary Delete a workshop
// @Tags workshops
// @Param id path string true "Workshop ID (UUID)"
// @Success 204 "Workshop deleted"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Workshop not found"
// @Failure 409 {object} response.ErrorResponse "Workshop has maintenances"
// @Security BearerAuth
// @Router /workshops/{id} [delete]
func (h *WorkshopHandler) DeleteWorkshop(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "workshop")
	if !ok {
		return
	}

	if err := h.workshopService.Delete(userID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
