package handlers

import (
	"net/http"

	"vehicle-maintenance-backend/internal/api/response"
	"vehicle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaintenanceHandler handles HTTP requests for maintenances
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService service.MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// ListMaintenances lists maintenances
// @Summary List maintenances
// @Description List maintenances newest first, optionally filtered by vehicle, user or service category
// @Tags maintenances
// @Produce json
// @Param vehicle_id query string false "Vehicle ID (UUID)"
// @Param user_id query string false "User ID (UUID)"
// @Param service_category query string false "mechanical, electrical, suspension, painting, finishing, interior or other"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Success 200 {object} service.MaintenanceListResponse
// @Failure 400 {object} response.ErrorResponse "Invalid filter or pagination"
// @Failure 422 {object} response.ValidationResponse "Unknown service category"
// @Security BearerAuth
// @Router /maintenances [get]
func (h *MaintenanceHandler) ListMaintenances(c *gin.Context) {
	var filter service.MaintenanceListFilter

	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid vehicle ID")
			return
		}
		filter.VehicleID = &id
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		filter.UserID = &id
	}
	filter.ServiceCategory = c.Query("service_category")

	page, perPage, ok := pagination(c, "per_page")
	if !ok {
		return
	}

	result, err := h.maintenanceService.List(filter, page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateMaintenance records a maintenance with its items, invoices and checklists
// @Summary Create a maintenance
// @Description Accepts application/json or multipart/form-data. In multipart requests items and checklists
// @Description may be sent as JSON strings or bracketed fields (items[0][name]) and invoice PDFs under
// @Description "invoices" or "invoices[]". Invalid invoice files are skipped and listed in skipped_invoices.
// @Tags maintenances
// @Accept json
// @Accept mpfd
// @Produce json
// @Param maintenance body service.CreateMaintenanceRequest true "Maintenance data"
// @Success 201 {object} service.MaintenanceResponse
// @Failure 400 {object} response.ErrorResponse "Malformed body"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Failure 500 {object} response.ErrorResponse "creation failed"
// @Security BearerAuth
// @Router /maintenances [post]
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var (
		req   *service.CreateMaintenanceRequest
		files []service.InvoiceFile
	)

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "Invalid multipart form")
			return
		}
		defer form.RemoveAll()

		req, files, err = decodeMaintenanceForm(form)
		if err != nil {
			writeDecodeError(c, err)
			return
		}
	} else {
		req = &service.CreateMaintenanceRequest{}
		if !bindJSON(c, req) {
			return
		}
	}

	maintenance, err := h.maintenanceService.Create(c, userID, req, files)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, maintenance)
}

// GetMaintenance retrieves a maintenance aggregate
// @Summary Get maintenance by ID
// @Description Returns the maintenance with vehicle, user, workshop, items, invoices and checklists
// @Tags maintenances
// @Produce json
// @Param id path string true "Maintenance ID (UUID)"
// @Success 200 {object} service.MaintenanceResponse
// @Failure 400 {object} response.ErrorResponse "Invalid maintenance ID"
// @Failure 404 {object} response.ErrorResponse "Maintenance not found"
// @Security BearerAuth
// @Router /maintenances/{id} [get]
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	id, ok := pathUUID(c, "id", "maintenance")
	if !ok {
		return
	}

	maintenance, err := h.maintenanceService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, maintenance)
}

// UpdateMaintenance applies a partial update
// @Summary Update a maintenance
// @Description Only the supplied fields are validated and applied. Items, invoices and checklists are not changed here.
// @Tags maintenances
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID (UUID)"
// @Param maintenance body service.UpdateMaintenanceRequest true "Fields to change"
// @Success 200 {object} service.MaintenanceResponse
// @Failure 400 {object} response.ErrorResponse "Invalid maintenance ID or body"
// @Failure 404 {object} response.ErrorResponse "Maintenance not found"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Security BearerAuth
// @Router /maintenances/{id} [put]
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	id, ok := pathUUID(c, "id", "maintenance")
	if !ok {
		return
	}

	var req service.UpdateMaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	maintenance, err := h.maintenanceService.Update(c, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, maintenance)
}

// DeleteMaintenance deletes a maintenance and its invoice files
// @Summary Delete a maintenance
// @Tags maintenances
// @Param id path string true "Maintenance ID (UUID)"
// @Success 204 "Maintenance deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid maintenance ID"
// @Failure 404 {object} response.ErrorResponse "Maintenance not found"
// @Security BearerAuth
// @Router /maintenances/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	id, ok := pathUUID(c, "id", "maintenance")
	if !ok {
		return
	}

	if err := h.maintenanceService.Delete(c, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
