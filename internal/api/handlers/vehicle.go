package handlers

import (
	"net/http"

	"vehicle-maintenance-backend/internal/api/response"
	"vehicle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VehicleHandler handles HTTP requests for vehicles
type VehicleHandler struct {
	vehicleService service.VehicleServiceInterface
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService service.VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// SearchVehicle finds a vehicle by plate or RENAVAM
// @Summary Search a vehicle
// @Description Looks a vehicle up by plate (any case, with or without dash) or RENAVAM
// @Tags vehicles
// @Produce json
// @Param identifier path string true "Plate or RENAVAM"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Router /vehicles/search/{identifier} [get]
func (h *VehicleHandler) SearchVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.Search(c.Param("identifier"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// ListVehicles lists all vehicles
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(15)
// @Success 200 {object} service.VehicleListResponse
// @Failure 400 {object} response.ErrorResponse "Invalid pagination parameters"
// @Security BearerAuth
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	page, pageSize, ok := pagination(c, "page_size")
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.List(page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// MyVehicles lists the vehicles the authenticated user currently owns
// @Summary List my vehicles
// @Tags vehicles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(15)
// @Success 200 {object} service.VehicleListResponse
// @Security BearerAuth
// @Router /my-vehicles [get]
func (h *VehicleHandler) MyVehicles(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, "page_size")
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListByOwner(userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle registers a vehicle owned by the authenticated user
// @Summary Create a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body service.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} models.Vehicle
// @Failure 409 {object} response.ErrorResponse "Plate or RENAVAM already registered"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.Create(c, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicle retrieves a vehicle by ID
// @Summary Get vehicle by ID
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} response.ErrorResponse "Invalid vehicle ID"
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := pathUUID(c, "id", "vehicle")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle updates a vehicle owned by the authenticated user
// @Summary Update a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param vehicle body service.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} models.Vehicle
// @Failure 403 {object} response.ErrorResponse "Not an owner"
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "vehicle")
	if !ok {
		return
	}

	var req service.UpdateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.Update(userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle deletes a vehicle owned by the authenticated user
// @Summary Delete a vehicle
// @Tags vehicles
// @Param id path string true "Vehicle ID (UUID)"
// @Success 204 "Vehicle deleted"
// @Failure 403 {object} response.ErrorResponse "Not an owner"
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "vehicle")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c, userID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LinkVehicle links the authenticated user to an existing vehicle
// @Summary Link to a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param link body service.LinkVehicleRequest false "Ownership details"
// @Success 201 {object} models.UserVehicle
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Failure 409 {object} response.ErrorResponse "Already linked"
// @Security BearerAuth
// @Router /vehicles/{id}/link [post]
func (h *VehicleHandler) LinkVehicle(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "vehicle")
	if !ok {
		return
	}

	var req service.LinkVehicleRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	link, err := h.vehicleService.Link(userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// GetVehicleMaintenances lists the maintenance history of a vehicle
// @Summary Vehicle maintenance history
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {array} models.Maintenance
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id}/maintenances [get]
func (h *VehicleHandler) GetVehicleMaintenances(c *gin.Context) {
	id, ok := pathUUID(c, "id", "vehicle")
	if !ok {
		return
	}

	maintenances, err := h.vehicleService.GetMaintenances(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, maintenances)
}

// ExportVehicle returns the vehicle with its full history for report rendering
// @Summary Export vehicle history
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} service.VehicleExport
// @Failure 404 {object} response.ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id}/export-pdf [get]
func (h *VehicleHandler) ExportVehicle(c *gin.Context) {
	id, ok := pathUUID(c, "id", "vehicle")
	if !ok {
		return
	}

	export, err := h.vehicleService.Export(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}
