package service

import (
	"context"
	"time"

	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MaintenanceServiceInterface defines the interface for the maintenance composer
type MaintenanceServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *CreateMaintenanceRequest, files []InvoiceFile) (*MaintenanceResponse, error)
	GetByID(id uuid.UUID) (*MaintenanceResponse, error)
	List(filter MaintenanceListFilter, page, perPage int) (*MaintenanceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMaintenanceRequest) (*MaintenanceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceServiceInterface defines the interface for standalone invoice operations
type InvoiceServiceInterface interface {
	Upload(ctx context.Context, req *UploadInvoiceRequest, file InvoiceFile) (*models.Invoice, error)
	Download(ctx context.Context, id uuid.UUID) (*InvoiceDownload, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SweepOrphans(ctx context.Context, gracePeriod time.Duration) (*SweepResult, error)
}

// VehicleServiceInterface defines the interface for vehicle service
type VehicleServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *CreateVehicleRequest) (*models.Vehicle, error)
	GetByID(id uuid.UUID) (*models.Vehicle, error)
	Search(identifier string) (*models.Vehicle, error)
	List(page, pageSize int) (*VehicleListResponse, error)
	ListByOwner(userID uuid.UUID, page, pageSize int) (*VehicleListResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateVehicleRequest) (*models.Vehicle, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	Link(actorID, id uuid.UUID, req *LinkVehicleRequest) (*models.UserVehicle, error)
	GetMaintenances(id uuid.UUID) ([]models.Maintenance, error)
	Export(id uuid.UUID) (*VehicleExport, error)
}

// WorkshopServiceInterface defines the interface for workshop service
type WorkshopServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateWorkshopRequest) (*models.Workshop, error)
	GetByID(id uuid.UUID) (*models.Workshop, error)
	Search(query string, page, pageSize int) (*WorkshopListResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateWorkshopRequest) (*models.Workshop, error)
	Delete(actorID, id uuid.UUID) error
}

// DeviceTokenServiceInterface defines the interface for device token service
type DeviceTokenServiceInterface interface {
	Register(userID uuid.UUID, req *RegisterDeviceTokenRequest) (*models.DeviceToken, error)
	Remove(userID uuid.UUID, token string) error
	List(userID uuid.UUID) ([]models.DeviceToken, error)
}
