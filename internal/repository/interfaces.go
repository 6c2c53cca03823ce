package repository

import (
	"context"

	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Transactor runs a function inside a database transaction
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByProvider(provider, providerID string) (*models.User, error)
	Update(user *models.User) error
}

// VehicleRepositoryInterface defines the interface for vehicle repository operations
type VehicleRepositoryInterface interface {
	WithTx(tx *gorm.DB) VehicleRepositoryInterface
	Create(vehicle *models.Vehicle) error
	GetByID(id uuid.UUID) (*models.Vehicle, error)
	GetByIdentifier(identifier string) (*models.Vehicle, error)
	GetAll(limit, offset int) ([]models.Vehicle, int64, error)
	GetByOwner(userID uuid.UUID, limit, offset int) ([]models.Vehicle, int64, error)
	Exists(id uuid.UUID) (bool, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uuid.UUID) error
	CreateOwnership(link *models.UserVehicle) error
	GetOwnership(userID, vehicleID uuid.UUID) (*models.UserVehicle, error)
}

// WorkshopRepositoryInterface defines the interface for workshop repository operations
type WorkshopRepositoryInterface interface {
	WithTx(tx *gorm.DB) WorkshopRepositoryInterface
	Create(workshop *models.Workshop) error
	GetByID(id uuid.UUID) (*models.Workshop, error)
	Search(query string, limit, offset int) ([]models.Workshop, int64, error)
	Update(workshop *models.Workshop) error
	Delete(id uuid.UUID) error
	CountMaintenances(id uuid.UUID) (int64, error)
}

// MaintenanceRepositoryInterface defines the interface for maintenance repository operations
type MaintenanceRepositoryInterface interface {
	WithTx(tx *gorm.DB) MaintenanceRepositoryInterface
	Create(maintenance *models.Maintenance) error
	GetByID(id uuid.UUID) (*models.Maintenance, error)
	GetWithDetails(id uuid.UUID) (*models.Maintenance, error)
	List(filter MaintenanceFilter, limit, offset int) ([]models.Maintenance, int64, error)
	GetByVehicleID(vehicleID uuid.UUID) ([]models.Maintenance, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// MaintenanceItemRepositoryInterface defines the interface for maintenance item repository operations
type MaintenanceItemRepositoryInterface interface {
	WithTx(tx *gorm.DB) MaintenanceItemRepositoryInterface
	Create(item *models.MaintenanceItem) error
	GetByID(id uuid.UUID) (*models.MaintenanceItem, error)
	GetByMaintenanceID(maintenanceID uuid.UUID) ([]models.MaintenanceItem, error)
}

// InvoiceRepositoryInterface defines the interface for invoice repository operations
type InvoiceRepositoryInterface interface {
	WithTx(tx *gorm.DB) InvoiceRepositoryInterface
	Create(invoice *models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	GetByMaintenanceID(maintenanceID uuid.UUID) ([]models.Invoice, error)
	GetPathsByVehicleID(vehicleID uuid.UUID) ([]string, error)
	GetReferencedPaths(paths []string) ([]string, error)
	Delete(id uuid.UUID) error
}

// ChecklistRepositoryInterface defines the interface for checklist repository operations
type ChecklistRepositoryInterface interface {
	WithTx(tx *gorm.DB) ChecklistRepositoryInterface
	Create(checklist *models.Checklist) error
	GetByMaintenanceID(maintenanceID uuid.UUID) ([]models.Checklist, error)
}

// DeviceTokenRepositoryInterface defines the interface for device token repository operations
type DeviceTokenRepositoryInterface interface {
	Upsert(token *models.DeviceToken) error
	DeleteByToken(userID uuid.UUID, token string) (int64, error)
	GetByUserID(userID uuid.UUID) ([]models.DeviceToken, error)
}
