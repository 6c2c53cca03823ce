package repository

import (
	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceItemRepository handles database operations for maintenance items
type MaintenanceItemRepository struct {
	db *gorm.DB
}

// NewMaintenanceItemRepository creates a new maintenance item repository
func NewMaintenanceItemRepository(db *gorm.DB) *MaintenanceItemRepository {
	return &MaintenanceItemRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *MaintenanceItemRepository) WithTx(tx *gorm.DB) MaintenanceItemRepositoryInterface {
	return &MaintenanceItemRepository{db: tx}
}

// Create creates a new maintenance item
func (r *MaintenanceItemRepository) Create(item *models.MaintenanceItem) error {
	return r.db.Omit("Invoices").Create(item).Error
}

// GetByID retrieves a maintenance item by ID
func (r *MaintenanceItemRepository) GetByID(id uuid.UUID) (*models.MaintenanceItem, error) {
	var item models.MaintenanceItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByMaintenanceID retrieves the items of a maintenance in insertion order
func (r *MaintenanceItemRepository) GetByMaintenanceID(maintenanceID uuid.UUID) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	err := r.db.Where("maintenance_id = ?", maintenanceID).Order("created_at ASC").Find(&items).Error
	return items, err
}
