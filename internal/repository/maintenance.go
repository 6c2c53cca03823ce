package repository

import (
	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceFilter narrows maintenance listings; zero values are ignored
type MaintenanceFilter struct {
	VehicleID       *uuid.UUID
	UserID          *uuid.UUID
	ServiceCategory models.ServiceCategory
}

// MaintenanceRepository handles database operations for maintenances
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *MaintenanceRepository) WithTx(tx *gorm.DB) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{db: tx}
}

// Create inserts the maintenance row only; children are created by their own repositories
func (r *MaintenanceRepository) Create(maintenance *models.Maintenance) error {
	return r.db.Omit("Vehicle", "User", "Workshop", "Items", "Invoices", "Checklists").Create(maintenance).Error
}

// GetByID retrieves a maintenance by ID
func (r *MaintenanceRepository) GetByID(id uuid.UUID) (*models.Maintenance, error) {
	var maintenance models.Maintenance
	err := r.db.First(&maintenance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &maintenance, nil
}

// GetWithDetails retrieves a maintenance with vehicle, user, workshop, items, invoices and checklists
func (r *MaintenanceRepository) GetWithDetails(id uuid.UUID) (*models.Maintenance, error) {
	var maintenance models.Maintenance
	err := r.db.
		Preload("Vehicle").
		Preload("User").
		Preload("Workshop").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Invoices").
		Preload("Invoices", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Checklists").
		First(&maintenance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &maintenance, nil
}

// List retrieves maintenances matching filter, newest service date first
func (r *MaintenanceRepository) List(filter MaintenanceFilter, limit, offset int) ([]models.Maintenance, int64, error) {
	var maintenances []models.Maintenance
	var total int64

	query := r.db.Model(&models.Maintenance{})
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ServiceCategory != "" {
		query = query.Where("service_category = ?", filter.ServiceCategory)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Vehicle").
		Preload("User").
		Preload("Workshop").
		Order("maintenance_date DESC").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&maintenances).Error
	if err != nil {
		return nil, 0, err
	}

	return maintenances, total, nil
}

// GetByVehicleID retrieves a vehicle's full maintenance history with items
func (r *MaintenanceRepository) GetByVehicleID(vehicleID uuid.UUID) ([]models.Maintenance, error) {
	var maintenances []models.Maintenance
	err := r.db.
		Preload("Workshop").
		Preload("Items").
		Where("vehicle_id = ?", vehicleID).
		Order("maintenance_date DESC").
		Find(&maintenances).Error
	return maintenances, err
}

// Update applies a partial update to a maintenance
func (r *MaintenanceRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.Model(&models.Maintenance{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a maintenance; items, invoices and checklists cascade
func (r *MaintenanceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Maintenance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
