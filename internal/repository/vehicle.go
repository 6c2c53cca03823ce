package repository

import (
	"strings"

	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleRepository handles database operations for vehicles and their ownership links
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *VehicleRepository) WithTx(tx *gorm.DB) VehicleRepositoryInterface {
	return &VehicleRepository{db: tx}
}

// Create creates a new vehicle
func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Omit("Owners", "Maintenances").Create(vehicle).Error
}

// GetByID retrieves a vehicle by ID
func (r *VehicleRepository) GetByID(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetByIdentifier retrieves a vehicle by plate or RENAVAM with its current owners
func (r *VehicleRepository) GetByIdentifier(identifier string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(identifier), "-", ""))
	err := r.db.
		Preload("Owners", "is_current_owner = ?", true).
		Preload("Owners.User").
		Where("plate = ? OR renavam = ?", normalized, strings.TrimSpace(identifier)).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetAll retrieves all vehicles with pagination
func (r *VehicleRepository) GetAll(limit, offset int) ([]models.Vehicle, int64, error) {
	var vehicles []models.Vehicle
	var total int64

	if err := r.db.Model(&models.Vehicle{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// GetByOwner retrieves the vehicles a user currently owns
func (r *VehicleRepository) GetByOwner(userID uuid.UUID, limit, offset int) ([]models.Vehicle, int64, error) {
	var vehicles []models.Vehicle
	var total int64

	query := r.db.Model(&models.Vehicle{}).
		Joins("JOIN user_vehicles ON user_vehicles.vehicle_id = vehicles.id").
		Where("user_vehicles.user_id = ? AND user_vehicles.is_current_owner = ?", userID, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("vehicles.created_at DESC").Limit(limit).Offset(offset).Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// Exists reports whether a vehicle with the given ID exists
func (r *VehicleRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Vehicle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a vehicle
func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Omit("Owners", "Maintenances").Save(vehicle).Error
}

// Delete deletes a vehicle
func (r *VehicleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Vehicle{}, "id = ?", id).Error
}

// CreateOwnership links a user to a vehicle
func (r *VehicleRepository) CreateOwnership(link *models.UserVehicle) error {
	return r.db.Omit("User", "Vehicle").Create(link).Error
}

// GetOwnership retrieves the link between a user and a vehicle
func (r *VehicleRepository) GetOwnership(userID, vehicleID uuid.UUID) (*models.UserVehicle, error) {
	var link models.UserVehicle
	err := r.db.First(&link, "user_id = ? AND vehicle_id = ?", userID, vehicleID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}
