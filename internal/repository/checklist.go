package repository

import (
	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistRepository handles database operations for checklists
type ChecklistRepository struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ChecklistRepository) WithTx(tx *gorm.DB) ChecklistRepositoryInterface {
	return &ChecklistRepository{db: tx}
}

// Create creates a new checklist
func (r *ChecklistRepository) Create(checklist *models.Checklist) error {
	return r.db.Create(checklist).Error
}

// GetByMaintenanceID retrieves the checklists of a maintenance
func (r *ChecklistRepository) GetByMaintenanceID(maintenanceID uuid.UUID) ([]models.Checklist, error) {
	var checklists []models.Checklist
	err := r.db.Where("maintenance_id = ?", maintenanceID).Order("created_at ASC").Find(&checklists).Error
	return checklists, err
}
