package repository

import (
	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *InvoiceRepository) WithTx(tx *gorm.DB) InvoiceRepositoryInterface {
	return &InvoiceRepository{db: tx}
}

// Create creates a new invoice
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// GetByID retrieves an invoice by ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByMaintenanceID retrieves every invoice of a maintenance, including item invoices
func (r *InvoiceRepository) GetByMaintenanceID(maintenanceID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("maintenance_id = ?", maintenanceID).Order("created_at ASC").Find(&invoices).Error
	return invoices, err
}

// GetPathsByVehicleID returns the stored file paths of every invoice of a vehicle's maintenances
func (r *InvoiceRepository) GetPathsByVehicleID(vehicleID uuid.UUID) ([]string, error) {
	var paths []string
	err := r.db.Model(&models.Invoice{}).
		Joins("JOIN maintenances ON maintenances.id = invoices.maintenance_id").
		Where("maintenances.vehicle_id = ?", vehicleID).
		Pluck("invoices.file_path", &paths).Error
	return paths, err
}

// GetReferencedPaths returns the subset of paths that some invoice row points at
func (r *InvoiceRepository) GetReferencedPaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	var referenced []string
	err := r.db.Model(&models.Invoice{}).Where("file_path IN ?", paths).Pluck("file_path", &referenced).Error
	return referenced, err
}

// Delete deletes an invoice
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
