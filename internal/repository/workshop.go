package repository

import (
	"strings"

	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopRepository handles database operations for workshops
type WorkshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository creates a new workshop repository
func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *WorkshopRepository) WithTx(tx *gorm.DB) WorkshopRepositoryInterface {
	return &WorkshopRepository{db: tx}
}

// Create creates a new workshop
func (r *WorkshopRepository) Create(workshop *models.Workshop) error {
	return r.db.Omit("Owner").Create(workshop).Error
}

// GetByID retrieves a workshop by ID
func (r *WorkshopRepository) GetByID(id uuid.UUID) (*models.Workshop, error) {
	var workshop models.Workshop
	err := r.db.First(&workshop, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workshop, nil
}

// Search finds workshops whose name, city or neighborhood contains query (case-insensitive)
func (r *WorkshopRepository) Search(query string, limit, offset int) ([]models.Workshop, int64, error) {
	var workshops []models.Workshop
	var total int64

	q := r.db.Model(&models.Workshop{})
	if query = strings.TrimSpace(query); query != "" {
		pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(city) LIKE ? ESCAPE '\' OR LOWER(neighborhood) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&workshops).Error
	if err != nil {
		return nil, 0, err
	}

	return workshops, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Update updates a workshop
func (r *WorkshopRepository) Update(workshop *models.Workshop) error {
	return r.db.Omit("Owner").Save(workshop).Error
}

// Delete deletes a workshop
func (r *WorkshopRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Workshop{}, "id = ?", id).Error
}

// CountMaintenances counts the maintenances referencing a workshop
func (r *WorkshopRepository) CountMaintenances(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Maintenance{}).Where("workshop_id = ?", id).Count(&count).Error
	return count, err
}
