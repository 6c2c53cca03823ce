package repository

import (
	"time"

	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceTokenRepository handles database operations for device tokens
type DeviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new device token repository
func NewDeviceTokenRepository(db *gorm.DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{db: db}
}

// Upsert registers a token for a user, refreshing the device type if the pair already exists
func (r *DeviceTokenRepository) Upsert(token *models.DeviceToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"device_type", "updated_at"}),
	}).Create(token).Error
}

// DeleteByToken removes a user's token and reports how many rows were deleted
func (r *DeviceTokenRepository) DeleteByToken(userID uuid.UUID, token string) (int64, error) {
	result := r.db.Where("user_id = ? AND token = ?", userID, token).Delete(&models.DeviceToken{})
	return result.RowsAffected, result.Error
}

// GetByUserID retrieves all tokens registered by a user
func (r *DeviceTokenRepository) GetByUserID(userID uuid.UUID) ([]models.DeviceToken, error) {
	var tokens []models.DeviceToken
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&tokens).Error
	return tokens, err
}
