package service

import (
	"fmt"
	"strings"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DeviceTokenService manages push-notification registrations
type DeviceTokenService struct {
	repo      repository.DeviceTokenRepositoryInterface
	validator *validator.Validate
}

// NewDeviceTokenService creates a new device token service
func NewDeviceTokenService(repo repository.DeviceTokenRepositoryInterface, validator *validator.Validate) *DeviceTokenService {
	return &DeviceTokenService{repo: repo, validator: validator}
}

// Ensure DeviceTokenService implements DeviceTokenServiceInterface
var _ DeviceTokenServiceInterface = (*DeviceTokenService)(nil)

// RegisterDeviceTokenRequest represents a device registering for push notifications
type RegisterDeviceTokenRequest struct {
	Token      string `json:"token" validate:"required,max=500"`
	DeviceType string `json:"device_type" validate:"omitempty,device_type" example:"android"`
}

// Register stores the token for the user, refreshing it when already known
func (s *DeviceTokenService) Register(userID uuid.UUID, req *RegisterDeviceTokenRequest) (*models.DeviceToken, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	token := &models.DeviceToken{
		UserID:     userID,
		Token:      strings.TrimSpace(req.Token),
		DeviceType: models.DeviceType(req.DeviceType),
	}
	if err := s.repo.Upsert(token); err != nil {
		return nil, apperrors.NewOperationError("creation", err)
	}
	return token, nil
}

// Remove deletes one of the user's tokens
func (s *DeviceTokenService) Remove(userID uuid.UUID, token string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.NewValidationError("token", "is required")
	}
	removed, err := s.repo.DeleteByToken(userID, strings.TrimSpace(token))
	if err != nil {
		return apperrors.NewOperationError("deletion", err)
	}
	if removed == 0 {
		return apperrors.ErrDeviceTokenNotFound
	}
	return nil
}

// List returns the user's registered tokens
func (s *DeviceTokenService) List(userID uuid.UUID) ([]models.DeviceToken, error) {
	tokens, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	return tokens, nil
}
