package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopService handles business logic for the workshop directory
type WorkshopService struct {
	repo      repository.WorkshopRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewWorkshopService creates a new workshop service
func NewWorkshopService(repo repository.WorkshopRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *WorkshopService {
	return &WorkshopService{
		repo:      repo,
		users:     users,
		validator: validator,
	}
}

// Ensure WorkshopService implements WorkshopServiceInterface
var _ WorkshopServiceInterface = (*WorkshopService)(nil)

// CreateWorkshopRequest represents the data needed to create a workshop
type CreateWorkshopRequest struct {
	Name         string `json:"name" validate:"required,max=255" example:"Auto Center Silva"`
	CNPJ         string `json:"cnpj" validate:"max=18"`
	Email        string `json:"email" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone" validate:"required,max=20"`
	Whatsapp     string `json:"whatsapp" validate:"max=20"`
	CEP          string `json:"cep" validate:"max=9"`
	Address      string `json:"address" validate:"max=255"`
	Number       string `json:"number" validate:"max=20"`
	Complement   string `json:"complement" validate:"max=100"`
	Neighborhood string `json:"neighborhood" validate:"max=100"`
	City         string `json:"city" validate:"max=100"`
	State        string `json:"state" validate:"omitempty,len=2"`
	Website      string `json:"website" validate:"omitempty,url,max=255"`
	Facebook     string `json:"facebook" validate:"max=255"`
	Instagram    string `json:"instagram" validate:"max=255"`
	Description  string `json:"description"`
}

// UpdateWorkshopRequest represents the data needed to update a workshop
type UpdateWorkshopRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	CNPJ         *string `json:"cnpj" validate:"omitempty,max=18"`
	Email        *string `json:"email" validate:"omitempty,blank_or_email,max=255"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Whatsapp     *string `json:"whatsapp" validate:"omitempty,max=20"`
	CEP          *string `json:"cep" validate:"omitempty,max=9"`
	Address      *string `json:"address" validate:"omitempty,max=255"`
	Number       *string `json:"number" validate:"omitempty,max=20"`
	Complement   *string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,max=100"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,blank_or_state"`
	Website      *string `json:"website" validate:"omitempty,blank_or_url,max=255"`
	Facebook     *string `json:"facebook" validate:"omitempty,max=255"`
	Instagram    *string `json:"instagram" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
}

// WorkshopListResponse represents a paginated list of workshops
type WorkshopListResponse struct {
	Workshops []models.Workshop `json:"workshops"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create adds a workshop to the directory. Workshop accounts become its owner.
func (s *WorkshopService) Create(actorID uuid.UUID, req *CreateWorkshopRequest) (*models.Workshop, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	workshop := &models.Workshop{
		Name:         strings.TrimSpace(req.Name),
		CNPJ:         req.CNPJ,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		CEP:          digitsOnly(req.CEP),
		Address:      req.Address,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        strings.ToUpper(req.State),
		Website:      req.Website,
		Facebook:     req.Facebook,
		Instagram:    req.Instagram,
		Description:  req.Description,
	}
	if workshop.Whatsapp == "" {
		workshop.Whatsapp = workshop.Phone
	}

	actor, err := s.users.GetByID(actorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err == nil && actor.IsWorkshop() {
		workshop.UserID = &actor.ID
	}

	if err := s.repo.Create(workshop); err != nil {
		return nil, apperrors.NewOperationError("creation", err)
	}
	return workshop, nil
}

// GetByID retrieves a workshop by ID
func (s *WorkshopService) GetByID(id uuid.UUID) (*models.Workshop, error) {
	workshop, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}
	return workshop, nil
}

// Search lists workshops whose name, city or neighborhood matches the query
func (s *WorkshopService) Search(query string, page, pageSize int) (*WorkshopListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	workshops, total, err := s.repo.Search(strings.TrimSpace(query), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search workshops: %w", err)
	}
	return &WorkshopListResponse{Workshops: workshops, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a workshop. Owned workshops may only be changed by their owner.
func (s *WorkshopService) Update(actorID, id uuid.UUID, req *UpdateWorkshopRequest) (*models.Workshop, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	workshop, err := s.editableWorkshop(actorID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		workshop.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil && *req.Phone != "" {
		workshop.Phone = *req.Phone
	}
	if req.CNPJ != nil {
		workshop.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		workshop.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Whatsapp != nil {
		workshop.Whatsapp = *req.Whatsapp
	}
	if req.CEP != nil {
		workshop.CEP = digitsOnly(*req.CEP)
	}
	if req.Address != nil {
		workshop.Address = *req.Address
	}
	if req.Number != nil {
		workshop.Number = *req.Number
	}
	if req.Complement != nil {
		workshop.Complement = *req.Complement
	}
	if req.Neighborhood != nil {
		workshop.Neighborhood = *req.Neighborhood
	}
	if req.City != nil {
		workshop.City = *req.City
	}
	if req.State != nil {
		workshop.State = strings.ToUpper(*req.State)
	}
	if req.Website != nil {
		workshop.Website = *req.Website
	}
	if req.Facebook != nil {
		workshop.Facebook = *req.Facebook
	}
	if req.Instagram != nil {
		workshop.Instagram = *req.Instagram
	}
	if req.Description != nil {
		workshop.Description = *req.Description
	}

	if err := s.repo.Update(workshop); err != nil {
		return nil, apperrors.NewOperationError("update", err)
	}
	return workshop, nil
}

// Delete removes a workshop that no maintenance references
func (s *WorkshopService) Delete(actorID, id uuid.UUID) error {
	if _, err := s.editableWorkshop(actorID, id); err != nil {
		return err
	}

	count, err := s.repo.CountMaintenances(id)
	if err != nil {
		return fmt.Errorf("failed to count maintenances: %w", err)
	}
	if count > 0 {
		return apperrors.ErrWorkshopInUse
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkshopNotFound
		}
		return apperrors.NewOperationError("deletion", err)
	}
	return nil
}

func (s *WorkshopService) editableWorkshop(actorID, id uuid.UUID) (*models.Workshop, error) {
	workshop, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if workshop.UserID != nil && *workshop.UserID != actorID {
		return nil, apperrors.ErrNotWorkshopOwner
	}
	return workshop, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
