package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/logger"
	"vehicle-maintenance-backend/internal/repository"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleService handles business logic for vehicles and ownership
type VehicleService struct {
	tx           repository.Transactor
	repo         repository.VehicleRepositoryInterface
	maintenances repository.MaintenanceRepositoryInterface
	invoices     repository.InvoiceRepositoryInterface
	store        storage.FileStore
	validator    *validator.Validate
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(
	tx repository.Transactor,
	repo repository.VehicleRepositoryInterface,
	maintenances repository.MaintenanceRepositoryInterface,
	invoices repository.InvoiceRepositoryInterface,
	store storage.FileStore,
	validator *validator.Validate,
) *VehicleService {
	return &VehicleService{
		tx:           tx,
		repo:         repo,
		maintenances: maintenances,
		invoices:     invoices,
		store:        store,
		validator:    validator,
	}
}

// Ensure VehicleService implements VehicleServiceInterface
var _ VehicleServiceInterface = (*VehicleService)(nil)

// CreateVehicleRequest represents the data needed to register a vehicle
type CreateVehicleRequest struct {
	Plate        string `json:"plate" validate:"required,max=10" example:"ABC1234"`
	Renavam      string `json:"renavam" validate:"required,max=20" example:"12345678901"`
	Brand        string `json:"brand" validate:"required,max=100"`
	Model        string `json:"model" validate:"required,max=100"`
	Year         int    `json:"year" validate:"required,min=1900"`
	Color        string `json:"color" validate:"max=50"`
	Chassis      string `json:"chassis" validate:"max=50"`
	Engine       string `json:"engine" validate:"max=50"`
	PurchaseDate string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateVehicleRequest represents the data needed to update a vehicle
type UpdateVehicleRequest struct {
	Plate   *string `json:"plate" validate:"omitempty,max=10"`
	Renavam *string `json:"renavam" validate:"omitempty,max=20"`
	Brand   *string `json:"brand" validate:"omitempty,max=100"`
	Model   *string `json:"model" validate:"omitempty,max=100"`
	Year    *int    `json:"year" validate:"omitempty,min=1900"`
	Color   *string `json:"color" validate:"omitempty,max=50"`
	Chassis *string `json:"chassis" validate:"omitempty,max=50"`
	Engine  *string `json:"engine" validate:"omitempty,max=50"`
}

// LinkVehicleRequest represents the data needed to link a user to a vehicle
type LinkVehicleRequest struct {
	PurchaseDate   string    `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	IsCurrentOwner *FlexBool `json:"is_current_owner" swaggertype:"boolean"`
}

// VehicleListResponse represents a paginated list of vehicles
type VehicleListResponse struct {
	Vehicles []models.Vehicle `json:"vehicles"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// VehicleExport is the maintenance history of a vehicle prepared for export
type VehicleExport struct {
	Vehicle      *models.Vehicle      `json:"vehicle"`
	Maintenances []models.Maintenance `json:"maintenances"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// Create registers a vehicle and links the creator as its current owner
func (s *VehicleService) Create(ctx context.Context, actorID uuid.UUID, req *CreateVehicleRequest) (*models.Vehicle, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		Plate:   normalizePlate(req.Plate),
		Renavam: strings.TrimSpace(req.Renavam),
		Brand:   strings.TrimSpace(req.Brand),
		Model:   strings.TrimSpace(req.Model),
		Year:    req.Year,
		Color:   req.Color,
		Chassis: req.Chassis,
		Engine:  req.Engine,
	}

	link := &models.UserVehicle{UserID: actorID, IsCurrentOwner: true}
	if req.PurchaseDate != "" {
		date, _ := time.Parse(dateLayout, req.PurchaseDate)
		link.PurchaseDate = &date
	}

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		vehicles := s.repo.WithTx(tx)
		if err := vehicles.Create(vehicle); err != nil {
			return err
		}
		link.VehicleID = vehicle.ID
		return vehicles.CreateOwnership(link)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrVehicleExists
		}
		return nil, apperrors.NewOperationError("creation", err)
	}

	logger.WithContext(ctx).WithField("vehicle_id", vehicle.ID.String()).Info("vehicle registered")
	return vehicle, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// Search finds a vehicle by plate or RENAVAM
func (s *VehicleService) Search(identifier string) (*models.Vehicle, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, apperrors.NewValidationError("identifier", "is required")
	}
	vehicle, err := s.repo.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to search vehicle: %w", err)
	}
	return vehicle, nil
}

// List retrieves all vehicles with pagination
func (s *VehicleService) List(page, pageSize int) (*VehicleListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	vehicles, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return &VehicleListResponse{Vehicles: vehicles, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListByOwner retrieves the vehicles a user currently owns
func (s *VehicleService) ListByOwner(userID uuid.UUID, page, pageSize int) (*VehicleListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	vehicles, total, err := s.repo.GetByOwner(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned vehicles: %w", err)
	}
	return &VehicleListResponse{Vehicles: vehicles, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a vehicle owned by the actor
func (s *VehicleService) Update(actorID, id uuid.UUID, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Year != nil {
		if err := validateYear(*req.Year); err != nil {
			return nil, err
		}
	}

	vehicle, err := s.ownedVehicle(actorID, id)
	if err != nil {
		return nil, err
	}

	if req.Plate != nil && strings.TrimSpace(*req.Plate) != "" {
		vehicle.Plate = normalizePlate(*req.Plate)
	}
	if req.Renavam != nil && strings.TrimSpace(*req.Renavam) != "" {
		vehicle.Renavam = strings.TrimSpace(*req.Renavam)
	}
	if req.Brand != nil && strings.TrimSpace(*req.Brand) != "" {
		vehicle.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil && strings.TrimSpace(*req.Model) != "" {
		vehicle.Model = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Chassis != nil {
		vehicle.Chassis = *req.Chassis
	}
	if req.Engine != nil {
		vehicle.Engine = *req.Engine
	}

	if err := s.repo.Update(vehicle); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrVehicleExists
		}
		return nil, apperrors.NewOperationError("update", err)
	}
	return vehicle, nil
}

// Delete removes a vehicle owned by the actor together with its maintenance
// history and the stored invoice files of that history
func (s *VehicleService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := s.ownedVehicle(actorID, id); err != nil {
		return err
	}

	paths, err := s.invoices.GetPathsByVehicleID(id)
	if err != nil {
		return fmt.Errorf("failed to list invoice files: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewOperationError("deletion", err)
	}

	log := logger.WithContext(ctx).WithField("vehicle_id", id.String())
	deleteFiles(ctx, s.store, paths, log)
	log.Info("vehicle deleted")
	return nil
}

// Link records the actor as an owner of an existing vehicle
func (s *VehicleService) Link(actorID, id uuid.UUID, req *LinkVehicleRequest) (*models.UserVehicle, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOwnership(actorID, id); err == nil {
		return nil, apperrors.ErrVehicleLinkExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check vehicle link: %w", err)
	}

	link := &models.UserVehicle{UserID: actorID, VehicleID: id, IsCurrentOwner: true}
	if req.IsCurrentOwner != nil {
		link.IsCurrentOwner = req.IsCurrentOwner.Bool()
	}
	if req.PurchaseDate != "" {
		date, _ := time.Parse(dateLayout, req.PurchaseDate)
		link.PurchaseDate = &date
	}

	if err := s.repo.CreateOwnership(link); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrVehicleLinkExists
		}
		return nil, apperrors.NewOperationError("creation", err)
	}
	return link, nil
}

// GetMaintenances retrieves the maintenance history of a vehicle, newest first
func (s *VehicleService) GetMaintenances(id uuid.UUID) ([]models.Maintenance, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	maintenances, err := s.maintenances.GetByVehicleID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenances: %w", err)
	}
	return maintenances, nil
}

// Export assembles the vehicle and its full maintenance history
func (s *VehicleService) Export(id uuid.UUID) (*VehicleExport, error) {
	vehicle, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	maintenances, err := s.maintenances.GetByVehicleID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenances: %w", err)
	}
	return &VehicleExport{
		Vehicle:      vehicle,
		Maintenances: maintenances,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

func (s *VehicleService) ownedVehicle(actorID, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	link, err := s.repo.GetOwnership(actorID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotVehicleOwner
		}
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}
	if !link.IsCurrentOwner {
		return nil, apperrors.ErrNotVehicleOwner
	}
	return vehicle, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), "-", ""))
}

func validateYear(year int) error {
	if maxYear := time.Now().Year() + 1; year > maxYear {
		return apperrors.NewValidationError("year", fmt.Sprintf("may not be greater than %d", maxYear))
	}
	return nil
}
