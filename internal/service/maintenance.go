package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/logger"
	"vehicle-maintenance-backend/internal/notification"
	"vehicle-maintenance-backend/internal/repository"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaintenanceRepositories groups the repositories the composer reads and writes
type MaintenanceRepositories struct {
	Tx           repository.Transactor
	Maintenances repository.MaintenanceRepositoryInterface
	Items        repository.MaintenanceItemRepositoryInterface
	Invoices     repository.InvoiceRepositoryInterface
	Checklists   repository.ChecklistRepositoryInterface
	Vehicles     repository.VehicleRepositoryInterface
	Workshops    repository.WorkshopRepositoryInterface
	DeviceTokens repository.DeviceTokenRepositoryInterface
}

// MaintenanceService composes maintenances with their items, invoices and checklists
type MaintenanceService struct {
	repos           MaintenanceRepositories
	store           storage.FileStore
	notifier        notification.Notifier
	validator       *validator.Validate
	maxInvoiceBytes int64
	now             func() time.Time
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(repos MaintenanceRepositories, store storage.FileStore, notifier notification.Notifier, validator *validator.Validate, maxInvoiceBytes int64) *MaintenanceService {
	return &MaintenanceService{
		repos:           repos,
		store:           store,
		notifier:        notifier,
		validator:       validator,
		maxInvoiceBytes: maxInvoiceBytes,
		now:             time.Now,
	}
}

// Ensure MaintenanceService implements MaintenanceServiceInterface
var _ MaintenanceServiceInterface = (*MaintenanceService)(nil)

// CreateMaintenanceRequest represents the data needed to record a maintenance
type CreateMaintenanceRequest struct {
	VehicleID              string                 `json:"vehicle_id" validate:"required,uuid"`
	WorkshopID             string                 `json:"workshop_id" validate:"omitempty,uuid"`
	WorkshopName           string                 `json:"workshop_name" validate:"max=255"`
	MaintenanceType        string                 `json:"maintenance_type" validate:"required,max=100"`
	Description            string                 `json:"description"`
	ServiceCategory        string                 `json:"service_category" validate:"required,service_category"`
	MaintenanceDate        string                 `json:"maintenance_date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	Kilometers             *int                   `json:"kilometers" validate:"omitempty,min=0"`
	IsManufacturerRequired FlexBool               `json:"is_manufacturer_required" swaggertype:"boolean"`
	Items                  []MaintenanceItemInput `json:"items" validate:"omitempty,dive"`
	Checklists             []ChecklistInput       `json:"checklists" validate:"omitempty,dive"`
}

// MaintenanceItemInput is one line item of a new maintenance
type MaintenanceItemInput struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity" validate:"required,min=1"`
	UnitPrice   *decimal.Decimal `json:"unit_price" validate:"omitempty,min=0" swaggertype:"number"`
	TotalPrice  *decimal.Decimal `json:"total_price" validate:"omitempty,min=0" swaggertype:"number"`
	PartNumber  string           `json:"part_number" validate:"max=100"`
}

// ChecklistInput is one checklist of a new maintenance
type ChecklistInput struct {
	ChecklistType string          `json:"checklist_type" validate:"required,checklist_type"`
	Items         json.RawMessage `json:"items" validate:"required" swaggertype:"object"`
	Notes         string          `json:"notes"`
}

// UpdateMaintenanceRequest represents a partial maintenance update; nil fields are left unchanged
type UpdateMaintenanceRequest struct {
	WorkshopID             *string   `json:"workshop_id" validate:"omitempty,blank_or_uuid"`
	WorkshopName           *string   `json:"workshop_name" validate:"omitempty,max=255"`
	MaintenanceType        *string   `json:"maintenance_type" validate:"omitempty,max=100"`
	Description            *string   `json:"description"`
	ServiceCategory        *string   `json:"service_category" validate:"omitempty,service_category"`
	MaintenanceDate        *string   `json:"maintenance_date" validate:"omitempty,datetime=2006-01-02"`
	Kilometers             *int      `json:"kilometers" validate:"omitempty,min=0"`
	IsManufacturerRequired *FlexBool `json:"is_manufacturer_required" swaggertype:"boolean"`
}

// MaintenanceResponse is the composed maintenance aggregate
type MaintenanceResponse struct {
	*models.Maintenance
	SkippedInvoices []SkippedInvoice `json:"skipped_invoices,omitempty"`
}

// MaintenanceListFilter narrows maintenance listings
type MaintenanceListFilter struct {
	VehicleID       *uuid.UUID
	UserID          *uuid.UUID
	ServiceCategory string
}

// MaintenanceListResponse represents a paginated list of maintenances
type MaintenanceListResponse struct {
	Maintenances []models.Maintenance `json:"maintenances"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PerPage      int                  `json:"per_page"`
}

// Create validates req and commits the maintenance, its items, its invoice files
// and its checklists as one unit. Invoice files that are not valid PDFs are
// skipped and reported in the response.
func (s *MaintenanceService) Create(ctx context.Context, actorID uuid.UUID, req *CreateMaintenanceRequest, files []InvoiceFile) (*MaintenanceResponse, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	vehicleID := uuid.MustParse(req.VehicleID)
	maintenanceDate, _ := time.Parse(dateLayout, req.MaintenanceDate)

	exists, err := s.repos.Vehicles.Exists(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify vehicle: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError("vehicle_id", "the selected vehicle_id is invalid")
	}

	log := logger.WithContext(ctx).WithField("vehicle_id", vehicleID.String())

	accepted, skipped := s.screenInvoiceFiles(files)
	for _, sk := range skipped {
		log.WithField("file_name", sk.FileName).Warnf("skipping invoice upload: %s", sk.Reason)
	}

	maintenance := &models.Maintenance{
		VehicleID:              vehicleID,
		UserID:                 actorID,
		WorkshopName:           strings.TrimSpace(req.WorkshopName),
		MaintenanceType:        strings.TrimSpace(req.MaintenanceType),
		Description:            req.Description,
		ServiceCategory:        models.ServiceCategory(req.ServiceCategory),
		MaintenanceDate:        maintenanceDate,
		Kilometers:             req.Kilometers,
		IsManufacturerRequired: req.IsManufacturerRequired.Bool(),
	}

	var written []string
	err = s.repos.Tx.Transaction(ctx, func(tx *gorm.DB) error {
		if req.WorkshopID != "" {
			if err := s.resolveWorkshop(tx, uuid.MustParse(req.WorkshopID), maintenance); err != nil {
				return err
			}
		}

		if err := s.repos.Maintenances.WithTx(tx).Create(maintenance); err != nil {
			return fmt.Errorf("insert maintenance: %w", err)
		}

		items := s.repos.Items.WithTx(tx)
		for i := range req.Items {
			if err := items.Create(buildItem(maintenance.ID, &req.Items[i])); err != nil {
				return fmt.Errorf("insert item %d: %w", i, err)
			}
		}

		invoices := s.repos.Invoices.WithTx(tx)
		base := s.now()
		for i, f := range accepted {
			// distinct prefixes even when one batch carries the same file name twice
			path, err := storeInvoiceFile(ctx, s.store, f, base.Add(time.Duration(i)))
			if err != nil {
				return fmt.Errorf("store invoice %s: %w", f.Filename, err)
			}
			written = append(written, path)

			invoice := &models.Invoice{
				MaintenanceID: maintenance.ID,
				InvoiceType:   models.InvoiceTypeGeneral,
				FilePath:      path,
				FileName:      storage.SanitizeName(f.Filename),
			}
			if err := invoices.Create(invoice); err != nil {
				return fmt.Errorf("insert invoice %s: %w", path, err)
			}
		}

		checklists := s.repos.Checklists.WithTx(tx)
		for i, c := range req.Checklists {
			checklist := &models.Checklist{
				MaintenanceID: maintenance.ID,
				ChecklistType: models.ChecklistType(c.ChecklistType),
				Items:         datatypes.JSON(c.Items),
				Notes:         c.Notes,
			}
			if err := checklists.Create(checklist); err != nil {
				return fmt.Errorf("insert checklist %d: %w", i, err)
			}
		}

		// an abandoned request must not commit
		return ctx.Err()
	})
	if err != nil {
		if failed := deleteFiles(ctx, s.store, written, log); len(failed) > 0 {
			log.Warnf("%d invoice files left for the orphan sweep", len(failed))
		}
		log.Errorf("maintenance creation rolled back: %v", err)
		return nil, apperrors.NewOperationError("creation", err)
	}

	created, err := s.repos.Maintenances.GetWithDetails(maintenance.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"maintenance_id": created.ID.String(),
		"items":          len(created.Items),
		"invoices":       len(created.Invoices),
		"skipped":        len(skipped),
	}).Info("maintenance created")

	s.notifyWorkshopOwner(ctx, created)

	return &MaintenanceResponse{Maintenance: created, SkippedInvoices: skipped}, nil
}

// GetByID retrieves a maintenance aggregate
func (s *MaintenanceService) GetByID(id uuid.UUID) (*MaintenanceResponse, error) {
	maintenance, err := s.repos.Maintenances.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}
	return &MaintenanceResponse{Maintenance: maintenance}, nil
}

// List retrieves maintenances with optional filters and pagination
func (s *MaintenanceService) List(filter MaintenanceListFilter, page, perPage int) (*MaintenanceListResponse, error) {
	if page < 1 || perPage < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	if filter.ServiceCategory != "" && !models.ServiceCategory(filter.ServiceCategory).IsValid() {
		return nil, apperrors.NewValidationError("service_category", fieldMessageFor("service_category"))
	}

	maintenances, total, err := s.repos.Maintenances.List(repository.MaintenanceFilter{
		VehicleID:       filter.VehicleID,
		UserID:          filter.UserID,
		ServiceCategory: models.ServiceCategory(filter.ServiceCategory),
	}, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenances: %w", err)
	}

	return &MaintenanceListResponse{
		Maintenances: maintenances,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
	}, nil
}

// Update applies the supplied fields only. A supplied workshop_id re-derives the
// workshop name the same way creation does.
func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, req *UpdateMaintenanceRequest) (*MaintenanceResponse, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}

	existing, err := s.repos.Maintenances.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}

	updates := make(map[string]interface{})
	if req.MaintenanceType != nil {
		updates["maintenance_type"] = strings.TrimSpace(*req.MaintenanceType)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ServiceCategory != nil {
		updates["service_category"] = models.ServiceCategory(*req.ServiceCategory)
	}
	if req.MaintenanceDate != nil {
		date, _ := time.Parse(dateLayout, *req.MaintenanceDate)
		updates["maintenance_date"] = date
	}
	if req.Kilometers != nil {
		updates["kilometers"] = *req.Kilometers
	}
	if req.IsManufacturerRequired != nil {
		updates["is_manufacturer_required"] = req.IsManufacturerRequired.Bool()
	}

	switch {
	case req.WorkshopID != nil:
		target := &models.Maintenance{}
		if req.WorkshopName != nil {
			target.WorkshopName = strings.TrimSpace(*req.WorkshopName)
		} else {
			target.WorkshopName = existing.WorkshopName
		}
		if *req.WorkshopID != "" {
			if err := s.resolveWorkshop(nil, uuid.MustParse(*req.WorkshopID), target); err != nil {
				return nil, apperrors.NewOperationError("update", err)
			}
		}
		updates["workshop_id"] = target.WorkshopID
		updates["workshop_name"] = target.WorkshopName
	case req.WorkshopName != nil && existing.WorkshopID == nil:
		updates["workshop_name"] = strings.TrimSpace(*req.WorkshopName)
	}

	if err := s.repos.Maintenances.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceNotFound
		}
		return nil, apperrors.NewOperationError("update", err)
	}

	logger.WithContext(ctx).WithField("maintenance_id", id.String()).Infof("maintenance updated (%d fields)", len(updates))

	return s.GetByID(id)
}

// Delete removes a maintenance and the stored files of its invoices.
// Items, invoices and checklists rows cascade in the database.
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repos.Maintenances.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaintenanceNotFound
		}
		return fmt.Errorf("failed to get maintenance: %w", err)
	}

	invoices, err := s.repos.Invoices.GetByMaintenanceID(id)
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}
	paths := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		paths = append(paths, inv.FilePath)
	}

	if err := s.repos.Maintenances.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaintenanceNotFound
		}
		return apperrors.NewOperationError("deletion", err)
	}

	log := logger.WithContext(ctx).WithField("maintenance_id", id.String())
	failed := deleteFiles(ctx, s.store, paths, log)
	log.Infof("maintenance deleted with %d invoice files (%d left for the orphan sweep)", len(paths), len(failed))
	return nil
}

// resolveWorkshop links target to the workshop and copies its current name.
// An unknown workshop leaves target unlinked with its free-text name intact.
func (s *MaintenanceService) resolveWorkshop(tx *gorm.DB, workshopID uuid.UUID, target *models.Maintenance) error {
	workshops := s.repos.Workshops
	if tx != nil {
		workshops = workshops.WithTx(tx)
	}

	workshop, err := workshops.GetByID(workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			target.WorkshopID = nil
			return nil
		}
		return fmt.Errorf("lookup workshop: %w", err)
	}

	target.WorkshopID = &workshop.ID
	target.WorkshopName = workshop.Name
	return nil
}

func (s *MaintenanceService) screenInvoiceFiles(files []InvoiceFile) ([]InvoiceFile, []SkippedInvoice) {
	accepted := make([]InvoiceFile, 0, len(files))
	var skipped []SkippedInvoice
	for _, f := range files {
		if err := validateInvoiceFile(f, s.maxInvoiceBytes); err != nil {
			skipped = append(skipped, SkippedInvoice{FileName: storage.SanitizeName(f.Filename), Reason: err.Error()})
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted, skipped
}

func (s *MaintenanceService) notifyWorkshopOwner(ctx context.Context, m *models.Maintenance) {
	if s.notifier == nil || m.Workshop == nil || m.Workshop.UserID == nil {
		return
	}

	tokens, err := s.repos.DeviceTokens.GetByUserID(*m.Workshop.UserID)
	if err != nil {
		logger.WithContext(ctx).Warnf("failed to load device tokens for workshop owner: %v", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	plate := ""
	if m.Vehicle != nil {
		plate = m.Vehicle.Plate
	}
	msg := notification.Message{
		Kind:   notification.KindMaintenanceCreated,
		UserID: *m.Workshop.UserID,
		Title:  "Nova manutenção registrada",
		Body:   fmt.Sprintf("%s registrada para o veículo %s", m.MaintenanceType, plate),
		Data: map[string]string{
			"maintenance_id": m.ID.String(),
			"vehicle_id":     m.VehicleID.String(),
		},
	}
	for _, t := range tokens {
		msg.Tokens = append(msg.Tokens, t.Token)
	}
	s.notifier.Dispatch(ctx, msg)
}

func (s *MaintenanceService) validateCreate(req *CreateMaintenanceRequest) error {
	var errs apperrors.ValidationErrors
	if err := s.validator.Struct(req); err != nil {
		group, ok := translateValidationErrors(err).(apperrors.ValidationErrors)
		if !ok {
			return fmt.Errorf("validation failed: %w", err)
		}
		errs = append(errs, group...)
	}

	if strings.TrimSpace(req.MaintenanceType) == "" && req.MaintenanceType != "" {
		errs = append(errs, &apperrors.ValidationError{Field: "maintenance_type", Message: "is required"})
	}
	for i, c := range req.Checklists {
		if len(c.Items) > 0 && !isJSONCollection(c.Items) {
			errs = append(errs, &apperrors.ValidationError{
				Field:   fmt.Sprintf("checklists.%d.items", i),
				Message: "must be an array",
			})
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %w", errs)
	}
	return nil
}

func (s *MaintenanceService) validateUpdate(req *UpdateMaintenanceRequest) error {
	var errs apperrors.ValidationErrors
	if err := s.validator.Struct(req); err != nil {
		group, ok := translateValidationErrors(err).(apperrors.ValidationErrors)
		if !ok {
			return fmt.Errorf("validation failed: %w", err)
		}
		errs = append(errs, group...)
	}

	// present-but-empty is not the same as absent for required columns
	required := map[string]*string{
		"maintenance_type": req.MaintenanceType,
		"service_category": req.ServiceCategory,
		"maintenance_date": req.MaintenanceDate,
	}
	for field, value := range required {
		if value != nil && strings.TrimSpace(*value) == "" {
			errs = append(errs, &apperrors.ValidationError{Field: field, Message: "is required"})
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %w", errs)
	}
	return nil
}

func buildItem(maintenanceID uuid.UUID, in *MaintenanceItemInput) *models.MaintenanceItem {
	item := &models.MaintenanceItem{
		MaintenanceID: maintenanceID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		TotalPrice:    in.TotalPrice,
		PartNumber:    in.PartNumber,
	}
	if item.TotalPrice == nil && item.UnitPrice != nil {
		total := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		item.TotalPrice = &total
	}
	return item
}

func isJSONCollection(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
