package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/logger"
	"vehicle-maintenance-backend/internal/repository"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const sweepBatchSize = 500

// InvoiceService handles standalone invoice upload, download and deletion
type InvoiceService struct {
	invoices        repository.InvoiceRepositoryInterface
	maintenances    repository.MaintenanceRepositoryInterface
	items           repository.MaintenanceItemRepositoryInterface
	store           storage.FileStore
	validator       *validator.Validate
	maxInvoiceBytes int64
	now             func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoices repository.InvoiceRepositoryInterface,
	maintenances repository.MaintenanceRepositoryInterface,
	items repository.MaintenanceItemRepositoryInterface,
	store storage.FileStore,
	validator *validator.Validate,
	maxInvoiceBytes int64,
) *InvoiceService {
	return &InvoiceService{
		invoices:        invoices,
		maintenances:    maintenances,
		items:           items,
		store:           store,
		validator:       validator,
		maxInvoiceBytes: maxInvoiceBytes,
		now:             time.Now,
	}
}

// Ensure InvoiceService implements InvoiceServiceInterface
var _ InvoiceServiceInterface = (*InvoiceService)(nil)

// UploadInvoiceRequest represents the metadata sent with a standalone invoice upload
type UploadInvoiceRequest struct {
	MaintenanceID     string `form:"maintenance_id" json:"maintenance_id" validate:"required,uuid"`
	MaintenanceItemID string `form:"maintenance_item_id" json:"maintenance_item_id" validate:"omitempty,uuid"`
	InvoiceNumber     string `form:"invoice_number" json:"invoice_number" validate:"max=100"`
	InvoiceDate       string `form:"invoice_date" json:"invoice_date" validate:"omitempty,datetime=2006-01-02"`
	TotalAmount       string `form:"total_amount" json:"total_amount" validate:"omitempty,numeric"`
}

// InvoiceDownload is an open invoice file ready to be streamed
type InvoiceDownload struct {
	Reader      io.ReadCloser
	FileName    string
	ContentType string
}

// SweepResult summarizes an orphan sweep run
type SweepResult struct {
	Scanned    int      `json:"scanned"`
	Candidates int      `json:"candidates"`
	Removed    []string `json:"removed"`
	Failed     []string `json:"failed,omitempty"`
}

// Upload validates the file and its targets, stores the file and then records it
func (s *InvoiceService) Upload(ctx context.Context, req *UploadInvoiceRequest, file InvoiceFile) (*models.Invoice, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		MaintenanceID: uuid.MustParse(req.MaintenanceID),
		InvoiceType:   models.InvoiceTypeGeneral,
		FileName:      storage.SanitizeName(file.Filename),
		InvoiceNumber: req.InvoiceNumber,
	}

	if req.InvoiceDate != "" {
		date, _ := time.Parse(dateLayout, req.InvoiceDate)
		invoice.InvoiceDate = &date
	}
	if req.TotalAmount != "" {
		amount, err := decimal.NewFromString(req.TotalAmount)
		if err != nil || amount.IsNegative() {
			return nil, apperrors.NewValidationError("total_amount", "must be at least 0")
		}
		invoice.TotalAmount = &amount
	}

	if _, err := s.maintenances.GetByID(invoice.MaintenanceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("maintenance_id", "the selected maintenance_id is invalid")
		}
		return nil, fmt.Errorf("failed to verify maintenance: %w", err)
	}

	if req.MaintenanceItemID != "" {
		itemID := uuid.MustParse(req.MaintenanceItemID)
		item, err := s.items.GetByID(itemID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to verify maintenance item: %w", err)
		}
		if err != nil || item.MaintenanceID != invoice.MaintenanceID {
			return nil, apperrors.NewValidationError("maintenance_item_id", "the selected maintenance_item_id is invalid")
		}
		invoice.MaintenanceItemID = &itemID
		invoice.InvoiceType = models.InvoiceTypeItem
	}

	if err := validateInvoiceFile(file, s.maxInvoiceBytes); err != nil {
		return nil, apperrors.NewValidationError("file", err.Error())
	}

	log := logger.WithContext(ctx).WithField("maintenance_id", req.MaintenanceID)

	path, err := storeInvoiceFile(ctx, s.store, file, s.now())
	if err != nil {
		return nil, apperrors.NewOperationError("upload", err)
	}
	invoice.FilePath = path

	if err := s.invoices.Create(invoice); err != nil {
		deleteFiles(ctx, s.store, []string{path}, log)
		return nil, apperrors.NewOperationError("upload", err)
	}

	log.WithField("path", path).Info("invoice uploaded")
	return invoice, nil
}

// Download opens the stored file of an invoice. A record whose file is gone
// yields a FileMissingError rather than a plain not-found.
func (s *InvoiceService) Download(ctx context.Context, id uuid.UUID) (*InvoiceDownload, error) {
	invoice, err := s.invoices.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	exists, err := s.store.Exists(ctx, invoice.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check invoice file: %w", err)
	}
	if !exists {
		return nil, apperrors.NewFileMissingError("invoice", invoice.FilePath)
	}

	rc, err := s.store.Open(ctx, invoice.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, apperrors.NewFileMissingError("invoice", invoice.FilePath)
		}
		return nil, fmt.Errorf("failed to open invoice file: %w", err)
	}

	name := invoice.FileName
	if name == "" {
		name = storage.OriginalName(invoice.FilePath)
	}
	return &InvoiceDownload{Reader: rc, FileName: name, ContentType: pdfMediaType}, nil
}

// Delete removes the stored file when present and then the record. The record
// is deleted even when the file is already gone or cannot be removed.
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoices.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to get invoice: %w", err)
	}

	log := logger.WithContext(ctx).WithField("invoice_id", id.String())
	deleteFiles(ctx, s.store, []string{invoice.FilePath}, log)

	if err := s.invoices.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvoiceNotFound
		}
		return apperrors.NewOperationError("deletion", err)
	}

	log.Info("invoice deleted")
	return nil
}

// SweepOrphans deletes invoice files older than gracePeriod that no invoice row references
func (s *InvoiceService) SweepOrphans(ctx context.Context, gracePeriod time.Duration) (*SweepResult, error) {
	objects, err := s.store.List(ctx, storage.InvoicesNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored invoices: %w", err)
	}

	cutoff := s.now().Add(-gracePeriod)
	candidates := make([]string, 0, len(objects))
	for _, obj := range objects {
		if obj.ModTime.Before(cutoff) {
			candidates = append(candidates, obj.Path)
		}
	}

	referenced := make(map[string]struct{}, len(candidates))
	for start := 0; start < len(candidates); start += sweepBatchSize {
		end := min(start+sweepBatchSize, len(candidates))
		paths, err := s.invoices.GetReferencedPaths(candidates[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to check invoice references: %w", err)
		}
		for _, p := range paths {
			referenced[p] = struct{}{}
		}
	}

	orphans := make([]string, 0)
	for _, p := range candidates {
		if _, ok := referenced[p]; !ok {
			orphans = append(orphans, p)
		}
	}

	log := logger.WithContext(ctx).WithField("driver", s.store.Driver())
	failed := deleteFiles(ctx, s.store, orphans, log)

	failedSet := make(map[string]struct{}, len(failed))
	for _, p := range failed {
		failedSet[p] = struct{}{}
	}
	removed := make([]string, 0, len(orphans))
	for _, p := range orphans {
		if _, ok := failedSet[p]; !ok {
			removed = append(removed, p)
		}
	}

	log.Infof("orphan sweep: scanned %d, candidates %d, removed %d, failed %d",
		len(objects), len(candidates), len(removed), len(failed))

	return &SweepResult{
		Scanned:    len(objects),
		Candidates: len(candidates),
		Removed:    removed,
		Failed:     failed,
	}, nil
}
