package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"sync"
	"time"

	"vehicle-maintenance-backend/internal/logger"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

const pdfMediaType = "application/pdf"

// InvoiceFile is one uploaded invoice payload, independent of the transport
type InvoiceFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// InvoiceFileFromHeader adapts a multipart file part
func InvoiceFileFromHeader(fh *multipart.FileHeader) InvoiceFile {
	return InvoiceFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// NewInvoiceFile wraps in-memory content
func NewInvoiceFile(filename, contentType string, content []byte) InvoiceFile {
	return InvoiceFile{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

// SkippedInvoice reports an uploaded file that was not stored
type SkippedInvoice struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

var (
	errInvoiceNotPDF     = errors.New("must be a file of type: pdf")
	errInvoiceUnreadable = errors.New("failed to upload")
)

// validateInvoiceFile checks the declared type, the size ceiling and the content signature
func validateInvoiceFile(f InvoiceFile, maxBytes int64) error {
	if f.Open == nil {
		return errInvoiceUnreadable
	}
	if maxBytes > 0 && f.Size > maxBytes {
		return fmt.Errorf("may not be greater than %d kilobytes", maxBytes/1024)
	}

	declared, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil || (declared != pdfMediaType && declared != "application/x-pdf") {
		return errInvoiceNotPDF
	}

	rc, err := f.Open()
	if err != nil {
		return errInvoiceUnreadable
	}
	defer rc.Close()

	detected, err := mimetype.DetectReader(rc)
	if err != nil {
		return errInvoiceUnreadable
	}
	if !detected.Is(pdfMediaType) {
		return errInvoiceNotPDF
	}
	return nil
}

// storeInvoiceFile writes f under the invoices namespace and returns the stored path
func storeInvoiceFile(ctx context.Context, store storage.FileStore, f InvoiceFile, now time.Time) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", f.Filename, err)
	}
	defer rc.Close()

	return store.Put(ctx, storage.InvoicesNamespace, storage.UniqueName(f.Filename, now), rc, pdfMediaType)
}

const fileDeleteConcurrency = 4

// deleteFiles removes stored files concurrently and returns the paths that
// could not be deleted. Failures are logged; leftovers are picked up by the
// orphan sweep.
func deleteFiles(ctx context.Context, store storage.FileStore, paths []string, log *logger.Logger) []string {
	if len(paths) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		failed []string
	)
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(fileDeleteConcurrency)
	for _, p := range paths {
		g.Go(func() error {
			if err := store.Delete(gctx, p); err != nil {
				log.WithField("path", p).Warnf("failed to delete stored file: %v", err)
				mu.Lock()
				failed = append(failed, p)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failed
}
