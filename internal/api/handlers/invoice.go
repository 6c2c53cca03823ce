package handlers

import (
	"mime"
	"net/http"

	"vehicle-maintenance-backend/internal/api/response"
	"vehicle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles standalone invoice uploads and downloads
type InvoiceHandler struct {
	invoiceService service.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService service.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// UploadInvoice attaches a PDF invoice to an existing maintenance
// @Summary Upload an invoice
// @Description Stores a PDF (max 10MB) and records it against a maintenance and optionally one of its items
// @Tags invoices
// @Accept mpfd
// @Produce json
// @Param file formData file true "Invoice PDF"
// @Param maintenance_id formData string true "Maintenance ID (UUID)"
// @Param maintenance_item_id formData string false "Maintenance item ID (UUID)"
// @Param invoice_number formData string false "Invoice number"
// @Param invoice_date formData string false "Invoice date (YYYY-MM-DD)"
// @Param total_amount formData string false "Total amount"
// @Success 201 {object} models.Invoice
// @Failure 404 {object} response.ErrorResponse "Maintenance or item not found"
// @Failure 422 {object} response.ValidationResponse "Validation failed"
// @Failure 503 {object} response.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /invoices/upload [post]
func (h *InvoiceHandler) UploadInvoice(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.InvalidField(c, "file", "is required")
		return
	}

	var req service.UploadInvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.Upload(c, &req, service.InvoiceFileFromHeader(fh))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// DownloadInvoice streams the stored invoice file
// @Summary Download an invoice
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorResponse "Invalid invoice ID"
// @Failure 404 {object} response.ErrorResponse "Invoice or file not found"
// @Security BearerAuth
// @Router /invoices/{id}/download [get]
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	id, ok := pathUUID(c, "id", "invoice")
	if !ok {
		return
	}

	download, err := h.invoiceService.Download(c, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.Reader.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": download.FileName})
	c.DataFromReader(http.StatusOK, -1, download.ContentType, download.Reader, map[string]string{
		"Content-Disposition": disposition,
	})
}

// DeleteInvoice removes the invoice record and its file
// @Summary Delete an invoice
// @Tags invoices
// @Param id path string true "Invoice ID (UUID)"
// @Success 204 "Invoice deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid invoice ID"
// @Failure 404 {object} response.ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := pathUUID(c, "id", "invoice")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
