package handlers_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"vehicle-maintenance-backend/internal/api/handlers"
	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/service"
	"vehicle-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InvoiceHandlerTestSuite defines the test suite for InvoiceHandler
type InvoiceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockInvoice *mocks.MockInvoiceServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvoice = mocks.NewMockInvoiceServiceInterface(suite.ctrl)
	handler := handlers.NewInvoiceHandler(suite.mockInvoice)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/invoices/upload", handler.UploadInvoice)
	suite.http.Router.GET("/invoices/:id/download", handler.DownloadInvoice)
	suite.http.Router.DELETE("/invoices/:id", handler.DeleteInvoice)
}

func (suite *InvoiceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvoiceHandlerTestSuite) TestUploadInvoice() {
	maintenanceID := uuid.New()
	fields := map[string]string{
		"maintenance_id": maintenanceID.String(),
		"invoice_number": "NF-123",
		"total_amount":   "350.00",
	}
	files := []testutils.MultipartFile{
		{Field: "file", Filename: "nota.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")},
	}

	suite.mockInvoice.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.UploadInvoiceRequest, file service.InvoiceFile) (*models.Invoice, error) {
			suite.Equal(maintenanceID.String(), req.MaintenanceID)
			suite.Equal("NF-123", req.InvoiceNumber)
			suite.Equal("350.00", req.TotalAmount)
			suite.Empty(req.MaintenanceItemID)
			suite.Equal("nota.pdf", file.Filename)
			suite.Equal("application/pdf", file.ContentType)
			return &models.Invoice{MaintenanceID: maintenanceID, FileName: file.Filename, InvoiceType: models.InvoiceTypeGeneral}, nil
		})

	w := suite.http.MakeMultipartRequest(http.MethodPost, "/invoices/upload", fields, files)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"file_name":"nota.pdf"`)
}

func (suite *InvoiceHandlerTestSuite) TestUploadInvoice_MissingFile() {
	w := suite.http.MakeMultipartRequest(http.MethodPost, "/invoices/upload", map[string]string{"maintenance_id": uuid.NewString()}, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), `"file"`)
}

func (suite *InvoiceHandlerTestSuite) TestUploadInvoice_MaintenanceMissing() {
	files := []testutils.MultipartFile{{Field: "file", Filename: "nota.pdf", Content: []byte("%PDF-1.4")}}
	suite.mockInvoice.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrMaintenanceNotFound)

	w := suite.http.MakeMultipartRequest(http.MethodPost, "/invoices/upload", map[string]string{"maintenance_id": uuid.NewString()}, files)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "maintenance not found")
}

func (suite *InvoiceHandlerTestSuite) TestDownloadInvoice() {
	id := uuid.New()
	suite.mockInvoice.EXPECT().Download(gomock.Any(), id).Return(&service.InvoiceDownload{
		Reader:      io.NopCloser(strings.NewReader("%PDF-1.4 body")),
		FileName:    "nota fiscal março.pdf",
		ContentType: "application/pdf",
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/invoices/"+id.String()+"/download", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment")
	suite.Contains(w.Header().Get("Content-Disposition"), "filename*=utf-8''nota%20fiscal%20mar%C3%A7o.pdf")
	suite.Equal("%PDF-1.4 body", w.Body.String())
}

func (suite *InvoiceHandlerTestSuite) TestDownloadInvoice_FileMissing() {
	id := uuid.New()
	suite.mockInvoice.EXPECT().Download(gomock.Any(), id).Return(nil, apperrors.ErrInvoiceFileMissing)

	w := suite.http.MakeRequest(http.MethodGet, "/invoices/"+id.String()+"/download", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "invoice file not found")
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice() {
	id := uuid.New()
	suite.mockInvoice.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/invoices/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
