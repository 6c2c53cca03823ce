package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/service"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type VehicleServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTx          *mocks.MockTransactor
	mockVehicleRepo *mocks.MockVehicleRepositoryInterface
	mockMaintRepo   *mocks.MockMaintenanceRepositoryInterface
	mockInvoiceRepo *mocks.MockInvoiceRepositoryInterface
	store           *storage.AferoStore
	vehicleService  *service.VehicleService
	actorID         uuid.UUID
}

func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTx = mocks.NewMockTransactor(suite.ctrl)
	suite.mockVehicleRepo = mocks.NewMockVehicleRepositoryInterface(suite.ctrl)
	suite.mockMaintRepo = mocks.NewMockMaintenanceRepositoryInterface(suite.ctrl)
	suite.mockInvoiceRepo = mocks.NewMockInvoiceRepositoryInterface(suite.ctrl)
	suite.store = storage.NewMemoryStore()
	suite.actorID = uuid.New()

	suite.vehicleService = service.NewVehicleService(
		suite.mockTx,
		suite.mockVehicleRepo,
		suite.mockMaintRepo,
		suite.mockInvoiceRepo,
		suite.store,
		service.NewValidator(),
	)
}

func (suite *VehicleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VehicleServiceTestSuite) expectTransaction() {
	suite.mockTx.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
	suite.mockVehicleRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockVehicleRepo)
}

func (suite *VehicleServiceTestSuite) expectOwner(vehicleID uuid.UUID) {
	suite.mockVehicleRepo.EXPECT().GetByID(vehicleID).Return(&models.Vehicle{BaseModel: models.BaseModel{ID: vehicleID}, Plate: "ABC1234"}, nil)
	suite.mockVehicleRepo.EXPECT().GetOwnership(suite.actorID, vehicleID).Return(&models.UserVehicle{
		UserID: suite.actorID, VehicleID: vehicleID, IsCurrentOwner: true,
	}, nil)
}

func (suite *VehicleServiceTestSuite) TestCreate() {
	req := &service.CreateVehicleRequest{
		Plate:        " abc-1234 ",
		Renavam:      "12345678901",
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2020,
		PurchaseDate: "2021-03-10",
	}

	suite.expectTransaction()
	suite.mockVehicleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(v *models.Vehicle) error {
		v.ID = uuid.New()
		return nil
	})
	suite.mockVehicleRepo.EXPECT().CreateOwnership(gomock.Any()).DoAndReturn(func(link *models.UserVehicle) error {
		suite.Equal(suite.actorID, link.UserID)
		suite.True(link.IsCurrentOwner)
		suite.Require().NotNil(link.PurchaseDate)
		suite.Equal(2021, link.PurchaseDate.Year())
		return nil
	})

	vehicle, err := suite.vehicleService.Create(context.Background(), suite.actorID, req)

	suite.Require().NoError(err)
	suite.Equal("ABC1234", vehicle.Plate)
	suite.Equal("Corolla", vehicle.Model)
}

func (suite *VehicleServiceTestSuite) TestCreate_Duplicate() {
	req := &service.CreateVehicleRequest{Plate: "ABC1234", Renavam: "1", Brand: "Fiat", Model: "Uno", Year: 2010}

	suite.expectTransaction()
	suite.mockVehicleRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	vehicle, err := suite.vehicleService.Create(context.Background(), suite.actorID, req)

	suite.Nil(vehicle)
	suite.ErrorIs(err, apperrors.ErrVehicleExists)
}

func (suite *VehicleServiceTestSuite) TestCreate_ValidationErrors() {
	testCases := []struct {
		name  string
		req   *service.CreateVehicleRequest
		field string
	}{
		{
			name:  "missing plate",
			req:   &service.CreateVehicleRequest{Renavam: "1", Brand: "Fiat", Model: "Uno", Year: 2010},
			field: "plate",
		},
		{
			name:  "year too old",
			req:   &service.CreateVehicleRequest{Plate: "ABC1234", Renavam: "1", Brand: "Fiat", Model: "Uno", Year: 1899},
			field: "year",
		},
		{
			name:  "year in the future",
			req:   &service.CreateVehicleRequest{Plate: "ABC1234", Renavam: "1", Brand: "Fiat", Model: "Uno", Year: time.Now().Year() + 2},
			field: "year",
		},
		{
			name:  "bad purchase date",
			req:   &service.CreateVehicleRequest{Plate: "ABC1234", Renavam: "1", Brand: "Fiat", Model: "Uno", Year: 2010, PurchaseDate: "10/03/2021"},
			field: "purchase_date",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.vehicleService.Create(context.Background(), suite.actorID, tc.req)

			group, ok := apperrors.AsValidationErrors(err)
			suite.Require().True(ok)
			suite.Contains(group.FieldNames(), tc.field)
		})
	}
}

func (suite *VehicleServiceTestSuite) TestSearch() {
	vehicle := &models.Vehicle{Plate: "ABC1234"}

	suite.Run("found", func() {
		suite.mockVehicleRepo.EXPECT().GetByIdentifier("abc1234").Return(vehicle, nil)
		result, err := suite.vehicleService.Search("abc1234")
		suite.NoError(err)
		suite.Equal(vehicle, result)
	})

	suite.Run("not found", func() {
		suite.mockVehicleRepo.EXPECT().GetByIdentifier("ZZZ9999").Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.vehicleService.Search("ZZZ9999")
		suite.ErrorIs(err, apperrors.ErrVehicleNotFound)
	})

	suite.Run("empty identifier", func() {
		_, err := suite.vehicleService.Search("  ")
		suite.True(apperrors.IsValidation(err))
	})
}

func (suite *VehicleServiceTestSuite) TestList() {
	suite.mockVehicleRepo.EXPECT().GetAll(20, 20).Return([]models.Vehicle{{Plate: "ABC1234"}}, int64(21), nil)

	resp, err := suite.vehicleService.List(2, 20)

	suite.Require().NoError(err)
	suite.Equal(int64(21), resp.Total)
	suite.Len(resp.Vehicles, 1)

	_, err = suite.vehicleService.List(0, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

func (suite *VehicleServiceTestSuite) TestUpdate_NotOwner() {
	id := uuid.New()
	suite.mockVehicleRepo.EXPECT().GetByID(id).Return(&models.Vehicle{}, nil)
	suite.mockVehicleRepo.EXPECT().GetOwnership(suite.actorID, id).Return(nil, gorm.ErrRecordNotFound)

	color := "Prata"
	_, err := suite.vehicleService.Update(suite.actorID, id, &service.UpdateVehicleRequest{Color: &color})

	suite.ErrorIs(err, apperrors.ErrNotVehicleOwner)
}

func (suite *VehicleServiceTestSuite) TestUpdate_FormerOwner() {
	id := uuid.New()
	suite.mockVehicleRepo.EXPECT().GetByID(id).Return(&models.Vehicle{}, nil)
	suite.mockVehicleRepo.EXPECT().GetOwnership(suite.actorID, id).Return(&models.UserVehicle{IsCurrentOwner: false}, nil)

	color := "Prata"
	_, err := suite.vehicleService.Update(suite.actorID, id, &service.UpdateVehicleRequest{Color: &color})

	suite.True(apperrors.IsAuthorization(err))
}

func (suite *VehicleServiceTestSuite) TestUpdate() {
	id := uuid.New()
	suite.expectOwner(id)
	suite.mockVehicleRepo.EXPECT().Update(gomock.Any()).Return(nil)

	color := "Prata"
	plate := "xyz-9876"
	vehicle, err := suite.vehicleService.Update(suite.actorID, id, &service.UpdateVehicleRequest{Color: &color, Plate: &plate})

	suite.Require().NoError(err)
	suite.Equal("Prata", vehicle.Color)
	suite.Equal("XYZ9876", vehicle.Plate)
}

func (suite *VehicleServiceTestSuite) TestDelete_RemovesInvoiceFiles() {
	ctx := context.Background()
	id := uuid.New()
	path, err := suite.store.Put(ctx, storage.InvoicesNamespace, "1700000000_nota.pdf", bytes.NewReader(samplePDF), "application/pdf")
	suite.Require().NoError(err)

	suite.expectOwner(id)
	suite.mockInvoiceRepo.EXPECT().GetPathsByVehicleID(id).Return([]string{path}, nil)
	suite.mockVehicleRepo.EXPECT().Delete(id).Return(nil)

	suite.Require().NoError(suite.vehicleService.Delete(ctx, suite.actorID, id))

	exists, err := suite.store.Exists(ctx, path)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *VehicleServiceTestSuite) TestDelete_KeepsFilesWhenRowDeleteFails() {
	ctx := context.Background()
	id := uuid.New()
	path, err := suite.store.Put(ctx, storage.InvoicesNamespace, "1700000000_nota.pdf", bytes.NewReader(samplePDF), "application/pdf")
	suite.Require().NoError(err)

	suite.expectOwner(id)
	suite.mockInvoiceRepo.EXPECT().GetPathsByVehicleID(id).Return([]string{path}, nil)
	suite.mockVehicleRepo.EXPECT().Delete(id).Return(errors.New("connection reset"))

	err = suite.vehicleService.Delete(ctx, suite.actorID, id)

	suite.ErrorIs(err, apperrors.ErrDeletionFailed)
	exists, _ := suite.store.Exists(ctx, path)
	suite.True(exists)
}

func (suite *VehicleServiceTestSuite) TestLink() {
	id := uuid.New()

	suite.Run("creates link", func() {
		suite.mockVehicleRepo.EXPECT().GetByID(id).Return(&models.Vehicle{}, nil)
		suite.mockVehicleRepo.EXPECT().GetOwnership(suite.actorID, id).Return(nil, gorm.ErrRecordNotFound)
		suite.mockVehicleRepo.EXPECT().CreateOwnership(gomock.Any()).Return(nil)

		notCurrent := service.FlexBool(false)
		link, err := suite.vehicleService.Link(suite.actorID, id, &service.LinkVehicleRequest{IsCurrentOwner: &notCurrent})

		suite.Require().NoError(err)
		suite.False(link.IsCurrentOwner)
		suite.Equal(id, link.VehicleID)
	})

	suite.Run("already linked", func() {
		suite.mockVehicleRepo.EXPECT().GetByID(id).Return(&models.Vehicle{}, nil)
		suite.mockVehicleRepo.EXPECT().GetOwnership(suite.actorID, id).Return(&models.UserVehicle{}, nil)

		_, err := suite.vehicleService.Link(suite.actorID, id, &service.LinkVehicleRequest{})

		suite.ErrorIs(err, apperrors.ErrVehicleLinkExists)
	})
}

func (suite *VehicleServiceTestSuite) TestExport() {
	id := uuid.New()
	suite.mockVehicleRepo.EXPECT().GetByID(id).Return(&models.Vehicle{Plate: "ABC1234"}, nil)
	suite.mockMaintRepo.EXPECT().GetByVehicleID(id).Return([]models.Maintenance{{MaintenanceType: "Revisão"}}, nil)

	export, err := suite.vehicleService.Export(id)

	suite.Require().NoError(err)
	suite.Equal("ABC1234", export.Vehicle.Plate)
	suite.Len(export.Maintenances, 1)
	suite.False(export.GeneratedAt.IsZero())
}

func (suite *VehicleServiceTestSuite) TestGetMaintenances_UnknownVehicle() {
	id := uuid.New()
	suite.mockVehicleRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.vehicleService.GetMaintenances(id)

	suite.ErrorIs(err, apperrors.ErrVehicleNotFound)
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
