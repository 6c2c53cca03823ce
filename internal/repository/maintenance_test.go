//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"vehicle-maintenance-backend/internal/database/models"
	"vehicle-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaintenanceRepositoryTestSuite tests the maintenance aggregate repositories
type MaintenanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MaintenanceRepository
	items         *MaintenanceItemRepository
	invoices      *InvoiceRepository
	checklists    *ChecklistRepository
	factories     *testutils.FactorySet
	user          *models.User
	vehicle       *models.Vehicle
}

// SetupSuite runs before all tests in the suite
func (suite *MaintenanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewMaintenanceRepository(db)
	suite.items = NewMaintenanceItemRepository(db)
	suite.invoices = NewInvoiceRepository(db)
	suite.checklists = NewChecklistRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MaintenanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MaintenanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	user, vehicle, err := suite.factories.SeedOwnedVehicle(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.user = user
	suite.vehicle = vehicle
}

// TearDownTest runs after each test
func (suite *MaintenanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MaintenanceRepositoryTestSuite) seedAggregate() *models.Maintenance {
	maintenance := suite.factories.Maintenance.Create(suite.vehicle.ID, suite.user.ID)
	suite.Require().NoError(suite.repo.Create(maintenance))

	price := decimal.RequireFromString("45.90")
	item := &models.MaintenanceItem{MaintenanceID: maintenance.ID, Name: "Óleo 5W30", Quantity: 4, UnitPrice: &price}
	suite.Require().NoError(suite.items.Create(item))

	suite.Require().NoError(suite.invoices.Create(&models.Invoice{
		MaintenanceID: maintenance.ID,
		InvoiceType:   models.InvoiceTypeGeneral,
		FilePath:      "invoices/1_nota.pdf",
		FileName:      "nota.pdf",
	}))
	suite.Require().NoError(suite.checklists.Create(&models.Checklist{
		MaintenanceID: maintenance.ID,
		ChecklistType: models.ChecklistTypeInitial,
		Items:         datatypes.JSON(`{"pneus":"ok"}`),
	}))
	return maintenance
}

func (suite *MaintenanceRepositoryTestSuite) TestGetWithDetails() {
	maintenance := suite.seedAggregate()

	found, err := suite.repo.GetWithDetails(maintenance.ID)
	suite.Require().NoError(err)

	suite.Require().NotNil(found.Vehicle)
	suite.Equal(suite.vehicle.Plate, found.Vehicle.Plate)
	suite.Require().Len(found.Items, 1)
	suite.True(found.Items[0].UnitPrice.Equal(decimal.RequireFromString("45.90")))
	suite.Len(found.Invoices, 1)
	suite.Require().Len(found.Checklists, 1)
	suite.JSONEq(`{"pneus":"ok"}`, string(found.Checklists[0].Items))
}

func (suite *MaintenanceRepositoryTestSuite) TestListFilters() {
	suite.seedAggregate()
	electrical := suite.factories.Maintenance.Create(suite.vehicle.ID, suite.user.ID)
	electrical.ServiceCategory = models.ServiceCategoryElectrical
	suite.Require().NoError(suite.repo.Create(electrical))

	suite.T().Run("no filter", func(t *testing.T) {
		list, total, err := suite.repo.List(MaintenanceFilter{}, 20, 0)
		suite.NoError(err)
		suite.Equal(int64(2), total)
		suite.Len(list, 2)
	})

	suite.T().Run("by category", func(t *testing.T) {
		list, total, err := suite.repo.List(MaintenanceFilter{ServiceCategory: models.ServiceCategoryElectrical}, 20, 0)
		suite.NoError(err)
		suite.Equal(int64(1), total)
		suite.Equal(electrical.ID, list[0].ID)
	})

	suite.T().Run("by unknown vehicle", func(t *testing.T) {
		other := uuid.New()
		_, total, err := suite.repo.List(MaintenanceFilter{VehicleID: &other}, 20, 0)
		suite.NoError(err)
		suite.Zero(total)
	})
}

func (suite *MaintenanceRepositoryTestSuite) TestUpdatePartial() {
	maintenance := suite.seedAggregate()

	err := suite.repo.Update(maintenance.ID, map[string]interface{}{"description": "Revisão completa"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(maintenance.ID)
	suite.NoError(err)
	suite.Equal("Revisão completa", found.Description)
	suite.Equal(maintenance.MaintenanceType, found.MaintenanceType)

	err = suite.repo.Update(uuid.New(), map[string]interface{}{"description": "x"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MaintenanceRepositoryTestSuite) TestDeleteCascades() {
	maintenance := suite.seedAggregate()

	suite.NoError(suite.repo.Delete(maintenance.ID))

	items, err := suite.items.GetByMaintenanceID(maintenance.ID)
	suite.NoError(err)
	suite.Empty(items)
	invoices, err := suite.invoices.GetByMaintenanceID(maintenance.ID)
	suite.NoError(err)
	suite.Empty(invoices)
	checklists, err := suite.checklists.GetByMaintenanceID(maintenance.ID)
	suite.NoError(err)
	suite.Empty(checklists)
}

func (suite *MaintenanceRepositoryTestSuite) TestTransactionRollback() {
	tx := NewTransactor(suite.baseTestSuite.DB)
	boom := errors.New("boom")
	var createdID uuid.UUID

	err := tx.Transaction(context.Background(), func(db *gorm.DB) error {
		maintenance := suite.factories.Maintenance.Create(suite.vehicle.ID, suite.user.ID)
		if err := suite.repo.WithTx(db).Create(maintenance); err != nil {
			return err
		}
		createdID = maintenance.ID
		return boom
	})

	suite.ErrorIs(err, boom)
	_, err = suite.repo.GetByID(createdID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MaintenanceRepositoryTestSuite) TestCreateWithUnknownVehicle() {
	maintenance := suite.factories.Maintenance.Create(uuid.New(), suite.user.ID)

	err := suite.repo.Create(maintenance)

	suite.True(IsForeignKeyViolation(err))
}

func (suite *MaintenanceRepositoryTestSuite) TestGetReferencedPaths() {
	suite.seedAggregate()

	paths, err := suite.invoices.GetReferencedPaths([]string{"invoices/1_nota.pdf", "invoices/2_orphan.pdf"})
	suite.NoError(err)
	suite.Equal([]string{"invoices/1_nota.pdf"}, paths)
}

// TestMaintenanceRepositoryTestSuite runs the test suite
func TestMaintenanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceRepositoryTestSuite))
}
