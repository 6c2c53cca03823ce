//go:build integration
// +build integration

package repository

import (
	"testing"

	"vehicle-maintenance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// WorkshopRepositoryTestSuite tests the WorkshopRepository
type WorkshopRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkshopRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkshopRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkshopRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkshopRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkshopRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkshopRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WorkshopRepositoryTestSuite) TestSearch() {
	paulista := suite.factories.Workshop.WithName("Auto Center Paulista")
	suite.Require().NoError(suite.repo.Create(paulista))

	campinas := suite.factories.Workshop.WithName("Oficina do Zé")
	campinas.City = "Campinas"
	campinas.Neighborhood = "Cambuí"
	suite.Require().NoError(suite.repo.Create(campinas))

	cases := []struct {
		name     string
		query    string
		expected int64
	}{
		{"empty query returns all", "", 2},
		{"name match is case-insensitive", "paulista", 1},
		{"city match", "CAMPINAS", 1},
		{"neighborhood match", "cambuí", 1},
		{"no match", "Curitiba", 0},
		{"percent is literal", "%", 0},
		{"underscore is literal", "_", 0},
	}

	for _, tc := range cases {
		suite.T().Run(tc.name, func(t *testing.T) {
			_, total, err := suite.repo.Search(tc.query, 20, 0)
			suite.NoError(err)
			suite.Equal(tc.expected, total)
		})
	}
}

func (suite *WorkshopRepositoryTestSuite) TestCountMaintenances() {
	user, vehicle, err := suite.factories.SeedOwnedVehicle(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	workshop := suite.factories.Workshop.Create()
	suite.Require().NoError(suite.repo.Create(workshop))

	count, err := suite.repo.CountMaintenances(workshop.ID)
	suite.NoError(err)
	suite.Zero(count)

	maintenance := suite.factories.Maintenance.Create(vehicle.ID, user.ID)
	maintenance.WorkshopID = &workshop.ID
	suite.Require().NoError(NewMaintenanceRepository(suite.baseTestSuite.DB).Create(maintenance))

	count, err = suite.repo.CountMaintenances(workshop.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestWorkshopRepositoryTestSuite runs the test suite
func TestWorkshopRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkshopRepositoryTestSuite))
}
