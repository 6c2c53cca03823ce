//go:build integration
// +build integration

package repository

import (
	"testing"

	"vehicle-maintenance-backend/internal/database/models"
	"vehicle-maintenance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DeviceTokenRepositoryTestSuite tests the DeviceTokenRepository
type DeviceTokenRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DeviceTokenRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *DeviceTokenRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDeviceTokenRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *DeviceTokenRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DeviceTokenRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DeviceTokenRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DeviceTokenRepositoryTestSuite) TestUpsertIsIdempotent() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(user))

	suite.NoError(suite.repo.Upsert(&models.DeviceToken{UserID: user.ID, Token: "fcm-token-1", DeviceType: models.DeviceTypeAndroid}))
	suite.NoError(suite.repo.Upsert(&models.DeviceToken{UserID: user.ID, Token: "fcm-token-1", DeviceType: models.DeviceTypeIOS}))

	tokens, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Require().Len(tokens, 1)
	suite.Equal(models.DeviceTypeIOS, tokens[0].DeviceType)
}

func (suite *DeviceTokenRepositoryTestSuite) TestDeleteByToken() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(user))
	suite.Require().NoError(suite.repo.Upsert(&models.DeviceToken{UserID: user.ID, Token: "fcm-token-2"}))

	deleted, err := suite.repo.DeleteByToken(user.ID, "fcm-token-2")
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	deleted, err = suite.repo.DeleteByToken(user.ID, "fcm-token-2")
	suite.NoError(err)
	suite.Zero(deleted)
}

// TestDeviceTokenRepositoryTestSuite runs the test suite
func TestDeviceTokenRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DeviceTokenRepositoryTestSuite))
}
