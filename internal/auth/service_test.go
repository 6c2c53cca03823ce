package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/notification"
	"vehicle-maintenance-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (n *recordingNotifier) Dispatch(_ context.Context, msg notification.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockVehicleRepo  *mocks.MockVehicleRepositoryInterface
	mockDeviceTokens *mocks.MockDeviceTokenRepositoryInterface
	notifier         *recordingNotifier
	authService      *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockVehicleRepo = mocks.NewMockVehicleRepositoryInterface(suite.ctrl)
	suite.mockDeviceTokens = mocks.NewMockDeviceTokenRepositoryInterface(suite.ctrl)
	suite.notifier = &recordingNotifier{}

	var err error
	suite.authService, err = NewAuthService(testConfig(), suite.mockUserRepo, suite.mockVehicleRepo,
		suite.mockDeviceTokens, suite.notifier, service.NewValidator())
	suite.Require().NoError(err)
	suite.authService.bcryptCost = bcrypt.MinCost
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) hashed(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return string(hash)
}

func (suite *AuthServiceTestSuite) TestRegister() {
	req := &RegisterRequest{
		Name:                 "Maria Souza",
		Email:                " Maria@Example.com ",
		Password:             "segredo123",
		PasswordConfirmation: "segredo123",
		CEP:                  "01310-100",
		State:                " sp ",
	}

	suite.mockUserRepo.EXPECT().GetByEmail("maria@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		user.ID = uuid.New()
		return nil
	})
	suite.mockDeviceTokens.EXPECT().GetByUserID(gomock.Any()).Return([]models.DeviceToken{{Token: "fcm-1"}}, nil)

	resp, err := suite.authService.Register(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)
	suite.Equal("maria@example.com", resp.User.Email)
	suite.Equal(models.UserTypeUser, resp.User.UserType)
	suite.Equal("Brasil", resp.User.Country)
	suite.Equal("01310100", resp.User.CEP)
	suite.Equal("SP", resp.User.State)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(resp.User.Password), []byte("segredo123")))

	claims, err := suite.authService.ValidateJWT(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(resp.User.ID, claims.UserID)

	suite.Require().Len(suite.notifier.messages, 1)
	suite.Equal(notification.KindWelcome, suite.notifier.messages[0].Kind)
	suite.Equal([]string{"fcm-1"}, suite.notifier.messages[0].Tokens)
	suite.Contains(suite.notifier.messages[0].Title, "Bem-vindo ao")
}

func (suite *AuthServiceTestSuite) TestRegister_EmailTaken() {
	suite.mockUserRepo.EXPECT().GetByEmail("maria@example.com").Return(&models.User{}, nil)

	_, err := suite.authService.Register(context.Background(), &RegisterRequest{
		Name: "Maria", Email: "maria@example.com", Password: "segredo123", PasswordConfirmation: "segredo123",
	})

	group, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal([]string{"email"}, group.FieldNames())
}

func (suite *AuthServiceTestSuite) TestRegister_ConcurrentDuplicate() {
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.authService.Register(context.Background(), &RegisterRequest{
		Name: "Maria", Email: "maria@example.com", Password: "segredo123", PasswordConfirmation: "segredo123",
	})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestRegister_Validation() {
	_, err := suite.authService.Register(context.Background(), &RegisterRequest{
		Name:                 "Maria",
		Email:                "not-an-email",
		Password:             "curta",
		PasswordConfirmation: "diferente",
		UserType:             "admin",
	})

	group, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.ElementsMatch([]string{"email", "password", "password_confirmation", "user_type"}, group.FieldNames())
	suite.Empty(suite.notifier.messages)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "João", Email: "joao@example.com", Password: suite.hashed("segredo123")}

	suite.Run("success", func() {
		suite.mockUserRepo.EXPECT().GetByEmail("joao@example.com").Return(user, nil)
		suite.mockDeviceTokens.EXPECT().GetByUserID(user.ID).Return(nil, nil)

		resp, err := suite.authService.Login(context.Background(), &LoginRequest{Email: " JOAO@example.com ", Password: "segredo123"})

		suite.Require().NoError(err)
		suite.Equal(user.ID, resp.User.ID)
		suite.NotEmpty(resp.Token)
		suite.Empty(suite.notifier.messages)
	})

	suite.Run("wrong password", func() {
		suite.mockUserRepo.EXPECT().GetByEmail("joao@example.com").Return(user, nil)

		_, err := suite.authService.Login(context.Background(), &LoginRequest{Email: "joao@example.com", Password: "errada123"})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("unknown email", func() {
		suite.mockUserRepo.EXPECT().GetByEmail("ninguem@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.authService.Login(context.Background(), &LoginRequest{Email: "ninguem@example.com", Password: "segredo123"})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("notification failure does not block login", func() {
		suite.mockUserRepo.EXPECT().GetByEmail("joao@example.com").Return(user, nil)
		suite.mockDeviceTokens.EXPECT().GetByUserID(user.ID).Return(nil, errors.New("db down"))

		_, err := suite.authService.Login(context.Background(), &LoginRequest{Email: "joao@example.com", Password: "segredo123"})

		suite.NoError(err)
	})
}

func (suite *AuthServiceTestSuite) TestMe() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{BaseModel: models.BaseModel{ID: userID}, Name: "Maria"}, nil)
	suite.mockVehicleRepo.EXPECT().GetByOwner(userID, -1, -1).Return([]models.Vehicle{{Plate: "ABC1D23"}}, int64(1), nil)

	me, err := suite.authService.Me(userID)

	suite.Require().NoError(err)
	suite.Equal("Maria", me.Name)
	suite.Require().Len(me.CurrentVehicles, 1)
	suite.Equal("ABC1D23", me.CurrentVehicles[0].Plate)
}

func (suite *AuthServiceTestSuite) TestMe_UserGone() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.authService.Me(userID)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
