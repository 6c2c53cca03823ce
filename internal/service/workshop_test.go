package service_test

import (
	"testing"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/mocks"
	"vehicle-maintenance-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type WorkshopServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockWorkshopRepo *mocks.MockWorkshopRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	workshopService  *service.WorkshopService
}

func (suite *WorkshopServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkshopRepo = mocks.NewMockWorkshopRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.workshopService = service.NewWorkshopService(suite.mockWorkshopRepo, suite.mockUserRepo, service.NewValidator())
}

func (suite *WorkshopServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkshopServiceTestSuite) TestCreate_WorkshopAccountBecomesOwner() {
	actor := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, UserType: models.UserTypeWorkshop}
	req := &service.CreateWorkshopRequest{
		Name:  "Auto Center Silva",
		Phone: "11912345678",
		CEP:   "01310-100",
		State: "sp",
	}

	suite.mockUserRepo.EXPECT().GetByID(actor.ID).Return(actor, nil)
	suite.mockWorkshopRepo.EXPECT().Create(gomock.Any()).Return(nil)

	workshop, err := suite.workshopService.Create(actor.ID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(workshop.UserID)
	suite.Equal(actor.ID, *workshop.UserID)
	suite.Equal("01310100", workshop.CEP)
	suite.Equal("SP", workshop.State)
	suite.Equal("11912345678", workshop.Whatsapp)
}

func (suite *WorkshopServiceTestSuite) TestCreate_RegularUserLeavesUnowned() {
	actor := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, UserType: models.UserTypeUser}

	suite.mockUserRepo.EXPECT().GetByID(actor.ID).Return(actor, nil)
	suite.mockWorkshopRepo.EXPECT().Create(gomock.Any()).Return(nil)

	workshop, err := suite.workshopService.Create(actor.ID, &service.CreateWorkshopRequest{
		Name: "Mecânica do Zé", Phone: "1133334444", Whatsapp: "11999998888",
	})

	suite.Require().NoError(err)
	suite.Nil(workshop.UserID)
	suite.Equal("11999998888", workshop.Whatsapp)
}

func (suite *WorkshopServiceTestSuite) TestCreate_ValidationError() {
	_, err := suite.workshopService.Create(uuid.New(), &service.CreateWorkshopRequest{Name: "Sem telefone", Email: "invalido"})

	group, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.ElementsMatch([]string{"phone", "email"}, group.FieldNames())
}

func (suite *WorkshopServiceTestSuite) TestSearch() {
	suite.mockWorkshopRepo.EXPECT().Search("centro", 10, 0).Return([]models.Workshop{{Name: "Oficina Centro"}}, int64(1), nil)

	resp, err := suite.workshopService.Search(" centro ", 1, 10)

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Equal("Oficina Centro", resp.Workshops[0].Name)
}

func (suite *WorkshopServiceTestSuite) TestUpdate_OwnedByAnotherUser() {
	id := uuid.New()
	other := uuid.New()
	suite.mockWorkshopRepo.EXPECT().GetByID(id).Return(&models.Workshop{UserID: &other}, nil)

	name := "Novo nome"
	_, err := suite.workshopService.Update(uuid.New(), id, &service.UpdateWorkshopRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrNotWorkshopOwner)
}

func (suite *WorkshopServiceTestSuite) TestUpdate() {
	id := uuid.New()
	owner := uuid.New()
	suite.mockWorkshopRepo.EXPECT().GetByID(id).Return(&models.Workshop{Name: "Antigo", Phone: "1100000000", UserID: &owner}, nil)
	suite.mockWorkshopRepo.EXPECT().Update(gomock.Any()).Return(nil)

	name := "Novo nome"
	cep := "04567-000"
	workshop, err := suite.workshopService.Update(owner, id, &service.UpdateWorkshopRequest{Name: &name, CEP: &cep})

	suite.Require().NoError(err)
	suite.Equal("Novo nome", workshop.Name)
	suite.Equal("04567000", workshop.CEP)
	suite.Equal("1100000000", workshop.Phone)
}

func (suite *WorkshopServiceTestSuite) TestUpdate_BlankClearsContactFields() {
	id := uuid.New()
	owner := uuid.New()
	suite.mockWorkshopRepo.EXPECT().GetByID(id).Return(&models.Workshop{
		Name:    "Auto Center",
		Email:   "contato@autocenter.com.br",
		Website: "https://autocenter.com.br",
		State:   "SP",
		UserID:  &owner,
	}, nil)
	suite.mockWorkshopRepo.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(w *models.Workshop) error {
			suite.Empty(w.Email)
			suite.Empty(w.Website)
			suite.Empty(w.State)
			return nil
		})

	blank := ""
	workshop, err := suite.workshopService.Update(owner, id, &service.UpdateWorkshopRequest{Email: &blank, Website: &blank, State: &blank})

	suite.Require().NoError(err)
	suite.Equal("Auto Center", workshop.Name)
	suite.Empty(workshop.Email)
}

func (suite *WorkshopServiceTestSuite) TestDelete() {
	id := uuid.New()

	suite.Run("in use", func() {
		suite.mockWorkshopRepo.EXPECT().GetByID(id).Return(&models.Workshop{}, nil)
		suite.mockWorkshopRepo.EXPECT().CountMaintenances(id).Return(int64(3), nil)

		err := suite.workshopService.Delete(uuid.New(), id)

		suite.ErrorIs(err, apperrors.ErrWorkshopInUse)
		suite.True(apperrors.IsConflict(err))
	})

	suite.Run("unused", func() {
		suite.mockWorkshopRepo.EXPECT().GetByID(id).Return(&models.Workshop{}, nil)
		suite.mockWorkshopRepo.EXPECT().CountMaintenances(id).Return(int64(0), nil)
		suite.mockWorkshopRepo.EXPECT().Delete(id).Return(nil)

		suite.NoError(suite.workshopService.Delete(uuid.New(), id))
	})

	suite.Run("not found", func() {
		missing := uuid.New()
		suite.mockWorkshopRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

		suite.ErrorIs(suite.workshopService.Delete(uuid.New(), missing), apperrors.ErrWorkshopNotFound)
	})
}

func TestWorkshopServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkshopServiceTestSuite))
}
