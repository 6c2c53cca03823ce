package testutils

import (
	"fmt"
	"strings"
	"time"

	"vehicle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Maria Silva",
		Email:     fmt.Sprintf("maria.%s@example.com", id.String()[:8]),
		Password:  "$2a$10$abcdefghijklmnopqrstuuJ3y8pXz5HkFz8Yq3xk0Sxw1Q0E0m2",
		UserType:  models.UserTypeUser,
		Phone:     "11987654321",
		City:      "São Paulo",
		State:     "SP",
		Country:   "Brasil",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithType sets a custom user type
func (f *UserFactory) WithType(userType models.UserType) *models.User {
	user := f.Create()
	user.UserType = userType
	return user
}

// VehicleFactory provides methods to create test Vehicle data
type VehicleFactory struct{}

// NewVehicleFactory creates a new VehicleFactory
func NewVehicleFactory() *VehicleFactory {
	return &VehicleFactory{}
}

// Create creates a test Vehicle with unique plate and RENAVAM
func (f *VehicleFactory) Create() *models.Vehicle {
	id := uuid.New()
	suffix := id.String()
	return &models.Vehicle{
		BaseModel: models.BaseModel{ID: id},
		Plate:     "ABC" + strings.ToUpper(suffix[:4]),
		Renavam:   fmt.Sprintf("%011d", id.ID()),
		Brand:     "Volkswagen",
		Model:     "Gol",
		Year:      2019,
		Color:     "Prata",
	}
}

// WithPlate sets a custom plate
func (f *VehicleFactory) WithPlate(plate string) *models.Vehicle {
	vehicle := f.Create()
	vehicle.Plate = plate
	return vehicle
}

// WorkshopFactory provides methods to create test Workshop data
type WorkshopFactory struct{}

// NewWorkshopFactory creates a new WorkshopFactory
func NewWorkshopFactory() *WorkshopFactory {
	return &WorkshopFactory{}
}

// Create creates a test Workshop with default values
func (f *WorkshopFactory) Create() *models.Workshop {
	return &models.Workshop{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Auto Center Paulista",
		Phone:        "1133334444",
		Whatsapp:     "11999998888",
		CEP:          "01310100",
		Address:      "Avenida Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}
}

// WithName sets a custom workshop name
func (f *WorkshopFactory) WithName(name string) *models.Workshop {
	workshop := f.Create()
	workshop.Name = name
	return workshop
}

// MaintenanceFactory provides methods to create test Maintenance data
type MaintenanceFactory struct{}

// NewMaintenanceFactory creates a new MaintenanceFactory
func NewMaintenanceFactory() *MaintenanceFactory {
	return &MaintenanceFactory{}
}

// Create creates a test Maintenance for the given vehicle and user
func (f *MaintenanceFactory) Create(vehicleID, userID uuid.UUID) *models.Maintenance {
	km := 45000
	return &models.Maintenance{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		VehicleID:       vehicleID,
		UserID:          userID,
		MaintenanceType: "Troca de óleo",
		ServiceCategory: models.ServiceCategoryMechanical,
		MaintenanceDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Kilometers:      &km,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Vehicle     *VehicleFactory
	Workshop    *WorkshopFactory
	Maintenance *MaintenanceFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Vehicle:     NewVehicleFactory(),
		Workshop:    NewWorkshopFactory(),
		Maintenance: NewMaintenanceFactory(),
	}
}

// SeedOwnedVehicle persists a user, a vehicle and the current-owner link between them
func (fs *FactorySet) SeedOwnedVehicle(db *gorm.DB) (*models.User, *models.Vehicle, error) {
	user := fs.User.Create()
	if err := db.Create(user).Error; err != nil {
		return nil, nil, err
	}
	vehicle := fs.Vehicle.Create()
	if err := db.Omit("Owners", "Maintenances").Create(vehicle).Error; err != nil {
		return nil, nil, err
	}
	link := &models.UserVehicle{UserID: user.ID, VehicleID: vehicle.ID, IsCurrentOwner: true}
	if err := db.Omit("User", "Vehicle").Create(link).Error; err != nil {
		return nil, nil, err
	}
	return user, vehicle, nil
}
