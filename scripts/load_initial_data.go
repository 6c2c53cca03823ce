package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vehicle-maintenance-backend/internal/config"
	"vehicle-maintenance-backend/internal/database"
	"vehicle-maintenance-backend/internal/database/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	UserType string `yaml:"user_type"`
	Phone    string `yaml:"phone,omitempty"`
	City     string `yaml:"city,omitempty"`
	State    string `yaml:"state,omitempty"`
}

type WorkshopData struct {
	Name         string `yaml:"name"`
	OwnerEmail   string `yaml:"owner_email,omitempty"`
	CNPJ         string `yaml:"cnpj,omitempty"`
	Email        string `yaml:"email,omitempty"`
	Phone        string `yaml:"phone"`
	Whatsapp     string `yaml:"whatsapp,omitempty"`
	CEP          string `yaml:"cep,omitempty"`
	Address      string `yaml:"address,omitempty"`
	Number       string `yaml:"number,omitempty"`
	Neighborhood string `yaml:"neighborhood,omitempty"`
	City         string `yaml:"city,omitempty"`
	State        string `yaml:"state,omitempty"`
	Website      string `yaml:"website,omitempty"`
	Instagram    string `yaml:"instagram,omitempty"`
	Description  string `yaml:"description,omitempty"`
}

type VehicleData struct {
	Plate        string `yaml:"plate"`
	Renavam      string `yaml:"renavam"`
	Brand        string `yaml:"brand"`
	Model        string `yaml:"model"`
	Year         int    `yaml:"year"`
	Color        string `yaml:"color,omitempty"`
	OwnerEmail   string `yaml:"owner_email,omitempty"`
	PurchaseDate string `yaml:"purchase_date,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type WorkshopsFile struct {
	Workshops []WorkshopData `yaml:"workshops"`
}

type VehiclesFile struct {
	Vehicles []VehicleData `yaml:"vehicles"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}
	logrus.Info("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := os.Getenv("SEED_DATA_DIR")
	if dataDir == "" {
		dataDir = "scripts/data"
	}
	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.Info("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadYAML(dataDir, "users", func(f UsersFile) []UserData { return f.Users })
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	workshops, err := loadYAML(dataDir, "workshops", func(f WorkshopsFile) []WorkshopData { return f.Workshops })
	if err != nil {
		return fmt.Errorf("failed to load workshops: %w", err)
	}

	vehicles, err := loadYAML(dataDir, "vehicles", func(f VehiclesFile) []VehicleData { return f.Vehicles })
	if err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}

	// Users first, workshops and vehicles refer to them by email
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[user.Email] = user
		if created {
			userCreated++
		}
	}
	logrus.Infof("Users: %d created, %d total", userCreated, len(users))

	workshopCreated := 0
	for _, workshopData := range workshops {
		created, err := createWorkshop(db, workshopData, userMap)
		if err != nil {
			logrus.Warnf("Failed to create workshop %s: %v", workshopData.Name, err)
			continue
		}
		if created {
			workshopCreated++
		}
	}
	logrus.Infof("Workshops: %d created, %d total", workshopCreated, len(workshops))

	vehicleCreated := 0
	for _, vehicleData := range vehicles {
		created, err := createVehicle(db, vehicleData, userMap)
		if err != nil {
			logrus.Warnf("Failed to create vehicle %s: %v", vehicleData.Plate, err)
			continue
		}
		if created {
			vehicleCreated++
		}
	}
	logrus.Infof("Vehicles: %d created, %d total", vehicleCreated, len(vehicles))

	return nil
}

// loadYAML collects the entries of every *.yaml file under dataDir whose path contains kind
func loadYAML[F any, T any](dataDir, kind string, entries func(F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file F
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, entries(file)...)
		return nil
	})

	return all, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	userType := models.UserType(userData.UserType)
	if userType != models.UserTypeWorkshop {
		userType = models.UserTypeUser
	}

	user = models.User{
		Name:     userData.Name,
		Email:    email,
		Password: string(hash),
		UserType: userType,
		Phone:    userData.Phone,
		City:     userData.City,
		State:    strings.ToUpper(userData.State),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createWorkshop(db *gorm.DB, workshopData WorkshopData, userMap map[string]*models.User) (bool, error) {
	var existing models.Workshop
	err := db.Where("name = ? AND city = ?", workshopData.Name, workshopData.City).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query workshop: %w", err)
	}

	workshop := models.Workshop{
		Name:         workshopData.Name,
		CNPJ:         workshopData.CNPJ,
		Email:        workshopData.Email,
		Phone:        workshopData.Phone,
		Whatsapp:     workshopData.Whatsapp,
		CEP:          workshopData.CEP,
		Address:      workshopData.Address,
		Number:       workshopData.Number,
		Neighborhood: workshopData.Neighborhood,
		City:         workshopData.City,
		State:        strings.ToUpper(workshopData.State),
		Website:      workshopData.Website,
		Instagram:    workshopData.Instagram,
		Description:  workshopData.Description,
	}
	if workshopData.OwnerEmail != "" {
		owner, ok := userMap[strings.ToLower(workshopData.OwnerEmail)]
		if !ok {
			logrus.Warnf("Owner %s not found for workshop %s", workshopData.OwnerEmail, workshopData.Name)
		} else {
			workshop.UserID = &owner.ID
		}
	}

	if err := db.Create(&workshop).Error; err != nil {
		return false, fmt.Errorf("failed to create workshop: %w", err)
	}
	return true, nil
}

func createVehicle(db *gorm.DB, vehicleData VehicleData, userMap map[string]*models.User) (bool, error) {
	plate := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(vehicleData.Plate), "-", ""))

	var existing models.Vehicle
	err := db.Where("plate = ? OR renavam = ?", plate, vehicleData.Renavam).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query vehicle: %w", err)
	}

	var purchaseDate *time.Time
	if vehicleData.PurchaseDate != "" {
		parsed, err := time.Parse(time.DateOnly, vehicleData.PurchaseDate)
		if err != nil {
			return false, fmt.Errorf("invalid purchase_date %q: %w", vehicleData.PurchaseDate, err)
		}
		purchaseDate = &parsed
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		vehicle := models.Vehicle{
			Plate:   plate,
			Renavam: vehicleData.Renavam,
			Brand:   vehicleData.Brand,
			Model:   vehicleData.Model,
			Year:    vehicleData.Year,
			Color:   vehicleData.Color,
		}
		if err := tx.Create(&vehicle).Error; err != nil {
			return err
		}

		if vehicleData.OwnerEmail == "" {
			return nil
		}
		owner, ok := userMap[strings.ToLower(vehicleData.OwnerEmail)]
		if !ok {
			logrus.Warnf("Owner %s not found for vehicle %s", vehicleData.OwnerEmail, plate)
			return nil
		}
		return tx.Create(&models.UserVehicle{
			UserID:         owner.ID,
			VehicleID:      vehicle.ID,
			PurchaseDate:   purchaseDate,
			IsCurrentOwner: true,
		}).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return true, nil
}
