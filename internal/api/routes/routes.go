package routes

import (
	"fmt"

	"vehicle-maintenance-backend/internal/api/handlers"
	"vehicle-maintenance-backend/internal/api/middleware"
	"vehicle-maintenance-backend/internal/auth"
	"vehicle-maintenance-backend/internal/config"
	"vehicle-maintenance-backend/internal/notification"
	"vehicle-maintenance-backend/internal/repository"
	"vehicle-maintenance-backend/internal/service"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// multipartMemory caps the request body kept in memory while parsing uploads
const multipartMemory = 32 << 20

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, store storage.FileStore, notifier notification.Notifier) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true
	router.MaxMultipartMemory = multipartMemory

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	maintenanceItemRepo := repository.NewMaintenanceItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	deviceTokenRepo := repository.NewDeviceTokenRepository(db)

	// Initialize services
	maintenanceService := service.NewMaintenanceService(service.MaintenanceRepositories{
		Tx:           transactor,
		Maintenances: maintenanceRepo,
		Items:        maintenanceItemRepo,
		Invoices:     invoiceRepo,
		Checklists:   checklistRepo,
		Vehicles:     vehicleRepo,
		Workshops:    workshopRepo,
		DeviceTokens: deviceTokenRepo,
	}, store, notifier, validator, cfg.InvoiceMaxBytes())
	invoiceService := service.NewInvoiceService(invoiceRepo, maintenanceRepo, maintenanceItemRepo, store, validator, cfg.InvoiceMaxBytes())
	vehicleService := service.NewVehicleService(transactor, vehicleRepo, maintenanceRepo, invoiceRepo, store, validator)
	workshopService := service.NewWorkshopService(workshopRepo, userRepo, validator)
	deviceTokenService := service.NewDeviceTokenService(deviceTokenRepo, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("", cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig, userRepo, vehicleRepo, deviceTokenRepo, notifier, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, store)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	workshopHandler := handlers.NewWorkshopHandler(workshopService)
	deviceTokenHandler := handlers.NewDeviceTokenHandler(deviceTokenService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public routes
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/sso/:provider/redirect", authHandler.SSORedirect)
			authRoutes.GET("/sso/:provider/callback", authHandler.SSOCallback)
		}

		v1.GET("/vehicles/search/:identifier", vehicleHandler.SearchVehicle)
		v1.GET("/workshops", workshopHandler.ListWorkshops)
		v1.GET("/workshops/:id", workshopHandler.GetWorkshop)
	}

	// Authenticated routes
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.ListVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
			vehicles.POST("/:id/link", vehicleHandler.LinkVehicle)
			vehicles.GET("/:id/maintenances", vehicleHandler.GetVehicleMaintenances)
			vehicles.GET("/:id/export-pdf", vehicleHandler.ExportVehicle)
		}
		protected.GET("/my-vehicles", vehicleHandler.MyVehicles)

		maintenances := protected.Group("/maintenances")
		{
			maintenances.GET("", maintenanceHandler.ListMaintenances)
			maintenances.POST("", maintenanceHandler.CreateMaintenance)
			maintenances.GET("/:id", maintenanceHandler.GetMaintenance)
			maintenances.PUT("/:id", maintenanceHandler.UpdateMaintenance)
			maintenances.DELETE("/:id", maintenanceHandler.DeleteMaintenance)
		}

		invoices := protected.Group("/invoices")
		{
			invoices.POST("/upload", invoiceHandler.UploadInvoice)
			invoices.GET("/:id/download", invoiceHandler.DownloadInvoice)
			invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		}

		workshops := protected.Group("/workshops")
		{
			workshops.POST("", workshopHandler.CreateWorkshop)
			workshops.PUT("/:id", workshopHandler.UpdateWorkshop)
			workshops.DELETE("/:id", workshopHandler.DeleteWorkshop)
		}

		deviceTokens := protected.Group("/device-tokens")
		{
			deviceTokens.GET("", deviceTokenHandler.ListDeviceTokens)
			deviceTokens.POST("", deviceTokenHandler.RegisterDeviceToken)
			deviceTokens.DELETE("", deviceTokenHandler.RemoveDeviceToken)
		}
	}

	return router, nil
}
