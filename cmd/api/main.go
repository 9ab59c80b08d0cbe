package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/config"
	"github.com/barpoint/barpoint-api/internal/infrastructure/database"
	"github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/internal/presentation/http/handler"
	"github.com/barpoint/barpoint-api/internal/presentation/http/routes"
	"github.com/barpoint/barpoint-api/pkg/logger"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	appLogger, err := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Env,
		ServiceName: cfg.App.Name,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the system admin account
	if err := database.SeedSystemAdmin(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed system admin: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	companyUserRepo := repository.NewCompanyUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	receivableRepo := repository.NewAccountReceivableRepository(db)
	payableRepo := repository.NewAccountPayableRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize services
	authService := service.NewAuthService(companyRepo, companyUserRepo, jwtManager)
	companyService := service.NewCompanyService(companyRepo, companyUserRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, productRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	accountService := service.NewAccountService(receivableRepo, payableRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, jwtManager),
		Company:   handler.NewCompanyHandler(companyService),
		Product:   handler.NewProductHandler(productService),
		Sale:      handler.NewSaleHandler(saleService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Account:   handler.NewAccountHandler(accountService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     appLogger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
