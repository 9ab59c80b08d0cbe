package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barpoint/barpoint-api/internal/config"
	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Tenant and account entities
		&entity.Company{},
		&entity.CompanyUser{},

		// Inventory entities
		&entity.Product{},
		&entity.Supplier{},

		// Transaction entities
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Purchase{},
		&entity.PurchaseItem{},

		// Financial entities
		&entity.AccountReceivable{},
		&entity.AccountPayable{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedSystemAdmin creates the initial system administrator account when
// ADMIN_EMAIL and ADMIN_PASSWORD are configured. The account lives in
// company_users with a nil company and the system_admin user type.
func SeedSystemAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var existing entity.CompanyUser
	if err := db.Where("email = ?", cfg.Email).First(&existing).Error; err == nil {
		log.Printf("System admin already exists: %s", cfg.Email)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.CompanyUser{
		Name:     "System Admin",
		Email:    cfg.Email,
		Password: string(hashedPassword),
		UserType: enum.UserTypeSystemAdmin,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create system admin: %w", err)
	}

	log.Printf("System admin created: %s", cfg.Email)
	return nil
}
