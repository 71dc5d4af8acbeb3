package db

import (
	"log"
	"time"

	"github.com/smartbistro/restaurant-api/internal/config"
	"github.com/smartbistro/restaurant-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate runs schema migration and seeds the fixed category list.
// Split from NewDB so tests can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	seedCategories(db)
	return nil
}

func seedCategories(db *gorm.DB) {
	defaults := []string{"Appetizers", "Mains", "Desserts", "Drinks"}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	for _, name := range defaults {
		db.Create(&models.Category{Name: name})
	}
}
