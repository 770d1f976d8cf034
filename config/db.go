package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"guest-companion-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens a gorm connection for the configured driver and
// applies migrations in parent-before-child order.
func ConnectDatabase(cfg *DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Warn,
			},
		),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Type {
	case "mysql":
		db, err = gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBName), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model. Parents first so foreign keys
// resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tenant{},
		&models.Role{},
		&models.Profile{},
		&models.Category{},
		&models.Location{},
		&models.Entertainment{},
		&models.Schedule{},
		&models.FoodSpot{},
		&models.Suggestion{},
		&models.Image{},
		&models.EntertainmentImage{},
		&models.FoodSpotImage{},
		&models.SuggestionImage{},
		&models.TenantImage{},
		&models.POIType{},
		&models.Plan{},
		&models.MapPoint{},
		&models.Contact{},
	)
}
