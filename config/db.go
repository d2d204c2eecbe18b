package config

import (
	"fmt"

	"ecamp/domain"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL(cfg DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

func dialector(cfg DatabaseConfig) gorm.Dialector {
	pgCfg := postgres.Config{DSN: GetDatabaseURL(cfg)}
	if cfg.Driver == "postgres" {
		// lib/pq registers itself as "postgres"
		pgCfg.DriverName = "postgres"
	}
	return postgres.New(pgCfg)
}

// BootDB opens the database connection and runs migrations.
func BootDB(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	GetLogrusInstance().WithField("driver", cfg.Driver).Info("DB initialized")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	// tables without foreign keys first
	if err := db.AutoMigrate(
		&domain.Parent{},
		&domain.Camp{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Child{},
		&domain.Trip{},
		&domain.Registration{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}

	return nil
}
