// Package postgres implements the FieldBase repositories on gorm/PostgreSQL.
package postgres

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// NewDBConnection opens the PostgreSQL connection pool and runs schema
// migration for all FieldBase entities.
func NewDBConnection(cfg *config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	log.Info(context.Background(), "Connecting to PostgreSQL",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
		logger.String("database", cfg.Database),
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Database(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Database(err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info(context.Background(), "Database ready")
	return db, nil
}

// Migrate creates or updates the FieldBase schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Project{},
		&models.ProjectObjectiveLink{},
		&models.Activity{},
		&models.User{},
		&models.Volunteer{},
		&models.Objective{},
		&models.ChecklistItem{},
		&models.SiteHazard{},
		&models.PeopleHazard{},
		&models.RiskTitle{},
		&models.RiskControl{},
		&models.RiskInstance{},
		&models.OwnerRiskLink{},
		&models.OwnerControlLink{},
		&models.AssignmentLink{},
		&models.PredatorRecord{},
	)
	if err != nil {
		return errors.Database(err)
	}
	return nil
}

// Ping checks database liveness for readiness probes.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
