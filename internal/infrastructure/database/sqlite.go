package database

import (
	"fmt"
	"time"

	"github.com/goapub/pos-api/internal/config"
	"github.com/goapub/pos-api/internal/domain/entity"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the in-memory store. Every query goes through a single
// connection, so writers are serialized and the shared-cache database lives
// as long as the pool does.
func NewSQLiteDB(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogSQL {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// timestamps are compared as text by the driver, keep one offset
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	log.Info("opened in-memory database", zap.String("name", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Table{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Open connects and migrates. The floor is not seeded.
func Open(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := NewSQLiteDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
