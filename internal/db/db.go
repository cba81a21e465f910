package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dfrestrepo/ideas/internal/models"
)

// ErrStoreUnavailable wraps persistence failures (backend unreachable,
// write rejected). Fatal to the requested operation, never retried here.
var ErrStoreUnavailable = errors.New("session store unavailable")

var (
	DB  *gorm.DB
	log = zap.NewNop()
)

// SetLogger installs the debug logger used by the store services.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Initialize sets up the database connection and runs migrations
func Initialize(dbPath string) error {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create ideas directory: %w", err)
	}

	// Open database connection
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	DB = db
	log.Debug("database opened", zap.String("path", dbPath))

	// Run auto-migrations
	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.Idea{},
		&models.Note{},
		&models.Session{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
