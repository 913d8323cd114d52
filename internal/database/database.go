package database

import (
	"fmt"

	"github.com/pindranil/waste-wise-report/config"
	"github.com/pindranil/waste-wise-report/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the blob store database. The demo default is an embedded
// sqlite file; mysql is available for a shared deployment.
func NewDB(cfg *config.StorageConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dial = sqlite.Open(cfg.DSN)
	case "mysql":
		dial = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Blob{})
}
