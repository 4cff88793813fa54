package configs

import (
	"fmt"

	"github.com/jibrilosman/self-order-kiosk/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionDB opens the store described by cfg. Only sqlite ships with the
// kiosk; DB_SOURCE may be a file path or ":memory:".
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// SetupDatabase migrates the kiosk schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Product{},
		&entity.Order{},
		&entity.Sequence{},
	)
}
