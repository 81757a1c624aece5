package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"easypark-backend/config"
	"easypark-backend/internal/model"
)

// Init opens the event journal database and runs migrations. The journal is
// SQLite, in-memory by default.
func Init(cfg *config.JournalConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	log.Println("Running journal migrations...")
	if err := db.AutoMigrate(&model.EventRecord{}); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
