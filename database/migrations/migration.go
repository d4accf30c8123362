package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/khankhulgun/maritimemap/models"
)

func Migrate(db *gorm.DB) error {
	// Create the schema if it doesn't exist
	createSchema := `
	CREATE SCHEMA IF NOT EXISTS map_server;
	`

	if err := db.Exec(createSchema).Error; err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := db.AutoMigrate(&models.StylePreset{}); err != nil {
		return fmt.Errorf("failed to migrate style presets: %w", err)
	}
	return nil
}
