package models

import (
	"time"

	"gorm.io/gorm"
)

// StylePreset is a named partial style configuration.
type StylePreset struct {
	ID          string         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"column:name;uniqueIndex" json:"name"`
	Description *string        `gorm:"column:description" json:"description"`
	Config      string         `gorm:"column:config;type:jsonb" json:"config"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at" json:"-"`
}

func (s *StylePreset) TableName() string {
	return "map_server.style_presets"
}
