// Package presets stores named partial style configurations in Postgres.
package presets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
)

// ErrNotFound is returned when no preset has the requested name.
var ErrNotFound = errors.New("preset not found")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns every preset ordered by name.
func (s *Store) List(ctx context.Context) ([]models.StylePreset, error) {
	var presets []models.StylePreset
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&presets).Error; err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

// Get returns the decoded configuration of the named preset.
func (s *Store) Get(ctx context.Context, name string) (mapstyle.Config, error) {
	var preset models.StylePreset
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&preset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to load preset %q: %w", name, err)
	}
	return DecodeConfig(preset)
}

// Save creates the named preset or replaces its config and description.
func (s *Store) Save(ctx context.Context, name string, description *string, cfg mapstyle.Config) (*models.StylePreset, error) {
	preset, err := NewPreset(name, description, cfg)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "config", "updated_at", "deleted_at"}),
	}).Create(preset).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save preset %q: %w", name, err)
	}
	return preset, nil
}

// Delete soft-deletes the named preset.
func (s *Store) Delete(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).Where("name = ?", name).Delete(&models.StylePreset{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete preset %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// NewPreset builds a preset row; the config is stored as JSON.
func NewPreset(name string, description *string, cfg mapstyle.Config) (*models.StylePreset, error) {
	if name == "" {
		return nil, errors.New("preset name is required")
	}
	if cfg == nil {
		cfg = mapstyle.Config{}
	}
	// Reject shapes the builder would refuse before they reach the table.
	if _, err := mapstyle.Merge(cfg); err != nil {
		return nil, err
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preset %q: %w", name, err)
	}
	return &models.StylePreset{
		Name:        name,
		Description: description,
		Config:      string(data),
	}, nil
}

// DecodeConfig parses the stored JSON config of a preset.
func DecodeConfig(preset models.StylePreset) (mapstyle.Config, error) {
	cfg, err := mapstyle.Decode([]byte(preset.Config), mapstyle.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", preset.Name, err)
	}
	return cfg, nil
}
