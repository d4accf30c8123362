package seeds

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
	"github.com/khankhulgun/maritimemap/presets"
)

// Preset names inserted by Seed.
const (
	DefaultPreset = "default"
	NightPreset   = "night"
)

// Seed inserts the built-in presets. Existing rows with the same name are
// left untouched so operator edits survive restarts.
func Seed(db *gorm.DB) error {
	rows, err := Presets()
	if err != nil {
		return err
	}
	for _, row := range rows {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(row).Error
		if err != nil {
			return fmt.Errorf("error seeding preset %s: %w", row.Name, err)
		}
	}
	return nil
}

// Presets returns the built-in preset rows.
func Presets() ([]*models.StylePreset, error) {
	defaultDesc := "Stock maritime palette"
	nightDesc := "Dark palette for night navigation displays"

	defaults, err := presets.NewPreset(DefaultPreset, &defaultDesc, mapstyle.Config{})
	if err != nil {
		return nil, err
	}
	night, err := presets.NewPreset(NightPreset, &nightDesc, NightConfig())
	if err != nil {
		return nil, err
	}
	return []*models.StylePreset{defaults, night}, nil
}

// NightConfig is a partial config that darkens the stock palette.
func NightConfig() mapstyle.Config {
	return mapstyle.Config{
		mapstyle.Background: "#0b1a26",
		mapstyle.Water: mapstyle.Section{
			mapstyle.OptFill:    "#10324a",
			mapstyle.OptOpacity: 0.9,
		},
		mapstyle.Coastline: mapstyle.Section{mapstyle.OptColor: "#4a7a96"},
		mapstyle.Landuse: mapstyle.Section{
			mapstyle.OptBeach:     "#5c5238",
			mapstyle.OptEarth:     "#2e2a22",
			mapstyle.OptProtected: "#1f3b26",
			mapstyle.OptDefault:   "#23262b",
			mapstyle.OptOpacity:   0.6,
		},
		mapstyle.Rivers: mapstyle.Section{mapstyle.OptColor: "#1f5677"},
		mapstyle.Text: mapstyle.Section{
			mapstyle.OptColor:     "#d8e2ea",
			mapstyle.OptHaloColor: "#0b1a26",
		},
	}
}
