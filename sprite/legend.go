package sprite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
)

// Legend entry kinds.
const (
	KindFill   = "fill"
	KindLine   = "line"
	KindCircle = "circle"
)

// Entries lists one legend entry per colored category of a merged config,
// in draw order. Case-expression categories (landuse, seamarks) get one
// entry per distinct option plus the fallback.
func Entries(cfg mapstyle.Config) []models.LegendEntry {
	var entries []models.LegendEntry

	fill := func(id, label, section string) {
		s := cfg.Section(section)
		entries = append(entries, models.LegendEntry{
			ID:      id,
			Label:   label,
			Kind:    KindFill,
			Color:   colorString(s[mapstyle.OptFill]),
			Opacity: number(s[mapstyle.OptOpacity], 1),
		})
	}
	line := func(id, label, section string) {
		s := cfg.Section(section)
		entries = append(entries, models.LegendEntry{
			ID:        id,
			Label:     label,
			Kind:      KindLine,
			Color:     colorString(s[mapstyle.OptColor]),
			Opacity:   1,
			Width:     number(s[mapstyle.OptWidth], 1),
			DashArray: numbers(s[mapstyle.OptDashArray]),
		})
	}

	fill("water", "Water", mapstyle.Water)
	line("coastline", "Coastline", mapstyle.Coastline)

	landuse := cfg.Section(mapstyle.Landuse)
	for _, opt := range distinctOptions(mapstyle.LanduseMatches) {
		entries = append(entries, models.LegendEntry{
			ID:      "landuse-" + opt,
			Label:   "Landuse: " + opt,
			Kind:    KindFill,
			Color:   colorString(landuse[opt]),
			Opacity: number(landuse[mapstyle.OptOpacity], 1),
		})
	}

	rivers := cfg.Section(mapstyle.Rivers)
	entries = append(entries, models.LegendEntry{
		ID:      "rivers",
		Label:   "Rivers",
		Kind:    KindLine,
		Color:   colorString(rivers[mapstyle.OptColor]),
		Opacity: 1,
		Width:   number(rivers[mapstyle.OptMaxWidth], 1),
	})

	line("ferry-routes", "Ferry routes", mapstyle.Ferry)
	line("territorial-waters", "Territorial waters", mapstyle.Territorial)
	fill("military", "Military areas", mapstyle.Military)

	airports := cfg.Section(mapstyle.Airports)
	entries = append(entries, models.LegendEntry{
		ID:      "airports",
		Label:   "Airports",
		Kind:    KindFill,
		Color:   colorString(airports[mapstyle.OptFill]),
		Opacity: number(airports[mapstyle.OptOpacity], 1),
		Stroke:  colorString(airports[mapstyle.OptOutline]),
	})

	fill("ports", "Ports", mapstyle.Ports)
	fill("marinas", "Marinas", mapstyle.Marinas)
	line("cables", "Underwater cables", mapstyle.Cables)

	seamarks := cfg.Section(mapstyle.Seamarks)
	for _, opt := range distinctOptions(mapstyle.SeamarkMatches) {
		entries = append(entries, models.LegendEntry{
			ID:      "seamarks-" + opt,
			Label:   "Seamark: " + opt,
			Kind:    KindCircle,
			Color:   colorString(seamarks[opt]),
			Opacity: 1,
			Stroke:  colorString(seamarks[mapstyle.OptStrokeColor]),
			Width:   number(seamarks[mapstyle.OptStrokeWidth], 1),
		})
	}

	return entries
}

// distinctOptions returns the options a match table resolves to, in first
// appearance order, followed by the fallback option.
func distinctOptions(matches []mapstyle.Match) []string {
	seen := map[string]bool{}
	var opts []string
	for _, m := range matches {
		if !seen[m.Option] {
			seen[m.Option] = true
			opts = append(opts, m.Option)
		}
	}
	return append(opts, mapstyle.OptDefault)
}

func colorString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

func number(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return fallback
}

func numbers(v any) []float64 {
	switch list := v.(type) {
	case []float64:
		return append([]float64(nil), list...)
	case []int:
		out := make([]float64, len(list))
		for i, n := range list {
			out[i] = float64(n)
		}
		return out
	case []any:
		out := make([]float64, 0, len(list))
		for _, item := range list {
			out = append(out, number(item, 0))
		}
		return out
	}
	return nil
}
