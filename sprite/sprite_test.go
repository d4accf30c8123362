package sprite

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
)

func mergedDefaults(t *testing.T) mapstyle.Config {
	t.Helper()
	cfg, err := mapstyle.Merge(nil)
	require.NoError(t, err)
	return cfg
}

func TestEntries(t *testing.T) {
	entries := Entries(mergedDefaults(t))

	ids := make([]string, len(entries))
	byID := map[string]models.LegendEntry{}
	for i, e := range entries {
		ids[i] = e.ID
		byID[e.ID] = e
	}
	assert.Equal(t, []string{
		"water", "coastline",
		"landuse-beach", "landuse-earth", "landuse-protected", "landuse-default",
		"rivers", "ferry-routes", "territorial-waters", "military", "airports",
		"ports", "marinas", "cables",
		"seamarks-buoy", "seamarks-beacon", "seamarks-light", "seamarks-default",
	}, ids)

	assert.Equal(t, models.LegendEntry{
		ID: "water", Label: "Water", Kind: KindFill, Color: "#a8d1e0", Opacity: 0.8,
	}, byID["water"])
	assert.Equal(t, []float64{5, 5}, byID["territorial-waters"].DashArray)
	assert.Equal(t, "#654321", byID["airports"].Stroke)
	assert.Equal(t, 3.0, byID["rivers"].Width)
	assert.Equal(t, "#ffa500", byID["seamarks-beacon"].Color)
	assert.Equal(t, KindCircle, byID["seamarks-default"].Kind)
}

func TestEntriesToleratesOddValues(t *testing.T) {
	cfg, err := mapstyle.Merge(mapstyle.Config{
		mapstyle.Water: mapstyle.Section{mapstyle.OptFill: 7, mapstyle.OptOpacity: "0.25"},
		mapstyle.Ferry: mapstyle.Section{mapstyle.OptDashArray: []any{3.0, "x"}, mapstyle.OptWidth: 2},
	})
	require.NoError(t, err)

	byID := map[string]models.LegendEntry{}
	for _, e := range Entries(cfg) {
		byID[e.ID] = e
	}
	assert.Equal(t, "7", byID["water"].Color)
	assert.Equal(t, 0.25, byID["water"].Opacity)
	assert.Equal(t, []float64{3, 0}, byID["ferry-routes"].DashArray)
	assert.Equal(t, 2.0, byID["ferry-routes"].Width)
}

func TestSwatchSVG(t *testing.T) {
	svg := string(SwatchSVG(models.LegendEntry{Kind: KindLine, Color: "#ff6b35", Opacity: 1, Width: 2, DashArray: []float64{2, 2}}))
	assert.Contains(t, svg, `<line`)
	assert.Contains(t, svg, `stroke="#ff6b35"`)
	assert.Contains(t, svg, `stroke-dasharray="4,4"`)

	svg = string(SwatchSVG(models.LegendEntry{Kind: KindFill, Color: `"><script>`, Opacity: 1}))
	assert.NotContains(t, svg, "<script>")

	svg = string(SwatchSVG(models.LegendEntry{Kind: KindCircle, Opacity: 1}))
	assert.Contains(t, svg, `fill="none"`)
}

func TestSwatchPixels(t *testing.T) {
	tests := []struct {
		name  string
		entry models.LegendEntry
		red   bool
	}{
		{name: "fill", entry: models.LegendEntry{ID: "a", Kind: KindFill, Color: "#ff0000", Opacity: 1}, red: true},
		{name: "circle", entry: models.LegendEntry{ID: "b", Kind: KindCircle, Color: "#ff0000", Opacity: 1}, red: true},
		{name: "line", entry: models.LegendEntry{ID: "c", Kind: KindLine, Color: "#ff0000", Opacity: 1, Width: 2}, red: true},
		{name: "no paint", entry: models.LegendEntry{ID: "d", Kind: KindFill, Opacity: 1}, red: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Swatch(tt.entry, 32)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

			c := img.RGBAAt(16, 16)
			if tt.red {
				assert.Greater(t, c.R, uint8(200))
				assert.Less(t, c.G, uint8(60))
				assert.Greater(t, c.A, uint8(200))
			} else {
				assert.Equal(t, uint8(0), c.A)
			}
		})
	}
}

func TestSvgPaint(t *testing.T) {
	tests := []struct {
		name        string
		color       string
		opacity     float64
		wantPaint   string
		wantOpacity float64
	}{
		{name: "hex", color: "#a8d1e0", opacity: 0.8, wantPaint: "#a8d1e0", wantOpacity: 0.8},
		{name: "named", color: "Navy", opacity: 1, wantPaint: "navy", wantOpacity: 1},
		{name: "rgb with spaces", color: "rgb(10, 20, 30)", opacity: 1, wantPaint: "rgb(10,20,30)", wantOpacity: 1},
		{name: "rgba alpha folds into opacity", color: "rgba(10, 20, 30, 0.5)", opacity: 0.8, wantPaint: "rgb(10,20,30)", wantOpacity: 0.4},
		{name: "rgba percent alpha", color: "rgba(10,20,30,25%)", opacity: 1, wantPaint: "rgb(10,20,30)", wantOpacity: 0.25},
		{name: "hsl", color: "hsl(120, 50%, 50%)", opacity: 1, wantPaint: "hsl(120,50%,50%)", wantOpacity: 1},
		{name: "hsla", color: "hsla(120,50%,50%,0.5)", opacity: 1, wantPaint: "hsl(120,50%,50%)", wantOpacity: 0.5},
		{name: "number", color: "42", opacity: 1, wantPaint: "none", wantOpacity: 1},
		{name: "empty components", color: "rgb(,,)", opacity: 1, wantPaint: "none", wantOpacity: 1},
		{name: "bad alpha", color: "rgba(1,2,3,x)", opacity: 1, wantPaint: "none", wantOpacity: 1},
		{name: "url", color: "url(#grad)", opacity: 1, wantPaint: "none", wantOpacity: 1},
		{name: "empty", color: "", opacity: 2, wantPaint: "none", wantOpacity: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paint, opacity := svgPaint(tt.color, tt.opacity)
			assert.Equal(t, tt.wantPaint, paint)
			assert.InDelta(t, tt.wantOpacity, opacity, 1e-9)
		})
	}
}

func TestSwatchColorForms(t *testing.T) {
	tests := []struct {
		name  string
		color string
		red   bool
	}{
		{name: "rgba", color: "rgba(255,0,0,1)", red: true},
		{name: "half transparent rgba", color: "rgba(255, 0, 0, 0.5)", red: true},
		{name: "hsl", color: "hsl(0, 100%, 50%)", red: true},
		{name: "hsla", color: "hsla(0,100%,50%,0.9)", red: true},
		{name: "number", color: "42", red: false},
		{name: "garbage", color: "rgb(,,)", red: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range []string{KindFill, KindLine, KindCircle} {
				img, err := Swatch(models.LegendEntry{ID: tt.name, Kind: kind, Color: tt.color, Stroke: tt.color, Opacity: 1, Width: 2}, 32)
				require.NoError(t, err, kind)

				c := img.RGBAAt(16, 16)
				if tt.red {
					assert.Greater(t, c.R, uint8(100), kind)
					assert.Less(t, c.G, uint8(30), kind)
					assert.Greater(t, c.A, uint8(100), kind)
				} else {
					assert.Equal(t, uint8(0), c.A, kind)
				}
			}
		})
	}
}

func TestLegendToleratesUnsupportedColors(t *testing.T) {
	cfg, err := mapstyle.Merge(mapstyle.Config{
		mapstyle.Water:    mapstyle.Section{mapstyle.OptFill: "rgba(10,20,30,0.5)"},
		mapstyle.Airports: mapstyle.Section{mapstyle.OptFill: 42, mapstyle.OptOutline: "hsla(30,40%,50%,0.2)"},
		mapstyle.Ferry:    mapstyle.Section{mapstyle.OptColor: []any{"bogus"}},
	})
	require.NoError(t, err)

	images, err := Legend(cfg, 16)
	require.NoError(t, err)
	assert.Len(t, images, 18)

	require.NoError(t, WriteSheet(cfg, t.TempDir(), "legend", 8))
}

func TestRasterizeInvalidSize(t *testing.T) {
	_, err := Rasterize(SwatchSVG(models.LegendEntry{Kind: KindFill}), 0)
	assert.Error(t, err)
}

func TestPack(t *testing.T) {
	images := map[string]image.Image{
		"b": image.NewRGBA(image.Rect(0, 0, 10, 4)),
		"a": image.NewRGBA(image.Rect(0, 0, 6, 8)),
	}
	sheet, meta := Pack(images, 2)

	assert.Equal(t, image.Rect(0, 0, 16, 8), sheet.Bounds())
	assert.Equal(t, models.SpriteMeta{X: 0, Y: 0, Width: 6, Height: 8, PixelRatio: 2}, meta["a"])
	assert.Equal(t, models.SpriteMeta{X: 6, Y: 0, Width: 10, Height: 4, PixelRatio: 2}, meta["b"])
}

func TestWriteSheet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sprite")
	require.NoError(t, WriteSheet(mergedDefaults(t), dir, "legend", 16))

	for _, name := range []string{"legend.png", "legend.json", "legend@2x.png", "legend@2x.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "legend@2x.json"))
	require.NoError(t, err)
	var meta map[string]models.SpriteMeta
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Len(t, meta, 18)
	assert.Equal(t, 32, meta["water"].Width)
	assert.Equal(t, 2, meta["water"].PixelRatio)
}
