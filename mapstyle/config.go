// Package mapstyle generates the MapLibre style document of the maritime map
// from a partial configuration.
//
// A configuration is a two-level tree: section name to option name to value.
// Callers override any subset of options; everything else falls back to the
// defaults returned by DefaultConfig. Values are not validated and are copied
// into the style as given.
package mapstyle

// Section is a flat group of style options, e.g. the water colors.
type Section map[string]any

// Config is a (possibly partial) style configuration. Known sections hold a
// Section (or any string-keyed map); Background holds a scalar.
type Config map[string]any

// Section names.
const (
	Water       = "water"
	Coastline   = "coastline"
	Landuse     = "landuse"
	Rivers      = "rivers"
	Ferry       = "ferry"
	Territorial = "territorial"
	Military    = "military"
	Airports    = "airports"
	Ports       = "ports"
	Marinas     = "marinas"
	Cables      = "cables"
	Seamarks    = "seamarks"
	Text        = "text"
	Fonts       = "fonts"

	// Background is a top-level scalar, not a section.
	Background = "background"
)

// Option names. Not every section carries every option.
const (
	OptFill        = "fill"
	OptOpacity     = "opacity"
	OptColor       = "color"
	OptWidth       = "width"
	OptDashArray   = "dashArray"
	OptMinWidth    = "minWidth"
	OptMaxWidth    = "maxWidth"
	OptOutline     = "outline"
	OptBeach       = "beach"
	OptEarth       = "earth"
	OptProtected   = "protected"
	OptDefault     = "default"
	OptBuoy        = "buoy"
	OptBeacon      = "beacon"
	OptLight       = "light"
	OptRadius      = "radius"
	OptStrokeColor = "strokeColor"
	OptStrokeWidth = "strokeWidth"
	OptHaloColor   = "haloColor"
	OptHaloWidth   = "haloWidth"
	OptPrimary     = "primary"
	OptSecondary   = "secondary"
)

// SectionNames lists the sections known to the defaults, in declaration order.
var SectionNames = []string{
	Water, Coastline, Landuse, Rivers, Ferry, Territorial, Military,
	Airports, Ports, Marinas, Cables, Seamarks, Text, Fonts,
}

// DefaultConfig returns a fresh copy of the default configuration.
func DefaultConfig() Config {
	return Config{
		Water: Section{
			OptFill:    "#a8d1e0",
			OptOpacity: 0.8,
		},
		Coastline: Section{
			OptColor: "#2c5aa0",
			OptWidth: 1.0,
		},
		Landuse: Section{
			OptBeach:     "#f4e4c1",
			OptEarth:     "#d2b48c",
			OptProtected: "#90ee90",
			OptDefault:   "#f5f5f5",
			OptOpacity:   0.7,
		},
		Rivers: Section{
			OptColor:    "#4a90e2",
			OptMinWidth: 1.0,
			OptMaxWidth: 3.0,
		},
		Ferry: Section{
			OptColor:     "#ff6b35",
			OptWidth:     2.0,
			OptDashArray: []float64{2, 2},
		},
		Territorial: Section{
			OptColor:     "#ff0000",
			OptWidth:     2.0,
			OptDashArray: []float64{5, 5},
		},
		Military: Section{
			OptFill:    "#ff6b6b",
			OptOpacity: 0.3,
		},
		Airports: Section{
			OptFill:    "#8b4513",
			OptOutline: "#654321",
			OptOpacity: 0.5,
		},
		Ports: Section{
			OptFill:    "#4169e1",
			OptOpacity: 0.6,
		},
		Marinas: Section{
			OptFill:    "#32cd32",
			OptOpacity: 0.6,
		},
		Cables: Section{
			OptColor:     "#ff1493",
			OptWidth:     1.0,
			OptDashArray: []float64{1, 1},
		},
		Seamarks: Section{
			OptBuoy:        "#ffff00",
			OptBeacon:      "#ffa500",
			OptLight:       "#ffff00",
			OptDefault:     "#ff0000",
			OptRadius:      3.0,
			OptStrokeColor: "#000000",
			OptStrokeWidth: 1.0,
		},
		Text: Section{
			OptColor:     "#000000",
			OptHaloColor: "#ffffff",
			OptHaloWidth: 1.0,
		},
		Background: "#e8f4f8",
		Fonts: Section{
			OptPrimary:   []string{"Open Sans Regular"},
			OptSecondary: []string{"Open Sans Regular"},
		},
	}
}

// Section returns the named section of a merged configuration. It returns
// nil when the section is missing or is not a Section.
func (c Config) Section(name string) Section {
	s, _ := c[name].(Section)
	return s
}

// Value returns option opt of section name, or nil.
func (c Config) Value(section, opt string) any {
	return c.Section(section)[opt]
}
