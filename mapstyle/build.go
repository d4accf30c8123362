package mapstyle

import (
	"github.com/khankhulgun/maritimemap/models"
)

const (
	StyleVersion = 8
	StyleName    = "Maritime Map"

	SourceID  = "maritime-tiles"
	SourceURL = "./maritime.pmtiles"

	GlyphsURL = "https://fonts.openmaptiles.org/{fontstack}/{range}.pbf"

	riversMinZoom = 10
)

// Layer ids in draw order.
const (
	LayerBackground        = "background"
	LayerWater             = "water"
	LayerCoastline         = "coastline"
	LayerLanduse           = "landuse"
	LayerRivers            = "rivers"
	LayerFerryRoutes       = "ferry-routes"
	LayerTerritorialWaters = "territorial-waters"
	LayerMilitary          = "military"
	LayerAirports          = "airports"
	LayerAirportsOutline   = "airports-outline"
	LayerPorts             = "ports"
	LayerMarinas           = "marinas"
	LayerCables            = "cables"
	LayerSeamarks          = "seamarks"
	LayerCities            = "cities"
	LayerAirportLabels     = "airport-labels"
	LayerPortLabels        = "port-labels"
	LayerMarinaLabels      = "marina-labels"
)

// LayerIDs returns the layer ids of every generated style, in draw order.
func LayerIDs() []string {
	return []string{
		LayerBackground, LayerWater, LayerCoastline, LayerLanduse, LayerRivers,
		LayerFerryRoutes, LayerTerritorialWaters, LayerMilitary, LayerAirports,
		LayerAirportsOutline, LayerPorts, LayerMarinas, LayerCables, LayerSeamarks,
		LayerCities, LayerAirportLabels, LayerPortLabels, LayerMarinaLabels,
	}
}

// Build merges cfg onto the defaults and assembles the style document.
// A nil cfg yields the default style.
func Build(cfg Config) (*models.Style, error) {
	merged, err := Merge(cfg)
	if err != nil {
		return nil, err
	}
	return Assemble(merged), nil
}

// MustBuild is like Build but panics on error.
func MustBuild(cfg Config) *models.Style {
	style, err := Build(cfg)
	if err != nil {
		panic(err)
	}
	return style
}

// Assemble fills the layer template from an already merged configuration.
func Assemble(cfg Config) *models.Style {
	water := cfg.Section(Water)
	coastline := cfg.Section(Coastline)
	landuse := cfg.Section(Landuse)
	rivers := cfg.Section(Rivers)
	ferry := cfg.Section(Ferry)
	territorial := cfg.Section(Territorial)
	military := cfg.Section(Military)
	airports := cfg.Section(Airports)
	ports := cfg.Section(Ports)
	marinas := cfg.Section(Marinas)
	cables := cfg.Section(Cables)
	seamarks := cfg.Section(Seamarks)
	text := cfg.Section(Text)
	fonts := cfg.Section(Fonts)

	minZoom := float64(riversMinZoom)

	return &models.Style{
		Version: StyleVersion,
		Name:    StyleName,
		Sources: map[string]models.VectorSource{
			SourceID: {Type: "vector", URL: SourceURL},
		},
		Sprite: "",
		Glyphs: GlyphsURL,
		Layers: []models.Layer{
			{
				ID:    LayerBackground,
				Type:  models.LayerTypeBackground,
				Paint: models.BackgroundPaint{BackgroundColor: cfg[Background]},
			},
			fillLayer(LayerWater, "water", water),
			{
				ID:          LayerCoastline,
				Type:        models.LayerTypeLine,
				Source:      SourceID,
				SourceLayer: "coastline",
				Paint: models.LinePaint{
					LineColor: coastline[OptColor],
					LineWidth: coastline[OptWidth],
				},
			},
			{
				ID:          LayerLanduse,
				Type:        models.LayerTypeFill,
				Source:      SourceID,
				SourceLayer: "landuse",
				Paint: models.FillPaint{
					FillColor:   matchCase(landuse, LanduseMatches),
					FillOpacity: landuse[OptOpacity],
				},
			},
			{
				ID:          LayerRivers,
				Type:        models.LayerTypeLine,
				Source:      SourceID,
				SourceLayer: "rivers",
				MinZoom:     &minZoom,
				Paint: models.LinePaint{
					LineColor: rivers[OptColor],
					LineWidth: Interpolate(Linear(), Zoom(),
						Stop{Input: 10, Output: rivers[OptMinWidth]},
						Stop{Input: 14, Output: rivers[OptMaxWidth]},
					),
				},
			},
			dashedLayer(LayerFerryRoutes, "ferry_routes", ferry),
			dashedLayer(LayerTerritorialWaters, "territorial_waters", territorial),
			fillLayer(LayerMilitary, "military", military),
			fillLayer(LayerAirports, "airports", airports),
			{
				ID:          LayerAirportsOutline,
				Type:        models.LayerTypeLine,
				Source:      SourceID,
				SourceLayer: "airports",
				Paint: models.LinePaint{
					LineColor: airports[OptOutline],
					LineWidth: 1,
				},
			},
			fillLayer(LayerPorts, "ports", ports),
			fillLayer(LayerMarinas, "marinas", marinas),
			dashedLayer(LayerCables, "cables", cables),
			{
				ID:          LayerSeamarks,
				Type:        models.LayerTypeCircle,
				Source:      SourceID,
				SourceLayer: "seamarks",
				Paint: models.CirclePaint{
					CircleRadius:      seamarks[OptRadius],
					CircleColor:       matchCase(seamarks, SeamarkMatches),
					CircleStrokeColor: seamarks[OptStrokeColor],
					CircleStrokeWidth: seamarks[OptStrokeWidth],
				},
			},
			labelLayer(LayerCities, "cities", fonts[OptPrimary],
				Interpolate(Linear(), Zoom(),
					Stop{Input: 4, Output: 10},
					Stop{Input: 14, Output: 16},
				),
				text[OptColor], text),
			labelLayer(LayerAirportLabels, "airports", fonts[OptSecondary], 12, airports[OptOutline], text),
			labelLayer(LayerPortLabels, "ports", fonts[OptSecondary], 11, ports[OptFill], text),
			labelLayer(LayerMarinaLabels, "marinas", fonts[OptSecondary], 10, marinas[OptFill], text),
		},
	}
}

func fillLayer(id, sourceLayer string, section Section) models.Layer {
	return models.Layer{
		ID:          id,
		Type:        models.LayerTypeFill,
		Source:      SourceID,
		SourceLayer: sourceLayer,
		Paint: models.FillPaint{
			FillColor:   section[OptFill],
			FillOpacity: section[OptOpacity],
		},
	}
}

func dashedLayer(id, sourceLayer string, section Section) models.Layer {
	return models.Layer{
		ID:          id,
		Type:        models.LayerTypeLine,
		Source:      SourceID,
		SourceLayer: sourceLayer,
		Paint: models.LinePaint{
			LineColor:     section[OptColor],
			LineWidth:     section[OptWidth],
			LineDasharray: section[OptDashArray],
		},
	}
}

func labelLayer(id, sourceLayer string, font, size, color any, text Section) models.Layer {
	return models.Layer{
		ID:          id,
		Type:        models.LayerTypeSymbol,
		Source:      SourceID,
		SourceLayer: sourceLayer,
		Layout: models.SymbolLayout{
			TextField: Get("name"),
			TextFont:  font,
			TextSize:  size,
		},
		Paint: models.SymbolPaint{
			TextColor:     color,
			TextHaloColor: text[OptHaloColor],
			TextHaloWidth: text[OptHaloWidth],
		},
	}
}
