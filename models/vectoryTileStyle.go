package models

// Style is a MapLibre / Mapbox GL style document (style version 8).
type Style struct {
	Version int                     `json:"version"`
	Name    string                  `json:"name"`
	Sources map[string]VectorSource `json:"sources"`
	Sprite  string                  `json:"sprite"`
	Glyphs  string                  `json:"glyphs"`
	Layers  []Layer                 `json:"layers"`
}

// Layer returns the layer with the given id, or nil.
func (s *Style) Layer(id string) *Layer {
	for i := range s.Layers {
		if s.Layers[i].ID == id {
			return &s.Layers[i]
		}
	}
	return nil
}

type VectorSource struct {
	Type  string   `json:"type"`
	URL   string   `json:"url,omitempty"`
	Tiles []string `json:"tiles,omitempty"`
}

// Layer is one rendering rule. Paint and Layout hold one of the typed
// paint/layout structs below.
type Layer struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Source      string   `json:"source,omitempty"`
	SourceLayer string   `json:"source-layer,omitempty"`
	MinZoom     *float64 `json:"minzoom,omitempty"`
	Layout      any      `json:"layout,omitempty"`
	Paint       any      `json:"paint"`
}

const (
	LayerTypeBackground = "background"
	LayerTypeFill       = "fill"
	LayerTypeLine       = "line"
	LayerTypeCircle     = "circle"
	LayerTypeSymbol     = "symbol"
)

// Paint and layout values are typed as any: they carry either a literal
// taken from the configuration or an expression tree.

type BackgroundPaint struct {
	BackgroundColor any `json:"background-color"`
}

// Fill layer paint
type FillPaint struct {
	FillColor   any `json:"fill-color"`
	FillOpacity any `json:"fill-opacity"`
}

// Line layer paint
type LinePaint struct {
	LineColor     any `json:"line-color"`
	LineWidth     any `json:"line-width"`
	LineDasharray any `json:"line-dasharray,omitempty"`
}

// Circle layer paint
type CirclePaint struct {
	CircleRadius      any `json:"circle-radius"`
	CircleColor       any `json:"circle-color"`
	CircleStrokeColor any `json:"circle-stroke-color"`
	CircleStrokeWidth any `json:"circle-stroke-width"`
}

// Symbol layer layout and paint
type SymbolLayout struct {
	TextField any `json:"text-field"`
	TextFont  any `json:"text-font"`
	TextSize  any `json:"text-size"`
}

type SymbolPaint struct {
	TextColor     any `json:"text-color"`
	TextHaloColor any `json:"text-halo-color"`
	TextHaloWidth any `json:"text-halo-width"`
}
