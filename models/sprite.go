package models

// SpriteMeta is one icon entry of a MapLibre sprite index.
type SpriteMeta struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	PixelRatio int `json:"pixelRatio"`
}

// LegendEntry describes one colored category of the maritime style.
type LegendEntry struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Kind      string    `json:"kind"`
	Color     string    `json:"color"`
	Opacity   float64   `json:"opacity"`
	Stroke    string    `json:"stroke,omitempty"`
	Width     float64   `json:"width,omitempty"`
	DashArray []float64 `json:"dash_array,omitempty"`
}
