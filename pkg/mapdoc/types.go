package mapdoc

import "github.com/goliatone/go-mapgen/pkg/markers"

// Document is a parsed map document. Source names the file it came from and
// is used in error messages.
type Document struct {
	Source string `json:"-" yaml:"-"`

	Location    []float64 `json:"location" yaml:"location"`
	Width       int       `json:"width,omitempty" yaml:"width,omitempty"`
	Height      int       `json:"height,omitempty" yaml:"height,omitempty"`
	Fullscreen  bool      `json:"fullscreen,omitempty" yaml:"fullscreen,omitempty"`
	Tiles       string    `json:"tiles,omitempty" yaml:"tiles,omitempty"`
	APIKey      string    `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Attribution string    `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	Zoom        *Zoom     `json:"zoom,omitempty" yaml:"zoom,omitempty"`

	Markers       []Marker     `json:"markers,omitempty" yaml:"markers,omitempty"`
	LatLngPopover bool         `json:"lat_lng_popover,omitempty" yaml:"lat_lng_popover,omitempty"`
	ClickMarker   *ClickMarker `json:"click_marker,omitempty" yaml:"click_marker,omitempty"`
	GeoJSON       *GeoJSON     `json:"geojson,omitempty" yaml:"geojson,omitempty"`
}

// Zoom holds the zoom bounds. Omitted fields keep their defaults.
type Zoom struct {
	Min   int `json:"min,omitempty" yaml:"min,omitempty"`
	Max   int `json:"max,omitempty" yaml:"max,omitempty"`
	Start int `json:"start,omitempty" yaml:"start,omitempty"`
}

// Marker describes one marker. Kind defaults to simple; unset fields keep
// the marker defaults.
type Marker struct {
	Kind        markers.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Location    []float64    `json:"location" yaml:"location"`
	Popup       *string      `json:"popup,omitempty" yaml:"popup,omitempty"`
	ShowPopup   *bool        `json:"show_popup,omitempty" yaml:"show_popup,omitempty"`
	Radius      *int         `json:"radius,omitempty" yaml:"radius,omitempty"`
	LineColor   string       `json:"line_color,omitempty" yaml:"line_color,omitempty"`
	FillColor   string       `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	FillOpacity *float64     `json:"fill_opacity,omitempty" yaml:"fill_opacity,omitempty"`
}

// ClickMarker enables click-to-add markers; an empty Popup shows the clicked
// coordinates.
type ClickMarker struct {
	Popup string `json:"popup,omitempty" yaml:"popup,omitempty"`
}

// GeoJSON configures the overlay. Data is passed to the browser untouched.
type GeoJSON struct {
	Data  string `json:"data" yaml:"data"`
	Style *Style `json:"style,omitempty" yaml:"style,omitempty"`
}

// Style overrides individual fields of the default GeoJSON style.
type Style struct {
	LineColor   string   `json:"line_color,omitempty" yaml:"line_color,omitempty"`
	LineWeight  *float64 `json:"line_weight,omitempty" yaml:"line_weight,omitempty"`
	LineOpacity *float64 `json:"line_opacity,omitempty" yaml:"line_opacity,omitempty"`
	FillColor   string   `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	FillOpacity *float64 `json:"fill_opacity,omitempty" yaml:"fill_opacity,omitempty"`
}
