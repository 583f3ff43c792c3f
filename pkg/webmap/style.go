package webmap

import "github.com/goliatone/go-mapgen/pkg/geo"

// GeoJSONStyle styles the features of a GeoJSON overlay. Colors and
// opacities are emitted verbatim.
type GeoJSONStyle struct {
	LineColor   string  `json:"line_color" yaml:"line_color"`
	LineWeight  float64 `json:"line_weight" yaml:"line_weight"`
	LineOpacity float64 `json:"line_opacity" yaml:"line_opacity"`
	FillColor   string  `json:"fill_color" yaml:"fill_color"`
	FillOpacity float64 `json:"fill_opacity" yaml:"fill_opacity"`
}

// DefaultGeoJSONStyle is a thin black outline over a translucent blue fill.
func DefaultGeoJSONStyle() GeoJSONStyle {
	return GeoJSONStyle{
		LineColor:   "black",
		LineWeight:  1,
		LineOpacity: 1,
		FillColor:   "blue",
		FillOpacity: 0.6,
	}
}

func (s GeoJSONStyle) params() map[string]any {
	return map[string]any{
		"line_color":   s.LineColor,
		"line_weight":  geo.FormatFloat(s.LineWeight),
		"line_opacity": geo.FormatFloat(s.LineOpacity),
		"fill_color":   s.FillColor,
		"fill_opacity": geo.FormatFloat(s.FillOpacity),
	}
}
