package mapdoc

import (
	"fmt"

	"github.com/goliatone/go-mapgen/pkg/markers"
	"github.com/goliatone/go-mapgen/pkg/webmap"
)

// Config converts the document header into a webmap.Config.
func (d Document) Config() (webmap.Config, error) {
	loc, err := location(d.Location)
	if err != nil {
		return webmap.Config{}, fmt.Errorf("mapdoc: %s: location: %w", d.Source, err)
	}

	cfg := webmap.Config{
		Location:    &loc,
		Tiles:       d.Tiles,
		APIKey:      d.APIKey,
		Attribution: d.Attribution,
	}
	switch {
	case d.Fullscreen:
		cfg.Size = webmap.Fullscreen{}
	case d.Width != 0 || d.Height != 0:
		size := webmap.Pixels{Width: d.Width, Height: d.Height}
		if size.Width == 0 {
			size.Width = webmap.DefaultWidth
		}
		if size.Height == 0 {
			size.Height = webmap.DefaultHeight
		}
		cfg.Size = size
	}
	if d.Zoom != nil {
		cfg.MinZoom = d.Zoom.Min
		cfg.MaxZoom = d.Zoom.Max
		cfg.ZoomStart = d.Zoom.Start
	}
	return cfg, nil
}

// Build constructs the map and applies markers (in document order), click
// behaviours and the GeoJSON overlay.
func (d Document) Build(opts ...webmap.Option) (*webmap.Map, error) {
	cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	m, err := webmap.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("mapdoc: %s: %w", d.Source, err)
	}

	for idx, marker := range d.Markers {
		loc, err := location(marker.Location)
		if err != nil {
			return nil, fmt.Errorf("mapdoc: %s: marker %d: location: %w", d.Source, idx, err)
		}
		var addErr error
		switch marker.kind() {
		case markers.Circle:
			addErr = m.AddCircleMarker(loc, marker.options()...)
		case markers.Simple:
			addErr = m.AddSimpleMarker(loc, marker.options()...)
		default:
			addErr = fmt.Errorf("unknown kind %q", marker.Kind)
		}
		if addErr != nil {
			return nil, fmt.Errorf("mapdoc: %s: marker %d: %w", d.Source, idx, addErr)
		}
	}

	if d.LatLngPopover {
		if err := m.EnableLatLngPopover(); err != nil {
			return nil, fmt.Errorf("mapdoc: %s: %w", d.Source, err)
		}
	}
	if d.ClickMarker != nil {
		if err := m.EnableClickToAddMarker(d.ClickMarker.Popup); err != nil {
			return nil, fmt.Errorf("mapdoc: %s: %w", d.Source, err)
		}
	}
	if d.GeoJSON != nil {
		if err := m.SetGeoJSONOverlay(d.GeoJSON.Data, d.GeoJSON.Style.resolve()); err != nil {
			return nil, fmt.Errorf("mapdoc: %s: %w", d.Source, err)
		}
	}
	return m, nil
}

func (m Marker) options() []markers.Option {
	var opts []markers.Option
	if m.Popup != nil {
		opts = append(opts, markers.WithPopup(*m.Popup))
	}
	if m.ShowPopup != nil {
		opts = append(opts, markers.WithShowPopup(*m.ShowPopup))
	}
	if m.Radius != nil {
		opts = append(opts, markers.WithRadius(*m.Radius))
	}
	if m.LineColor != "" {
		opts = append(opts, markers.WithLineColor(m.LineColor))
	}
	if m.FillColor != "" {
		opts = append(opts, markers.WithFillColor(m.FillColor))
	}
	if m.FillOpacity != nil {
		opts = append(opts, markers.WithFillOpacity(*m.FillOpacity))
	}
	return opts
}

func (s *Style) resolve() webmap.GeoJSONStyle {
	style := webmap.DefaultGeoJSONStyle()
	if s == nil {
		return style
	}
	if s.LineColor != "" {
		style.LineColor = s.LineColor
	}
	if s.LineWeight != nil {
		style.LineWeight = *s.LineWeight
	}
	if s.LineOpacity != nil {
		style.LineOpacity = *s.LineOpacity
	}
	if s.FillColor != "" {
		style.FillColor = s.FillColor
	}
	if s.FillOpacity != nil {
		style.FillOpacity = *s.FillOpacity
	}
	return style
}
