package webmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/markers"
	"github.com/goliatone/go-mapgen/pkg/render/template"
	"github.com/goliatone/go-mapgen/pkg/templates"
	"github.com/goliatone/go-mapgen/pkg/tiles"
)

// defaultClickPopup is the JS expression shown by click-to-add markers when no
// text is given; lat and lng are locals of the generated click handler.
const defaultClickPopup = `"Latitude: " + lat + "<br>Longitude: " + lng `

// Map is one page under construction.
type Map struct {
	cfg         Config
	renderer    template.TemplateRenderer
	layer       tiles.Layer
	logger      *slog.Logger
	popupFilter func(string) string

	counters map[markers.Kind]int
	slots    slots
}

// New validates cfg, resolves the tile provider and fills the construction
// slots. On error no Map is returned.
func New(cfg Config, opts ...Option) (*Map, error) {
	o := options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	if o.tiles == nil {
		o.tiles = defaultTiles
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if o.renderer == nil {
		r, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("webmap: %w", err)
		}
		o.renderer = r
	}
	if err := checkBundle(o.renderer); err != nil {
		return nil, err
	}

	layer, err := o.tiles.Resolve(o.renderer, tiles.Selection{
		Selector:    cfg.Tiles,
		APIKey:      cfg.APIKey,
		Attribution: cfg.Attribution,
	})
	if err != nil {
		if errors.Is(err, tiles.ErrAPIKeyRequired) || errors.Is(err, tiles.ErrAttributionRequired) {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return nil, fmt.Errorf("webmap: resolve tiles: %w", err)
	}
	o.logger.Debug("webmap: tiles resolved", "provider", layer.Provider, "custom", layer.Custom)

	m := &Map{
		cfg:         cfg,
		renderer:    o.renderer,
		layer:       layer,
		logger:      o.logger,
		popupFilter: o.popupFilter,
		counters:    make(map[markers.Kind]int),
	}
	m.slots = slots{
		lat:         cfg.Location.LatString(),
		lon:         cfg.Location.LngString(),
		minZoom:     cfg.MinZoom,
		maxZoom:     cfg.MaxZoom,
		zoomStart:   cfg.ZoomStart,
		tiles:       layer.URL,
		attribution: layer.Attribution,
		kind:        KindBase,
	}
	if px, ok := cfg.Size.(Pixels); ok {
		m.slots.size = &px
	}
	return m, nil
}

// checkBundle verifies the renderer can resolve every required asset when it
// exposes a Lookup method (the pongo2 engine does).
func checkBundle(r template.TemplateRenderer) error {
	lookup, ok := r.(interface{ Lookup(name string) error })
	if !ok {
		return nil
	}
	for _, name := range templates.Required() {
		if err := lookup.Lookup(name); err != nil {
			return fmt.Errorf("%w: template bundle is missing %q: %w", ErrConfiguration, name, err)
		}
	}
	return nil
}

// AddSimpleMarker adds a stock Leaflet marker, with a "Pop Text" popup
// unless options say otherwise.
func (m *Map) AddSimpleMarker(loc geo.Location, opts ...markers.Option) error {
	return m.addMarker(markers.Simple, loc, opts, markers.NewSimple)
}

// AddCircleMarker adds a circle marker (radius in pixels, defaults 500,
// black outline and fill at 0.6 opacity).
func (m *Map) AddCircleMarker(loc geo.Location, opts ...markers.Option) error {
	return m.addMarker(markers.Circle, loc, opts, markers.NewCircle)
}

type factory func(geo.Location, int, ...markers.Option) markers.Directive

func (m *Map) addMarker(kind markers.Kind, loc geo.Location, opts []markers.Option, build factory) error {
	if err := loc.Validate(); err != nil {
		return fmt.Errorf("webmap: add %s marker: %w", kind, err)
	}
	if m.popupFilter != nil {
		opts = append(opts[:len(opts):len(opts)], markers.WithPopupFilter(m.popupFilter))
	}

	m.counters[kind]++
	directive := build(loc, m.counters[kind], opts...)

	fragment, err := markers.Render(m.renderer, directive)
	if err != nil {
		return fmt.Errorf("webmap: %w", err)
	}
	m.slots.markers = append(m.slots.markers, fragment)
	m.logger.Debug("webmap: marker added", "name", directive.Name)
	return nil
}

// EnableLatLngPopover shows the clicked latitude/longitude in a popup.
// Calling it again has no further effect.
func (m *Map) EnableLatLngPopover() error {
	out, err := m.renderer.RenderTemplate(templates.LatLngPopover, nil)
	if err != nil {
		return fmt.Errorf("webmap: render lat/lng popover: %w", err)
	}
	m.slots.latLngPopover = strings.TrimSpace(out)
	return nil
}

// EnableClickToAddMarker drops a draggable marker wherever the map is
// clicked (double-click removes it). The popup shows popupText, or the
// clicked coordinates when popupText is empty.
func (m *Map) EnableClickToAddMarker(popupText string) error {
	popup := defaultClickPopup
	if popupText != "" {
		if m.popupFilter != nil {
			popupText = m.popupFilter(popupText)
		}
		popup = `"` + popupText + `"`
	}

	out, err := m.renderer.RenderTemplate(templates.ClickForMarker, map[string]any{"popup": popup})
	if err != nil {
		return fmt.Errorf("webmap: render click-for-marker: %w", err)
	}
	m.slots.clickMarker = strings.TrimSpace(out)
	return nil
}

// SetGeoJSONOverlay overlays GeoJSON loaded by the browser from dataRef (URL
// or path, not checked). The map switches to the GeoJSON page for good;
// calling it again replaces the data reference and style.
func (m *Map) SetGeoJSONOverlay(dataRef string, style GeoJSONStyle) error {
	styleFragment, err := m.renderStyle(style)
	if err != nil {
		return err
	}
	m.slots.kind = KindGeoJSON
	m.slots.geoJSONRef = dataRef
	m.slots.geoJSONData = ""
	m.slots.geoJSONStyle = styleFragment
	m.logger.Debug("webmap: geojson overlay set", "ref", dataRef)
	return nil
}

// SetGeoJSONFeatures is SetGeoJSONOverlay with the features embedded in the
// page instead of fetched.
func (m *Map) SetGeoJSONFeatures(fc *geojson.FeatureCollection, style GeoJSONStyle) error {
	if fc == nil {
		return fmt.Errorf("%w: feature collection is required", ErrConfiguration)
	}
	payload, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("webmap: encode features: %w", err)
	}
	styleFragment, err := m.renderStyle(style)
	if err != nil {
		return err
	}
	m.slots.kind = KindGeoJSON
	m.slots.geoJSONRef = ""
	m.slots.geoJSONData = string(payload)
	m.slots.geoJSONStyle = styleFragment
	m.logger.Debug("webmap: inline geojson set", "features", len(fc.Features))
	return nil
}

func (m *Map) renderStyle(style GeoJSONStyle) (string, error) {
	out, err := m.renderer.RenderTemplate(templates.GeoJSONStyle, style.params())
	if err != nil {
		return "", fmt.Errorf("webmap: render geojson style: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Kind reports which page template Render will use.
func (m *Map) Kind() Kind {
	return m.slots.kind
}

// Tiles returns the tile layer resolved at construction.
func (m *Map) Tiles() tiles.Layer {
	return m.layer
}

// Config returns the effective configuration, defaults applied.
func (m *Map) Config() Config {
	cfg := m.cfg
	if cfg.Location != nil {
		loc := *cfg.Location
		cfg.Location = &loc
	}
	return cfg
}

// MarkerCount returns how many markers have been added.
func (m *Map) MarkerCount() int {
	return len(m.slots.markers)
}
