// Package mapgen generates self-contained Leaflet map pages: a center, a tile
// layer, markers, click behaviours and an optional GeoJSON overlay, rendered
// to a single HTML file.
//
//	loc := mapgen.At(45.5, -122.3)
//	m, err := mapgen.NewMap(mapgen.DefaultConfig(loc))
//	if err != nil {
//		return err
//	}
//	_ = m.AddSimpleMarker(loc, markers.WithPopup("Portland, OR"))
//	return m.WriteToFile("portland.html")
package mapgen

import (
	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapdoc"
	"github.com/goliatone/go-mapgen/pkg/render/template"
	"github.com/goliatone/go-mapgen/pkg/templates"
	"github.com/goliatone/go-mapgen/pkg/webmap"
)

// Map aliases webmap.Map so callers only need the root package for the
// common path.
type Map = webmap.Map

// Config aliases webmap.Config.
type Config = webmap.Config

// Option aliases webmap.Option.
type Option = webmap.Option

// Location aliases geo.Location.
type Location = geo.Location

// ErrConfiguration is returned for invalid map configuration.
var ErrConfiguration = webmap.ErrConfiguration

// At returns the location at lat/lng.
func At(lat, lng float64) Location {
	return geo.At(lat, lng)
}

// DefaultConfig returns a fully-defaulted configuration centered on loc.
func DefaultConfig(loc Location) Config {
	return webmap.DefaultConfig(loc)
}

// NewMap exposes the webmap constructor from the top-level module.
func NewMap(cfg Config, opts ...Option) (*Map, error) {
	return webmap.New(cfg, opts...)
}

// NewRenderer constructs the template renderer over the embedded bundle (or
// the bundle selected by opts), keeping the engine type hidden.
func NewRenderer(opts ...templates.Option) (template.TemplateRenderer, error) {
	return templates.NewRenderer(opts...)
}

// LoadDocument reads a JSON or YAML map document and builds the map it
// describes.
func LoadDocument(path string, opts ...Option) (*Map, error) {
	doc, err := mapdoc.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build(opts...)
}

// GenerateHTML loads the map document at path and renders it. It is the
// simplest entry point for callers that just want the page.
func GenerateHTML(path string, opts ...Option) (string, error) {
	m, err := LoadDocument(path, opts...)
	if err != nil {
		return "", err
	}
	return m.Render()
}
