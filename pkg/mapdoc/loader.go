package mapdoc

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/markers"
)

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("mapdoc: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the document at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("mapdoc: nil filesystem")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("mapdoc: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data as JSON, falling back to YAML, and validates the
// result. source is only used in error messages.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("mapdoc: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("mapdoc: parse %s: invalid JSON or YAML", source)
		}
	}
	doc.Source = source

	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (d Document) validate() error {
	if _, err := location(d.Location); err != nil {
		return fmt.Errorf("mapdoc: %s: location: %w", d.Source, err)
	}
	if d.Fullscreen && (d.Width != 0 || d.Height != 0) {
		return fmt.Errorf("mapdoc: %s: fullscreen cannot be combined with width/height", d.Source)
	}
	for idx, m := range d.Markers {
		switch m.kind() {
		case markers.Simple, markers.Circle:
		default:
			return fmt.Errorf("mapdoc: %s: marker %d: unknown kind %q", d.Source, idx, m.Kind)
		}
		if _, err := location(m.Location); err != nil {
			return fmt.Errorf("mapdoc: %s: marker %d: location: %w", d.Source, idx, err)
		}
		if m.Radius != nil && m.kind() != markers.Circle {
			return fmt.Errorf("mapdoc: %s: marker %d: radius is only valid for circle markers", d.Source, idx)
		}
	}
	if d.GeoJSON != nil && strings.TrimSpace(d.GeoJSON.Data) == "" {
		return fmt.Errorf("mapdoc: %s: geojson.data is required", d.Source)
	}
	return nil
}

func (m Marker) kind() markers.Kind {
	if m.Kind == "" {
		return markers.Simple
	}
	return markers.Kind(strings.ToLower(strings.TrimSpace(string(m.Kind))))
}

func location(raw []float64) (geo.Location, error) {
	return geo.FromSlice(raw)
}
