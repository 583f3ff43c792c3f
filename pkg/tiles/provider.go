package tiles

import (
	"errors"
	"strings"
	"unicode"

	"github.com/goliatone/go-mapgen/pkg/templates"
)

// CustomProvider is the provider name recorded for literal URL templates.
const CustomProvider = "Custom"

// DefaultSelector is the selector used when none is given.
const DefaultSelector = "OpenStreetMap"

var (
	// ErrAPIKeyRequired is returned when a provider needs an API key and the
	// selection does not carry one.
	ErrAPIKeyRequired = errors.New("tiles: API key required")
	// ErrAttributionRequired is returned when a custom URL template is used
	// without an attribution string.
	ErrAttributionRequired = errors.New("tiles: attribution required for custom tiles")
)

// Provider is a built-in tile source backed by two template assets.
type Provider struct {
	Name                string
	Title               string
	BodyTemplate        string
	AttributionTemplate string
	RequiresKey         bool
}

// Layer is a resolved tile source, ready to be written into a page.
type Layer struct {
	Provider    string
	URL         string
	Attribution string
	Custom      bool
}

// Selection describes what the caller asked for.
type Selection struct {
	Selector    string
	APIKey      string
	Attribution string
}

// Normalize lower-cases the selector and strips all whitespace, so
// " Mapbox Dark " and "mapboxdark" select the same provider.
func Normalize(selector string) string {
	var b strings.Builder
	b.Grow(len(selector))
	for _, r := range selector {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func builtin(name, title string, requiresKey bool) Provider {
	return Provider{
		Name:                name,
		Title:               title,
		BodyTemplate:        templates.TileBody(name),
		AttributionTemplate: templates.TileAttribution(name),
		RequiresKey:         requiresKey,
	}
}

// Builtins returns the fixed provider table.
func Builtins() []Provider {
	return []Provider{
		builtin("openstreetmap", "OpenStreetMap", false),
		builtin("mapbox", "Mapbox", false),
		builtin("cloudmade", "Cloudmade", true),
		builtin("mapboxdark", "Mapbox Dark", false),
	}
}
