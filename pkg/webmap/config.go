package webmap

import (
	"fmt"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/tiles"
)

const (
	DefaultWidth      = 960
	DefaultHeight     = 500
	DefaultMinZoom    = 1
	DefaultMaxZoom    = 18
	DefaultZoomStart  = 10
	DefaultOutputPath = "map.html"
)

// Size selects how the map element is sized: Pixels or Fullscreen.
type Size interface {
	isSize()
}

// Pixels gives the map element an explicit width and height.
type Pixels struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Fullscreen stretches the map over the whole browser window. No size
// attribute is emitted in this mode.
type Fullscreen struct{}

func (Pixels) isSize()     {}
func (Fullscreen) isSize() {}

func (p Pixels) style() string {
	return fmt.Sprintf(`style="width: %dpx; height: %dpx"`, p.Width, p.Height)
}

// Config is the construction input of a Map. Start from DefaultConfig.
type Config struct {
	// Location is the map center and is required.
	Location *geo.Location
	// Size defaults to Pixels{960, 500} when nil.
	Size Size
	// Tiles is a provider name (case and whitespace insensitive) or a
	// literal Leaflet URL template. Defaults to OpenStreetMap.
	Tiles string
	// APIKey is only consulted for providers that require one (Cloudmade).
	APIKey string
	// Attribution is required when Tiles is a custom URL template.
	Attribution string
	// Zoom bounds and initial zoom. Each zero field takes its default
	// (1, 18, 10). Values are not range checked.
	MinZoom   int
	MaxZoom   int
	ZoomStart int
}

// DefaultConfig returns a Config centered on loc with every other field set
// to its default.
func DefaultConfig(loc geo.Location) Config {
	return Config{
		Location:  &loc,
		Size:      Pixels{Width: DefaultWidth, Height: DefaultHeight},
		Tiles:     tiles.DefaultSelector,
		MinZoom:   DefaultMinZoom,
		MaxZoom:   DefaultMaxZoom,
		ZoomStart: DefaultZoomStart,
	}
}

func (c Config) withDefaults() Config {
	if c.Size == nil {
		c.Size = Pixels{Width: DefaultWidth, Height: DefaultHeight}
	}
	if c.Tiles == "" {
		c.Tiles = tiles.DefaultSelector
	}
	if c.MinZoom == 0 {
		c.MinZoom = DefaultMinZoom
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = DefaultMaxZoom
	}
	if c.ZoomStart == 0 {
		c.ZoomStart = DefaultZoomStart
	}
	if c.Location != nil {
		loc := *c.Location
		c.Location = &loc
	}
	return c
}

func (c Config) validate() error {
	if c.Location == nil {
		return fmt.Errorf("%w: a lat/lng location is required to initialize the map", ErrConfiguration)
	}
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	switch s := c.Size.(type) {
	case Pixels:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: map size must be positive, got %dx%d", ErrConfiguration, s.Width, s.Height)
		}
	case Fullscreen:
	default:
		return fmt.Errorf("%w: unsupported size %T", ErrConfiguration, c.Size)
	}
	return nil
}
