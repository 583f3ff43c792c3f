package webmap

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-mapgen/pkg/render/template"
	"github.com/goliatone/go-mapgen/pkg/tiles"
)

// Option customises a Map beyond its Config.
type Option func(*options)

type options struct {
	renderer    template.TemplateRenderer
	tiles       *tiles.Registry
	logger      *slog.Logger
	popupFilter func(string) string
}

// WithRenderer injects the template registry. Build it once (for example
// with templates.NewRenderer) and share it between maps; when omitted each
// Map builds its own from the embedded bundle.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(o *options) {
		if renderer != nil {
			o.renderer = renderer
		}
	}
}

// WithTileRegistry replaces the built-in tile provider table.
func WithTileRegistry(registry *tiles.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.tiles = registry
		}
	}
}

// WithLogger routes debug output to logger. Maps are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPopupSanitizer filters every popup text (markers and click-to-add
// markers) through fn before rendering, e.g. sanitize.Popup.
func WithPopupSanitizer(fn func(string) string) Option {
	return func(o *options) {
		o.popupFilter = fn
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var defaultTiles = tiles.Default()
