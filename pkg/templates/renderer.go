package templates

import (
	"fmt"
	"io/fs"
	"os"

	rendertemplate "github.com/goliatone/go-mapgen/pkg/render/template"
	"github.com/goliatone/go-mapgen/pkg/render/template/gotemplate"
)

// Option configures NewRenderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS replaces the embedded bundle with another fs.FS laid out
// the same way.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// NewRenderer builds the template registry shared by map contexts. Build it
// once and pass it to every map via webmap.WithRenderer.
func NewRenderer(options ...Option) (rendertemplate.TemplateRenderer, error) {
	cfg := config{templateFS: FS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine, err := gotemplate.New(
		gotemplate.WithFS(cfg.templateFS),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		return nil, fmt.Errorf("templates: configure renderer: %w", err)
	}
	return engine, nil
}
