package mapgen

import (
	"io/fs"

	"github.com/goliatone/go-mapgen/pkg/templates"
)

// EmbeddedTemplates exposes the built-in page, marker and tile templates so
// callers can copy or extend them without importing the templates package
// directly.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}
