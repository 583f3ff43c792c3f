package templates

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/tiles/*.tmpl
var embeddedTemplates embed.FS

// FS exposes the embedded bundle rooted at the template directory, so asset
// names are relative ("base", "tiles/mapbox_tiles").
func FS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen, but fall back to raw FS so assets remain usable.
		return embeddedTemplates
	}
	return sub
}
