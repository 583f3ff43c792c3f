package webmap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-mapgen/pkg/templates"
)

var pageTemplates = map[Kind]string{
	KindBase:    templates.PageBase,
	KindGeoJSON: templates.PageGeoJSON,
}

// Render produces the full page. It does not modify the map, so repeated
// calls return identical output.
func (m *Map) Render() (string, error) {
	name, ok := pageTemplates[m.slots.kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown map type %q", ErrConfiguration, m.slots.kind)
	}
	out, err := m.renderer.RenderTemplate(name, m.slots.templateData())
	if err != nil {
		return "", fmt.Errorf("webmap: render %s page: %w", m.slots.kind, err)
	}
	return out, nil
}

// WriteTo renders the page into w.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	html, err := m.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, html)
	return int64(n), err
}

// WriteToFile renders the page and writes it to path (map.html when empty),
// replacing any existing file. Errors from the file system are returned
// unwrapped.
func (m *Map) WriteToFile(path string) (err error) {
	if path == "" {
		path = DefaultOutputPath
	}
	html, err := m.Render()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err = io.WriteString(f, html); err != nil {
		return err
	}
	m.logger.Debug("webmap: page written", "path", path, "bytes", len(html))
	return nil
}

// WriteToFileAtomic is WriteToFile through a temporary file and rename, so
// readers never observe a partially written page.
func (m *Map) WriteToFileAtomic(path string) error {
	if path == "" {
		path = DefaultOutputPath
	}
	html, err := m.Render()
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, strings.NewReader(html)); err != nil {
		return err
	}
	m.logger.Debug("webmap: page written atomically", "path", path, "bytes", len(html))
	return nil
}
