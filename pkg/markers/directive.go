package markers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/render/template"
	"github.com/goliatone/go-mapgen/pkg/templates"
)

// Kind identifies a marker variant.
type Kind string

const (
	Simple Kind = "simple"
	Circle Kind = "circle"
)

// Defaults applied before options.
const (
	DefaultPopupText   = "Pop Text"
	DefaultRadius      = 500
	DefaultLineColor   = "black"
	DefaultFillColor   = "black"
	DefaultFillOpacity = 0.6
)

// Template returns the asset rendered for this kind.
func (k Kind) Template() string {
	switch k {
	case Simple:
		return templates.SimpleMarker
	case Circle:
		return templates.CircleMarker
	default:
		return ""
	}
}

// Directive is one marker ready to render.
type Directive struct {
	Kind     Kind
	Index    int
	Name     string
	Template string
	Params   map[string]any
}

// Name builds the script identifier for the index-th marker of a kind.
func Name(kind Kind, index int) string {
	return string(kind) + "_marker_" + strconv.Itoa(index)
}

// NewSimple builds a stock Leaflet marker directive.
func NewSimple(loc geo.Location, index int, opts ...Option) Directive {
	p := apply(opts)
	return newDirective(Simple, index, loc, map[string]any{
		"popup":      p.ShowPopup,
		"popup_text": p.PopupText,
	})
}

// NewCircle builds a circle marker directive. Colors and opacity are passed
// through as given.
func NewCircle(loc geo.Location, index int, opts ...Option) Directive {
	p := apply(opts)
	return newDirective(Circle, index, loc, map[string]any{
		"popup":        p.ShowPopup,
		"popup_text":   p.PopupText,
		"radius":       strconv.Itoa(p.Radius),
		"line_color":   p.LineColor,
		"fill_color":   p.FillColor,
		"fill_opacity": geo.FormatFloat(p.FillOpacity),
	})
}

func newDirective(kind Kind, index int, loc geo.Location, params map[string]any) Directive {
	name := Name(kind, index)
	params["name"] = name
	params["lat"] = loc.LatString()
	params["lon"] = loc.LngString()
	return Directive{
		Kind:     kind,
		Index:    index,
		Name:     name,
		Template: kind.Template(),
		Params:   params,
	}
}

// Render produces the script fragment for d, trimmed of surrounding
// whitespace.
func Render(r template.TemplateRenderer, d Directive) (string, error) {
	if r == nil {
		return "", fmt.Errorf("markers: renderer is required")
	}
	if d.Template == "" {
		return "", fmt.Errorf("markers: directive %q has no template", d.Name)
	}
	out, err := r.RenderTemplate(d.Template, d.Params)
	if err != nil {
		return "", fmt.Errorf("markers: render %s: %w", d.Name, err)
	}
	return strings.TrimSpace(out), nil
}
