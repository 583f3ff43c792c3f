package markers

// Params holds the tunables shared by marker kinds. Simple markers ignore the
// circle-only fields.
type Params struct {
	PopupText   string
	ShowPopup   bool
	Radius      int
	LineColor   string
	FillColor   string
	FillOpacity float64

	filter func(string) string
}

// DefaultParams returns the parameter set applied before options.
func DefaultParams() Params {
	return Params{
		PopupText:   DefaultPopupText,
		ShowPopup:   true,
		Radius:      DefaultRadius,
		LineColor:   DefaultLineColor,
		FillColor:   DefaultFillColor,
		FillOpacity: DefaultFillOpacity,
	}
}

// Option customises marker parameters.
type Option func(*Params)

// WithPopup sets the popup text. HTML is allowed ("<b>Title</b><br>Line 2").
func WithPopup(text string) Option {
	return func(p *Params) {
		p.PopupText = text
		p.ShowPopup = true
	}
}

// WithoutPopup disables the popup binding.
func WithoutPopup() Option {
	return func(p *Params) {
		p.ShowPopup = false
	}
}

// WithShowPopup toggles the popup binding.
func WithShowPopup(show bool) Option {
	return func(p *Params) {
		p.ShowPopup = show
	}
}

// WithRadius sets the circle radius in pixels.
func WithRadius(radius int) Option {
	return func(p *Params) {
		p.Radius = radius
	}
}

// WithLineColor sets the circle outline color (name or hex).
func WithLineColor(color string) Option {
	return func(p *Params) {
		p.LineColor = color
	}
}

// WithFillColor sets the circle fill color (name or hex).
func WithFillColor(color string) Option {
	return func(p *Params) {
		p.FillColor = color
	}
}

// WithFillOpacity sets the circle fill opacity, expected in [0,1].
func WithFillOpacity(opacity float64) Option {
	return func(p *Params) {
		p.FillOpacity = opacity
	}
}

// WithPopupFilter rewrites the popup text, e.g. through a sanitizer. It runs
// after the other options regardless of its position.
func WithPopupFilter(filter func(string) string) Option {
	return func(p *Params) {
		if filter == nil {
			return
		}
		prev := p.filter
		p.filter = func(s string) string {
			if prev != nil {
				s = prev(s)
			}
			return filter(s)
		}
	}
}

func apply(opts []Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&p)
	}
	if p.filter != nil {
		p.PopupText = p.filter(p.PopupText)
	}
	return p
}
