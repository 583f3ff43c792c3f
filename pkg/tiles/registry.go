package tiles

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-mapgen/pkg/render/template"
)

// Registry stores providers by normalized name. A populated registry is only
// read during resolution, so one instance can back any number of maps.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Default returns a registry holding the built-in providers.
func Default() *Registry {
	r := NewRegistry()
	for _, p := range Builtins() {
		r.MustRegister(p)
	}
	return r
}

// Register adds a provider under Normalize(p.Name). Duplicates are rejected.
func (r *Registry) Register(p Provider) error {
	name := Normalize(p.Name)
	if name == "" {
		return fmt.Errorf("tiles: provider name is required")
	}
	if p.BodyTemplate == "" || p.AttributionTemplate == "" {
		return fmt.Errorf("tiles: provider %q needs body and attribution templates", name)
	}
	p.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("tiles: provider %q already registered", name)
	}
	r.providers[name] = p
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(p Provider) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Get retrieves a provider by selector.
func (r *Registry) Get(selector string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[Normalize(selector)]
	return p, ok
}

// Has reports whether the selector names a registered provider.
func (r *Registry) Has(selector string) bool {
	_, ok := r.Get(selector)
	return ok
}

// List returns the sorted provider names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a selection into a Layer. Registered providers have their
// body and attribution templates rendered (the API key is passed to the body
// as api_key). Anything else is treated as a literal URL template and needs
// an attribution.
func (r *Registry) Resolve(renderer template.TemplateRenderer, sel Selection) (Layer, error) {
	selector := strings.TrimSpace(sel.Selector)
	if selector == "" {
		selector = DefaultSelector
	}

	p, ok := r.Get(selector)
	if !ok {
		if strings.TrimSpace(sel.Attribution) == "" {
			return Layer{}, fmt.Errorf("%w: %q", ErrAttributionRequired, selector)
		}
		return Layer{
			Provider:    CustomProvider,
			URL:         selector,
			Attribution: sel.Attribution,
			Custom:      true,
		}, nil
	}

	if p.RequiresKey && strings.TrimSpace(sel.APIKey) == "" {
		return Layer{}, fmt.Errorf("%w: provider %q", ErrAPIKeyRequired, p.Name)
	}
	if renderer == nil {
		return Layer{}, fmt.Errorf("tiles: renderer is required to resolve %q", p.Name)
	}

	body, err := renderer.RenderTemplate(p.BodyTemplate, map[string]any{"api_key": sel.APIKey})
	if err != nil {
		return Layer{}, fmt.Errorf("tiles: render %q body: %w", p.Name, err)
	}
	attr, err := renderer.RenderTemplate(p.AttributionTemplate, nil)
	if err != nil {
		return Layer{}, fmt.Errorf("tiles: render %q attribution: %w", p.Name, err)
	}

	return Layer{
		Provider:    p.Name,
		URL:         strings.TrimSpace(body),
		Attribution: strings.TrimSpace(attr),
	}, nil
}
