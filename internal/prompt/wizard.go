package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/mapdoc"
	"github.com/goliatone/go-mapgen/pkg/markers"
	"github.com/goliatone/go-mapgen/pkg/tiles"
	"github.com/goliatone/go-mapgen/pkg/webmap"
)

const customTilesOption = "Custom URL"

// Wizard asks for the pieces of a map document one prompt at a time.
type Wizard struct {
	driver Driver
	tiles  *tiles.Registry
}

// NewWizard builds a wizard over driver. A nil registry uses the built-in
// tile providers.
func NewWizard(driver Driver, registry *tiles.Registry) *Wizard {
	if registry == nil {
		registry = tiles.Default()
	}
	return &Wizard{driver: driver, tiles: registry}
}

// Run asks for the map center, tile provider (and API key or attribution
// when needed), zoom, an optional first marker and the click behaviours.
func (w *Wizard) Run(ctx context.Context) (mapdoc.Document, error) {
	doc := mapdoc.Document{Source: "interactive"}

	lat, err := w.askFloat(ctx, "Latitude", validateLat)
	if err != nil {
		return mapdoc.Document{}, err
	}
	lng, err := w.askFloat(ctx, "Longitude", validateLng)
	if err != nil {
		return mapdoc.Document{}, err
	}
	doc.Location = []float64{lat, lng}

	if err := w.askTiles(ctx, &doc); err != nil {
		return mapdoc.Document{}, err
	}

	zoom, err := w.driver.Input(ctx, InputConfig{
		Message:   "Initial zoom level",
		Default:   strconv.Itoa(webmap.DefaultZoomStart),
		Validator: validateInt,
	})
	if err != nil {
		return mapdoc.Document{}, err
	}
	if start, _ := strconv.Atoi(strings.TrimSpace(zoom)); start != webmap.DefaultZoomStart {
		doc.Zoom = &mapdoc.Zoom{Start: start}
	}

	addMarker, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add a marker at the center?", Default: true})
	if err != nil {
		return mapdoc.Document{}, err
	}
	if addMarker {
		text, err := w.driver.Input(ctx, InputConfig{Message: "Marker popup text", Default: markers.DefaultPopupText})
		if err != nil {
			return mapdoc.Document{}, err
		}
		doc.Markers = append(doc.Markers, mapdoc.Marker{
			Kind:     markers.Simple,
			Location: []float64{lat, lng},
			Popup:    &text,
		})
	}

	if doc.LatLngPopover, err = w.driver.Confirm(ctx, ConfirmConfig{Message: "Show coordinates on click?"}); err != nil {
		return mapdoc.Document{}, err
	}
	clickMarker, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Drop a marker on click?"})
	if err != nil {
		return mapdoc.Document{}, err
	}
	if clickMarker {
		text, err := w.driver.Input(ctx, InputConfig{
			Message: "Click marker popup text",
			Help:    "Leave empty to show the clicked coordinates.",
		})
		if err != nil {
			return mapdoc.Document{}, err
		}
		doc.ClickMarker = &mapdoc.ClickMarker{Popup: strings.TrimSpace(text)}
	}

	return doc, nil
}

func (w *Wizard) askTiles(ctx context.Context, doc *mapdoc.Document) error {
	names := w.tiles.List()
	options := make([]string, 0, len(names)+1)
	defaultIndex := 0
	for _, name := range names {
		p, _ := w.tiles.Get(name)
		if p.Name == tiles.Normalize(tiles.DefaultSelector) {
			defaultIndex = len(options)
		}
		options = append(options, p.Title)
	}
	options = append(options, customTilesOption)

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Tile provider",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return fmt.Errorf("prompt: invalid tile selection %d", idx)
	}

	if options[idx] == customTilesOption {
		url, err := w.driver.Input(ctx, InputConfig{
			Message:   "Tile URL template",
			Help:      "For example https://{s}.tile.example.org/{z}/{x}/{y}.png",
			Validator: required("tile URL"),
		})
		if err != nil {
			return err
		}
		attr, err := w.driver.Input(ctx, InputConfig{
			Message:   "Attribution",
			Validator: required("attribution"),
		})
		if err != nil {
			return err
		}
		doc.Tiles = strings.TrimSpace(url)
		doc.Attribution = strings.TrimSpace(attr)
		return nil
	}

	provider, _ := w.tiles.Get(names[idx])
	doc.Tiles = provider.Title
	if provider.RequiresKey {
		key, err := w.driver.Password(ctx, InputConfig{
			Message:   provider.Title + " API key",
			Validator: required("API key"),
		})
		if err != nil {
			return err
		}
		doc.APIKey = strings.TrimSpace(key)
	}
	return nil
}

func (w *Wizard) askFloat(ctx context.Context, message string, validate func(float64) error) (float64, error) {
	raw, err := w.driver.Input(ctx, InputConfig{
		Message: message,
		Validator: func(s string) error {
			v, err := parseFloat(s)
			if err != nil {
				return err
			}
			return validate(v)
		},
	})
	if err != nil {
		return 0, err
	}
	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	if err := validate(v); err != nil {
		return 0, err
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("prompt: %q is not a number", s)
	}
	return v, nil
}

func validateLat(v float64) error {
	if v < -90 || v > 90 {
		return fmt.Errorf("prompt: latitude must be within [-90, 90]")
	}
	return nil
}

func validateLng(v float64) error {
	if v < -180 || v > 180 {
		return fmt.Errorf("prompt: longitude must be within [-180, 180]")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("prompt: %q is not a whole number", s)
	}
	return nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("prompt: %s is required", field)
		}
		return nil
	}
}
