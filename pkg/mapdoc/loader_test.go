package mapdoc_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapdoc"
	"github.com/goliatone/go-mapgen/pkg/testsupport"
	"github.com/goliatone/go-mapgen/pkg/webmap"
)

func TestLoad_YAMLAndJSONBuildSamePage(t *testing.T) {
	yamlDoc, err := mapdoc.Load(filepath.Join("testdata", "portland.yaml"))
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	jsonDoc, err := mapdoc.Load(filepath.Join("testdata", "portland.json"))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}

	yamlDoc.Source, jsonDoc.Source = "", ""
	if diff := cmp.Diff(yamlDoc, jsonDoc); diff != "" {
		t.Fatalf("documents differ (-yaml +json):\n%s", diff)
	}

	yamlPage := renderDoc(t, yamlDoc)
	jsonPage := renderDoc(t, jsonDoc)
	if diff := cmp.Diff(yamlPage, jsonPage); diff != "" {
		t.Fatalf("pages differ (-yaml +json):\n%s", diff)
	}
}

func TestBuild_AppliesEveryDirective(t *testing.T) {
	doc, err := mapdoc.Load(filepath.Join("testdata", "portland.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	m, err := doc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Kind() != webmap.KindGeoJSON {
		t.Fatalf("expected geojson map")
	}
	if m.MarkerCount() != 3 {
		t.Fatalf("expected 3 markers, got %d", m.MarkerCount())
	}

	page, err := m.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertOrdered(t, page,
		"minZoom: 2",
		"maxZoom: 16",
		".setView([45.5, -122.3], 12)",
		"mapbox.control-room",
		`simple_marker_1.bindPopup("Portland, OR");`,
		"var circle_marker_1 = L.circle([45.52, -122.68], 250, {",
		"color: 'red',",
		"fillColor: '#f03',",
		"fillOpacity: 0.3",
		`circle_marker_1.bindPopup("Pioneer Square");`,
		"var simple_marker_2 = L.marker([45.53, -122.66])",
		"map.on('click', latLngPop);",
		`new_mark.bindPopup("Dropped pin");`,
		"fillColor: 'green',",
		"weight: 2,",
		`fetch("us-states.json")`,
	)
	if strings.Contains(page, "simple_marker_2.bindPopup") {
		t.Fatalf("show_popup: false should suppress the popup")
	}
	if !strings.Contains(page, `style="width: 800px; height: 600px"`) {
		t.Fatalf("expected document size")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/minimal.yml": {Data: []byte("location: [0, 0]\nfullscreen: true\n")},
	}

	doc, err := mapdoc.LoadFS(fsys, "maps/minimal.yml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := doc.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if diff := cmp.Diff(geo.At(0, 0), *cfg.Location); diff != "" {
		t.Fatalf("location mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cfg.Size.(webmap.Fullscreen); !ok {
		t.Fatalf("expected fullscreen size, got %T", cfg.Size)
	}

	if _, err := mapdoc.LoadFS(fsys, "maps/missing.yml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestBuild_PartialZoomBlockKeepsDefaults(t *testing.T) {
	doc, err := mapdoc.Parse([]byte("location: [45.5, -122.3]\nzoom:\n  start: 5\n"), "partial.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	page := renderDoc(t, doc)

	testsupport.AssertOrdered(t, page,
		"minZoom: 1,",
		"maxZoom: 18\n",
		".setView([45.5, -122.3], 5);",
	)
	if strings.Contains(page, "maxZoom: 0") {
		t.Fatalf("partial zoom block must not zero the other bounds")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{name: "empty", data: "  \n", want: "is empty"},
		{name: "syntax", data: "location: [1, 2\n", want: "invalid JSON or YAML"},
		{name: "missing location", data: "tiles: OpenStreetMap\n", want: "location"},
		{name: "short location", data: "location: [45.5]\n", want: "location"},
		{name: "out of range", data: "location: [95, 0]\n", want: "latitude"},
		{name: "bad kind", data: "location: [0, 0]\nmarkers:\n  - kind: square\n    location: [0, 0]\n", want: "marker 0: unknown kind"},
		{name: "bad marker location", data: "location: [0, 0]\nmarkers:\n  - location: [0, 0]\n  - location: [1]\n", want: "marker 1: location"},
		{name: "radius on simple", data: "location: [0, 0]\nmarkers:\n  - location: [0, 0]\n    radius: 10\n", want: "marker 0: radius"},
		{name: "fullscreen with size", data: "location: [0, 0]\nfullscreen: true\nwidth: 10\n", want: "fullscreen"},
		{name: "geojson without data", data: "location: [0, 0]\ngeojson:\n  data: \"\"\n", want: "geojson.data"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapdoc.Parse([]byte(tc.data), "maps/test.yaml")
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
			if !strings.Contains(err.Error(), "maps/test.yaml") {
				t.Fatalf("expected source in %q", err.Error())
			}
		})
	}
}

func TestParse_KindIsCaseInsensitive(t *testing.T) {
	doc, err := mapdoc.Parse([]byte(`{"location":[1,2],"markers":[{"kind":"Circle","location":[1,2]}]}`), "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, err := doc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	page, err := m.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "L.circle([1, 2], 500, {") {
		t.Fatalf("expected default circle marker")
	}
}

func TestBuild_ConfigurationErrorsCarrySource(t *testing.T) {
	doc, err := mapdoc.Parse([]byte("location: [0, 0]\ntiles: cloudmade\n"), "keyless.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = doc.Build()
	if !errors.Is(err, webmap.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if !strings.Contains(err.Error(), "keyless.yaml") {
		t.Fatalf("expected source in %q", err.Error())
	}
}

func renderDoc(t *testing.T, doc mapdoc.Document) string {
	t.Helper()

	m, err := doc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	page, err := m.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return page
}
