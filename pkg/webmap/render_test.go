package webmap

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/testsupport"
)

func newTestMap(t *testing.T) *Map {
	t.Helper()

	loc := geo.At(45.5, -122.3)
	m, err := New(DefaultConfig(loc))
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	if err := m.AddSimpleMarker(loc); err != nil {
		t.Fatalf("add marker: %v", err)
	}
	return m
}

func TestRender_UnknownKind(t *testing.T) {
	m := newTestMap(t)
	m.slots.kind = Kind(99)

	if _, err := m.Render(); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if err := m.WriteToFile(filepath.Join(t.TempDir(), "map.html")); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration from write, got %v", err)
	}
}

func TestWriteToFile_MatchesRender(t *testing.T) {
	m := newTestMap(t)
	want, err := m.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	path := filepath.Join(t.TempDir(), "portland.html")
	if err := os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := m.WriteToFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := testsupport.MustReadFile(t, path); got != want {
		t.Fatalf("file content differs from render")
	}
}

func TestWriteToFile_DefaultPath(t *testing.T) {
	m := newTestMap(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := m.WriteToFile(""); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(DefaultOutputPath); err != nil {
		t.Fatalf("expected %s to exist: %v", DefaultOutputPath, err)
	}
}

func TestWriteToFile_MissingDirectory(t *testing.T) {
	m := newTestMap(t)
	path := filepath.Join(t.TempDir(), "missing", "map.html")

	err := m.WriteToFile(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *fs.PathError, got %T", err)
	}
	if errors.Is(err, ErrConfiguration) {
		t.Fatalf("io failures must not be reported as configuration errors")
	}
}

func TestWriteToFileAtomic_MatchesRender(t *testing.T) {
	m := newTestMap(t)
	want, err := m.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	path := filepath.Join(t.TempDir(), "atomic.html")
	if err := m.WriteToFileAtomic(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := testsupport.MustReadFile(t, path); got != want {
		t.Fatalf("file content differs from render")
	}

	if err := m.WriteToFileAtomic(filepath.Join(t.TempDir(), "missing", "map.html")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWriteTo_MatchesRender(t *testing.T) {
	m := newTestMap(t)

	rendered, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		n, err := m.WriteTo(w)
		if err != nil {
			return "", err
		}
		html, err := m.Render()
		if err == nil && int64(len(html)) != n {
			t.Fatalf("expected %d bytes written, got %d", len(html), n)
		}
		return html, err
	})
	if rendered != written {
		t.Fatalf("WriteTo output differs from Render")
	}
}

func TestConfigReturnsCopy(t *testing.T) {
	m := newTestMap(t)
	cfg := m.Config()
	cfg.Location.Lat = 0

	if got := m.Config().Location.Lat; got != 45.5 {
		t.Fatalf("config location mutated through accessor: %v", got)
	}
}
