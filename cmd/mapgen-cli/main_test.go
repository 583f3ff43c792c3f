package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-mapgen/internal/prompt"
)

type abortingDriver struct{}

func (abortingDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return "", prompt.ErrAborted
}

func (abortingDriver) Password(context.Context, prompt.InputConfig) (string, error) {
	return "", prompt.ErrAborted
}

func (abortingDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, prompt.ErrAborted
}

func (abortingDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, prompt.ErrAborted
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "aborted", err: prompt.ErrAborted, want: 130},
		{name: "wrapped abort", err: fmt.Errorf("load map: %w", prompt.ErrAborted), want: 130},
		{name: "failure", err: errors.New("boom"), want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestRun_InteractiveAbortReturnsAborted(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), options{interactive: true}, &out, discardLogger(), abortingDriver{})
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if exitCode(err) != 130 {
		t.Fatalf("expected exit code 130, got %d", exitCode(err))
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output after abort, got %q", out.String())
	}
}

func TestRun_StdoutWritesPage(t *testing.T) {
	var out bytes.Buffer
	opts := options{config: filepath.Join("testdata", "simple.yaml"), stdout: true}
	if err := run(context.Background(), opts, &out, discardLogger(), abortingDriver{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	page := out.String()
	if !strings.Contains(page, ".setView([45.5, -122.3], 10);") {
		t.Fatalf("expected default zoom view in page:\n%s", page)
	}
	if !strings.Contains(page, "Portland, OR") {
		t.Fatalf("expected marker popup in page")
	}
}

func TestRun_WritesFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "map.html")
	var out bytes.Buffer
	opts := options{config: filepath.Join("testdata", "simple.yaml"), output: output, atomic: true}
	if err := run(context.Background(), opts, &out, discardLogger(), abortingDriver{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Portland, OR") {
		t.Fatalf("expected marker popup in written page")
	}
	if got, want := out.String(), "Map written to "+output+"\n"; got != want {
		t.Fatalf("unexpected status line %q, want %q", got, want)
	}
}

func TestRun_Failures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	err := run(context.Background(), options{config: missing, stdout: true}, io.Discard, discardLogger(), abortingDriver{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if exitCode(err) != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode(err))
	}

	if err := run(context.Background(), options{}, io.Discard, discardLogger(), abortingDriver{}); err == nil {
		t.Fatalf("expected error without -config or -interactive")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
