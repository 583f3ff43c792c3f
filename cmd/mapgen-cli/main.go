package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-mapgen/internal/prompt"
	"github.com/goliatone/go-mapgen/pkg/mapdoc"
	"github.com/goliatone/go-mapgen/pkg/sanitize"
	"github.com/goliatone/go-mapgen/pkg/webmap"
)

type options struct {
	config         string
	output         string
	stdout         bool
	atomic         bool
	interactive    bool
	sanitizePopups bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "map document (JSON or YAML)")
	flag.StringVar(&opts.output, "output", webmap.DefaultOutputPath, "output HTML file")
	flag.BoolVar(&opts.stdout, "stdout", false, "write the page to stdout instead of a file")
	flag.BoolVar(&opts.atomic, "atomic", false, "write the output file atomically (temp file + rename)")
	flag.BoolVar(&opts.interactive, "interactive", false, "ask for the map settings in the terminal")
	flag.BoolVar(&opts.sanitizePopups, "sanitize", false, "strip unsafe HTML from popup text")
	logLevel := flag.String("log-level", "warn", "log level (debug|info|warn|error)")
	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		log.Fatalf("invalid -log-level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, opts, os.Stdout, logger, prompt.NewSurveyDriver())
	stop()

	if code := exitCode(err); code != 0 {
		if code != 130 {
			log.Printf("mapgen: %v", err)
		}
		os.Exit(code)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer, logger *slog.Logger, driver prompt.Driver) error {
	doc, err := loadDocument(ctx, opts, driver)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}

	mapOpts := []webmap.Option{webmap.WithLogger(logger)}
	if opts.sanitizePopups {
		mapOpts = append(mapOpts, webmap.WithPopupSanitizer(sanitize.Popup))
	}

	m, err := doc.Build(mapOpts...)
	if err != nil {
		return fmt.Errorf("build map: %w", err)
	}

	if opts.stdout {
		if _, err := m.WriteTo(stdout); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	write := m.WriteToFile
	if opts.atomic {
		write = m.WriteToFileAtomic
	}
	if err := write(opts.output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("map written", "path", opts.output, "markers", m.MarkerCount(), "type", m.Kind())
	fmt.Fprintf(stdout, "Map written to %s\n", opts.output)
	return nil
}

// exitCode maps a run error to the process status: 130 when the user
// aborted the prompts, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrAborted):
		return 130
	default:
		return 1
	}
}

func loadDocument(ctx context.Context, opts options, driver prompt.Driver) (mapdoc.Document, error) {
	switch {
	case strings.TrimSpace(opts.config) != "":
		return mapdoc.Load(opts.config)
	case opts.interactive:
		return prompt.NewWizard(driver, nil).Run(ctx)
	default:
		return mapdoc.Document{}, fmt.Errorf("either -config or -interactive is required")
	}
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(raw)))
	return level, err
}
