package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/mapdoc"
	"github.com/goliatone/go-mapgen/pkg/templates"
	"github.com/goliatone/go-mapgen/pkg/webmap"
)

type violation struct {
	file    string
	message string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nCheck map documents (JSON/YAML) parse and build. Directories are walked.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/maps"}
	}

	files, err := collect(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	var violations []violation
	for _, path := range files {
		if msg := lintFile(path, webmap.WithRenderer(renderer)); msg != "" {
			violations = append(violations, violation{file: path, message: msg})
		}
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				return violations[i].message < violations[j].message
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s\n", v.file, v.message)
		}
		os.Exit(1)
	}
	fmt.Printf("%d map document(s) ok\n", len(files))
}

func lintFile(path string, opts ...webmap.Option) string {
	doc, err := mapdoc.Load(path)
	if err != nil {
		return err.Error()
	}
	m, err := doc.Build(opts...)
	if err != nil {
		return err.Error()
	}
	if _, err := m.Render(); err != nil {
		return err.Error()
	}
	return ""
}

func collect(paths []string) ([]string, error) {
	var out []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() || !isMapDocument(path) {
				return nil
			}
			out = append(out, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func isMapDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
