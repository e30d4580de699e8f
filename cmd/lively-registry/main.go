// Command lively-registry scans an icon source tree and writes the TOML
// registry that lively embeds.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"livelyicons/internal/catalog"
	"livelyicons/internal/discovery"
	"livelyicons/internal/domain"
)

func main() {
	var (
		output string
		merge  string
		quiet  bool
	)
	pflag.StringVarP(&output, "output", "o", "", "write the registry here instead of stdout")
	pflag.StringVar(&merge, "merge", "", "keep keywords and overrides from an existing registry")
	pflag.BoolVarP(&quiet, "quiet", "q", false, "do not print a summary")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lively-registry [flags] DIR\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n, err := run(ctx, pflag.Arg(0), merge, output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lively-registry: %v\n", err)
		os.Exit(1)
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "%d icons\n", n)
	}
}

func run(ctx context.Context, dir, merge, output string) (int, error) {
	log.SetOutput(io.Discard)

	icons, err := discovery.ScanDir(ctx, dir)
	if err != nil {
		return 0, err
	}

	if merge != "" {
		data, err := os.ReadFile(merge)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", merge, err)
		}
		existing, err := catalog.Parse(data)
		if err != nil {
			return 0, err
		}
		icons = mergeIcons(icons, existing.Icons)
	}

	var buf bytes.Buffer
	if err := catalog.Encode(&buf, icons); err != nil {
		return 0, err
	}

	if output == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return len(icons), err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", output, err)
	}
	return len(icons), nil
}

// mergeIcons keeps the hand-edited fields of icons that already have a
// registry entry. Entries whose component file is gone are dropped.
func mergeIcons(scanned, existing []domain.Icon) []domain.Icon {
	byName := make(map[string]domain.Icon, len(existing))
	for _, icon := range existing {
		byName[icon.Name] = icon
	}

	out := make([]domain.Icon, len(scanned))
	for i, icon := range scanned {
		if old, ok := byName[icon.Name]; ok {
			icon.Category = old.Category
			icon.Motion = old.Motion
			icon.Keywords = old.Keywords
			if old.Component != "" {
				icon.Component = old.Component
			}
		}
		out[i] = icon
	}
	return out
}
