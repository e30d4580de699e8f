// Package cli implements the lively command line: search, list, categories,
// resolve, pick and version.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"livelyicons/internal/config"
	"livelyicons/internal/ui"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ErrUsage marks errors caused by bad arguments
var ErrUsage = errors.New("usage error")

// errNoMatch is returned by search when nothing matched
var errNoMatch = errors.New("no icons match")

const usage = `lively - animated icon tooling

Usage:
  lively [pick] [--dir DIR] [--watch]
  lively search <query...> [-n LIMIT] [--scores] [--keywords] [--copy] [--dir DIR]
  lively list [--category C] [--motion M] [--pager] [--dir DIR]
  lively categories [--dir DIR]
  lively resolve [ICON] [--motion M] [--trigger T] [--animated true|false]
                 [--reduced-motion] [--disabled]
  lively version
  lively help

Every command accepts --config PATH. Queries understand the filters
motion:<type> and category:<name>.
`

// App runs lively commands against injectable streams and side effects
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	// Copy writes to the clipboard
	Copy func(string) error
	// Pager shows long output interactively
	Pager func(io.Reader) error
}

// New creates an App wired to the system clipboard and the ov pager
func New(stdout, stderr io.Writer, version string) *App {
	return &App{
		Stdout:  stdout,
		Stderr:  stderr,
		Version: version,
		Copy:    clipboard.WriteAll,
		Pager:   ui.RunPager,
	}
}

// Run dispatches args (without the program name) and returns the exit code
func (a *App) Run(ctx context.Context, args []string) int {
	cmd := "pick"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "pick":
		err = a.pick(ctx, args)
	case "search":
		err = a.search(ctx, args)
	case "list":
		err = a.list(ctx, args)
	case "categories":
		err = a.categories(ctx, args)
	case "resolve":
		err = a.resolve(ctx, args)
	case "version":
		fmt.Fprintf(a.Stdout, "lively %s\n", a.Version)
	case "help":
		fmt.Fprint(a.Stdout, usage)
	default:
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}

	return a.exitCode(cmd, err)
}

func (a *App) exitCode(cmd string, err error) int {
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrUsage):
		log.Printf("%s: %v", cmd, err)
		fmt.Fprintf(a.Stderr, "lively: %v\n\n%s", err, usage)
		return ExitUsage
	case errors.Is(err, errNoMatch):
		fmt.Fprintf(a.Stderr, "lively: %v\n", err)
		return ExitError
	default:
		log.Printf("%s failed: %v", cmd, err)
		fmt.Fprintf(a.Stderr, "lively: %v\n", err)
		return ExitError
	}
}

// newFlagSet creates a flag set with the shared --config flag
func (a *App) newFlagSet(name string, configPath *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.StringVar(configPath, "config", "", "config file (default: user config dir)")
	return fs
}

// parseFlags parses args, mapping flag errors to ErrUsage
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// loadConfig reads the config file and environment; flags are applied by
// each command on top of the result
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.NewConfigServiceWithBus(nil, path).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
