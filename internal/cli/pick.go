package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"livelyicons/internal/catalog"
	"livelyicons/internal/config"
	"livelyicons/internal/discovery"
	"livelyicons/internal/domain"
	"livelyicons/internal/eventbus"
	"livelyicons/internal/ui"
)

// forwardedEvents reach the picker through the program
var forwardedEvents = []eventbus.EventType{
	eventbus.EventScanStarted,
	eventbus.EventIconDiscovered,
	eventbus.EventIconRemoved,
	eventbus.EventScanCompleted,
	eventbus.EventError,
}

func (a *App) pick(ctx context.Context, args []string) error {
	var (
		configPath string
		dir        string
		watch      bool
	)
	fs := a.newFlagSet("pick", &configPath)
	fs.StringVar(&dir, "dir", "", "icon source directory or registry file")
	fs.BoolVarP(&watch, "watch", "w", false, "watch --dir for added and removed icons")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: pick takes no arguments", ErrUsage)
	}

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := config.NewConfigServiceWithBus(bus, configPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !fs.Changed("dir") {
		dir = cfg.IconsDir
	}

	scanDir := dir != "" && !isRegistryFile(dir)
	if watch && !scanDir {
		return fmt.Errorf("%w: --watch needs --dir pointing at a source directory", ErrUsage)
	}

	store := catalog.NewMemoryIconStore()
	if !scanDir {
		icons, err := loadIcons(ctx, dir)
		if err != nil {
			return err
		}
		for _, icon := range icons {
			store.AddIcon(icon)
		}
	}

	opts := ui.Options{
		Store:    store,
		Bus:      bus,
		Config:   cfg,
		Scanning: scanDir,
		Watching: watch,
		CopyFunc: a.Copy,
	}
	if scanDir {
		opts.ScanDir = dir
	}
	model := ui.NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 1024)
	for _, eventType := range forwardedEvents {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		})
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	if scanDir {
		discoverySvc := discovery.NewDiscoveryService(bus)
		defer discoverySvc.StopScan()
		if err := discoverySvc.StartScan(ctx, []string{dir}); err != nil {
			return fmt.Errorf("failed to start scan: %w", err)
		}
	}

	if watch {
		w, err := discovery.Watch(ctx, bus, dir)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	if chosen := model.Chosen(); chosen != "" {
		fmt.Fprintln(a.Stdout, chosen)
	}
	return nil
}

// loadIcons reads the catalog: the built-in registry when dir is empty, a
// registry file when dir ends in .toml, otherwise a scan of dir
func loadIcons(ctx context.Context, dir string) ([]domain.Icon, error) {
	switch {
	case dir == "":
		reg, err := catalog.Builtin()
		if err != nil {
			return nil, err
		}
		return reg.Icons, nil

	case isRegistryFile(dir):
		data, err := os.ReadFile(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read registry: %w", err)
		}
		reg, err := catalog.Parse(data)
		if err != nil {
			return nil, err
		}
		return reg.Icons, nil

	default:
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open icons dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is neither a directory nor a .toml registry", dir)
		}
		return discovery.ScanDir(ctx, dir)
	}
}

func isRegistryFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
