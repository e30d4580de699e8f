package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"livelyicons/internal/catalog"
	"livelyicons/internal/domain"
	"livelyicons/internal/eventbus"
)

// maxDepth bounds how far below the root component files are looked for
const maxDepth = 5

// skipDirs are never descended into
var skipDirs = map[string]bool{
	"node_modules":  true,
	"dist":          true,
	"build":         true,
	"coverage":      true,
	"__tests__":     true,
	"__snapshots__": true,
	"__mocks__":     true,
}

// DiscoveryService finds icon components in the filesystem
type DiscoveryService interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	ds := &discoveryService{
		bus: bus,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			if err := ds.StartScan(context.Background(), event.Paths); err != nil {
				log.Printf("Scan request ignored: %v", err)
			}
		}
	})

	return ds
}

// StartScan scans roots in the background, publishing an IconDiscovered
// event per icon and ScanCompleted at the end
func (ds *discoveryService) StartScan(ctx context.Context, roots []string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Paths: roots})

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()

		found := 0
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()
			cancel()

			log.Printf("Scan completed: %d icons", found)
			ds.bus.Publish(eventbus.ScanCompletedEvent{IconsFound: found})
		}()

		seen := make(map[string]bool)
		for _, root := range roots {
			if scanCtx.Err() != nil {
				return
			}
			err := walk(scanCtx, root, func(icon domain.Icon) {
				if seen[icon.Name] {
					return
				}
				seen[icon.Name] = true
				found++
				ds.bus.Publish(eventbus.IconDiscoveredEvent{Icon: icon})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Error scanning directory %s: %v", root, err)
				ds.bus.Publish(eventbus.ErrorEvent{
					Message: fmt.Sprintf("Failed to scan %s", root),
					Err:     err,
				})
			}
		}
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// ScanDir synchronously collects the icons under root. The first file to
// claim a name wins.
func ScanDir(ctx context.Context, root string) ([]domain.Icon, error) {
	var icons []domain.Icon
	seen := make(map[string]bool)
	err := walk(ctx, root, func(icon domain.Icon) {
		if seen[icon.Name] {
			return
		}
		seen[icon.Name] = true
		icons = append(icons, icon)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return icons, nil
}

// IconFromFile builds catalog metadata for a component file
func IconFromFile(path string) (domain.Icon, bool) {
	name, ok := IconNameFromFile(path)
	if !ok {
		return domain.Icon{}, false
	}
	return domain.Icon{
		Name:      name,
		Component: catalog.ComponentName(name),
		Category:  catalog.Categorize(name),
		Motion:    catalog.DefaultMotion(name),
		Source:    path,
	}, true
}

func walk(ctx context.Context, root string, emit func(domain.Icon)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == root {
				return err
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if skipDir(root, path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if icon, ok := IconFromFile(path); ok {
			emit(icon)
		}
		return nil
	})
}

func skipDir(root, path, name string) bool {
	if skipDirs[name] || strings.HasPrefix(name, ".") {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return true
	}
	return strings.Count(rel, string(filepath.Separator)) >= maxDepth
}
