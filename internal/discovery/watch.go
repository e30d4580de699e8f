package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"livelyicons/internal/eventbus"
)

// Watcher publishes IconDiscovered and IconRemoved events as component
// files appear and disappear under a directory tree
type Watcher struct {
	bus   eventbus.EventBus
	root  string
	fsw   *fsnotify.Watcher
	mu    sync.Mutex
	known map[string]string // file path -> icon name
	done  chan struct{}
}

// Watch starts watching root and every directory below it that a scan
// would descend into. Stop it by cancelling ctx or calling Close.
func Watch(ctx context.Context, bus eventbus.EventBus, root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		bus:   bus,
		root:  root,
		fsw:   fsw,
		known: make(map[string]string),
		done:  make(chan struct{}),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(root, path, d.Name()) {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		if name, ok := IconNameFromFile(path); ok {
			w.known[path] = name
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}

	go w.loop(ctx)
	log.Printf("Watching %s for icon changes", root)

	return w, nil
}

// Close stops the watcher and waits for its loop to exit
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			w.fsw.Close()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "Icon watcher failed", Err: err})
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	switch {
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		info, err := os.Stat(ev.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if !skipDir(w.root, ev.Name, info.Name()) {
				if err := w.fsw.Add(ev.Name); err != nil {
					log.Printf("Failed to watch %s: %v", ev.Name, err)
				}
			}
			return
		}
		icon, ok := IconFromFile(ev.Name)
		if !ok {
			return
		}
		w.mu.Lock()
		_, seen := w.known[ev.Name]
		w.known[ev.Name] = icon.Name
		w.mu.Unlock()
		if !seen {
			w.bus.Publish(eventbus.IconDiscoveredEvent{Icon: icon})
		}

	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		w.forget(ev.Name)
	}
}

// forget drops path, or every file below it when path was a directory.
// A name stays in the catalog while another file still provides it.
func (w *Watcher) forget(path string) {
	prefix := path + string(filepath.Separator)

	w.mu.Lock()
	gone := make(map[string]string) // file path -> icon name
	for file, name := range w.known {
		if file == path || strings.HasPrefix(file, prefix) {
			gone[file] = name
			delete(w.known, file)
		}
	}
	survivors := make(map[string]string) // icon name -> remaining file
	for _, name := range gone {
		for file, other := range w.known {
			if other == name {
				survivors[name] = file
				break
			}
		}
	}
	w.mu.Unlock()

	for _, watched := range w.fsw.WatchList() {
		if watched == path || strings.HasPrefix(watched, prefix) {
			if err := w.fsw.Remove(watched); err != nil {
				log.Printf("Failed to unwatch %s: %v", watched, err)
			}
		}
	}

	published := make(map[string]bool)
	for file, name := range gone {
		if published[name] {
			continue
		}
		published[name] = true

		if other, ok := survivors[name]; ok {
			if icon, ok := IconFromFile(other); ok {
				w.bus.Publish(eventbus.IconDiscoveredEvent{Icon: icon})
			}
			continue
		}
		w.bus.Publish(eventbus.IconRemovedEvent{Name: name, Source: file})
	}
}
