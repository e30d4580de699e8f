// Package catalog holds the icon registry, categorization rules, an
// in-memory store and keyword-aware lookup.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"livelyicons/internal/domain"
	"livelyicons/internal/motion"
)

//go:embed icons.toml
var builtinRegistry []byte

// RegistryVersion is the schema version written by Encode
const RegistryVersion = 1

// Registry is the on-disk form of an icon list
type Registry struct {
	Version int           `toml:"version"`
	Icons   []domain.Icon `toml:"icons"`
}

// Builtin parses the registry compiled into the binary
func Builtin() (*Registry, error) {
	return Parse(builtinRegistry)
}

// Parse decodes a TOML registry and normalizes its entries
func Parse(data []byte) (*Registry, error) {
	var reg Registry
	if err := toml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse icon registry: %w", err)
	}

	seen := make(map[string]bool, len(reg.Icons))
	icons := reg.Icons[:0]
	for _, icon := range reg.Icons {
		if icon.Name == "" {
			continue
		}
		if seen[icon.Name] {
			log.Printf("Registry: duplicate icon %q ignored", icon.Name)
			continue
		}
		seen[icon.Name] = true
		icons = append(icons, normalize(icon))
	}
	reg.Icons = icons

	return &reg, nil
}

// Encode writes icons as a TOML registry, sorted by name
func Encode(w io.Writer, icons []domain.Icon) error {
	sorted := make([]domain.Icon, len(icons))
	copy(sorted, icons)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	enc := toml.NewEncoder(w)
	enc.SetArraysMultiline(false)
	if err := enc.Encode(Registry{Version: RegistryVersion, Icons: sorted}); err != nil {
		return fmt.Errorf("failed to encode icon registry: %w", err)
	}
	return nil
}

// Names returns the icon names in registry order
func (r *Registry) Names() []string {
	names := make([]string, len(r.Icons))
	for i, icon := range r.Icons {
		names[i] = icon.Name
	}
	return names
}

// normalize fills in whatever metadata the entry left out
func normalize(icon domain.Icon) domain.Icon {
	if icon.Component == "" {
		icon.Component = ComponentName(icon.Name)
	}
	if icon.Category == "" {
		icon.Category = Categorize(icon.Name)
	}
	if icon.Motion == "" {
		icon.Motion = DefaultMotion(icon.Name)
	} else if m, ok := motion.ParseMotionType(string(icon.Motion)); ok {
		icon.Motion = m
	} else {
		log.Printf("Registry: icon %q has unknown motion %q, using %s", icon.Name, icon.Motion, m)
		icon.Motion = m
	}
	return icon
}
