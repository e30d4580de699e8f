package domain

import "livelyicons/internal/motion"

// Icon represents one icon component in the catalog
type Icon struct {
	Name      string            `toml:"name"`                // kebab-case, e.g. "heart-pulse"
	Component string            `toml:"component,omitempty"` // PascalCase component name
	Category  string            `toml:"category"`
	Motion    motion.MotionType `toml:"motion"` // default motion family
	Keywords  []string          `toml:"keywords,omitempty"`
	Source    string            `toml:"-"` // file it was discovered in, "" for built-ins
}
