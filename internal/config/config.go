package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"livelyicons/internal/animation"
	"livelyicons/internal/eventbus"
	"livelyicons/internal/motion"
)

// FileName is the config file name inside the lively config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	IconsDir   string            `toml:"icons_dir" env:"LIVELY_ICONS_DIR"`
	Animation  AnimationSettings `toml:"animation"`
	Search     SearchSettings    `toml:"search"`
	UISettings UISettings        `toml:"ui"`
}

// AnimationSettings is the ambient animation context
type AnimationSettings struct {
	Enabled        bool               `toml:"enabled" env:"LIVELY_ANIMATIONS_ENABLED"`
	ReducedMotion  bool               `toml:"reduced_motion" env:"LIVELY_REDUCED_MOTION"`
	DefaultMotion  motion.MotionType  `toml:"default_motion" env:"LIVELY_DEFAULT_MOTION"`
	DefaultTrigger motion.TriggerType `toml:"default_trigger" env:"LIVELY_DEFAULT_TRIGGER"`
}

// SearchSettings tunes the search command and the picker
type SearchSettings struct {
	Limit    int  `toml:"limit" env:"LIVELY_SEARCH_LIMIT"` // 0 means unlimited
	Keywords bool `toml:"keywords"`                        // also match icon keywords
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPreview bool   `toml:"show_preview"`
	UsePager    bool   `toml:"use_pager"`
	Sort        string `toml:"sort"` // initial picker sort: score, name, category or motion
}

// Context returns the animation context the resolver needs
func (c *Config) Context() animation.Context {
	return animation.Context{
		Enabled:       c.Animation.Enabled,
		ReducedMotion: c.Animation.ReducedMotion,
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "lively", FileName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields the defaults; environment overrides always apply.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, IconsDir: cfg.IconsDir})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv layers LIVELY_* environment variables over cfg and normalizes
// the enum fields
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	normalize(cfg)
	return nil
}

func normalize(cfg *Config) {
	m, ok := motion.ParseMotionType(string(cfg.Animation.DefaultMotion))
	if !ok && cfg.Animation.DefaultMotion != "" {
		log.Printf("Unknown default_motion %q, using %s", cfg.Animation.DefaultMotion, m)
	}
	cfg.Animation.DefaultMotion = m

	t, ok := motion.ParseTriggerType(string(cfg.Animation.DefaultTrigger))
	if !ok && cfg.Animation.DefaultTrigger != "" {
		log.Printf("Unknown default_trigger %q, using %s", cfg.Animation.DefaultTrigger, t)
	}
	cfg.Animation.DefaultTrigger = t

	if cfg.Search.Limit < 0 {
		cfg.Search.Limit = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Animation: AnimationSettings{
			Enabled:        true,
			DefaultMotion:  motion.DefaultMotion,
			DefaultTrigger: motion.DefaultTrigger,
		},
		Search: SearchSettings{
			Limit:    20,
			Keywords: true,
		},
		UISettings: UISettings{
			ShowPreview: true,
		},
	}
}
