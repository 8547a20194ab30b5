package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"scrollhead/internal/domain"
	"scrollhead/internal/eventbus"
	"scrollhead/internal/header"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = ".scrollhead.toml"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration written as "200ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	Strategy   string           `toml:"strategy"` // "offset" or "index"
	Items      int              `toml:"items"`
	Header     HeaderSettings   `toml:"header"`
	Throttle   ThrottleSettings `toml:"throttle"`
	UISettings UISettings       `toml:"ui"`
}

// HeaderSettings tunes classification and the height animation
type HeaderSettings struct {
	Threshold               float64  `toml:"threshold"`
	ExpandedHeight          float64  `toml:"expanded_height"` // rows
	AnimationDuration       Duration `toml:"animation_duration"`
	InitialPositionOverride bool     `toml:"initial_position_override"`
}

// ThrottleSettings tunes the row-visibility throttle
type ThrottleSettings struct {
	Window Duration `toml:"window"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ScrollStep    int      `toml:"scroll_step"`
	WheelStep     int      `toml:"wheel_step"`
	FrameInterval Duration `toml:"frame_interval"`
	HistorySize   int      `toml:"history_size"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Strategy: string(domain.StrategyOffset),
		Items:    100,
		Header: HeaderSettings{
			Threshold:               header.DefaultThreshold,
			ExpandedHeight:          header.DefaultExpandedHeight,
			AnimationDuration:       Duration(header.DefaultAnimationDuration),
			InitialPositionOverride: true,
		},
		Throttle: ThrottleSettings{
			Window: Duration(header.DefaultThrottleWindow),
		},
		UISettings: UISettings{
			ScrollStep:    2,
			WheelStep:     3,
			FrameInterval: Duration(16 * time.Millisecond),
			HistorySize:   200,
		},
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if _, err := domain.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.Items < 0:
		return fmt.Errorf("%w: items must not be negative", ErrInvalid)
	case c.Header.Threshold < 0:
		return fmt.Errorf("%w: header.threshold must not be negative", ErrInvalid)
	case c.Header.ExpandedHeight < 0:
		return fmt.Errorf("%w: header.expanded_height must not be negative", ErrInvalid)
	case c.Header.AnimationDuration < 0:
		return fmt.Errorf("%w: header.animation_duration must not be negative", ErrInvalid)
	case c.Throttle.Window < 0:
		return fmt.Errorf("%w: throttle.window must not be negative", ErrInvalid)
	case c.UISettings.ScrollStep < 1:
		return fmt.Errorf("%w: ui.scroll_step must be at least 1", ErrInvalid)
	case c.UISettings.WheelStep < 1:
		return fmt.Errorf("%w: ui.wheel_step must be at least 1", ErrInvalid)
	case c.UISettings.FrameInterval <= 0:
		return fmt.Errorf("%w: ui.frame_interval must be positive", ErrInvalid)
	case c.UISettings.HistorySize < 1:
		return fmt.Errorf("%w: ui.history_size must be at least 1", ErrInvalid)
	}
	return nil
}

// HeaderOptions converts the configuration into controller options
func (c *Config) HeaderOptions() header.Options {
	opts := header.DefaultOptions()
	if s, err := domain.ParseStrategy(c.Strategy); err == nil {
		opts.Strategy = s
	}
	opts.Threshold = c.Header.Threshold
	opts.ExpandedHeight = c.Header.ExpandedHeight
	opts.AnimationDuration = c.Header.AnimationDuration.Std()
	opts.InitialPositionOverride = c.Header.InitialPositionOverride
	opts.ThrottleWindow = c.Throttle.Window.Std()
	return opts
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

// NewConfigService creates a config service bound to path, or to
// DefaultFileName in the working directory when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the bound file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Encode(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Encode renders the configuration as TOML
func Encode(config *Config) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
