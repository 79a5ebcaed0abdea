package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Haseeb-Arshad/chime/internal/logger"
	"github.com/Haseeb-Arshad/chime/internal/zone"
)

// Config holds the bootstrap settings the chime binary starts from. Values
// changed at runtime are persisted through the preference store, not here.
type Config struct {
	// StateFile is the path of the JSON key-value store holding persisted
	// preferences and the alarm.
	StateFile string `yaml:"state_file"`
	// Timezone is the initial timezone id: "local" or an IANA name.
	Timezone string `yaml:"timezone"`
	// TimeFormat selects the initial display format, "12h" or "24h".
	TimeFormat string `yaml:"time_format"`
	// Theme is the widget theme preference mirrored for renderers.
	Theme string `yaml:"theme"`
	// LogLevel is the minimum level for log output.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the config path used when none is given.
	DefaultConfigFilename = "chime.yaml"
	// DefaultStateFilename is the default preference store path.
	DefaultStateFilename = "chime-state.json"
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
	// DefaultFilePermissions restricts config and state files to the owner.
	DefaultFilePermissions = 0o600

	// Format12Hour renders hours 1-12 with an AM/PM period.
	Format12Hour = "12h"
	// Format24Hour renders hours 0-23 with no period.
	Format24Hour = "24h"

	// ThemeDark is the default widget theme.
	ThemeDark = "dark"
	// ThemeLight is the alternate widget theme.
	ThemeLight = "light"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidTimeFormat is returned for formats other than 12h/24h.
	errInvalidTimeFormat = errors.New(`time format must be "12h" or "24h"`)
	// errInvalidTheme is returned for themes other than dark/light.
	errInvalidTheme = errors.New(`theme must be "dark" or "light"`)
	// errInvalidLogLevel is returned for unrecognized log levels.
	errInvalidLogLevel = errors.New("unrecognized log level")
)

// Default returns a configuration with every field at its default.
func Default() *Config {
	cfg := new(Config)
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates it. A
// missing file is not an error: the clock must run from defaults even
// when nothing was ever persisted.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save validates cfg and writes it to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for empty fields and rejects values outside the
// accepted sets.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFilename
	}

	if cfg.Timezone == "" {
		cfg.Timezone = zone.Local
	}

	switch cfg.TimeFormat {
	case "":
		cfg.TimeFormat = Format12Hour
	case Format12Hour, Format24Hour:
	default:
		return fmt.Errorf("%w: %q", errInvalidTimeFormat, cfg.TimeFormat)
	}

	switch cfg.Theme {
	case "":
		cfg.Theme = ThemeDark
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: %q", errInvalidTheme, cfg.Theme)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}

// Use24Hour reports whether the configured format is the 24-hour one.
func (c *Config) Use24Hour() bool {
	return c.TimeFormat == Format24Hour
}
