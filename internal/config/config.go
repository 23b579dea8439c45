// Package config provides configuration types, defaults, and persistence for xivtypes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/xivtypes/internal/log"
)

// Output formats accepted by Format.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Color modes accepted by Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrInvalidFormat is returned when format is not json or yaml.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidColor is returned when color is not auto, always or never.
	ErrInvalidColor = errors.New("invalid color mode")
	// ErrInvalidLogLevel is returned when log_level is not a known level.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds all configuration options for xivtypes.
type Config struct {
	Format   string `mapstructure:"format" yaml:"format"`
	Color    string `mapstructure:"color" yaml:"color"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Format:   FormatYAML,
		Color:    ColorAuto,
		Debug:    false,
		LogFile:  "",
		LogLevel: "debug",
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatYAML, FormatTable:
	default:
		return fmt.Errorf("%w: format must be \"yaml\", \"json\", or \"table\", got %q", ErrInvalidFormat, c.Format)
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be \"auto\", \"always\", or \"never\", got %q", ErrInvalidColor, c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level resolves LogLevel. An empty LogLevel means debug.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.LevelDebug, nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelDebug, fmt.Errorf("%w: log_level must be \"debug\", \"info\", \"warn\", or \"error\", got %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// DefaultConfigDir returns ~/.config/xivtypes, falling back to the relative
// .xivtypes directory when the home directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xivtypes"
	}
	return filepath.Join(home, ".config", "xivtypes")
}

// DefaultConfigPath returns the config file path written by "config init".
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultConfigTemplate returns the default config file content with comments.
func DefaultConfigTemplate() string {
	return `# xivtypes configuration
#
# Every key can also be set through the environment with the XIVTYPES_
# prefix, e.g. XIVTYPES_FORMAT=json.

# Output format for list, lookup and dump: "yaml", "json", or "table"
format: yaml

# Colored diff and validate output: "auto", "always", or "never"
color: auto

# Write a debug log. Without log_file the log goes to stderr.
debug: false
# log_file: /tmp/xivtypes.log

# Lowest level written to the debug log: "debug", "info", "warn", or "error"
log_level: debug
`
}

// WriteDefaultConfig creates a config file with default settings.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
