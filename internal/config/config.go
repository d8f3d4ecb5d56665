// Package config loads and stores the per-user application settings:
// the chosen theme, the default author, and extra font directories.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcelzimmer/mzprotokoll/internal/theme"
	"github.com/marcelzimmer/mzprotokoll/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse = errors.New("failed to parse config")
	ErrConfigWrite = errors.New("failed to write config")
)

// Config holds the user-level settings. All fields are optional; the
// zero value together with Default() gives a working setup.
type Config struct {
	// Theme is "hell", "dunkel" or "omarchy".
	Theme string `yaml:"theme"`
	// AuthorName and AuthorCode preset the protocol keeper of new
	// documents.
	AuthorName string `yaml:"authorName"`
	AuthorCode string `yaml:"authorCode"`
	// FontDirs are extra directories searched for TTF fonts before the
	// system locations. Omitted from the file when unset so a saved
	// config loads back identically.
	FontDirs []string `yaml:"fontDirs,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{Theme: "dunkel"}
}

// ThemeValue maps the stored theme name onto a theme constant, falling
// back to dark for unknown names.
func (c *Config) ThemeValue() theme.Theme {
	switch c.Theme {
	case "hell":
		return theme.Light
	case "omarchy":
		return theme.Omarchy
	default:
		return theme.Dark
	}
}

// SetTheme stores the theme constant under its config name.
func (c *Config) SetTheme(t theme.Theme) {
	switch t {
	case theme.Light:
		c.Theme = "hell"
	case theme.Omarchy:
		c.Theme = "omarchy"
	default:
		c.Theme = "dunkel"
	}
}

// DefaultPath returns the standard config location,
// ~/.config/mzprotokoll/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "mzprotokoll", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults; a present but unreadable or malformed file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// An empty file counts as "no settings yet", like a missing one.
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	cfg := Default()
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	return nil
}
