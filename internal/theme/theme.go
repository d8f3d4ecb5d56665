// Package theme models the editor's color scheme selection. Next to the
// built-in light and dark schemes there is an optional scheme fed by the
// desktop environment's color file; when that file is missing the option
// simply disappears from the cycle.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Theme selects one of the editor color schemes.
type Theme int

const (
	// Light is the default bright scheme.
	Light Theme = iota
	// Dark uses pure black backgrounds.
	Dark
	// Omarchy mirrors the colors of the active Omarchy desktop theme.
	Omarchy
)

// String returns the display name shown in the theme toggle.
func (t Theme) String() string {
	switch t {
	case Light:
		return "Hell"
	case Dark:
		return "Dunkel"
	case Omarchy:
		return "Omarchy"
	}
	return "Hell"
}

// Next cycles to the following theme. The desktop scheme is part of the
// cycle only when its color file is available.
func (t Theme) Next(hasOmarchy bool) Theme {
	switch t {
	case Light:
		return Dark
	case Dark:
		if hasOmarchy {
			return Omarchy
		}
		return Light
	default:
		return Light
	}
}

// Color is one RGB triple from the desktop color file.
type Color struct {
	R, G, B uint8
}

// ParseHex converts "#1a2b3c" or "1a2b3c" into a Color.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, false
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, false
	}
	return c, true
}

// ColorsPath is the desktop theme color file relative to $HOME.
const ColorsPath = ".config/omarchy/current/theme/colors.toml"

// LoadColors reads the desktop color file and returns the parsable
// entries keyed by their TOML name (e.g. "background", "accent").
// A missing or unreadable file yields (nil, false); that is not an
// error, it only disables the desktop scheme.
func LoadColors() (map[string]Color, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, false
	}
	return loadColorsFile(filepath.Join(home, ColorsPath))
}

func loadColorsFile(path string) (map[string]Color, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, false
	}

	colors := make(map[string]Color)
	for key, value := range raw {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if c, ok := ParseHex(s); ok {
			colors[key] = c
		}
	}
	return colors, true
}
