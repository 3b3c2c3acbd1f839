// Package theme holds the dark/light preference flag.
package theme

import "strings"

// Theme is the page color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	// Default applies when nothing was saved.
	Default = Dark

	// Key is the preference key the theme is stored under.
	Key = "theme"
)

// Parse normalizes a stored or submitted value.
func Parse(raw string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
	}
	return "", false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the Font Awesome class shown on the toggle button.
func (t Theme) Icon() string {
	if t == Dark {
		return "fas fa-sun"
	}
	return "fas fa-moon"
}

func (t Theme) String() string { return string(t) }

// Band is a half-open brightness interval [Min, Max).
type Band struct {
	Min, Max float64
}

// At maps u in [0,1) into the band.
func (b Band) At(u float64) float64 {
	return b.Min + u*(b.Max-b.Min)
}

// InitialBand is used before any theme is applied.
var InitialBand = Band{Min: 0.3, Max: 1.0}

// StarBand returns the star brightness band readable on the theme's
// background.
func (t Theme) StarBand() Band {
	if t == Light {
		return Band{Min: 0.1, Max: 0.4}
	}
	return Band{Min: 0.6, Max: 1.0}
}
