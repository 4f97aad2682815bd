package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector reads GTK_THEME; a theme name containing "dark" means dark.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a detector reading the process environment.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string { return detectorNameEnv }

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int { return priorityEnv }

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	theme := d.getenv("GTK_THEME")
	if theme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(theme), "dark"), true
}
