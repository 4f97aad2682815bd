package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector reads org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	run func() ([]byte, error)
}

// NewGsettingsDetector creates a detector shelling out to gsettings.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: func() ([]byte, error) {
		return exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	}}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string { return detectorNameGsettings }

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int { return priorityGsettings }

// Available implements port.ColorSchemeDetector.
func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector. "default" is no answer.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	out, err := d.run()
	if err != nil {
		return false, false
	}
	switch strings.Trim(strings.TrimSpace(string(out)), `'"`) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
