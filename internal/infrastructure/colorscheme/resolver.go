// Package colorscheme detects whether the desktop prefers dark or light
// surfaces. The demo uses it to pick the initial app background behind the
// status bar.
package colorscheme

import (
	"context"
	"slices"
	"strings"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/logging"
)

const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// Resolver asks detectors in priority order. An explicit "light" or "dark"
// override wins over every detector.
type Resolver struct {
	override  string
	detectors []port.ColorSchemeDetector
}

// NewResolver creates a resolver. override is "auto", "light" or "dark".
func NewResolver(override string, detectors ...port.ColorSchemeDetector) *Resolver {
	sorted := slices.Clone(detectors)
	slices.SortStableFunc(sorted, func(a, b port.ColorSchemeDetector) int {
		return b.Priority() - a.Priority()
	})
	return &Resolver{override: override, detectors: sorted}
}

// NewDefaultResolver creates a resolver over the environment and gsettings
// detectors.
func NewDefaultResolver(override string) *Resolver {
	return NewResolver(override, NewEnvDetector(), NewGsettingsDetector())
}

// Resolve returns the preference. Without any answer the desktop is assumed
// dark.
func (r *Resolver) Resolve(ctx context.Context) port.ColorSchemePreference {
	log := logging.FromContext(ctx)

	switch strings.ToLower(strings.TrimSpace(r.override)) {
	case "dark", "prefer-dark":
		return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
	case "light", "prefer-light":
		return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
	}

	for _, d := range r.detectors {
		if !d.Available() {
			continue
		}
		if prefersDark, ok := d.Detect(); ok {
			log.Debug().Str("detector", d.Name()).Bool("prefers_dark", prefersDark).Msg("color scheme detected")
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: d.Name()}
		}
	}
	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}
