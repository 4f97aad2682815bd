package colorsource

import (
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/infrastructure/config"
)

// ConfigAdapter exposes the [colors] tables of the config file as a
// preference store. It reads through get so reloads are picked up.
type ConfigAdapter struct {
	get func() *config.Config
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(get func() *config.Config) *ConfigAdapter {
	return &ConfigAdapter{get: get}
}

// Lookup implements port.PreferenceStore for color keys only.
func (a *ConfigAdapter) Lookup(key string) (string, bool) {
	if a.get == nil {
		return "", false
	}
	cfg := a.get()
	if cfg == nil {
		return "", false
	}
	role, mode, ok := entity.ParseColorSettingKey(key)
	if !ok {
		return "", false
	}
	colors := cfg.Colors.Light
	if mode == entity.ModeDark {
		colors = cfg.Colors.Dark
	}
	v, ok := colors[role.String()]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
