// Package colorsource resolves role colors from host settings.
package colorsource

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/logging"
)

// Source implements port.ColorSource over a chain of preference stores. The
// first store holding a valid value wins; the palette covers the rest.
//
// Source also implements port.PreferenceStore so the same chain serves
// non-color settings.
type Source struct {
	log      *zerolog.Logger
	stores   []port.PreferenceStore
	defaults Palette
}

// NewSource creates a source. Stores are consulted in order.
func NewSource(ctx context.Context, defaults Palette, stores ...port.PreferenceStore) *Source {
	ctx = logging.WithComponent(ctx, "colorsource")
	return &Source{
		log:      logging.FromContext(ctx),
		stores:   stores,
		defaults: defaults,
	}
}

// ColorOf implements port.ColorSource.
func (s *Source) ColorOf(role entity.Role, mode entity.Mode) entity.ARGB {
	key := entity.ColorSettingKey(role, mode)
	for _, store := range s.stores {
		raw, ok := store.Lookup(key)
		if !ok {
			continue
		}
		c, err := entity.ParseColorSetting(raw)
		if err != nil {
			s.log.Debug().Err(err).Str("key", key).Msg("ignoring invalid color preference")
			continue
		}
		return c
	}
	return s.defaults.ColorOf(role, mode)
}

// Lookup implements port.PreferenceStore.
func (s *Source) Lookup(key string) (string, bool) {
	for _, store := range s.stores {
		if v, ok := store.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Int returns an integer setting, or def when unset or malformed.
func (s *Source) Int(key string, def int) int {
	raw, ok := s.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("ignoring invalid integer preference")
		return def
	}
	return v
}

// Bool returns an integer setting read as a flag (non-zero is true).
func (s *Source) Bool(key string, def bool) bool {
	d := 0
	if def {
		d = 1
	}
	return s.Int(key, d) != 0
}
