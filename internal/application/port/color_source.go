// Package port defines the interfaces between the status bar engine and its
// widgets, settings sources and host.
package port

import "github.com/bnema/statusbar/internal/domain/entity"

// ColorSource maps a role and mode to the color the user configured for it.
// Reads are cheap and uncached; missing values resolve to documented defaults.
type ColorSource interface {
	ColorOf(role entity.Role, mode entity.Mode) entity.ARGB
}

// ColorSourceFunc adapts a plain function to ColorSource.
type ColorSourceFunc func(role entity.Role, mode entity.Mode) entity.ARGB

// ColorOf implements ColorSource.
func (f ColorSourceFunc) ColorOf(role entity.Role, mode entity.Mode) entity.ARGB {
	return f(role, mode)
}

// PreferenceStore is a read-only view of host settings.
type PreferenceStore interface {
	// Lookup returns the raw stored value and whether the key is set.
	Lookup(key string) (string, bool)
}

// SettingReader reads typed host settings, falling back to def when a key is
// unset or unparsable.
type SettingReader interface {
	Int(key string, def int) int
	Bool(key string, def bool) bool
}
