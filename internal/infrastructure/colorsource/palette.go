package colorsource

import "github.com/bnema/statusbar/internal/domain/entity"

// Built-in fallbacks for roles a palette leaves unset.
const (
	DefaultLightColor entity.ARGB = 0xFFFFFFFF
	DefaultDarkColor  entity.ARGB = 0x99000000

	defaultLightBatteryFrame entity.ARGB = 0x66FFFFFF
	defaultDarkBatteryFrame  entity.ARGB = 0x4D000000
)

// Palette holds a light and a dark color per role.
type Palette struct {
	Light map[entity.Role]entity.ARGB
	Dark  map[entity.Role]entity.ARGB
}

// DefaultPalette returns the colors used when no preference is set: opaque
// white icons on dark backgrounds, translucent black on light ones.
func DefaultPalette() Palette {
	p := Palette{
		Light: make(map[entity.Role]entity.ARGB),
		Dark:  make(map[entity.Role]entity.ARGB),
	}
	for _, role := range entity.AllRoles() {
		p.Light[role] = DefaultLightColor
		p.Dark[role] = DefaultDarkColor
	}
	p.Light[entity.RoleBatteryFrame] = defaultLightBatteryFrame
	p.Dark[entity.RoleBatteryFrame] = defaultDarkBatteryFrame
	return p
}

// ColorOf returns the palette color, falling back to the built-in defaults.
func (p Palette) ColorOf(role entity.Role, mode entity.Mode) entity.ARGB {
	colors, fallback := p.Light, DefaultLightColor
	if mode == entity.ModeDark {
		colors, fallback = p.Dark, DefaultDarkColor
	}
	if c, ok := colors[role]; ok {
		return c
	}
	return fallback
}
