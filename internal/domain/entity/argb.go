package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ARGB is a packed 32-bit color: alpha, red, green, blue, 8 bits each.
type ARGB uint32

// Common colors.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xFF000000
	White       ARGB = 0xFFFFFFFF
)

// NewARGB packs the four channels into a color.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// Channels returns the color as [a, r, g, b].
func (c ARGB) Channels() [4]uint8 {
	return [4]uint8{c.A(), c.R(), c.G(), c.B()}
}

// Hex formats the color as #AARRGGBB.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// RGBHex formats the color as #RRGGBB, dropping alpha.
func (c ARGB) RGBHex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c ARGB) String() string {
	return c.Hex()
}

// ParseARGB parses #RGB, #RRGGBB and #AARRGGBB. Colors without an alpha
// component are fully opaque.
func ParseARGB(s string) (ARGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("invalid color %q: missing '#' prefix", s)
	}

	alpha := uint8(0xFF)
	rgb := s
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[1:3], "%02x", &a); err != nil {
			return 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = a
		rgb = "#" + s[3:]
	}

	col, err := colorful.Hex(rgb)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return NewARGB(alpha, r, g, b), nil
}

// MustParseARGB is ParseARGB for compile-time constants. It panics on error.
func MustParseARGB(s string) ARGB {
	c, err := ParseARGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

// LerpARGB interpolates each channel of a towards b by t. Channels are rounded
// and clamped to [0,255]. t <= 0 yields a and t >= 1 yields b exactly.
func LerpARGB(a, b ARGB, t float64) ARGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, cb := a.Channels(), b.Channels()
	var out [4]uint8
	for i := range out {
		out[i] = lerpChannel(ca[i], cb[i], t)
	}
	return NewARGB(out[0], out[1], out[2], out[3])
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}
