package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseARGB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ARGB
		wantErr bool
	}{
		{"opaque rrggbb", "#FF8000", 0xFFFF8000, false},
		{"lowercase", "#ff8000", 0xFFFF8000, false},
		{"short form", "#fff", 0xFFFFFFFF, false},
		{"with alpha", "#80102030", 0x80102030, false},
		{"transparent black", "#00000000", 0x00000000, false},
		{"missing hash", "FF8000", 0, true},
		{"garbage", "#zzzzzz", 0, true},
		{"bad alpha", "#zz102030", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseARGB(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestARGB_Hex(t *testing.T) {
	c := NewARGB(0x80, 0x10, 0x20, 0x30)
	assert.Equal(t, "#80102030", c.Hex())
	assert.Equal(t, "#102030", c.RGBHex())

	back, err := ParseARGB(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestLerpARGB_Endpoints(t *testing.T) {
	pairs := [][2]ARGB{
		{White, Black},
		{0x12345678, 0x87654321},
		{0x00FF00FF, 0xFF00FF00},
		{0x7F7F7F7F, 0x7F7F7F7F},
	}
	for _, p := range pairs {
		assert.Equal(t, p[0], LerpARGB(p[0], p[1], 0))
		assert.Equal(t, p[1], LerpARGB(p[0], p[1], 1))
		assert.Equal(t, p[0], LerpARGB(p[0], p[1], -0.5), "no undershoot")
		assert.Equal(t, p[1], LerpARGB(p[0], p[1], 1.5), "no overshoot")
	}
}

func TestLerpARGB_Midpoint(t *testing.T) {
	got := LerpARGB(White, Black, 0.5)
	// 255 * 0.5 = 127.5 rounds half away from zero.
	assert.Equal(t, NewARGB(0xFF, 0x80, 0x80, 0x80), got)
}

func TestLerpARGB_MonotonePerChannel(t *testing.T) {
	a, b := ARGB(0x10F02080), ARGB(0xF0108020)
	prev := LerpARGB(a, b, 0).Channels()
	for i := 1; i <= 100; i++ {
		cur := LerpARGB(a, b, float64(i)/100).Channels()
		for ch := range cur {
			start, end := a.Channels()[ch], b.Channels()[ch]
			if end >= start {
				assert.GreaterOrEqual(t, cur[ch], prev[ch], "channel %d step %d", ch, i)
			} else {
				assert.LessOrEqual(t, cur[ch], prev[ch], "channel %d step %d", ch, i)
			}
		}
		prev = cur
	}
}
