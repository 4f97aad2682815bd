package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlacklist(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "wifi", []string{"wifi"}},
		{"drops empty tokens", "wifi,,bluetooth,", []string{"bluetooth", "wifi"}},
		{"drops blank tokens", "wifi, , bluetooth,", []string{"bluetooth", "wifi"}},
		{"keeps inner text", "alarm_clock,zen", []string{"alarm_clock", "zen"}},
		{"duplicates collapse", "alarm,alarm", []string{"alarm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBlacklist(tt.in).Slots())
		})
	}
}

func TestBlacklistRoundTrip(t *testing.T) {
	// Slot names are blank-free and comma-free; padded names are normalized
	// by ParseBlacklist and covered below.
	sets := [][]string{
		{},
		{"wifi"},
		{"wifi", "bluetooth", "alarm_clock"},
		{"rotate", "cast", "hotspot"},
		{"data saver", "zen"},
	}
	for _, slots := range sets {
		b := make(Blacklist)
		for _, s := range slots {
			require.Equal(t, strings.TrimSpace(s), s)
			require.NotContains(t, s, ",")
			b[s] = struct{}{}
		}
		assert.Equal(t, b, ParseBlacklist(b.String()))
	}
}

func TestBlacklistPaddedSlotsAreNormalized(t *testing.T) {
	b := Blacklist{" wifi": {}, "bt ": {}}

	assert.Equal(t, []string{"bt", "wifi"}, ParseBlacklist(b.String()).Slots())
}

func TestBlacklistContains(t *testing.T) {
	b := ParseBlacklist("wifi,bluetooth")
	assert.True(t, b.Contains("wifi"))
	assert.False(t, b.Contains("alarm"))
}
