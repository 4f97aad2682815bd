package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorSetting(t *testing.T) {
	tests := []struct {
		in      string
		want    ARGB
		wantErr bool
	}{
		{"-1", 0xFFFFFFFF, false},
		{"-16777216", 0xFF000000, false},
		{"4294967295", 0xFFFFFFFF, false},
		{"#80FF0000", 0x80FF0000, false},
		{"#fff", 0xFFFFFFFF, false},
		{"", 0, true},
		{"4294967296", 0, true},
		{"red", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorSetting(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatColorSetting(t *testing.T) {
	assert.Equal(t, "-1", FormatColorSetting(0xFFFFFFFF))
	assert.Equal(t, "2130706432", FormatColorSetting(0x7F000000))

	c, err := ParseColorSetting(FormatColorSetting(0x99000000))
	require.NoError(t, err)
	assert.Equal(t, ARGB(0x99000000), c)
}
