package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/domain/entity"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "phone", cfg.StatusBar.Profile)
	assert.Equal(t, 120, cfg.Animation.TintDurationMs)
	assert.Equal(t, 500, cfg.Animation.ColorChangeDurationMs)
}

func TestSingleToneColors(t *testing.T) {
	light, dark := DefaultConfig().SingleTone.Colors()
	assert.Equal(t, entity.ARGB(0xFFFFFFFF), light)
	assert.Equal(t, entity.ARGB(0x99000000), dark)

	light, dark = SingleToneConfig{Light: "#FF112233", Dark: "bogus"}.Colors()
	assert.Equal(t, entity.ARGB(0xFF112233), light)
	assert.Equal(t, entity.ARGB(0x99000000), dark)
}
