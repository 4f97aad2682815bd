package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Colors.Light["battery_fill"] = "#FF00FF00"
	require.NoError(t, WriteConfigOrdered(cfg, configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	require.NotEmpty(t, sections)
	assert.Equal(t, "[logging]", sections[0])
	assert.Contains(t, sections, "[colors.light]")

	var back Config
	require.NoError(t, toml.Unmarshal(content, &back))
	assert.Equal(t, cfg.StatusBar, back.StatusBar)
	assert.Equal(t, "#FF00FF00", back.Colors.Light["battery_fill"])
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"max_notification_icons"`)
	assert.Contains(t, s, `"tint_duration_ms"`)
	assert.Contains(t, s, "Status Bar Configuration")
}
