package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
)

func docsRoot() *cobra.Command {
	root := &cobra.Command{Use: "statusbar", Short: "status bar"}
	root.AddCommand(&cobra.Command{Use: "dump", Short: "dump icons", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestSettingsReference(t *testing.T) {
	ref := settingsReference(styles.DefaultDemoKeyMap())

	assert.Contains(t, ref, entity.ColorSettingKey(entity.RoleCarrierLabel, entity.ModeLight))
	assert.Contains(t, ref, entity.ColorSettingKey(entity.RoleBatteryFill, entity.ModeDark))
	assert.Contains(t, ref, "#FFFFFFFF")
	assert.Contains(t, ref, entity.SettingClockStyle)
	assert.Contains(t, ref, entity.IconBlacklistKey)
	assert.Contains(t, ref, "toggle dark")
	assert.NotContains(t, ref, entity.ColorSettingKey(entity.RoleSingleToneIcon, entity.ModeLight))
}

func TestWriteDocs(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"man", []string{"statusbar-dump.1", "statusbar-settings.5", "statusbar.1"}},
		{"markdown", []string{"statusbar-settings.md", "statusbar.md", "statusbar_dump.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")

			files, err := writeDocs(docsRoot(), tt.format, dir, styles.DefaultDemoKeyMap())
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, files)

			for _, f := range files {
				if filepath.Ext(f) == ".5" || f == "statusbar-settings.md" {
					data, err := os.ReadFile(filepath.Join(dir, f))
					require.NoError(t, err)
					assert.Contains(t, string(data), "status_bar_clock")
				}
			}
		})
	}
}

func TestWriteDocs_UnknownFormat(t *testing.T) {
	_, err := writeDocs(docsRoot(), "html", t.TempDir(), styles.DefaultDemoKeyMap())
	require.Error(t, err)
}
