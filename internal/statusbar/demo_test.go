package statusbar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/statusbar"
)

func TestDemo_StatusRequiresDemoMode(t *testing.T) {
	f := newFixture()

	f.c.DispatchDemoCommand(statusbar.DemoCommandStatus, map[string]string{"alarm": "show"})
	assert.Zero(t, f.c.Demo().Row().Len())
	assert.False(t, f.c.Demo().Active())
}

func TestDemo_StatusUpdatesSlots(t *testing.T) {
	f := newFixture()
	f.c.SetDark(true, false)
	f.c.DispatchDemoCommand(statusbar.DemoCommandEnter, nil)
	require.True(t, f.c.Demo().Active())

	f.c.DispatchDemoCommand(statusbar.DemoCommandStatus, map[string]string{
		"volume":    "vibrate",
		"bluetooth": "connected",
	})

	row := f.c.Demo().Row()
	assert.Equal(t, []string{"bluetooth", "volume"}, row.Slots())
	assert.Equal(t, "stat_sys_ringer_vibrate", row.At(row.IndexOf("volume")).Icon().IconName)
	for _, v := range row.Views() {
		assert.Equal(t, darkIcon, v.(*statusbar.IconView).Color(), v.Slot())
	}

	f.c.DispatchDemoCommand(statusbar.DemoCommandStatus, map[string]string{"volume": "hidden"})
	assert.Equal(t, []string{"bluetooth"}, row.Slots())

	f.c.DispatchDemoCommand(statusbar.DemoCommandStatus, map[string]string{"bluetooth": "disconnected"})
	assert.Equal(t, "stat_sys_data_bluetooth", row.At(0).Icon().IconName)

	f.c.DispatchDemoCommand(statusbar.DemoCommandExit, nil)
	assert.False(t, f.c.Demo().Active())
	assert.Zero(t, row.Len())
}

func TestDemo_RealIconsUntouched(t *testing.T) {
	f := newFixture()
	addIcons(f.c, "wifi")

	f.c.DispatchDemoCommand(statusbar.DemoCommandEnter, nil)
	f.c.DispatchDemoCommand(statusbar.DemoCommandStatus, map[string]string{"cast": "show", "hotspot": "show"})

	assert.Equal(t, []string{"wifi"}, f.c.StatusIcons().Slots())
	assert.Equal(t, []string{"hotspot", "cast"}, f.c.Demo().Row().Slots())
	assert.Contains(t, statusbar.DemoSlots(), "speakerphone")
}
