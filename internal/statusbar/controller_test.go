package statusbar_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/statusbar"
	"github.com/bnema/statusbar/internal/tint"
)

func addIcons(c *statusbar.Controller, slots ...string) {
	for i, slot := range slots {
		c.AddSystemIcon(slot, i, i, iconFor("stat_sys_"+slot))
	}
}

func TestController_AddSystemIconMirrorsAndTints(t *testing.T) {
	f := newFixture()
	f.c.SetDark(true, false)

	addIcons(f.c, "wifi", "alarm")

	require.Equal(t, []string{"wifi", "alarm"}, f.c.StatusIcons().Slots())
	require.NotNil(t, f.c.KeyguardIcons())
	assert.Equal(t, []string{"wifi", "alarm"}, f.c.KeyguardIcons().Slots())

	for _, row := range []*statusbar.IconRow{f.c.StatusIcons(), f.c.KeyguardIcons()} {
		for _, v := range row.Views() {
			assert.Equal(t, darkIcon, v.(*statusbar.IconView).Color(), v.Slot())
		}
	}
}

func TestController_WifiOnlyHasNoKeyguardRow(t *testing.T) {
	f := newFixture(func(o *statusbar.Options) {
		o.Engine.Profile = tint.WifiOnlyProfile()
	})

	addIcons(f.c, "wifi")

	assert.Nil(t, f.c.KeyguardIcons())
	assert.Equal(t, 1, f.c.StatusIcons().Len())
}

func TestController_UpdateSystemIcon(t *testing.T) {
	f := newFixture()
	addIcons(f.c, "volume")

	updated := iconFor("stat_sys_ringer_vibrate")
	f.c.UpdateSystemIcon("volume", 0, 0, iconFor("stat_sys_volume"), updated)

	assert.Equal(t, updated, f.c.StatusIcons().At(0).Icon())
	assert.Equal(t, updated, f.c.KeyguardIcons().At(0).Icon())

	f.c.UpdateSystemIcon("volume", 0, 5, updated, iconFor("ignored"))
	assert.Equal(t, updated, f.c.StatusIcons().At(0).Icon())
}

func TestController_RemoveSystemIcon(t *testing.T) {
	f := newFixture()
	addIcons(f.c, "wifi", "alarm", "zen")

	f.c.RemoveSystemIcon("alarm", 1, 1)

	assert.Equal(t, []string{"wifi", "zen"}, f.c.StatusIcons().Slots())
	assert.Equal(t, []string{"wifi", "zen"}, f.c.KeyguardIcons().Slots())
}

func TestController_BlacklistChangeRecreatesIcons(t *testing.T) {
	f := newFixture()
	addIcons(f.c, "wifi", "bluetooth", "alarm")
	before := f.c.StatusIcons().Views()
	f.c.SetDark(true, false)

	f.c.OnBlacklistChanged("wifi, , bluetooth,")

	assert.Equal(t, []string{"bluetooth", "wifi"}, f.c.Blacklist().Slots())
	after := f.c.StatusIcons().Views()
	require.Len(t, after, 3)
	assert.Equal(t, []string{"wifi", "bluetooth", "alarm"}, f.c.StatusIcons().Slots())

	wantBlocked := map[string]bool{"wifi": true, "bluetooth": true, "alarm": false}
	for i, v := range after {
		assert.NotSame(t, before[i], v, "view %s is recreated", v.Slot())
		assert.Equal(t, wantBlocked[v.Slot()], v.Blocked(), v.Slot())
		assert.Equal(t, before[i].Icon(), v.Icon())
		assert.Equal(t, darkIcon, v.(*statusbar.IconView).Color(), "tint re-applied to %s", v.Slot())
	}
	for _, v := range f.c.KeyguardIcons().Views() {
		assert.Equal(t, wantBlocked[v.Slot()], v.Blocked(), v.Slot())
	}
}

func TestController_OnTuningChangedOnlyConsumesBlacklist(t *testing.T) {
	f := newFixture()
	addIcons(f.c, "wifi")

	f.c.OnTuningChanged("other_key", "wifi")
	assert.False(t, f.c.StatusIcons().At(0).Blocked())

	f.c.OnTuningChanged(entity.IconBlacklistKey, "wifi")
	assert.True(t, f.c.StatusIcons().At(0).Blocked())
}

func TestController_InitialBlacklistBlocksNewIcons(t *testing.T) {
	f := newFixture(func(o *statusbar.Options) {
		o.Blacklist = entity.ParseBlacklist("cast")
	})
	addIcons(f.c, "cast", "wifi")

	assert.True(t, f.c.StatusIcons().At(0).Blocked())
	assert.False(t, f.c.StatusIcons().At(1).Blocked())
	assert.False(t, f.c.StatusIcons().At(0).(*statusbar.IconView).Shown())
}

func TestController_Dump(t *testing.T) {
	f := newFixture()
	addIcons(f.c, "wifi", "alarm")

	var buf bytes.Buffer
	require.NoError(t, f.c.Dump(&buf))

	want := "  system icons: 2\n" +
		"    [0] icon=StatusBarIconView(slot=wifi blocked=false icon=StatusBarIcon(icon=android/stat_sys_wifi visible=true level=0 number=0))\n" +
		"    [1] icon=StatusBarIconView(slot=alarm blocked=false icon=StatusBarIcon(icon=android/stat_sys_alarm visible=true level=0 number=0))\n"
	assert.Equal(t, want, buf.String())
}

func TestController_DumpEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newFixture().c.Dump(&buf))
	assert.Equal(t, "  system icons: 0\n", buf.String())
}

func TestController_ClockVisibility(t *testing.T) {
	settings := fakeSettings{entity.SettingClockStyle: int(entity.ClockCenter)}
	f := newFixture(func(o *statusbar.Options) { o.Settings = settings })

	right, center := &clockRecorder{}, &clockRecorder{}
	f.c.RegisterClock(entity.ClockRight, right)
	f.c.RegisterClock(entity.ClockCenter, center)

	f.c.SetClockVisibility(true)
	assert.Nil(t, right.visible, "clocks at other positions are untouched")
	require.NotNil(t, center.visible)
	assert.True(t, *center.visible)

	f.c.SetClockVisibility(false)
	assert.False(t, *center.visible)

	settings[entity.SettingClock] = 0
	f.c.SetClockVisibility(true)
	assert.False(t, *center.visible, "disabled clock stays hidden")
}

func TestController_ClockDefaults(t *testing.T) {
	f := newFixture()
	right := &clockRecorder{}
	f.c.RegisterClock(entity.ClockRight, right)

	f.c.SetClockVisibility(true)

	require.NotNil(t, right.visible)
	assert.True(t, *right.visible)
}

func TestController_UpdateBatterySettings(t *testing.T) {
	battery := &batteryView{}
	f := newFixture(func(o *statusbar.Options) {
		o.Battery = battery
		o.Settings = fakeSettings{
			entity.SettingBatteryShowText:   1,
			entity.SettingBatteryCutOutText: 0,
		}
	})

	f.c.UpdateBatterySettings()

	assert.True(t, battery.shown)
	assert.True(t, battery.text)
	assert.False(t, battery.cutOut)
	assert.False(t, f.c.ColorChangeAnimating(), "battery colors are applied without animation")
}

func TestController_MaxNotificationIcons(t *testing.T) {
	f := newFixture(func(o *statusbar.Options) {
		o.Settings = fakeSettings{entity.SettingNotificationMaxIcon: 6}
	})
	assert.Equal(t, 6, f.c.MaxNotificationIcons())

	f = newFixture(func(o *statusbar.Options) {
		o.Settings = fakeSettings{entity.SettingNotificationMaxIcon: 6}
		o.MaxNotificationIcons = 3
	})
	assert.Equal(t, 3, f.c.MaxNotificationIcons())
}
