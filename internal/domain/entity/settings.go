package entity

import "time"

// Host setting keys read by the status bar.
const (
	SettingClock               = "status_bar_clock"
	SettingClockStyle          = "statusbar_clock_style"
	SettingBatteryShow         = "status_bar_battery_status_show_battery"
	SettingBatteryShowText     = "status_bar_battery_status_show_text"
	SettingBatteryCutOutText   = "status_bar_battery_status_cut_out_text"
	SettingNotificationMaxIcon = "status_bar_max_notification_icons"
)

const (
	colorSettingPrefix = "status_bar_"
	colorSettingSuffix = "_color"
	darkSettingSuffix  = "_dark_mode"
)

// ColorSettingKey returns the host setting key holding the color of role in
// mode, e.g. status_bar_carrier_label_color_dark_mode.
func ColorSettingKey(role Role, mode Mode) string {
	key := colorSettingPrefix + role.String() + colorSettingSuffix
	if mode == ModeDark {
		key += darkSettingSuffix
	}
	return key
}

// ParseColorSettingKey is the inverse of ColorSettingKey.
func ParseColorSettingKey(key string) (Role, Mode, bool) {
	for _, role := range AllRoles() {
		switch key {
		case ColorSettingKey(role, ModeLight):
			return role, ModeLight, true
		case ColorSettingKey(role, ModeDark):
			return role, ModeDark, true
		}
	}
	return 0, ModeLight, false
}

// Setting is one row of the host settings table.
type Setting struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}
