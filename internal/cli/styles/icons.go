package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database

	// Status bar glyphs
	IconWifi         = "\uf1eb" // wifi
	IconSignal       = "\uf012" // signal bars
	IconAirplane     = "\uf072" // plane
	IconNoSim        = "\uf7c5" // sim card
	IconBattery      = "\uf240" // battery
	IconBluetooth    = "\uf293" // bluetooth
	IconAlarm        = "\uf0f3" // bell
	IconVolume       = "\uf028" // volume
	IconMute         = "\uf131" // microphone slash
	IconLocation     = "\uf041" // map marker
	IconCast         = "\uf26c" // tv
	IconHotspot      = "\uf519" // broadcast tower
	IconZen          = "\uf186" // moon
	IconPhone        = "\uf095" // phone
	IconTraffic      = "\uf0ec" // exchange
	IconMore         = "\uf141" // ellipsis
	IconNotification = "\uf0a2" // bell outline
	IconDot          = "\uf111" // circle
)

// SlotIcon maps an indicator slot to its glyph.
func SlotIcon(slot string) string {
	switch slot {
	case "wifi":
		return IconWifi
	case "bluetooth":
		return IconBluetooth
	case "alarm", "alarm_clock":
		return IconAlarm
	case "volume", "speakerphone":
		return IconVolume
	case "mute":
		return IconMute
	case "location":
		return IconLocation
	case "cast":
		return IconCast
	case "hotspot":
		return IconHotspot
	case "zen":
		return IconZen
	case "tty":
		return IconPhone
	default:
		return IconDot
	}
}
