package config

import (
	"time"

	"github.com/bnema/statusbar/internal/domain/entity"
)

// Config is the status bar configuration file.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	StatusBar  StatusBarConfig  `mapstructure:"statusbar" toml:"statusbar" json:"statusbar"`
	Animation  AnimationConfig  `mapstructure:"animation" toml:"animation" json:"animation"`
	Colors     ColorsConfig     `mapstructure:"colors" toml:"colors" json:"colors"`
	SingleTone SingleToneConfig `mapstructure:"single_tone" toml:"single_tone" json:"single_tone"`
	Demo       DemoConfig       `mapstructure:"demo" toml:"demo" json:"demo"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`
	MaxAge int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// DatabaseConfig locates the settings database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// StatusBarConfig selects the device variant and the initial icon state.
type StatusBarConfig struct {
	// Profile is "phone" or "wifi-only".
	Profile string `mapstructure:"profile" toml:"profile" json:"profile" jsonschema:"enum=phone,enum=wifi-only"`
	// Blacklist is the comma-separated list of hidden indicator slots.
	Blacklist            string `mapstructure:"blacklist" toml:"blacklist" json:"blacklist"`
	MaxNotificationIcons int    `mapstructure:"max_notification_icons" toml:"max_notification_icons" json:"max_notification_icons" jsonschema:"minimum=0"`
}

// AnimationConfig holds animation timings in milliseconds.
type AnimationConfig struct {
	TintDurationMs        int `mapstructure:"tint_duration_ms" toml:"tint_duration_ms" json:"tint_duration_ms" jsonschema:"minimum=0"`
	ColorChangeDurationMs int `mapstructure:"color_change_duration_ms" toml:"color_change_duration_ms" json:"color_change_duration_ms" jsonschema:"minimum=0"`
	HideDurationMs        int `mapstructure:"hide_duration_ms" toml:"hide_duration_ms" json:"hide_duration_ms" jsonschema:"minimum=0"`
	ShowDurationMs        int `mapstructure:"show_duration_ms" toml:"show_duration_ms" json:"show_duration_ms" jsonschema:"minimum=0"`
	ShowDelayMs           int `mapstructure:"show_delay_ms" toml:"show_delay_ms" json:"show_delay_ms" jsonschema:"minimum=0"`
}

// TintDuration returns the dark intensity animation length.
func (a AnimationConfig) TintDuration() time.Duration {
	return time.Duration(a.TintDurationMs) * time.Millisecond
}

// ColorChangeDuration returns the preference crossfade length.
func (a AnimationConfig) ColorChangeDuration() time.Duration {
	return time.Duration(a.ColorChangeDurationMs) * time.Millisecond
}

// HideDuration returns the icon area fade-out length.
func (a AnimationConfig) HideDuration() time.Duration {
	return time.Duration(a.HideDurationMs) * time.Millisecond
}

// ShowDuration returns the icon area fade-in length.
func (a AnimationConfig) ShowDuration() time.Duration {
	return time.Duration(a.ShowDurationMs) * time.Millisecond
}

// ShowDelay returns the delay before an icon area fades in.
func (a AnimationConfig) ShowDelay() time.Duration {
	return time.Duration(a.ShowDelayMs) * time.Millisecond
}

// ColorsConfig overrides role colors, keyed by role name (carrier_label,
// battery_fill, ...). Values are #RRGGBB, #AARRGGBB or signed integers.
type ColorsConfig struct {
	Light map[string]string `mapstructure:"light" toml:"light" json:"light"`
	Dark  map[string]string `mapstructure:"dark" toml:"dark" json:"dark"`
}

// SingleToneConfig holds the clock and overflow icon colors.
type SingleToneConfig struct {
	Light string `mapstructure:"light" toml:"light" json:"light"`
	Dark  string `mapstructure:"dark" toml:"dark" json:"dark"`
}

// Colors returns the parsed pair, falling back to the defaults for values
// that do not parse.
func (s SingleToneConfig) Colors() (light, dark entity.ARGB) {
	light, err := entity.ParseColorSetting(s.Light)
	if err != nil {
		light = entity.MustParseARGB(defaultLightSingleTone)
	}
	dark, err = entity.ParseColorSetting(s.Dark)
	if err != nil {
		dark = entity.MustParseARGB(defaultDarkSingleTone)
	}
	return light, dark
}

// DemoConfig tunes the terminal demo shell.
type DemoConfig struct {
	FrameRate int `mapstructure:"frame_rate" toml:"frame_rate" json:"frame_rate" jsonschema:"minimum=1,maximum=240"`
	// Background is the initial app background behind the bar. "auto"
	// follows the desktop color scheme.
	Background string `mapstructure:"background" toml:"background" json:"background" jsonschema:"enum=auto,enum=light,enum=dark"`
}

// FrameInterval returns the time between demo frames.
func (d DemoConfig) FrameInterval() time.Duration {
	if d.FrameRate <= 0 {
		return time.Second / defaultFrameRate
	}
	return time.Second / time.Duration(d.FrameRate)
}
