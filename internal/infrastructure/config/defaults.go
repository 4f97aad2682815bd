package config

// Default configuration constants
const (
	// Logging defaults
	defaultMaxLogAgeDays = 7 // days
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3

	// Status bar defaults
	defaultProfile              = "phone"
	defaultMaxNotificationIcons = 4

	// Animation defaults, in milliseconds
	defaultTintDurationMs        = 120
	defaultColorChangeDurationMs = 500
	defaultHideDurationMs        = 160
	defaultShowDurationMs        = 320
	defaultShowDelayMs           = 50

	// Single-tone icon colors
	defaultLightSingleTone = "#FFFFFFFF"
	defaultDarkSingleTone  = "#99000000"

	defaultFrameRate  = 60
	defaultBackground = "auto"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			MaxAge:        defaultMaxLogAgeDays,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			Compress:      true,
		},
		StatusBar: StatusBarConfig{
			Profile:              defaultProfile,
			MaxNotificationIcons: defaultMaxNotificationIcons,
		},
		Animation: AnimationConfig{
			TintDurationMs:        defaultTintDurationMs,
			ColorChangeDurationMs: defaultColorChangeDurationMs,
			HideDurationMs:        defaultHideDurationMs,
			ShowDurationMs:        defaultShowDurationMs,
			ShowDelayMs:           defaultShowDelayMs,
		},
		Colors: ColorsConfig{
			Light: map[string]string{},
			Dark:  map[string]string{},
		},
		SingleTone: SingleToneConfig{
			Light: defaultLightSingleTone,
			Dark:  defaultDarkSingleTone,
		},
		Demo: DemoConfig{
			FrameRate:  defaultFrameRate,
			Background: defaultBackground,
		},
	}
}
