package config

import (
	"fmt"
	"strings"

	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/tint"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStatusBar(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateColors(config)...)
	validationErrors = append(validationErrors, validateSingleTone(config)...)
	validationErrors = append(validationErrors, validateDemo(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateStatusBar(config *Config) []string {
	var validationErrors []string
	if _, err := tint.ProfileByName(config.StatusBar.Profile); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"statusbar.profile must be one of: phone, wifi-only (got: %s)",
			config.StatusBar.Profile,
		))
	}
	if config.StatusBar.MaxNotificationIcons < 0 {
		validationErrors = append(validationErrors, "statusbar.max_notification_icons must be non-negative")
	}
	return validationErrors
}

func validateAnimation(config *Config) []string {
	const maxMs = 10_000
	fields := []struct {
		name  string
		value int
	}{
		{"animation.tint_duration_ms", config.Animation.TintDurationMs},
		{"animation.color_change_duration_ms", config.Animation.ColorChangeDurationMs},
		{"animation.hide_duration_ms", config.Animation.HideDurationMs},
		{"animation.show_duration_ms", config.Animation.ShowDurationMs},
		{"animation.show_delay_ms", config.Animation.ShowDelayMs},
	}
	var validationErrors []string
	for _, f := range fields {
		if f.value < 0 || f.value > maxMs {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be between 0 and %d", f.name, maxMs))
		}
	}
	return validationErrors
}

func validateColors(config *Config) []string {
	var validationErrors []string
	tables := []struct {
		name   string
		colors map[string]string
	}{
		{"colors.light", config.Colors.Light},
		{"colors.dark", config.Colors.Dark},
	}
	for _, table := range tables {
		for key, value := range table.colors {
			if _, err := entity.ParseRole(key); err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.%s is not a known role", table.name, key))
				continue
			}
			if _, err := entity.ParseColorSetting(value); err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.%s: %v", table.name, key, err))
			}
		}
	}
	return validationErrors
}

func validateSingleTone(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseColorSetting(config.SingleTone.Light); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("single_tone.light: %v", err))
	}
	if _, err := entity.ParseColorSetting(config.SingleTone.Dark); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("single_tone.dark: %v", err))
	}
	return validationErrors
}

func validateDemo(config *Config) []string {
	var validationErrors []string
	if config.Demo.FrameRate < 1 || config.Demo.FrameRate > 240 {
		validationErrors = append(validationErrors, "demo.frame_rate must be between 1 and 240")
	}
	switch config.Demo.Background {
	case "", "auto", "light", "dark":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("demo.background must be auto, light or dark, got %q", config.Demo.Background))
	}
	return validationErrors
}
