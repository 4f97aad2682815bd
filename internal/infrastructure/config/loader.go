package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// STATUSBAR_STATUSBAR_PROFILE, STATUSBAR_ANIMATION_TINT_DURATION_MS, ...
	v.SetEnvPrefix("STATUSBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "STATUSBAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind STATUSBAR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "STATUSBAR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind STATUSBAR_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("statusbar.profile", "STATUSBAR_PROFILE"); err != nil {
		return nil, fmt.Errorf("failed to bind STATUSBAR_PROFILE: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, configName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// reload re-reads viper state into a fresh Config. Must be called with the
// write lock held.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.StatusBar.Profile = strings.ToLower(strings.TrimSpace(config.StatusBar.Profile))
	switch config.StatusBar.Profile {
	case "":
		config.StatusBar.Profile = defaultProfile
	case "wifi_only", "tablet":
		config.StatusBar.Profile = "wifi-only"
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Demo.Background = strings.ToLower(strings.TrimSpace(config.Demo.Background))

	if config.Colors.Light == nil {
		config.Colors.Light = map[string]string{}
	}
	if config.Colors.Dark == nil {
		config.Colors.Dark = map[string]string{}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and their JSON schema next to it.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setStatusBarDefaults(defaults)
	m.setAnimationDefaults(defaults)
	m.setColorDefaults(defaults)
	m.viper.SetDefault("demo.frame_rate", defaults.Demo.FrameRate)
	m.viper.SetDefault("demo.background", defaults.Demo.Background)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setStatusBarDefaults(defaults *Config) {
	m.viper.SetDefault("statusbar.profile", defaults.StatusBar.Profile)
	m.viper.SetDefault("statusbar.blacklist", defaults.StatusBar.Blacklist)
	m.viper.SetDefault("statusbar.max_notification_icons", defaults.StatusBar.MaxNotificationIcons)
}

func (m *Manager) setAnimationDefaults(defaults *Config) {
	m.viper.SetDefault("animation.tint_duration_ms", defaults.Animation.TintDurationMs)
	m.viper.SetDefault("animation.color_change_duration_ms", defaults.Animation.ColorChangeDurationMs)
	m.viper.SetDefault("animation.hide_duration_ms", defaults.Animation.HideDurationMs)
	m.viper.SetDefault("animation.show_duration_ms", defaults.Animation.ShowDurationMs)
	m.viper.SetDefault("animation.show_delay_ms", defaults.Animation.ShowDelayMs)
}

func (m *Manager) setColorDefaults(defaults *Config) {
	m.viper.SetDefault("single_tone.light", defaults.SingleTone.Light)
	m.viper.SetDefault("single_tone.dark", defaults.SingleTone.Dark)
}
