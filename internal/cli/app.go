// Package cli wires the status bar controller to configuration, the settings
// database and the terminal host.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/build"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/domain/repository"
	"github.com/bnema/statusbar/internal/infrastructure/colorsource"
	"github.com/bnema/statusbar/internal/infrastructure/config"
	"github.com/bnema/statusbar/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/statusbar/internal/logging"
	"github.com/bnema/statusbar/internal/statusbar"
	"github.com/bnema/statusbar/internal/tint"
	"github.com/bnema/statusbar/internal/ui/mainloop"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db       *sql.DB
	Settings repository.SettingRepository
	Store    *sqlite.SettingStore
	// Overrides is an in-memory layer on top of every other color source,
	// used by the demo to try colors without touching the database.
	Overrides colorsource.MapStore
	Source    *colorsource.Source

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("STATUSBAR_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}

	// The demo owns the terminal, so logs only ever go to the rotated file.
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog && logDir != "",
			Dir:        logDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			logCleanup()
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	settings := sqlite.NewSettingRepository(db)
	store, err := sqlite.NewSettingStore(ctx, settings)
	if err != nil {
		_ = db.Close()
		logCleanup()
		return nil, err
	}

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		db:            db,
		Settings:      settings,
		Store:         store,
		Overrides:     make(colorsource.MapStore),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}
	app.Source = colorsource.NewSource(ctx, colorsource.DefaultPalette(),
		app.Overrides,
		store,
		colorsource.NewConfigAdapter(app.currentConfig),
		colorsource.EnvStore{},
	)
	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func (a *App) currentConfig() *config.Config {
	if a.ConfigManager != nil {
		return a.ConfigManager.Get()
	}
	return a.Config
}

// ControllerOptions derives controller options from the configuration. The
// caller binds widgets and supplies the clock.
func (a *App) ControllerOptions(clock port.Clock, timers *mainloop.Timers) (statusbar.Options, error) {
	cfg := a.currentConfig()

	profile, err := tint.ProfileByName(cfg.StatusBar.Profile)
	if err != nil {
		return statusbar.Options{}, err
	}
	light, dark := cfg.SingleTone.Colors()

	showDelay := cfg.Animation.ShowDelay()
	if showDelay == 0 {
		showDelay = -1
	}

	return statusbar.Options{
		Engine: tint.Options{
			Source:              a.Source,
			Registry:            tint.NewRegistry(profile),
			Clock:               clock,
			Timers:              timers,
			Profile:             profile,
			LightSingleTone:     light,
			DarkSingleTone:      dark,
			TintDuration:        cfg.Animation.TintDuration(),
			ColorChangeDuration: cfg.Animation.ColorChangeDuration(),
		},
		Settings:             a.Source,
		Blacklist:            entity.ParseBlacklist(a.BlacklistValue()),
		MaxNotificationIcons: cfg.StatusBar.MaxNotificationIcons,
		HideDuration:         cfg.Animation.HideDuration(),
		ShowDuration:         cfg.Animation.ShowDuration(),
		ShowDelay:            showDelay,
	}, nil
}

// BlacklistValue returns the raw icon blacklist. The tunable stored in the
// settings table wins over the configured one.
func (a *App) BlacklistValue() string {
	if v, ok := a.Source.Lookup(entity.IconBlacklistKey); ok {
		return v
	}
	return a.currentConfig().StatusBar.Blacklist
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default configuration: %v\n", err)
		return nil, config.DefaultConfig()
	}
	return mgr, mgr.Get()
}
