package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/cli"
	"github.com/bnema/statusbar/internal/cli/model"
	"github.com/bnema/statusbar/internal/infrastructure/colorscheme"
	"github.com/bnema/statusbar/internal/infrastructure/config"
	"github.com/bnema/statusbar/internal/logging"
	"github.com/bnema/statusbar/internal/ui/mainloop"
)

const defaultSettingsPoll = 2 * time.Second

var (
	demoNoWatch    bool
	demoPoll       time.Duration
	demoBackground string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive a terminal rendition of the status bar",
	Long: `Render the status bar in the terminal and drive it from the keyboard.

Toggle the app background to tint the icons, line tint changes up with a
simulated app transition, cycle preference colors to watch the crossfade,
post notifications, edit the blacklist and enter demo mode.

Edits to the config file and to the settings database (for example with
'statusbar prefs set' from another terminal) are picked up live.

Examples:
  statusbar demo                  # Start the demo
  statusbar demo --no-watch       # Ignore config and settings changes
  statusbar demo --poll 500ms     # Poll the settings database faster
  statusbar demo --background light`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().BoolVar(&demoNoWatch, "no-watch", false, "do not follow config and settings changes")
	demoCmd.Flags().DurationVar(&demoPoll, "poll", defaultSettingsPoll, "settings database poll interval")
	demoCmd.Flags().StringVar(&demoBackground, "background", "", "initial app background: auto, light or dark")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()
	log := logging.FromContext(ctx)

	start := time.Now()
	clock := port.ClockFunc(func() time.Duration { return time.Since(start) })

	opts, err := app.ControllerOptions(clock, mainloop.NewTimers())
	if err != nil {
		return err
	}

	background := demoBackground
	if background == "" {
		background = app.Config.Demo.Background
	}
	scheme := colorscheme.NewDefaultResolver(background).Resolve(ctx)
	log.Debug().Str("source", scheme.Source).Bool("prefers_dark", scheme.PrefersDark).Msg("initial app background")

	m := model.NewDemoModel(ctx, app.Theme, model.DemoModelConfig{
		Options:       opts,
		Overrides:     app.Overrides,
		FrameInterval: app.Config.Demo.FrameInterval(),
		LightApp:      !scheme.PrefersDark,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	posts := mainloop.NewCoalescer[string](func(fn func()) {
		p.Send(model.PostedMsg(fn))
	})
	defer posts.Destroy()

	refresh := func() {
		m.RefreshColors(true)
		m.Controller().UpdateBatterySettings()
		m.ApplyBlacklist(app.BlacklistValue())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	if !demoNoWatch {
		watchConfig(ctx, app, func() { posts.Post("settings", refresh) })
		g.Go(func() error {
			return pollSettings(gctx, app, demoPoll, func() { posts.Post("settings", refresh) })
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("demo exited with error")
		return err
	}
	return nil
}

// watchConfig reloads the settings snapshot and schedules a refresh whenever
// the config file changes.
func watchConfig(ctx context.Context, app *cli.App, changed func()) {
	log := logging.FromContext(ctx)
	if app.ConfigManager == nil {
		log.Debug().Msg("no config manager, config watch disabled")
		return
	}

	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		log.Info().Str("profile", cfg.StatusBar.Profile).Msg("config reloaded")
		changed()
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to watch config file")
	}
}

// pollSettings reloads the settings snapshot every interval and schedules a
// refresh when it changed.
func pollSettings(ctx context.Context, app *cli.App, interval time.Duration, changed func()) error {
	if interval <= 0 {
		interval = defaultSettingsPoll
	}
	log := logging.FromContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			dirty, err := app.Store.Refresh(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("settings reload failed")
				continue
			}
			if dirty {
				changed()
			}
		}
	}
}
