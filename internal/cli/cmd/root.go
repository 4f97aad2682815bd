// Package cmd provides Cobra CLI commands for statusbar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/statusbar/internal/cli"
	"github.com/bnema/statusbar/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "statusbar",
		Short: "Status bar icon tint and color controller",
		Long: `statusbar drives the colors of a phone status bar: carrier label, battery,
network traffic, signal cluster, indicator icons and notification icons.

Every widget blends its user-chosen light color towards a dark variant as the
compositor asks for dark icons. Tint changes are lined up with app
transitions, and preference changes crossfade.

Colors and tunables are read from the settings database, then the config
file, then STATUSBAR_SETTING_* environment variables.

Use 'statusbar demo' to drive a terminal rendition of the bar, or explore the
subcommands to inspect and edit settings.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
