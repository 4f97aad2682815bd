package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/statusbar/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long: `Display version, build info and the active profile, next to a sample bar
painted with the configured colors over a dark and a light app.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme, app.Source)
	fmt.Println(renderer.Render(app.BuildInfo, app.Config.StatusBar.Profile))
	return nil
}
