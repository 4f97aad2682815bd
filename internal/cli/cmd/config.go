package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and settings live, and generate the config JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and settings database paths",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write config.schema.json next to the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if app.ConfigManager != nil {
		configFile = app.ConfigManager.GetConfigFile()
	}

	dbFile := app.Config.Database.Path
	if dbFile == "" {
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}

	_, statErr := os.Stat(configFile)
	fmt.Println(renderer.RenderPaths(configFile, dbFile, statErr == nil))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	dir, err := config.GetConfigDir()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err := config.GenerateSchemaFile(dir); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderSchemaWritten(filepath.Join(dir, "config.schema.json")))
	return nil
}
