package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
)

const prefsTableMaxHeight = 30

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and edit status bar settings",
	Long: `Read and write the settings table the status bar resolves colors and
tunables from.

Color keys follow status_bar_<role>_color and status_bar_<role>_color_dark_mode.
Colors may be given as #RRGGBB, #AARRGGBB or signed integers; they are stored
as signed integers.

Examples:
  statusbar prefs list
  statusbar prefs get status_bar_clock
  statusbar prefs set status_bar_carrier_label_color '#FF80CBC4'
  statusbar prefs delete status_bar_carrier_label_color`,
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored settings",
	Args:  cobra.NoArgs,
	RunE:  runPrefsList,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show the resolved value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefsSet,
}

var prefsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a stored setting",
	Args:    cobra.ExactArgs(1),
	RunE:    runPrefsDelete,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsListCmd, prefsGetCmd, prefsSetCmd, prefsDeleteCmd)
}

func runPrefsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	settings, err := app.Settings.GetAll(app.Ctx())
	if err != nil {
		return err
	}
	if len(settings) == 0 {
		fmt.Println(app.Theme.Subtle.Render("no settings stored"))
		return nil
	}

	rows := make([]table.Row, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, styles.SettingRow(s))
	}
	width := 0
	for _, c := range styles.SettingsTableColumns() {
		width += c.Width + 2
	}
	t := styles.NewStyledTable(app.Theme, styles.SettingsTableColumns(), rows, width, min(len(rows)+1, prefsTableMaxHeight))
	fmt.Println(t.View())
	return nil
}

func runPrefsGet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	name := args[0]
	v, ok := app.Source.Lookup(name)
	if role, mode, isColor := entity.ParseColorSettingKey(name); isColor {
		c := app.Source.ColorOf(role, mode)
		origin := "default"
		if ok {
			origin = "stored"
		}
		fmt.Printf("%s %s %s\n", c.Hex(), styles.Swatch(c), app.Theme.Subtle.Render(origin))
		return nil
	}
	if !ok {
		return fmt.Errorf("setting %q is not set", name)
	}
	fmt.Println(v)
	return nil
}

func runPrefsSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	name, value, err := normalizeSetting(args[0], args[1])
	if err != nil {
		return err
	}
	if err := app.Store.Put(app.Ctx(), name, value); err != nil {
		return err
	}
	fmt.Printf("%s %s = %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), name, value)
	return nil
}

func runPrefsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Store.Remove(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Printf("%s %s removed\n", app.Theme.SuccessStyle.Render(styles.IconCheck), args[0])
	return nil
}

// normalizeSetting validates a value before it is stored. Colors are stored
// in their integer form.
func normalizeSetting(name, value string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("setting name is empty")
	}
	if _, _, ok := entity.ParseColorSettingKey(name); ok {
		c, err := entity.ParseColorSetting(value)
		if err != nil {
			return "", "", err
		}
		return name, entity.FormatColorSetting(c), nil
	}
	if name == entity.IconBlacklistKey {
		return name, value, nil
	}
	return name, strings.TrimSpace(value), nil
}
