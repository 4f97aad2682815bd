package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
)

var blacklistClear bool

var blacklistCmd = &cobra.Command{
	Use:   "blacklist [slots]",
	Short: "Show or set the hidden indicator slots",
	Long: `Without arguments, show the icon blacklist in effect and the slots it hides.
With an argument, store it as the icon_blacklist tunable.

Examples:
  statusbar blacklist                       # Show the current blacklist
  statusbar blacklist "wifi,bluetooth"      # Hide wifi and bluetooth
  statusbar blacklist --clear               # Fall back to the config file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBlacklist,
}

func init() {
	rootCmd.AddCommand(blacklistCmd)
	blacklistCmd.Flags().BoolVar(&blacklistClear, "clear", false, "remove the stored blacklist")
}

func runBlacklist(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	switch {
	case blacklistClear:
		if err := app.Store.Remove(ctx, entity.IconBlacklistKey); err != nil {
			return err
		}
	case len(args) == 1:
		if err := app.Store.Put(ctx, entity.IconBlacklistKey, args[0]); err != nil {
			return err
		}
	}

	value := app.BlacklistValue()
	slots := entity.ParseBlacklist(value).Slots()
	fmt.Printf("%s %q\n", app.Theme.Highlight.Render("icon_blacklist"), value)
	if len(slots) == 0 {
		fmt.Println(app.Theme.Subtle.Render("  no slots hidden"))
		return nil
	}
	icons := make([]string, len(slots))
	for i, slot := range slots {
		icons[i] = styles.SlotIcon(slot) + " " + slot
	}
	fmt.Println("  " + strings.Join(icons, "  "))
	return nil
}
