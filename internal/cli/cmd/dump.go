package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/statusbar"
)

var (
	dumpDark  bool
	dumpSlots string
	dumpJSON  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print resolved role colors and the indicator row",
	Long: `Build a controller from the current settings and print the color of every
role, followed by the indicator row listing.

Examples:
  statusbar dump                         # Light icons
  statusbar dump --dark                  # Fully dark icons
  statusbar dump --slots wifi,alarm      # Add indicators before dumping
  statusbar dump --json                  # Machine readable colors`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVar(&dumpDark, "dark", false, "dump at full dark intensity")
	dumpCmd.Flags().StringVar(&dumpSlots, "slots", "", "comma-separated indicator slots to add")
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "output role colors as JSON")
}

type roleDump struct {
	Role      string `json:"role"`
	Light     string `json:"light"`
	Dark      string `json:"dark"`
	Effective string `json:"effective"`
}

func runDump(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	opts, err := app.ControllerOptions(port.ClockFunc(func() time.Duration { return 0 }), nil)
	if err != nil {
		return err
	}
	c := statusbar.New(app.Ctx(), opts)

	i := 0
	for _, slot := range strings.Split(dumpSlots, ",") {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		c.AddSystemIcon(slot, i, i, entity.StatusBarIcon{Package: "statusbar", IconName: "stat_sys_" + slot, Visible: true})
		i++
	}
	c.SetDark(dumpDark, false)
	c.ApplyIconTint()

	if dumpJSON {
		roles := make([]roleDump, 0, len(entity.AllRoles()))
		for _, role := range entity.AllRoles() {
			colors := c.Colors(role)
			roles = append(roles, roleDump{
				Role:      role.String(),
				Light:     colors.Current.Hex(),
				Dark:      c.DarkVariant(role).Hex(),
				Effective: colors.Effective.Hex(),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(roles)
	}

	rows := make([]table.Row, 0, len(entity.AllRoles()))
	width := 0
	for _, col := range styles.RoleTableColumns() {
		width += col.Width + 2
	}
	for _, role := range entity.AllRoles() {
		colors := c.Colors(role)
		rows = append(rows, styles.RoleRow(role, colors.Current, c.DarkVariant(role), colors.Effective))
	}
	t := styles.NewStyledTable(app.Theme, styles.RoleTableColumns(), rows, width, len(rows)+1)

	fmt.Printf("%s %s\n\n", app.Theme.AccentBadge(c.Profile().Name), app.Theme.MutedBadge(fmt.Sprintf("dark %.0f%%", c.DarkIntensity()*100)))
	fmt.Println(t.View())
	fmt.Println()
	return c.Dump(os.Stdout)
}
