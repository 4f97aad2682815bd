package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/infrastructure/colorsource"
	"github.com/bnema/statusbar/internal/infrastructure/config"
)

const (
	dirPerm         = 0o755
	settingsDocName = "statusbar-settings"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for statusbar",
	Long: `Generate documentation for every statusbar command, plus a
statusbar-settings page listing the host setting keys (colors per role and
mode with their defaults, clock, battery, blacklist) and the demo key bindings.

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is given.

Examples:
  statusbar gen-docs                      # Install man pages
  statusbar gen-docs --format markdown    # Write markdown to ./docs
  statusbar gen-docs --output ./man       # Write man pages to ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "docs"
		}
	}

	files, err := writeDocs(rootCmd, genDocsFormat, outputDir, styles.DefaultDemoKeyMap())
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d pages to %s\n", len(files), outputDir)
	for _, f := range files {
		fmt.Printf("  - %s\n", f)
	}
	if genDocsFormat == "man" && genDocsOutputDir == "" {
		fmt.Println("Run 'mandb' if 'man statusbar' is not found.")
	}
	return nil
}

// writeDocs renders the command tree of root and the settings reference into
// dir and returns the names of the written pages.
func writeDocs(root *cobra.Command, format, dir string, keys styles.DemoKeyMap) ([]string, error) {
	if format != "man" && format != "markdown" {
		return nil, fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	root.DisableAutoGenTag = true
	ref := &cobra.Command{
		Use:               settingsDocName,
		Short:             "Setting keys and demo key bindings read by statusbar",
		Long:              settingsReference(keys),
		DisableAutoGenTag: true,
	}

	var (
		refPath string
		err     error
		ext     []string
	)
	switch format {
	case "man":
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "STATUSBAR",
			Section: "1",
			Source:  "statusbar " + buildInfo.Version,
			Manual:  "Statusbar Manual",
			Date:    &now,
		}
		if err = doc.GenManTree(root, header, dir); err != nil {
			return nil, fmt.Errorf("generate man pages: %w", err)
		}
		refHeader := *header
		refHeader.Title = strings.ToUpper(settingsDocName)
		refHeader.Section = "5"
		refPath = filepath.Join(dir, settingsDocName+".5")
		err = writeDocFile(refPath, func(f *os.File) error { return doc.GenMan(ref, &refHeader, f) })
		ext = []string{".1", ".5"}
	default:
		if err = doc.GenMarkdownTree(root, dir); err != nil {
			return nil, fmt.Errorf("generate markdown docs: %w", err)
		}
		refPath = filepath.Join(dir, settingsDocName+".md")
		err = writeDocFile(refPath, func(f *os.File) error { return doc.GenMarkdown(ref, f) })
		ext = []string{".md"}
	}
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", refPath, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if slices.Contains(ext, filepath.Ext(e.Name())) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

func writeDocFile(path string, gen func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gen(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// settingsReference lists every setting key the status bar reads and the
// demo key bindings.
func settingsReference(keys styles.DemoKeyMap) string {
	var b strings.Builder
	palette := colorsource.DefaultPalette()

	b.WriteString("Colors are looked up in the settings database, then [colors.light] and\n")
	b.WriteString("[colors.dark] in the config file, then STATUSBAR_SETTING_<KEY>, then the\n")
	b.WriteString("defaults below. Values are signed integers or #AARRGGBB.\n\n")

	b.WriteString("Color keys:\n")
	for _, group := range entity.AllGroups() {
		// single tone colors come from [single_tone] in the config file
		if group == entity.GroupSingleTone {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", group)
		for _, role := range group.Roles() {
			for _, mode := range []entity.Mode{entity.ModeLight, entity.ModeDark} {
				fmt.Fprintf(&b, "    %-52s %s\n",
					entity.ColorSettingKey(role, mode), palette.ColorOf(role, mode).Hex())
			}
		}
	}

	b.WriteString("\nOther keys:\n")
	others := [][2]string{
		{entity.SettingClock, "1 shows the clock (default 1)"},
		{entity.SettingClockStyle, "0 right, 1 center, 2 left (default 0)"},
		{entity.SettingBatteryShow, "1 shows the battery (default 1)"},
		{entity.SettingBatteryShowText, "1 shows the level text (default 0)"},
		{entity.SettingBatteryCutOutText, "1 draws the level inside the icon (default 1)"},
		{entity.SettingNotificationMaxIcon, "notification icons before overflow, 0 for no cap"},
		{entity.IconBlacklistKey, "comma-separated slots to hide"},
	}
	for _, o := range others {
		fmt.Fprintf(&b, "  %-54s %s\n", o[0], o[1])
	}

	b.WriteString("\nDemo keys:\n")
	for _, column := range keys.FullHelp() {
		for _, binding := range column {
			writeBinding(&b, binding)
		}
	}
	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	fmt.Fprintf(b, "  %-8s %s\n", h.Key, h.Desc)
}
