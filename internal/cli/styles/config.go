package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output with styled text.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config file and settings database locations.
func (r *ConfigRenderer) RenderPaths(configFile, dbFile string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	state := r.theme.SuccessStyle.Render(IconCheck)
	if !exists {
		state = r.theme.WarningStyle.Render(IconX + " missing")
	}

	return fmt.Sprintf(
		"\n  %s Config   %s %s\n  %s Settings %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configFile),
		state,
		iconStyle.Render(IconDatabase),
		pathStyle.Render(dbFile),
	)
}

// RenderSchemaWritten renders the success message after writing a schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Schema written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s Error: %s\n",
		iconStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
