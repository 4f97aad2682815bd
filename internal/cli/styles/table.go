package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/statusbar/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SettingsTableColumns returns columns for the settings table.
func SettingsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 48},
		{Title: "Value", Width: 14},
		{Title: "Color", Width: 6},
		{Title: "Updated", Width: 20},
	}
}

// SettingRow converts a setting to a table row. Color settings get a swatch.
func SettingRow(s *entity.Setting) table.Row {
	swatch := ""
	if _, _, ok := entity.ParseColorSettingKey(s.Name); ok {
		if c, err := entity.ParseColorSetting(s.Value); err == nil {
			swatch = Swatch(c)
		}
	}
	updated := ""
	if !s.UpdatedAt.IsZero() && s.UpdatedAt.Unix() > 0 {
		updated = s.UpdatedAt.Format(time.DateTime)
	}
	return table.Row{s.Name, s.Value, swatch, updated}
}

// RoleTableColumns returns columns for the role color table.
func RoleTableColumns() []table.Column {
	return []table.Column{
		{Title: "Role", Width: 20},
		{Title: "Light", Width: 10},
		{Title: "Dark", Width: 10},
		{Title: "Effective", Width: 10},
		{Title: "", Width: 4},
	}
}

// RoleRow converts a role's resolved colors to a table row.
func RoleRow(role entity.Role, light, dark, effective entity.ARGB) table.Row {
	return table.Row{role.String(), light.Hex(), dark.Hex(), effective.Hex(), Swatch(effective)}
}
