package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/build"
	"github.com/bnema/statusbar/internal/domain/entity"
)

// AboutRenderer renders build info next to a sample of the status bar in
// the configured colors.
type AboutRenderer struct {
	theme  *Theme
	source port.ColorSource
}

// NewAboutRenderer creates an about renderer painting its sample bars from
// source.
func NewAboutRenderer(theme *Theme, source port.ColorSource) *AboutRenderer {
	return &AboutRenderer{theme: theme, source: source}
}

// Render shows the sample bars over a dark and a light app, then the build
// and profile lines.
func (r *AboutRenderer) Render(info build.Info, profile string) string {
	bars := lipgloss.JoinVertical(lipgloss.Left,
		r.sampleBar(entity.ModeLight, DarkAppBackground),
		r.sampleBar(entity.ModeDark, LightAppBackground),
	)
	bars = lipgloss.NewStyle().MarginTop(1).MarginLeft(2).Render(bars)
	return lipgloss.JoinHorizontal(lipgloss.Top, bars, "   ", r.infoLines(info, profile))
}

// sampleBar paints a carrier, an indicator, the signal and the battery in
// their mode colors, the way they look over background once tinted.
func (r *AboutRenderer) sampleBar(mode entity.Mode, background string) string {
	cells := []struct {
		text string
		role entity.Role
	}{
		{" Carrier ", entity.RoleCarrierLabel},
		{IconWifi + " ", entity.RoleStatusIcon},
		{IconSignal + " ", entity.RoleNetworkSignal},
		{IconBattery + " ", entity.RoleBatteryFill},
	}
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(Paint(c.text, r.source.ColorOf(c.role, mode), background))
	}
	return b.String()
}

func (r *AboutRenderer) infoLines(info build.Info, profile string) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	return strings.Join([]string{
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		line(IconPhone, "Profile", profile),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}, "\n")
}
