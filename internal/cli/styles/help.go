package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DemoKeyMap defines keybindings for the status bar demo.
type DemoKeyMap struct {
	ToggleDark       key.Binding
	ToggleDarkNow    key.Binding
	Pending          key.Binding
	Starting         key.Binding
	Cancelled        key.Binding
	CycleCarrier     key.Binding
	CycleBattery     key.Binding
	CycleTraffic     key.Binding
	CycleIcons       key.Binding
	CycleNotif       key.Binding
	ResetColors      key.Binding
	AddNotification  key.Binding
	DropNotification key.Binding
	AddIcon          key.Binding
	RemoveIcon       key.Binding
	Blacklist        key.Binding
	HideAreas        key.Binding
	DemoMode         key.Binding
	Dump             key.Binding
	Help             key.Binding
	Quit             key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDark, k.Pending, k.Starting, k.CycleCarrier, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleDark, k.ToggleDarkNow, k.Pending, k.Starting, k.Cancelled},
		{k.CycleCarrier, k.CycleBattery, k.CycleTraffic, k.CycleIcons, k.CycleNotif, k.ResetColors},
		{k.AddNotification, k.DropNotification, k.AddIcon, k.RemoveIcon, k.Blacklist},
		{k.HideAreas, k.DemoMode, k.Dump, k.Help, k.Quit},
	}
}

// DefaultDemoKeyMap returns the default demo keybindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		ToggleDark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dark"),
		),
		ToggleDarkNow: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark now"),
		),
		Pending: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "transition pending"),
		),
		Starting: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "transition starting"),
		),
		Cancelled: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "transition cancelled"),
		),
		CycleCarrier: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "carrier color"),
		),
		CycleBattery: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "battery colors"),
		),
		CycleTraffic: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "traffic colors"),
		),
		CycleIcons: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "icon colors"),
		),
		CycleNotif: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "notification color"),
		),
		ResetColors: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset colors"),
		),
		AddNotification: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "post notification"),
		),
		DropNotification: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "dismiss notification"),
		),
		AddIcon: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "add indicator"),
		),
		RemoveIcon: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "remove indicator"),
		),
		Blacklist: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle blacklist"),
		),
		HideAreas: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide/show icons"),
		),
		DemoMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "demo mode"),
		),
		Dump: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "dump"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
