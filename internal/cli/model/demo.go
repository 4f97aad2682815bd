// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/infrastructure/colorsource"
	"github.com/bnema/statusbar/internal/logging"
	"github.com/bnema/statusbar/internal/statusbar"
	"github.com/bnema/statusbar/internal/tint"
)

const (
	transitionLead     = 150 * time.Millisecond
	transitionDuration = 300 * time.Millisecond
)

var (
	blacklistPresets = []string{"", "wifi", "wifi, , bluetooth,", "alarm,volume"}
	indicatorSlots   = []string{"wifi", "bluetooth", "alarm", "volume", "location", "cast", "hotspot", "zen"}
	colorPresets     = []entity.ARGB{0xFF80CBC4, 0xFFFFB74D, 0xFFE57373, 0xFF9575CD, 0xFFFFFFFF}
	legacyColors     = []entity.ARGB{0xFFE53935, 0xFF9E9E9E, 0xFF43A047, 0xFFBDBDBD}
	notifGlyphs      = []string{styles.IconNotification, styles.IconPhone, styles.IconCalendar, styles.IconGithub}
)

type frameMsg time.Time

// PostedMsg runs a function on the UI goroutine. Other goroutines send it
// through tea.Program.Send.
type PostedMsg func()

// DemoModelConfig holds configuration for the demo model.
type DemoModelConfig struct {
	// Options are the controller options; the model binds its widgets to
	// Options.Engine.Registry before building the controller.
	// Options.Engine.Clock is required.
	Options statusbar.Options
	// Overrides is the topmost color store. Color cycling writes to it.
	Overrides     colorsource.MapStore
	FrameInterval time.Duration
	// LightApp starts the demo over a light app, with dark icons.
	LightApp bool
}

// DemoModel is the Bubble Tea model hosting a status bar controller.
type DemoModel struct {
	help     help.Model
	keys     styles.DemoKeyMap
	showHelp bool

	ctx        context.Context
	log        *zerolog.Logger
	theme      *styles.Theme
	controller *statusbar.Controller
	clock      port.Clock
	overrides  colorsource.MapStore
	frame      time.Duration

	carrier, keyguardCarrier *labelWidget
	clocks                   map[entity.ClockPosition]*clockWidget
	more                     *labelWidget
	battery                  *batteryWidget
	keyguardBattery          *batteryWidget
	traffic                  *trafficWidget
	signal                   *signalWidget
	systemArea, centerArea   *areaWidget
	notificationArea         *areaWidget

	lightApp      bool
	areasHidden   bool
	blacklistIdx  int
	colorIdx      map[entity.RoleGroup]int
	notifications []statusbar.NotificationEntry
	posted        int
	lastEvent     string
	dump          string
	width         int
}

// NewDemoModel binds terminal widgets to a new controller.
func NewDemoModel(ctx context.Context, theme *styles.Theme, cfg DemoModelConfig) *DemoModel {
	ctx = logging.WithComponent(ctx, "demo")

	m := &DemoModel{
		help:             styles.NewStyledHelp(theme),
		keys:             styles.DefaultDemoKeyMap(),
		ctx:              ctx,
		log:              logging.FromContext(ctx),
		theme:            theme,
		clock:            cfg.Options.Engine.Clock,
		overrides:        cfg.Overrides,
		frame:            cfg.FrameInterval,
		carrier:          &labelWidget{text: "Carrier"},
		keyguardCarrier:  &labelWidget{text: "Carrier"},
		more:             &labelWidget{text: styles.IconMore},
		battery:          &batteryWidget{level: 76},
		keyguardBattery:  &batteryWidget{level: 76, shown: true},
		traffic:          &trafficWidget{rate: "1.2K/s"},
		signal:           &signalWidget{},
		systemArea:       newAreaWidget(),
		centerArea:       newAreaWidget(),
		notificationArea: newAreaWidget(),
		colorIdx:         make(map[entity.RoleGroup]int),
		lightApp:         cfg.LightApp,
		width:            80,
		clocks: map[entity.ClockPosition]*clockWidget{
			entity.ClockRight:  {},
			entity.ClockCenter: {},
			entity.ClockLeft:   {},
		},
	}
	if m.overrides == nil {
		m.overrides = make(colorsource.MapStore)
	}
	if m.frame <= 0 {
		m.frame = time.Second / 60
	}

	opts := cfg.Options
	if opts.Engine.Registry == nil {
		profile := opts.Engine.Profile
		if profile.Name == "" {
			profile = tint.PhoneProfile()
			opts.Engine.Profile = profile
		}
		opts.Engine.Registry = tint.NewRegistry(profile)
	}
	reg := opts.Engine.Registry
	reg.BindCarrierLabel(tint.SurfaceStatusBar, m.carrier)
	reg.BindCarrierLabel(tint.SurfaceKeyguard, m.keyguardCarrier)
	reg.BindBattery(tint.SurfaceStatusBar, m.battery)
	reg.BindBattery(tint.SurfaceKeyguard, m.keyguardBattery)
	reg.BindTraffic(tint.SurfaceStatusBar, m.traffic)
	reg.BindSignalCluster(tint.SurfaceStatusBar, m.signal)
	reg.BindSingleTone(tint.SurfaceStatusBar, m.more)
	for _, c := range m.clocks {
		reg.BindSingleTone(tint.SurfaceStatusBar, c)
	}

	opts.Battery = m.battery
	opts.Areas = statusbar.Areas{
		SystemIcons:       m.systemArea,
		CenterClock:       m.centerArea,
		NotificationIcons: m.notificationArea,
	}

	m.controller = statusbar.New(ctx, opts)
	for pos, c := range m.clocks {
		m.controller.RegisterClock(pos, c)
	}

	m.bootstrap()
	return m
}

// bootstrap puts the bar in its initial state.
func (m *DemoModel) bootstrap() {
	for i, slot := range indicatorSlots[:4] {
		m.controller.AddSystemIcon(slot, i, i, demoIcon(slot))
	}
	m.controller.UpdateBatterySettings()
	m.controller.SetClockVisibility(true)
	m.controller.SetDark(m.lightApp, false)
	m.postNotification(false)
	m.postNotification(true)
	m.controller.ApplyIconTint()
	m.lastEvent = "ready"
}

func demoIcon(slot string) entity.StatusBarIcon {
	return entity.StatusBarIcon{Package: "statusbar", IconName: "stat_sys_" + slot, Visible: true}
}

// Controller returns the hosted controller.
func (m *DemoModel) Controller() *statusbar.Controller { return m.controller }

// Init starts the frame loop.
func (m *DemoModel) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *DemoModel) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles messages.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.controller.Tick()
		return m, m.nextFrame()
	case PostedMsg:
		msg()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.controller
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.ToggleDark):
		m.lightApp = !m.lightApp
		c.SetDark(m.lightApp, true)
		m.event("dark=%t animated", m.lightApp)
	case key.Matches(msg, m.keys.ToggleDarkNow):
		m.lightApp = !m.lightApp
		c.SetDark(m.lightApp, false)
		m.event("dark=%t immediate", m.lightApp)
	case key.Matches(msg, m.keys.Pending):
		c.AppTransitionPending()
		m.event("app transition pending")
	case key.Matches(msg, m.keys.Starting):
		start := m.clock.Now() + transitionLead
		c.AppTransitionStarting(start, transitionDuration)
		m.event("app transition starting in %s for %s", transitionLead, transitionDuration)
	case key.Matches(msg, m.keys.Cancelled):
		c.AppTransitionCancelled()
		m.event("app transition cancelled")
	case key.Matches(msg, m.keys.CycleCarrier):
		m.cycleColor(entity.GroupCarrierLabel)
	case key.Matches(msg, m.keys.CycleBattery):
		m.cycleColor(entity.GroupBattery)
	case key.Matches(msg, m.keys.CycleTraffic):
		m.cycleColor(entity.GroupNetworkTraffic)
	case key.Matches(msg, m.keys.CycleIcons):
		m.cycleColor(entity.GroupStatusNetworkIcons)
	case key.Matches(msg, m.keys.CycleNotif):
		m.cycleColor(entity.GroupNotificationIcons)
	case key.Matches(msg, m.keys.ResetColors):
		m.resetColors()
	case key.Matches(msg, m.keys.AddNotification):
		m.postNotification(m.posted%2 == 1)
	case key.Matches(msg, m.keys.DropNotification):
		m.dismissNotification()
	case key.Matches(msg, m.keys.AddIcon):
		m.addIndicator()
	case key.Matches(msg, m.keys.RemoveIcon):
		m.removeIndicator()
	case key.Matches(msg, m.keys.Blacklist):
		m.blacklistIdx = (m.blacklistIdx + 1) % len(blacklistPresets)
		c.OnBlacklistChanged(blacklistPresets[m.blacklistIdx])
		m.event("blacklist %q", blacklistPresets[m.blacklistIdx])
	case key.Matches(msg, m.keys.HideAreas):
		m.toggleAreas()
	case key.Matches(msg, m.keys.DemoMode):
		m.toggleDemoMode()
	case key.Matches(msg, m.keys.Dump):
		var buf bytes.Buffer
		if err := c.Dump(&buf); err != nil {
			m.log.Warn().Err(err).Msg("dump failed")
		}
		m.dump = strings.TrimRight(buf.String(), "\n")
	}
	return m, nil
}

func (m *DemoModel) event(format string, args ...any) {
	m.lastEvent = fmt.Sprintf(format, args...)
	m.log.Debug().Str("event", m.lastEvent).Msg("demo input")
}

// cycleColor writes the next preset as the light color of every role in
// group and plays the preference crossfade.
func (m *DemoModel) cycleColor(group entity.RoleGroup) {
	idx := m.colorIdx[group] % len(colorPresets)
	m.colorIdx[group] = idx + 1
	c := colorPresets[idx]
	for _, role := range group.Roles() {
		m.overrides[entity.ColorSettingKey(role, entity.ModeLight)] = entity.FormatColorSetting(c)
	}
	m.updateGroup(group, true)
	m.event("%s color %s", group, c.Hex())
}

func (m *DemoModel) resetColors() {
	for k := range m.overrides {
		delete(m.overrides, k)
	}
	m.colorIdx = make(map[entity.RoleGroup]int)
	m.RefreshColors(true)
	m.event("colors reset")
}

// RefreshColors re-reads every preference group.
func (m *DemoModel) RefreshColors(animate bool) {
	for _, group := range entity.AllGroups() {
		m.updateGroup(group, animate)
	}
}

func (m *DemoModel) updateGroup(group entity.RoleGroup, animate bool) {
	c := m.controller
	switch group {
	case entity.GroupCarrierLabel:
		c.UpdateCarrierLabelColor(animate)
	case entity.GroupBattery:
		c.UpdateBatteryColors(animate)
	case entity.GroupNetworkTraffic:
		c.UpdateNetworkTrafficColors(animate)
	case entity.GroupStatusNetworkIcons:
		c.UpdateStatusNetworkIconColors(animate)
	case entity.GroupNotificationIcons:
		c.UpdateNotificationIconColor()
	}
}

func (m *DemoModel) postNotification(legacy bool) {
	i := m.posted
	m.posted++
	icon := newNotificationIcon(uuid.NewString(), notifGlyphs[i%len(notifGlyphs)], legacy, legacyColors[i%len(legacyColors)])
	m.notifications = append([]statusbar.NotificationEntry{{
		Key:      icon.key,
		Icon:     icon,
		TopLevel: true,
	}}, m.notifications...)
	m.controller.UpdateNotificationIcons(m.notifications)
	m.event("posted notification %s (legacy=%t)", icon.key[:8], legacy)
}

func (m *DemoModel) dismissNotification() {
	if len(m.notifications) == 0 {
		return
	}
	last := m.notifications[len(m.notifications)-1]
	m.notifications = m.notifications[:len(m.notifications)-1]
	m.controller.UpdateNotificationIcons(m.notifications)
	m.event("dismissed notification %s", last.Key[:8])
}

func (m *DemoModel) addIndicator() {
	row := m.controller.StatusIcons()
	for _, slot := range indicatorSlots {
		if row.IndexOf(slot) >= 0 {
			continue
		}
		n := row.Len()
		m.controller.AddSystemIcon(slot, n, n, demoIcon(slot))
		m.event("added indicator %s", slot)
		return
	}
}

func (m *DemoModel) removeIndicator() {
	row := m.controller.StatusIcons()
	if row.Len() == 0 {
		return
	}
	n := row.Len() - 1
	slot := row.At(n).Slot()
	m.controller.RemoveSystemIcon(slot, n, n)
	m.event("removed indicator %s", slot)
}

func (m *DemoModel) toggleAreas() {
	m.areasHidden = !m.areasHidden
	if m.areasHidden {
		m.controller.HideSystemIconArea(true)
		m.controller.HideNotificationIconArea(true)
	} else {
		m.controller.ShowSystemIconArea(true)
		m.controller.ShowNotificationIconArea(true)
	}
	m.event("icon areas hidden=%t", m.areasHidden)
}

func (m *DemoModel) toggleDemoMode() {
	c := m.controller
	if c.Demo().Active() {
		c.DispatchDemoCommand(statusbar.DemoCommandExit, nil)
		m.event("demo mode off")
		return
	}
	c.DispatchDemoCommand(statusbar.DemoCommandEnter, nil)
	c.DispatchDemoCommand(statusbar.DemoCommandStatus, map[string]string{
		"volume":    "vibrate",
		"bluetooth": "connected",
		"alarm":     "show",
		"cast":      "show",
	})
	m.event("demo mode on")
}

// ApplyBlacklist installs a blacklist coming from outside the demo, such as a
// configuration reload.
func (m *DemoModel) ApplyBlacklist(value string) {
	m.controller.OnBlacklistChanged(value)
	m.event("blacklist reloaded %q", value)
}

// View renders the bar, the lock screen mirror and the controls.
func (m *DemoModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.theme.Title.Render("status bar demo"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBar())
	sb.WriteString("\n")
	if m.controller.KeyguardIcons() != nil {
		sb.WriteString(m.renderKeyguard())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderState())
	sb.WriteString("\n")
	sb.WriteString(m.theme.Subtle.Render(m.lastEvent))
	sb.WriteString("\n\n")

	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	if m.dump != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.theme.Subtle.Render(m.dump))
	}
	return sb.String()
}

func (m *DemoModel) background() string {
	if m.lightApp {
		return styles.LightAppBackground
	}
	return styles.DarkAppBackground
}

func (m *DemoModel) renderBar() string {
	bg := m.background()
	space := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(" ")

	var left []string
	if c := m.clocks[entity.ClockLeft]; c.visible {
		left = append(left, styles.Paint(time.Now().Format("15:04"), c.color, bg))
	}
	left = append(left, styles.Paint(m.carrier.text, m.carrier.color, bg))
	notifAlpha := m.notificationArea.opacity()
	shown, overflow := m.controller.NotificationIcons().Visible(m.controller.MaxNotificationIcons())
	for _, v := range shown {
		icon := v.(*notificationIcon)
		left = append(left, styles.Fade(icon.glyph, icon.shownColor(), notifAlpha, bg))
	}
	if overflow {
		left = append(left, styles.Fade(m.more.text, m.more.color, notifAlpha, bg))
	}

	var center string
	if c := m.clocks[entity.ClockCenter]; c.visible {
		center = styles.Fade(time.Now().Format("15:04"), c.color, m.centerArea.opacity(), bg)
	}

	sysAlpha := m.systemArea.opacity()
	var right []string
	row := m.controller.StatusIcons()
	if m.controller.Demo().Active() {
		row = m.controller.Demo().Row()
	}
	for _, v := range row.Views() {
		view, ok := v.(*statusbar.IconView)
		if !ok || !view.Shown() {
			continue
		}
		right = append(right, styles.Fade(styles.SlotIcon(view.Slot()), view.Color(), sysAlpha, bg))
	}
	right = append(right,
		styles.Fade(styles.IconTraffic, m.traffic.icon, sysAlpha, bg)+styles.Fade(m.traffic.rate, m.traffic.text, sysAlpha, bg),
		m.renderSignal(sysAlpha, bg),
	)
	if m.battery.shown {
		right = append(right, m.renderBattery(m.battery, sysAlpha, bg))
	}
	if c := m.clocks[entity.ClockRight]; c.visible {
		right = append(right, styles.Paint(time.Now().Format("15:04"), c.color, bg))
	}

	leftStr := strings.Join(left, space)
	rightStr := strings.Join(right, space)
	gap := max(2, m.width-lipgloss.Width(leftStr)-lipgloss.Width(center)-lipgloss.Width(rightStr))
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	return leftStr + fill.Render(strings.Repeat(" ", gap/2)) + center +
		fill.Render(strings.Repeat(" ", gap-gap/2)) + rightStr
}

func (m *DemoModel) renderSignal(alpha float64, bg string) string {
	switch {
	case m.signal.airplaneMode:
		return styles.Fade(styles.IconAirplane, m.signal.airplane, alpha, bg)
	case m.signal.noSimCard:
		return styles.Fade(styles.IconNoSim, m.signal.noSim, alpha, bg)
	default:
		return styles.Fade(styles.IconSignal, m.signal.signal, alpha, bg)
	}
}

func (m *DemoModel) renderBattery(b *batteryWidget, alpha float64, bg string) string {
	filled := b.level / 25
	bar := styles.Fade(strings.Repeat("▮", filled), b.fill, alpha, bg) +
		styles.Fade(strings.Repeat("▯", 4-filled), b.frame, alpha, bg)
	if b.textShown {
		bar += styles.Fade(fmt.Sprintf(" %d%%", b.level), b.text, alpha, bg)
	}
	return bar
}

func (m *DemoModel) renderKeyguard() string {
	bg := styles.DarkAppBackground
	parts := []string{m.theme.Subtle.Render("lock screen "), styles.Paint(m.keyguardCarrier.text, m.keyguardCarrier.color, bg)}
	for _, v := range m.controller.KeyguardIcons().Views() {
		view, ok := v.(*statusbar.IconView)
		if !ok || !view.Shown() {
			continue
		}
		parts = append(parts, styles.Paint(styles.SlotIcon(view.Slot()), view.Color(), bg))
	}
	parts = append(parts, m.renderBattery(m.keyguardBattery, 1, bg))
	return strings.Join(parts, " ")
}

func (m *DemoModel) renderState() string {
	c := m.controller
	phase := c.Transition().Phase()
	return strings.Join([]string{
		m.theme.AccentBadge(fmt.Sprintf("dark %3.0f%%", c.DarkIntensity()*100)),
		m.theme.ToggleBadge("phase "+phase.String(), phase != tint.PhaseIdle),
		m.theme.ToggleBadge("tint", c.TintAnimating()),
		m.theme.ToggleBadge("colors", c.ColorChangeAnimating()),
		m.theme.ToggleBadge("demo", c.Demo().Active()),
		m.theme.MutedBadge("profile " + c.Profile().Name),
	}, " ")
}
