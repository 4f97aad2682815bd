// Package statusbar hosts the tint engine together with the widget glue of a
// status bar: indicator icon rows and their blacklist, the notification icon
// row, area fades, clock and battery settings, dumps and demo mode.
//
// Like the engine, a Controller is single-threaded and must only be used from
// the UI goroutine.
package statusbar

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/logging"
	"github.com/bnema/statusbar/internal/tint"
)

// Default area fade timings.
const (
	DefaultHideDuration = 160 * time.Millisecond
	DefaultShowDuration = 320 * time.Millisecond
	DefaultShowDelay    = 50 * time.Millisecond
)

// Areas are the fadeable regions of the bar. Any field may be nil.
type Areas struct {
	SystemIcons       port.AlphaTarget
	CenterClock       port.AlphaTarget
	NotificationIcons port.AlphaTarget
}

// Options configures a Controller.
type Options struct {
	Engine tint.Options
	// Settings answers clock, battery and icon cap lookups. When nil,
	// defaults are used.
	Settings    port.SettingReader
	ViewFactory port.IconViewFactory
	Battery     port.BatteryView
	Areas       Areas

	Blacklist entity.Blacklist
	// MaxNotificationIcons caps the shown notification icons; zero means
	// the host setting decides.
	MaxNotificationIcons int

	// Zero durations select the defaults. A negative ShowDelay disables the
	// fade-in delay.
	HideDuration time.Duration
	ShowDuration time.Duration
	ShowDelay    time.Duration
}

// Controller owns the status bar icon rows on top of the tint engine.
type Controller struct {
	*tint.Engine

	log      *zerolog.Logger
	clock    port.Clock
	settings port.SettingReader
	factory  port.IconViewFactory
	battery  port.BatteryView

	blacklist      entity.Blacklist
	statusIcons    *IconRow
	keyguardIcons  *IconRow
	notifications  *NotificationRow
	maxNotifIcons  int
	clocks         map[entity.ClockPosition][]port.ClockObserver
	areas          []*area
	systemArea     *area
	centerClock    *area
	notifArea      *area
	keyguardFading *keyguardFade
	demo           *DemoIcons
}

// New builds the engine and binds the controller's icon rows to it.
func New(ctx context.Context, opts Options) *Controller {
	ctx = logging.WithComponent(ctx, "statusbar")

	if opts.ViewFactory == nil {
		opts.ViewFactory = DefaultViewFactory
	}
	if opts.Settings == nil {
		opts.Settings = defaultSettings{}
	}
	if opts.Blacklist == nil {
		opts.Blacklist = make(entity.Blacklist)
	}
	if opts.Engine.Profile.Name == "" {
		opts.Engine.Profile = tint.PhoneProfile()
	}
	if opts.Engine.Registry == nil {
		opts.Engine.Registry = tint.NewRegistry(opts.Engine.Profile)
	}
	if opts.HideDuration <= 0 {
		opts.HideDuration = DefaultHideDuration
	}
	if opts.ShowDuration <= 0 {
		opts.ShowDuration = DefaultShowDuration
	}
	switch {
	case opts.ShowDelay == 0:
		opts.ShowDelay = DefaultShowDelay
	case opts.ShowDelay < 0:
		opts.ShowDelay = 0
	}

	c := &Controller{
		Engine:        tint.New(ctx, opts.Engine),
		log:           logging.FromContext(ctx),
		clock:         opts.Engine.Clock,
		settings:      opts.Settings,
		factory:       opts.ViewFactory,
		battery:       opts.Battery,
		blacklist:     opts.Blacklist,
		statusIcons:   NewIconRow(),
		notifications: NewNotificationRow(),
		maxNotifIcons: opts.MaxNotificationIcons,
		clocks:        make(map[entity.ClockPosition][]port.ClockObserver),
	}

	reg := c.Registry()
	reg.BindStatusIcons(tint.SurfaceStatusBar, c.statusIcons)
	keyguard := NewIconRow()
	if reg.BindStatusIcons(tint.SurfaceKeyguard, keyguard) {
		c.keyguardIcons = keyguard
	}
	reg.BindNotificationIcons(c.notifications)

	fade := fadeTimings{hide: opts.HideDuration, show: opts.ShowDuration, showDelay: opts.ShowDelay}
	c.systemArea = c.newArea("system_icons", opts.Areas.SystemIcons, fade)
	c.centerClock = c.newArea("center_clock", opts.Areas.CenterClock, fade)
	c.notifArea = c.newArea("notification_icons", opts.Areas.NotificationIcons, fade)

	c.demo = newDemoIcons(c)
	reg.BindStatusIcons(tint.SurfaceStatusBar, c.demo.row)

	c.log.Debug().
		Str("profile", c.Profile().Name).
		Bool("keyguard_mirror", c.keyguardIcons != nil).
		Int("blacklisted", len(c.blacklist)).
		Msg("status bar controller initialized")

	return c
}

// Tick advances the engine and every area fade.
func (c *Controller) Tick() {
	c.Engine.Tick()
	now := c.clock.Now()
	for _, a := range c.areas {
		a.animator.Tick(now)
	}
}

// Animating reports whether the engine or an area fade is animating.
func (c *Controller) Animating() bool {
	if c.Engine.Animating() {
		return true
	}
	for _, a := range c.areas {
		if a.animator.Running() {
			return true
		}
	}
	return false
}

// StatusIcons returns the status bar indicator row.
func (c *Controller) StatusIcons() *IconRow { return c.statusIcons }

// KeyguardIcons returns the lock screen indicator row, or nil when the
// profile does not mirror.
func (c *Controller) KeyguardIcons() *IconRow { return c.keyguardIcons }

// NotificationIcons returns the notification icon row.
func (c *Controller) NotificationIcons() *NotificationRow { return c.notifications }

// Blacklist returns the current icon blacklist.
func (c *Controller) Blacklist() entity.Blacklist { return c.blacklist }

// MaxNotificationIcons returns the notification icon cap in effect.
func (c *Controller) MaxNotificationIcons() int {
	if c.maxNotifIcons > 0 {
		return c.maxNotifIcons
	}
	return c.settings.Int(entity.SettingNotificationMaxIcon, 0)
}

type defaultSettings struct{}

func (defaultSettings) Int(_ string, def int) int    { return def }
func (defaultSettings) Bool(_ string, def bool) bool { return def }

var _ port.SettingReader = defaultSettings{}

