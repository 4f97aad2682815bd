package tint

import (
	"image"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/infrastructure/cache"
)

// grayscaleMemoSize bounds the memoized grayscale verdicts. Verdicts are
// normally forgotten when their icon is removed.
const grayscaleMemoSize = 256

// Surface identifies where a widget lives.
type Surface int

const (
	SurfaceStatusBar Surface = iota
	SurfaceKeyguard
)

func (s Surface) String() string {
	if s == SurfaceKeyguard {
		return "keyguard"
	}
	return "status_bar"
}

// Registry holds the tintable widgets grouped by role and fans role-keyed
// writes out to them. Keyguard widgets are only bound when the profile
// mirrors onto the lock screen.
type Registry struct {
	profile Profile

	carrierLabels []port.ColorTarget
	batteries     []port.BatteryTarget
	traffic       []port.TrafficTarget
	signals       []port.SignalTarget
	singleTone    []port.ColorTarget
	statusIcons   []port.IconContainer
	notifications port.NotificationIconContainer

	grayscale       port.Cache[string, bool]
	isGrayscaleFunc func(image.Image) bool
}

// NewRegistry creates an empty registry for profile.
func NewRegistry(profile Profile) *Registry {
	return &Registry{
		profile:         profile,
		grayscale:       cache.NewLRU[string, bool](grayscaleMemoSize),
		isGrayscaleFunc: IsGrayscaleImage,
	}
}

func (r *Registry) accepts(s Surface) bool {
	return s == SurfaceStatusBar || r.profile.KeyguardMirror
}

// BindCarrierLabel binds a carrier label.
func (r *Registry) BindCarrierLabel(s Surface, t port.ColorTarget) bool {
	if !r.accepts(s) || !r.profile.Has(entity.RoleCarrierLabel) {
		return false
	}
	r.carrierLabels = append(r.carrierLabels, t)
	return true
}

// BindBattery binds a battery meter.
func (r *Registry) BindBattery(s Surface, t port.BatteryTarget) bool {
	if !r.accepts(s) {
		return false
	}
	r.batteries = append(r.batteries, t)
	return true
}

// BindTraffic binds a network traffic readout.
func (r *Registry) BindTraffic(s Surface, t port.TrafficTarget) bool {
	if !r.accepts(s) {
		return false
	}
	r.traffic = append(r.traffic, t)
	return true
}

// BindSignalCluster binds a signal cluster.
func (r *Registry) BindSignalCluster(s Surface, t port.SignalTarget) bool {
	if !r.accepts(s) {
		return false
	}
	r.signals = append(r.signals, t)
	return true
}

// BindSingleTone binds a widget painted with the single-tone icon color,
// such as a clock or the notification overflow indicator.
func (r *Registry) BindSingleTone(s Surface, t port.ColorTarget) bool {
	if !r.accepts(s) {
		return false
	}
	r.singleTone = append(r.singleTone, t)
	return true
}

// BindStatusIcons binds a row of indicator icons.
func (r *Registry) BindStatusIcons(s Surface, c port.IconContainer) bool {
	if !r.accepts(s) {
		return false
	}
	r.statusIcons = append(r.statusIcons, c)
	return true
}

// BindNotificationIcons binds the notification icon row.
func (r *Registry) BindNotificationIcons(c port.NotificationIconContainer) {
	r.notifications = c
}

// Apply writes color to every widget of a single-color role. Multi-color
// widgets are painted through Paint.
func (r *Registry) Apply(role entity.Role, color entity.ARGB) {
	switch role {
	case entity.RoleCarrierLabel:
		for _, t := range r.carrierLabels {
			t.SetColor(color)
		}
	case entity.RoleBatteryText:
		for _, t := range r.batteries {
			t.SetTextColor(color)
		}
	case entity.RoleTrafficText:
		for _, t := range r.traffic {
			t.SetTextColor(color)
		}
	case entity.RoleTrafficIcon:
		for _, t := range r.traffic {
			t.SetIconColor(color)
		}
	case entity.RoleStatusIcon:
		for _, c := range r.statusIcons {
			for i := 0; i < c.Len(); i++ {
				c.At(i).SetColor(color)
			}
		}
	case entity.RoleNotificationIcon:
		r.applyNotificationIcons(color)
	case entity.RoleSingleToneIcon:
		for _, t := range r.singleTone {
			t.SetColor(color)
		}
	}
}

// ApplyBattery writes the frame and fill pair to every battery.
func (r *Registry) ApplyBattery(frame, fill entity.ARGB) {
	for _, t := range r.batteries {
		t.SetFrameAndFillColor(frame, fill)
	}
}

// ApplySignal writes the signal cluster colors.
func (r *Registry) ApplySignal(signal, noSim, airplane entity.ARGB) {
	for _, t := range r.signals {
		t.SetSignalColors(signal, noSim, airplane)
	}
}

// Paint pushes the colors of roles, as resolved by color, to their widgets.
// Roles outside the profile are skipped. Widgets taking several roles are
// written once with all their colors.
func (r *Registry) Paint(roles []entity.Role, color func(entity.Role) entity.ARGB) {
	var battery, signal bool
	for _, role := range r.profile.filter(roles) {
		switch role {
		case entity.RoleBatteryFrame, entity.RoleBatteryFill:
			battery = true
		case entity.RoleNetworkSignal, entity.RoleNoSim, entity.RoleAirplaneMode:
			signal = true
		default:
			r.Apply(role, color(role))
		}
	}
	if battery {
		r.ApplyBattery(color(entity.RoleBatteryFrame), color(entity.RoleBatteryFill))
	}
	if signal {
		noSim := color(entity.RoleNoSim)
		if !r.profile.Has(entity.RoleNoSim) {
			noSim = color(entity.RoleNetworkSignal)
		}
		r.ApplySignal(color(entity.RoleNetworkSignal), noSim, color(entity.RoleAirplaneMode))
	}
}

func (r *Registry) applyNotificationIcons(color entity.ARGB) {
	if r.notifications == nil {
		return
	}
	for i := 0; i < r.notifications.Len(); i++ {
		icon := r.notifications.At(i)
		if r.ShouldTint(icon) {
			icon.SetColor(color)
		}
	}
}

// ShouldTint reports whether a notification icon takes the tint: modern icons
// always do, pre-flat icons only when grayscale.
func (r *Registry) ShouldTint(icon port.NotificationIconView) bool {
	return !icon.PreFlat() || r.isGrayscale(icon)
}

func (r *Registry) isGrayscale(icon port.NotificationIconView) bool {
	if v, ok := r.grayscale.Get(icon.Key()); ok {
		return v
	}
	v := r.isGrayscaleFunc(icon.Bitmap())
	r.grayscale.Set(icon.Key(), v)
	return v
}

// Forget drops the memoized grayscale verdict of a removed notification icon.
func (r *Registry) Forget(key string) {
	r.grayscale.Remove(key)
}
