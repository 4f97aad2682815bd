// Package tint is the status bar color-state engine. It keeps a color triple
// per role, blends it with the compositor's dark intensity, crossfades user
// preference changes, and aligns tint changes with app transitions.
//
// The engine is single-threaded: every method must be called from the UI
// goroutine, which also drives animations through Tick.
package tint

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/statusbar/internal/animation"
	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/logging"
	"github.com/bnema/statusbar/internal/ui/mainloop"
)

// Default animation timings.
const (
	DefaultTintDuration        = 120 * time.Millisecond
	DefaultColorChangeDuration = 500 * time.Millisecond
)

// Default single-tone icon colors.
const (
	DefaultLightSingleTone entity.ARGB = 0xFFFFFFFF
	DefaultDarkSingleTone  entity.ARGB = 0x99000000
)

// Options configures an Engine. Source, Registry and Clock are required.
type Options struct {
	Source   port.ColorSource
	Registry *Registry
	Clock    port.Clock
	// Timers is the UI loop timer queue. A private queue is used when nil.
	Timers  *mainloop.Timers
	Profile Profile

	LightSingleTone entity.ARGB
	DarkSingleTone  entity.ARGB

	TintDuration        time.Duration
	ColorChangeDuration time.Duration
}

// Engine drives every tintable widget to its color.
type Engine struct {
	log      *zerolog.Logger
	source   port.ColorSource
	registry *Registry
	clock    port.Clock
	timers   *mainloop.Timers
	profile  Profile

	lightSingleTone entity.ARGB
	darkSingleTone  entity.ARGB

	tintDuration        time.Duration
	colorChangeDuration time.Duration

	states map[entity.Role]*roleState
	dark   float64

	tintAnimator *animation.Animator

	colorAnimator *animation.Animator
	changingGroup entity.RoleGroup

	transition TransitionState
}

// New creates an engine with every role at its light color and a dark
// intensity of zero. Nothing is painted until ApplyIconTint.
func New(ctx context.Context, opts Options) *Engine {
	ctx = logging.WithComponent(ctx, "tint")

	if opts.Timers == nil {
		opts.Timers = mainloop.NewTimers()
	}
	if opts.Profile.roles == nil {
		opts.Profile = PhoneProfile()
	}
	if opts.Registry == nil {
		opts.Registry = NewRegistry(opts.Profile)
	}
	if opts.LightSingleTone == 0 && opts.DarkSingleTone == 0 {
		opts.LightSingleTone = DefaultLightSingleTone
		opts.DarkSingleTone = DefaultDarkSingleTone
	}
	if opts.TintDuration <= 0 {
		opts.TintDuration = DefaultTintDuration
	}
	if opts.ColorChangeDuration <= 0 {
		opts.ColorChangeDuration = DefaultColorChangeDuration
	}

	e := &Engine{
		log:                 logging.FromContext(ctx),
		source:              opts.Source,
		registry:            opts.Registry,
		clock:               opts.Clock,
		timers:              opts.Timers,
		profile:             opts.Profile,
		lightSingleTone:     opts.LightSingleTone,
		darkSingleTone:      opts.DarkSingleTone,
		tintDuration:        opts.TintDuration,
		colorChangeDuration: opts.ColorChangeDuration,
		states:              make(map[entity.Role]*roleState),
	}

	for _, role := range entity.AllRoles() {
		e.states[role] = newRoleState(e.lightColor(role))
	}

	e.tintAnimator = animation.New(animation.Listener{
		OnUpdate: e.setDarkIntensity,
	})
	e.colorAnimator = animation.New(animation.Listener{
		OnUpdate: e.onColorChangeUpdate,
		OnEnd:    e.onColorChangeEnd,
	})

	e.log.Debug().
		Str("profile", e.profile.Name).
		Dur("tint_duration", e.tintDuration).
		Dur("color_change_duration", e.colorChangeDuration).
		Msg("tint engine initialized")

	return e
}

func (e *Engine) lightColor(role entity.Role) entity.ARGB {
	if role == entity.RoleSingleToneIcon {
		return e.lightSingleTone
	}
	return e.source.ColorOf(role, entity.ModeLight)
}

func (e *Engine) darkColor(role entity.Role) entity.ARGB {
	if role == entity.RoleSingleToneIcon {
		return e.darkSingleTone
	}
	return e.source.ColorOf(role, entity.ModeDark)
}

// blend recomputes the effective color of role at the current intensity.
func (e *Engine) blend(role entity.Role) {
	st := e.states[role]
	st.Effective = entity.LerpARGB(st.base, e.darkColor(role), e.dark)
}

func (e *Engine) effective(role entity.Role) entity.ARGB {
	return e.states[role].Effective
}

func (e *Engine) paint(roles []entity.Role) {
	e.registry.Paint(roles, e.effective)
}

// SetDark drives the icon tint towards dark (intensity 1) or light
// (intensity 0). Without animation the change is applied at once; otherwise
// it is animated, parked, or aligned with an app transition. An immediate
// change leaves a parked target in place; it still plays when the pending
// transition starts or is cancelled.
func (e *Engine) SetDark(dark, animate bool) {
	target := 0.0
	if dark {
		target = 1
	}

	if !animate {
		wasRunning := e.tintAnimator.Running()
		e.tintAnimator.Cancel()
		if !wasRunning && e.dark == target {
			return
		}
		e.setDarkIntensity(target)
		return
	}

	switch e.transition.Phase() {
	case PhasePending:
		e.parkTint(target)
	case PhaseDeferring:
		delay := max(0, e.transition.DeferStart-e.clock.Now())
		e.animateTint(target, delay, e.transition.DeferDuration)
	default:
		e.animateTint(target, 0, e.tintDuration)
	}
}

// animateTint starts the tint animator from the current intensity. A running
// tint animation is cancelled first; nothing starts when the intensity is
// already at target.
func (e *Engine) animateTint(target float64, delay, duration time.Duration) {
	e.tintAnimator.Cancel()
	if e.dark == target {
		return
	}
	e.log.Trace().
		Float64("from", e.dark).
		Float64("to", target).
		Dur("delay", delay).
		Dur("duration", duration).
		Msg("tint animation started")
	e.tintAnimator.Start(e.clock.Now(), animation.Spec{
		From:         e.dark,
		To:           target,
		Delay:        delay,
		Duration:     duration,
		Interpolator: animation.FastOutSlowIn,
	})
}

// setDarkIntensity commits an intensity, re-blends every role and repaints.
func (e *Engine) setDarkIntensity(d float64) {
	e.dark = d
	for _, role := range entity.AllRoles() {
		e.blend(role)
	}
	e.paint(entity.AllRoles())
}

// ApplyIconTint repaints every widget with its effective color.
func (e *Engine) ApplyIconTint() {
	e.paint(entity.AllRoles())
}

// ApplyNotificationIconsTint repaints the notification icon row only.
func (e *Engine) ApplyNotificationIconsTint() {
	e.paint([]entity.Role{entity.RoleNotificationIcon})
}

// Tick runs due timers and advances both animators to the current uptime.
func (e *Engine) Tick() {
	now := e.clock.Now()
	e.timers.RunDue(now)
	e.tintAnimator.Tick(now)
	e.colorAnimator.Tick(now)
}

// Animating reports whether either animator is running.
func (e *Engine) Animating() bool {
	return e.tintAnimator.Running() || e.colorAnimator.Running()
}

// TintAnimating reports whether a dark intensity animation is running,
// including its start delay.
func (e *Engine) TintAnimating() bool {
	return e.tintAnimator.Running()
}

// TintAnimation returns the parameters of the current or last tint animation.
func (e *Engine) TintAnimation() animation.Spec {
	return e.tintAnimator.Spec()
}

// ColorChangeAnimating reports whether a preference crossfade is running.
func (e *Engine) ColorChangeAnimating() bool {
	return e.colorAnimator.Running()
}

// DarkIntensity returns the current dark intensity.
func (e *Engine) DarkIntensity() float64 {
	return e.dark
}

// Colors returns the color triple of role.
func (e *Engine) Colors(role entity.Role) RoleColors {
	return e.states[role].RoleColors
}

// DarkVariant returns the color role blends towards at full intensity.
func (e *Engine) DarkVariant(role entity.Role) entity.ARGB {
	return e.darkColor(role)
}

// Profile returns the engine's profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Registry returns the widget registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Timers returns the timer queue the engine schedules on.
func (e *Engine) Timers() *mainloop.Timers {
	return e.timers
}
