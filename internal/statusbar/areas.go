package statusbar

import (
	"time"

	"github.com/bnema/statusbar/internal/animation"
	"github.com/bnema/statusbar/internal/application/port"
)

type fadeTimings struct {
	hide, show, showDelay time.Duration
}

type keyguardFade struct {
	delay, duration time.Duration
}

// area is a fadeable region. Its alpha animation replaces the one in flight.
type area struct {
	name     string
	target   port.AlphaTarget
	timings  fadeTimings
	animator *animation.Animator
	alpha    float64
	visible  bool
}

func (c *Controller) newArea(name string, target port.AlphaTarget, timings fadeTimings) *area {
	a := &area{name: name, target: target, timings: timings, alpha: 1, visible: true}
	a.animator = animation.New(animation.Listener{
		OnUpdate: a.setAlpha,
	})
	if target != nil {
		c.areas = append(c.areas, a)
	}
	return a
}

func (a *area) setAlpha(v float64) {
	a.alpha = v
	a.target.SetAlpha(v)
}

func (a *area) setVisible(v bool) {
	a.visible = v
	a.target.SetVisible(v)
}

func (c *Controller) animateHide(a *area, animate bool) {
	if a.target == nil {
		return
	}
	a.animator.Cancel()
	if !animate {
		a.setAlpha(0)
		a.setVisible(false)
		return
	}
	a.animator = animation.New(animation.Listener{
		OnUpdate: a.setAlpha,
		OnEnd:    func() { a.setVisible(false) },
	})
	a.animator.Start(c.clock.Now(), animation.Spec{
		From:         a.alpha,
		To:           0,
		Duration:     a.timings.hide,
		Interpolator: animation.AlphaOut,
	})
	c.log.Trace().Str("area", a.name).Msg("area hide started")
}

func (c *Controller) animateShow(a *area, animate bool) {
	if a.target == nil {
		return
	}
	a.animator.Cancel()
	a.setVisible(true)
	if !animate {
		a.setAlpha(1)
		return
	}
	spec := animation.Spec{
		From:         a.alpha,
		To:           1,
		Delay:        a.timings.showDelay,
		Duration:     a.timings.show,
		Interpolator: animation.AlphaIn,
	}
	if fade := c.keyguardFading; fade != nil {
		spec.Delay = fade.delay
		spec.Duration = fade.duration
		spec.Interpolator = animation.LinearOutSlowIn
	}
	a.animator = animation.New(animation.Listener{OnUpdate: a.setAlpha})
	a.animator.Start(c.clock.Now(), spec)
	c.log.Trace().Str("area", a.name).Dur("delay", spec.Delay).Msg("area show started")
}

// HideSystemIconArea fades out the indicator area and the center clock.
func (c *Controller) HideSystemIconArea(animate bool) {
	c.animateHide(c.systemArea, animate)
	c.animateHide(c.centerClock, animate)
}

// ShowSystemIconArea fades in the indicator area and the center clock.
func (c *Controller) ShowSystemIconArea(animate bool) {
	c.animateShow(c.systemArea, animate)
	c.animateShow(c.centerClock, animate)
}

// HideNotificationIconArea fades out the notification icon area.
func (c *Controller) HideNotificationIconArea(animate bool) {
	c.animateHide(c.notifArea, animate)
}

// ShowNotificationIconArea fades in the notification icon area.
func (c *Controller) ShowNotificationIconArea(animate bool) {
	c.animateShow(c.notifArea, animate)
}

// SetKeyguardFadingAway makes area fade-ins started until KeyguardFadingDone
// follow the lock screen exit timing.
func (c *Controller) SetKeyguardFadingAway(delay, duration time.Duration) {
	c.keyguardFading = &keyguardFade{delay: delay, duration: duration}
}

// KeyguardFadingDone restores the default fade-in timing.
func (c *Controller) KeyguardFadingDone() {
	c.keyguardFading = nil
}
