package tint

import (
	"time"
)

const deferringDoneTimer = "tint.transition-deferring-done"

// TransitionPhase is the coordinator state.
type TransitionPhase int

const (
	PhaseIdle TransitionPhase = iota
	PhasePending
	PhaseDeferring
)

func (p TransitionPhase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseDeferring:
		return "deferring"
	default:
		return "idle"
	}
}

// TransitionState is the app transition record. Pending and Deferring are
// never both set; PendingTarget is only set while Pending.
type TransitionState struct {
	Pending       bool
	Deferring     bool
	DeferStart    time.Duration
	DeferDuration time.Duration
	PendingTarget *float64
}

// Phase derives the coordinator state from the flags.
func (s TransitionState) Phase() TransitionPhase {
	switch {
	case s.Pending:
		return PhasePending
	case s.Deferring:
		return PhaseDeferring
	default:
		return PhaseIdle
	}
}

// AppTransitionPending marks an app transition as about to start. Tint
// changes requested from now on are parked until the transition starts or is
// cancelled. An earlier deferral window is closed.
func (e *Engine) AppTransitionPending() {
	if e.transition.Deferring {
		e.transition.Deferring = false
		e.timers.Remove(deferringDoneTimer)
	}
	e.transition.Pending = true
	e.log.Debug().Msg("app transition pending")
}

// AppTransitionCancelled aborts a pending transition. A parked tint change is
// played right away on the default curve.
func (e *Engine) AppTransitionCancelled() {
	if !e.transition.Pending {
		return
	}
	target := e.transition.PendingTarget
	e.transition.Pending = false
	e.transition.PendingTarget = nil

	e.log.Debug().Bool("parked", target != nil).Msg("app transition cancelled")
	if target != nil {
		e.animateTint(*target, 0, e.tintDuration)
	}
}

// AppTransitionStarting reports that the pending transition starts at uptime
// start and lasts duration. A parked tint change is aligned with it; without
// one, later requests are aligned until start is reached.
func (e *Engine) AppTransitionStarting(start, duration time.Duration) {
	if !e.transition.Pending {
		return
	}
	target := e.transition.PendingTarget
	e.transition.Pending = false
	e.transition.PendingTarget = nil

	if target != nil {
		delay := max(0, start-e.clock.Now())
		e.log.Debug().
			Float64("target", *target).
			Dur("delay", delay).
			Dur("duration", duration).
			Msg("app transition starting, playing parked tint change")
		e.animateTint(*target, delay, duration)
		return
	}

	e.transition.Deferring = true
	e.transition.DeferStart = start
	e.transition.DeferDuration = duration
	e.timers.PostAt(deferringDoneTimer, start, func() {
		e.transition.Deferring = false
		e.log.Debug().Msg("app transition deferral window closed")
	})
	e.log.Debug().
		Dur("start", start).
		Dur("duration", duration).
		Msg("app transition starting, deferring tint changes")
}

// parkTint remembers a tint target requested while a transition is pending.
func (e *Engine) parkTint(target float64) {
	if p := e.transition.PendingTarget; p != nil && *p == target {
		return
	}
	e.transition.PendingTarget = &target
	e.log.Debug().Float64("target", target).Msg("tint change parked")
}

// Transition returns a copy of the transition record.
func (e *Engine) Transition() TransitionState {
	s := e.transition
	if s.PendingTarget != nil {
		v := *s.PendingTarget
		s.PendingTarget = &v
	}
	return s
}
