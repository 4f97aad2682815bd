package animation

import "time"

// Listener receives animator callbacks. Any field may be nil.
type Listener struct {
	// OnUpdate is called on every tick past the start delay with the
	// interpolated value.
	OnUpdate func(value float64)
	// OnEnd is called once after the final update.
	OnEnd func()
	// OnCancel is called when a running animation is cancelled.
	OnCancel func()
}

// Spec describes one run of an animator.
type Spec struct {
	From, To     float64
	Delay        time.Duration
	Duration     time.Duration
	Interpolator Interpolator
}

// Animator animates a float value between two endpoints. It is not safe for
// concurrent use; callbacks may re-enter the animator.
type Animator struct {
	listener Listener

	spec      Spec
	startedAt time.Duration
	running   bool
	value     float64
	fraction  float64

	// generation changes whenever a run starts or stops, so a tick can tell
	// whether a callback restarted or cancelled the animation under it.
	generation uint64
}

// New creates an idle animator.
func New(listener Listener) *Animator {
	return &Animator{listener: listener}
}

// Start begins a new run at uptime now. A run in progress is replaced without
// notifying OnCancel; call Cancel first when that notification matters.
func (a *Animator) Start(now time.Duration, spec Spec) {
	if spec.Interpolator == nil {
		spec.Interpolator = Linear
	}
	if spec.Delay < 0 {
		spec.Delay = 0
	}
	a.generation++
	a.spec = spec
	a.startedAt = now
	a.running = true
	a.value = spec.From
	a.fraction = 0
}

// Cancel stops a running animation where it is. It is a no-op when idle.
func (a *Animator) Cancel() {
	if !a.running {
		return
	}
	a.running = false
	a.generation++
	if a.listener.OnCancel != nil {
		a.listener.OnCancel()
	}
}

// Running reports whether a run is in progress, including its start delay.
func (a *Animator) Running() bool {
	return a.running
}

// Delayed reports whether the current run is still waiting out its delay.
func (a *Animator) Delayed(now time.Duration) bool {
	return a.running && now < a.startedAt+a.spec.Delay
}

// Value returns the most recently emitted value.
func (a *Animator) Value() float64 {
	return a.value
}

// Fraction returns the eased fraction of the last update.
func (a *Animator) Fraction() float64 {
	return a.fraction
}

// Spec returns the parameters of the current or last run.
func (a *Animator) Spec() Spec {
	return a.spec
}

// Tick advances the animation to uptime now, emitting an update once the
// delay has elapsed and finishing the run when its duration is over.
func (a *Animator) Tick(now time.Duration) {
	if !a.running {
		return
	}
	elapsed := now - a.startedAt - a.spec.Delay
	if elapsed < 0 {
		return
	}

	raw := 1.0
	if a.spec.Duration > 0 && elapsed < a.spec.Duration {
		raw = float64(elapsed) / float64(a.spec.Duration)
	}
	done := raw >= 1

	a.fraction = a.spec.Interpolator(raw)
	if done {
		a.fraction = 1
		a.value = a.spec.To
	} else {
		a.value = a.spec.From + (a.spec.To-a.spec.From)*a.fraction
	}

	gen := a.generation
	if a.listener.OnUpdate != nil {
		a.listener.OnUpdate(a.value)
	}
	if gen != a.generation || !done {
		return
	}

	a.running = false
	a.generation++
	if a.listener.OnEnd != nil {
		a.listener.OnEnd()
	}
}
