// Package animation provides tick-driven value animators. Animators own no
// goroutines: the UI loop advances them by calling Tick with the current
// uptime, so every callback runs on the caller's goroutine.
package animation

import "math"

// Interpolator maps an elapsed fraction in [0,1] onto an eased fraction.
// Implementations must return exactly 0 for 0 and 1 for 1.
type Interpolator func(fraction float64) float64

// Linear leaves the fraction unchanged.
func Linear(fraction float64) float64 {
	return clamp01(fraction)
}

// AccelerateDecelerate starts and ends slowly, matching the default curve of
// value animators.
func AccelerateDecelerate(fraction float64) float64 {
	f := clamp01(fraction)
	if f == 0 || f == 1 {
		return f
	}
	return math.Cos((f+1)*math.Pi)/2 + 0.5
}

// Material motion curves.
var (
	FastOutSlowIn   = CubicBezier(0.4, 0, 0.2, 1)
	LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)
	AlphaIn         = CubicBezier(0.4, 0, 1, 1)
	AlphaOut        = CubicBezier(0, 0, 0.8, 1)
)

const (
	bezierNewtonIterations = 8
	bezierEpsilon          = 1e-7
	bezierBisectionLimit   = 64
)

// CubicBezier returns an interpolator for the unit cubic Bézier curve with
// control points (x1,y1) and (x2,y2). x1 and x2 must lie in [0,1] so the
// curve is a function of x.
func CubicBezier(x1, y1, x2, y2 float64) Interpolator {
	x1, x2 = clamp01(x1), clamp01(x2)

	// Polynomial coefficients of B(t) = a*t^3 + b*t^2 + c*t.
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solveT := func(x float64) float64 {
		t := x
		for i := 0; i < bezierNewtonIterations; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < bezierEpsilon {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < bezierEpsilon {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < bezierBisectionLimit; i++ {
			v := sampleX(t)
			if math.Abs(v-x) < bezierEpsilon {
				return t
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(fraction float64) float64 {
		f := clamp01(fraction)
		if f == 0 || f == 1 {
			return f
		}
		return clamp01(sampleY(solveT(f)))
	}
}

func clamp01(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 1
	}
	return v
}
