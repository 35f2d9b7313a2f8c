package ode

import (
	"fmt"
	"math"
)

// Func is the right-hand side of a scalar initial-value problem
// dy/dt = f(t, y).
type Func func(t, y float64) float64

// Dormand–Prince 5(4) Butcher tableau.
const (
	c2, c3, c4, c5 = 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0

	a21 = 1.0 / 5.0
	a31 = 3.0 / 40.0
	a32 = 9.0 / 40.0
	a41 = 44.0 / 45.0
	a42 = -56.0 / 15.0
	a43 = 32.0 / 9.0
	a51 = 19372.0 / 6561.0
	a52 = -25360.0 / 2187.0
	a53 = 64448.0 / 6561.0
	a54 = -212.0 / 729.0
	a61 = 9017.0 / 3168.0
	a62 = -355.0 / 33.0
	a63 = 46732.0 / 5247.0
	a64 = 49.0 / 176.0
	a65 = -5103.0 / 18656.0

	// 5th-order solution weights (also the a7j row — FSAL).
	b1 = 35.0 / 384.0
	b3 = 500.0 / 1113.0
	b4 = 125.0 / 192.0
	b5 = -2187.0 / 6784.0
	b6 = 11.0 / 84.0

	// Error weights: (b − b*) for the embedded 4th-order estimate.
	e1 = b1 - 5179.0/57600.0
	e3 = b3 - 7571.0/16695.0
	e4 = b4 - 393.0/640.0
	e5 = b5 + 92097.0/339200.0
	e6 = b6 - 187.0/2100.0
	e7 = -1.0 / 40.0
)

// Step-size controller bounds.
const (
	safety    = 0.9
	minShrink = 0.2
	maxGrow   = 5.0
	order     = 5.0
)

// Dopri5 is a stateful scalar Dormand–Prince 5(4) integrator.
//
// The instance carries the current (t, y) and the last accepted step size
// across Integrate calls, so successive calls with increasing targets
// continue one trajectory. Init rewinds it to a fresh initial condition.
// Not safe for concurrent use.
type Dopri5 struct {
	f    Func
	opts Options

	t, y float64
	h    float64 // last accepted step; 0 means "not chosen yet"
	k1   float64 // FSAL: derivative at (t, y)
	live bool    // k1 is valid
}

// NewDopri5 builds an integrator for f. A nil opts selects DefaultOptions.
//
// Errors:
//   - ErrNilFunc   — f is nil.
//   - ErrTolerance — a tolerance is non-positive or non-finite.
func NewDopri5(f Func, opts *Options) (*Dopri5, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if !(o.AbsTol > 0) || !(o.RelTol > 0) ||
		math.IsInf(o.AbsTol, 1) || math.IsInf(o.RelTol, 1) {
		return nil, fmt.Errorf("%w: abs=%v rel=%v", ErrTolerance, o.AbsTol, o.RelTol)
	}
	return &Dopri5{f: f, opts: o}, nil
}

// Init sets the initial condition y(t0) = y0 and discards any previous
// trajectory state.
func (s *Dopri5) Init(t0, y0 float64) {
	s.t, s.y = t0, y0
	s.h = s.opts.InitialStep
	s.live = false
}

// T returns the current integration time.
func (s *Dopri5) T() float64 { return s.t }

// Y returns the current solution value y(T()).
func (s *Dopri5) Y() float64 { return s.y }

// Integrate advances the solution to target and returns y(target).
//
// The step size adapts to keep the embedded error estimate below
// AbsTol + RelTol·|y|; the final step is clipped to land exactly on
// target.
//
// Errors:
//   - ErrBackward — target < current time.
//   - ErrMaxSteps — step budget exhausted before reaching target.
//   - ErrStiff    — step size underflowed under error control.
func (s *Dopri5) Integrate(target float64) (float64, error) {
	if target < s.t {
		return 0, fmt.Errorf("%w: target %v < t %v", ErrBackward, target, s.t)
	}
	if target == s.t {
		return s.y, nil
	}

	if s.h <= 0 {
		// Conservative opening step; the controller corrects it quickly.
		s.h = (target - s.t) / 100
	}
	if !s.live {
		s.k1 = s.f(s.t, s.y)
		s.live = true
	}

	for steps := 0; s.t < target; steps++ {
		if steps >= s.opts.MaxSteps {
			return 0, fmt.Errorf("%w: %d steps, t=%v of %v", ErrMaxSteps, steps, s.t, target)
		}

		h := s.h
		last := false
		if s.t+h >= target {
			h = target - s.t
			last = true
		}
		if s.t+h == s.t {
			return 0, fmt.Errorf("%w: h=%v at t=%v", ErrStiff, h, s.t)
		}

		t, y, k1 := s.t, s.y, s.k1
		k2 := s.f(t+c2*h, y+h*a21*k1)
		k3 := s.f(t+c3*h, y+h*(a31*k1+a32*k2))
		k4 := s.f(t+c4*h, y+h*(a41*k1+a42*k2+a43*k3))
		k5 := s.f(t+c5*h, y+h*(a51*k1+a52*k2+a53*k3+a54*k4))
		k6 := s.f(t+h, y+h*(a61*k1+a62*k2+a63*k3+a64*k4+a65*k5))
		yNew := y + h*(b1*k1+b3*k3+b4*k4+b5*k5+b6*k6)
		k7 := s.f(t+h, yNew) // FSAL: becomes k1 of the next step

		errEst := h * (e1*k1 + e3*k3 + e4*k4 + e5*k5 + e6*k6 + e7*k7)
		scale := s.opts.AbsTol + s.opts.RelTol*math.Max(math.Abs(y), math.Abs(yNew))
		norm := math.Abs(errEst) / scale

		if norm <= 1 {
			s.t, s.y, s.k1 = t+h, yNew, k7
			if last {
				s.t = target
			}
		}

		// Step-size update, bounded so one bad estimate cannot freeze or
		// explode the controller.
		factor := maxGrow
		if norm > 0 {
			factor = safety * math.Pow(norm, -1/order)
			factor = math.Min(maxGrow, math.Max(minShrink, factor))
		}
		s.h = h * factor
	}
	return s.y, nil
}
