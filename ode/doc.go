// Package ode provides a scalar Dormand–Prince 5(4) integrator for
// initial-value problems dy/dt = f(t, y), y(t0) = y0.
//
// 🚀 What is Dormand–Prince 5(4)?
//
//	An explicit Runge–Kutta scheme with a 5th-order solution and an
//	embedded 4th-order estimate. The difference between the two orders
//	gives a cheap per-step error estimate that drives adaptive step-size
//	control. It is the workhorse behind many "dopri5" solvers.
//
// ✨ Key features:
//   - adaptive steps with absolute + relative error control
//   - FSAL (first-same-as-last): one derivative evaluation is reused
//     across accepted steps, six evaluations per step instead of seven
//   - stateful integration: Integrate may be called repeatedly with
//     increasing targets, carrying (t, y) across calls
//   - hard step budget: a tolerance the problem cannot meet surfaces as
//     an error instead of a spin
//
// ⚙️ Usage:
//
//	import "github.com/temporalnets/flockwork/ode"
//
//	decay := func(t, y float64) float64 { return -y }
//	s, err := ode.NewDopri5(decay, nil) // nil ⇒ DefaultOptions
//	s.Init(0, 1)
//	y1, err := s.Integrate(1.0) // ≈ 1/e
//
// Concurrency: a Dopri5 instance carries (t, y, h) between calls and must
// not be shared across goroutines; create one per integration.
//
// Complexity: O(steps) time, O(1) memory; steps grow with the interval
// length and shrink with the tolerance.
package ode
