// Package meandegree integrates the mean-degree evolution of a Flockwork-P
// temporal network under piecewise-constant, time-varying parameters.
//
// 🚀 What does it solve?
//
//	When the rewiring rate γ(t) and reconnection probability P(t) change
//	over time, the mean degree k(t) = 2|E|/N obeys the linear ODE
//
//	    dk/dt = 2·γ(t)·P(t) − 2·k·γ(t)·(1−P(t))
//
//	balancing edge creation (γP) against degree-proportional edge removal
//	(γ(1−P)). This package integrates that equation across the schedule
//	intervals and returns the sampled (t, k) trajectory.
//
// ✨ Key features:
//   - Schedule: validated piecewise-constant (time, value) series for both
//     γ(t) and P(t), extended to the horizon with a sentinel interval
//   - Dormand–Prince 5(4) integration per interval, ten evenly spaced
//     samples each, the interval's start carried from the previous one so
//     the trajectory has no duplicate timestamps
//   - Series: strictly time-ordered, immutable once returned
//
// ⚙️ Usage:
//
//	import "github.com/temporalnets/flockwork/meandegree"
//
//	rewiring := meandegree.Schedule{{T: 0, V: 1}}        // γ ≡ 1
//	reconnect := meandegree.Schedule{{T: 0, V: 0.5}}     // P ≡ 0.5
//	series, err := meandegree.Evolve(10, 10, rewiring, reconnect, 50)
//	// series.Degrees relaxes toward k* = P/(1−P) = 1
//
// Concurrency: Evolve is a pure function; each call owns its integrator
// and result, so concurrent calls are safe.
//
// Complexity: O(intervals · steps) time, O(intervals) memory.
package meandegree
