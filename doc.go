// Package flockwork is an analytical toolbox for the Flockwork-P temporal
// network model — from the closed-form equilibrium group-size distribution
// to time-averaged statistics under varying rewiring rates.
//
// 🚀 What is flockwork?
//
//	A pure-computation library that brings together:
//		• Equilibrium statistics: the exact expected group-size histogram
//		  for N nodes and reconnection probability P
//		• Configuration sampling: concrete edge sets realizing a partition
//		  consistent with the equilibrium distribution
//		• Mean-degree evolution: a Dormand–Prince ODE integration of k(t)
//		  under piecewise-constant rewiring rate γ(t) and probability P(t)
//		• Group-size aggregation: time-averaged and degree-density-averaged
//		  group-size distributions built on the equilibrium closed form
//
// ✨ Why choose flockwork?
//
//   - Reproducible – explicit RNG handles and seeds, no global state
//   - Honest numerics – mass conservation is an invariant, instability is
//     an error, never a silently wrong histogram
//   - Minimal surface – a handful of functions, value-type results
//
// Everything is organized under four subpackages:
//
//	equilibrium/ — closed-form distribution, configuration sampler, components
//	ode/         — scalar Dormand–Prince 5(4) initial-value integrator
//	meandegree/  — rate schedules and mean-degree evolution over time
//	meangroup/   — time- and density-averaged group-size distributions
//
// Quick sketch of the data flow:
//
//	(N, P) ──► equilibrium ──► distribution ──► sampler ──► edge set
//	γ(t), P(t) ──► meandegree ──► (t, k) series ──► meangroup ──► ⟨N_m⟩
//
// Dive into the per-package docs and example_test.go files for runnable
// walkthroughs of every entry point.
//
//	go get github.com/temporalnets/flockwork
package flockwork
