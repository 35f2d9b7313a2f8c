// Package meangroup averages Flockwork-P group-size distributions over a
// mean-degree trajectory, yielding one time-averaged (or density-averaged)
// expected group-size histogram.
//
// 🚀 What does it solve?
//
//	Outside equilibrium the group structure drifts with the mean degree
//	k(t). Treating each instant as a locally-equilibrium snapshot, the
//	reconnection probability that would sustain k is P_eff = k/(k+1)
//	(inverting k = P/(1−P)). Evaluating the equilibrium closed form at
//	P_eff for every sample and integrating gives the genuine average:
//
//	  ⟨N_m⟩ = 1/(t_end−t_0) · ∫ dt N_m(k(t)/(k(t)+1))       (OverTime)
//	  ⟨N_m⟩ = ∫ dk p(k) · N_m(k/(k+1)),  p(k) ∝ k^(−α)      (OverDegreeDensity)
//
// ✨ Key features:
//   - OverTime: trapezoidal time average along the evolved trajectory
//   - FromSeries: same average over an externally measured (t, k) series,
//     bypassing the ODE entirely
//   - OverDegreeDensity: Simpson integral against a fitted power-law
//     density of k; the tail exponent comes from a pluggable TailFit
//     collaborator (ClausetMLE provided as a stand-alone default)
//   - degenerate ranges and failed fits are errors, never silent zeros
//
// ⚙️ Usage:
//
//	import "github.com/temporalnets/flockwork/meangroup"
//
//	rew := meandegree.Schedule{{T: 0, V: 1}}
//	rec := meandegree.Schedule{{T: 0, V: 0.5}}
//	mean, err := meangroup.OverTime(5, 10, rew, rec, 100)
//	// mean[i] = average count of groups of size i+1
//
// Indexing note: results have length N and start at group size 1 — the
// always-zero size-0 slot of the equilibrium histogram is dropped.
//
// Complexity: O(samples · N) time beyond the underlying evolution.
package meangroup
