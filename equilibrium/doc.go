// Package equilibrium computes stationary group-size statistics of the
// Flockwork-P temporal network model and samples concrete network
// configurations from them.
//
// 🚀 What does it solve?
//
//	In the Flockwork-P model every rewiring event detaches a node and,
//	with probability P, reattaches it to a random partner. Under constant
//	P the network relaxes to a stationary ensemble of disjoint cliques
//	("groups"). This package answers two questions about that ensemble:
//	  • How many groups of each size m do we expect? (GroupSizeDistribution)
//	  • What does one concrete member of the ensemble look like? (Configuration)
//
// ✨ Key features:
//   - closed-form recurrence for the expected histogram, evaluated with
//     cumulative products for numerical stability up to thousands of nodes
//   - boundary cases P=0 (all loners) and P=1 (one big clique) handled exactly
//   - Poisson-driven greedy partition sampler with a bounded pass budget —
//     a stalled partition surfaces as ErrPartitionStalled, never as a hang
//   - explicit RNG handles and seeds for reproducible, parallel-safe sampling
//   - connected-component extraction over sampled edge sets for diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/temporalnets/flockwork/equilibrium"
//
//	dist, err := equilibrium.GroupSizeDistribution(100, 0.7)
//	// dist[m] = expected number of groups of size m; Σ m·dist[m] = 100
//
//	opts := equilibrium.DefaultOptions()
//	opts.Seed = 42
//	cfg, err := equilibrium.Configuration(100, 0.7, &opts)
//	// cfg.Edges is a clique-by-clique edge list, cfg.Histogram the group counts
//
// Invariant: for every valid (N, P) the distribution conserves mass,
// Σ m·dist[m] = N — every node belongs to exactly one group.
//
// Complexity:
//
//   - GroupSizeDistribution: O(N) time, O(N) memory
//   - Configuration:         O(N + |E|) expected time, |E| ≤ N(N−1)/2
package equilibrium
