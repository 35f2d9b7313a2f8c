package equilibrium

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Pass budget for the greedy partition loop. Each outer pass scans every
// candidate group size once; the expected number of passes is O(1), so a
// budget linear in N converts any stall into a reported error long before
// it could be mistaken for progress.
const (
	passBudgetBase    = 16
	passBudgetPerNode = 8
)

// Configuration — sample one equilibrium network configuration
//
// Description:
//
//	Draws a concrete edge set whose connected components form a partition
//	of the N nodes consistent with GroupSizeDistribution(n, p). Each group
//	is realized as a fully connected clique.
//
// Outline:
//  1. Compute the target distribution; its entry for size m is the
//     expected number of m-groups and doubles as the Poisson mean below.
//  2. Permute the node pool (identity order when Shuffle is false).
//  3. Repeatedly scan candidate sizes m from nodesLeft down to 1. For each
//     m with a positive target and nodesLeft ≥ m, draw a Poisson sample
//     with mean target[m]; if the draw exceeds the count of m-groups
//     already placed, accept the difference as new groups. A single
//     remaining node is force-accepted as a loner regardless of the draw —
//     the only built-in termination guarantee.
//  4. Each accepted group takes the next m nodes from the tail of the
//     pool, appends all m(m−1)/2 clique pairs to the edge set, and
//     decrements nodesLeft. nodesLeft strictly decreases on every
//     placement, and the pass budget bounds the scans in between, so the
//     loop either finishes or reports ErrPartitionStalled.
//
// Determinism: a nonzero Seed (or an explicit Rand handle) makes the
// sample reproducible; Seed 0 draws fresh entropy.
//
// Errors:
//   - ErrTooFewNodes, ErrProbabilityRange, ErrNonFinite — via
//     GroupSizeDistribution.
//   - ErrPartitionStalled — the pass budget ran out with nodes unassigned
//     (a distribution inconsistency, not a retryable condition).
//
// Complexity: O(N + |E|) expected time; |E| ≤ N(N−1)/2.
func Configuration(n int, p float64, opts *ConfigOptions) (Config, error) {
	dist, err := GroupSizeDistribution(n, p)
	if err != nil {
		return Config{}, err
	}

	shuffle := true
	if opts != nil {
		shuffle = opts.Shuffle
	}
	rng := rngFromOptions(opts)

	var pool []int
	if shuffle {
		pool = rng.Perm(n)
	} else {
		pool = make([]int, n)
		for i := range pool {
			pool[i] = i
		}
	}

	hist := make([]float64, n+1)
	var edges []Edge
	nodesLeft := n
	budget := passBudgetBase + passBudgetPerNode*n

	for pass := 0; nodesLeft > 0; pass++ {
		if pass >= budget {
			return Config{}, fmt.Errorf("%w: %d nodes unassigned after %d passes (N=%d, P=%v)",
				ErrPartitionStalled, nodesLeft, pass, n, p)
		}

		// One pass: scan group sizes in descending order, starting with the
		// largest size the remaining pool can still hold.
		for m := nodesLeft; m >= 1 && nodesLeft > 0; m-- {
			if dist[m] <= 0 || nodesLeft < m {
				continue
			}

			// dist[m] is the expected count of m-groups at equilibrium, so
			// the target count is Poisson with that mean.
			target := int(distuv.Poisson{Lambda: dist[m], Src: rng}.Rand())

			var delta int
			switch {
			case target > int(hist[m]):
				delta = target - int(hist[m])
			case nodesLeft == 1 && m == 1:
				// Last node standing: force it into a loner group, or the
				// loop could never terminate on a zero draw.
				delta = 1
			}

			for g := 0; g < delta && nodesLeft >= m; g++ {
				edges = appendClique(edges, pool[nodesLeft-m:nodesLeft])
				nodesLeft -= m
				hist[m]++
			}
		}
	}

	return Config{Edges: edges, Histogram: hist}, nil
}

// appendClique appends every unordered pair among members to edges.
func appendClique(edges []Edge, members []int) []Edge {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			edges = append(edges, Edge{U: members[i], V: members[j]})
		}
	}
	return edges
}
