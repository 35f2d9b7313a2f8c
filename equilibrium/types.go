// Package equilibrium: shared types, options and sentinel errors.
package equilibrium

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors for equilibrium computations.
var (
	// ErrTooFewNodes indicates N ≤ 2; the closed-form derivation needs at
	// least 3 nodes to avoid degenerate terms.
	ErrTooFewNodes = errors.New("equilibrium: node count must be at least 3")

	// ErrProbabilityRange indicates a reconnection probability outside [0,1].
	ErrProbabilityRange = errors.New("equilibrium: reconnection probability must lie in [0,1]")

	// ErrNonFinite indicates an intermediate distribution term overflowed or
	// underflowed into NaN/±Inf; the distribution would be silently wrong.
	ErrNonFinite = errors.New("equilibrium: non-finite distribution term")

	// ErrPartitionStalled indicates the greedy partition loop exhausted its
	// pass budget without assigning every node to a group.
	ErrPartitionStalled = errors.New("equilibrium: partition loop exceeded pass budget")
)

// Distribution is the expected group-size histogram of a Flockwork-P
// ensemble with N nodes. It has length N+1; entry m holds the expected
// number of groups of size m, and entry 0 is always zero (there is no
// group of size zero).
type Distribution []float64

// TotalNodes returns Σ m·d[m], the number of nodes accounted for by the
// distribution. For a correctly computed distribution this equals N.
func (d Distribution) TotalNodes() float64 {
	var total float64
	for m, v := range d {
		total += float64(m) * v
	}
	return total
}

// GroupCount returns Σ d[m], the expected total number of groups.
func (d Distribution) GroupCount() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

// Probabilities returns the distribution normalized by the expected total
// group count, i.e. the probability that a uniformly chosen group has size m.
// The result has the same length and indexing as d.
func (d Distribution) Probabilities() []float64 {
	total := d.GroupCount()
	probs := make([]float64, len(d))
	if total == 0 {
		return probs
	}
	for m, v := range d {
		probs[m] = v / total
	}
	return probs
}

// Edge is an unordered pair of node identifiers, U ≠ V. Node identifiers
// range over 0..N−1.
type Edge struct {
	U, V int
}

// Config is one sampled equilibrium configuration.
//
// Edges lists every pair inside every sampled clique; Histogram has length
// N+1 and counts the groups of each size actually placed (index 0 unused).
// Both are freshly allocated per call and never mutated afterwards.
type Config struct {
	Edges     []Edge
	Histogram []float64
}

// ConfigOptions configures Configuration.
//
// Fields:
//   - Shuffle — distribute nodes to groups in a random order (recommended).
//     When false, nodes are assigned in identity order 0..N−1.
//   - Seed    — RNG seed; 0 means "seed from entropy" (non-reproducible),
//     any other value gives a deterministic sample.
//   - Rand    — explicit generator handle; overrides Seed when non-nil.
//     Pass one handle per goroutine for parallel parameter sweeps.
type ConfigOptions struct {
	Shuffle bool
	Seed    uint64
	Rand    *rand.Rand
}

// DefaultOptions returns the recommended sampling options:
// shuffled node order, entropy-seeded RNG.
func DefaultOptions() ConfigOptions {
	return ConfigOptions{Shuffle: true}
}
