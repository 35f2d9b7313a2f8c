package equilibrium

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// GroupSizeDistribution — expected group-size histogram at equilibrium
//
// Description:
//
//	For N nodes and reconnection probability P, the stationary Flockwork-P
//	ensemble decomposes into disjoint cliques. The expected number of
//	cliques of each size m admits a closed form.
//
// Outline:
//  1. P = 0: no reconnection ever succeeds ⇒ N isolated nodes,
//     dist[1] = N.
//  2. P = 1: every event reconnects ⇒ the population collapses into one
//     clique of all N nodes, dist[N] = 1.
//  3. 0 < P < 1: dist[1] = N(1−P) and, for m = 2..N−1,
//
//     dist[m] = (−1)^(m mod 2) · N/m · (P−1) · Π_{j=1}^{m−1} (N−j)/(jP−N+1) · P^(m−1)
//
//     The ratio product is accumulated once with a cumulative product and
//     the power of P is carried incrementally, so each term costs O(1);
//     recomputing either per term both loses precision and costs O(N²)
//     overall for N in the hundreds to thousands.
//  4. The m = N boundary term uses a separate product,
//
//     dist[N] = (−1)^(N mod 2) · P · Π_{j=1}^{N−2} (N−j−1) / ((P−N+1)/P + j−1)
//
//     because the general recurrence is numerically unstable at m = N.
//
// Invariant: Σ m·dist[m] = N (mass conservation — every node belongs to
// exactly one group).
//
// Errors:
//   - ErrTooFewNodes      — n ≤ 2.
//   - ErrProbabilityRange — p outside [0,1] or NaN.
//   - ErrNonFinite        — an intermediate term left the finite range.
//
// Complexity: O(N) time, O(N) memory.
func GroupSizeDistribution(n int, p float64) (Distribution, error) {
	if n <= 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewNodes, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrProbabilityRange, p)
	}

	dist := make(Distribution, n+1)
	switch {
	case p == 0:
		dist[1] = float64(n)
	case p == 1:
		dist[n] = 1
	default:
		fn := float64(n)

		// Cumulative ratio products Π_{j=1}^{k} (N−j)/(jP−N+1) for k = 1..N−2.
		ratios := make([]float64, n-2)
		for j := 1; j <= n-2; j++ {
			ratios[j-1] = (fn - float64(j)) / (p*float64(j) - fn + 1)
		}
		floats.CumProd(ratios, ratios)

		dist[1] = fn * (1 - p)
		pPow := p // P^(m−1), carried across m
		for m := 2; m <= n-1; m++ {
			sign := 1.0
			if m%2 == 1 {
				sign = -1
			}
			dist[m] = sign * fn / float64(m) * (p - 1) * ratios[m-2] * pPow
			pPow *= p
		}

		// m = N boundary term.
		last := p
		if n%2 == 1 {
			last = -p
		}
		for j := 1; j <= n-2; j++ {
			last *= (fn - float64(j) - 1) / ((p-fn+1)/p + float64(j-1))
		}
		dist[n] = last

		for m, v := range dist {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: size %d with N=%d, P=%v", ErrNonFinite, m, n, p)
			}
		}
	}
	return dist, nil
}
