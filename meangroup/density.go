package meangroup

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/temporalnets/flockwork/meandegree"
)

// OverDegreeDensity — group-size distribution averaged over a fitted
// power-law density of the mean degree
//
// Description:
//
//	Instead of weighting snapshots by time, this variant weights them by
//	how often a mean degree occurs, modelling the occupation density as a
//	power law p(k) ∝ k^(−α):
//
//	  ⟨N_m⟩ = ∫ dk p(k) · N_m(k/(k+1))
//
// Outline:
//  1. Evolve k(t) and keep samples with k ≥ 2/n — below that less than
//     one edge is expected and the tail fit is undefined.
//  2. Fit α over the kept samples via the TailFit collaborator
//     (ClausetMLE unless injected), then normalize k^(−α) analytically
//     over [kmin, kmax].
//  3. Discretize k on a uniform grid of step dk, evaluate the equilibrium
//     histogram at each grid point's P_eff, and integrate the weighted
//     rows with Simpson's rule.
//
// Errors:
//   - ErrResolution      — dk ≤ 0, non-finite, or too coarse for the
//     fitted range (Simpson needs at least three grid points).
//   - ErrDegenerateRange — no samples survive the filter, or kmax ≤ kmin.
//   - ErrTailFit         — the collaborator failed or produced a
//     non-finite exponent or normalization.
//   - evolution/equilibrium errors — propagated.
//
// Complexity: O(grid · n) time beyond the evolution, grid = (kmax−kmin)/dk.
func OverDegreeDensity(initialEdges, n int, rewiring, reconnect meandegree.Schedule, tmax, dk float64, opts *DensityOptions) ([]float64, error) {
	if !(dk > 0) || math.IsInf(dk, 1) {
		return nil, fmt.Errorf("%w: dk=%v", ErrResolution, dk)
	}
	fit := ClausetMLE
	if opts != nil && opts.Fit != nil {
		fit = opts.Fit
	}

	series, err := meandegree.Evolve(initialEdges, n, rewiring, reconnect, tmax)
	if err != nil {
		return nil, err
	}

	// Keep degrees with at least one expected edge.
	floor := 2 / float64(n)
	var degrees []float64
	for _, k := range series.Degrees {
		if k >= floor {
			degrees = append(degrees, k)
		}
	}
	if len(degrees) == 0 {
		return nil, fmt.Errorf("%w: no samples reach k ≥ %v", ErrDegenerateRange, floor)
	}

	kmin := floats.Min(degrees)
	kmax := floats.Max(degrees)
	if kmax <= kmin {
		return nil, fmt.Errorf("%w: kmin=%v kmax=%v", ErrDegenerateRange, kmin, kmax)
	}

	alpha, _, _, err := fit(degrees)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: exponent %v", ErrTailFit, alpha)
	}

	// Analytic normalization of k^(−α) over [kmin, kmax].
	norm := 1 / (1 - alpha) * (math.Pow(kmax, 1-alpha) - math.Pow(kmin, 1-alpha))
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm == 0 {
		return nil, fmt.Errorf("%w: normalization %v for exponent %v", ErrTailFit, norm, alpha)
	}

	points := int((kmax-kmin)/dk) + 1
	if points < 3 {
		return nil, fmt.Errorf("%w: dk=%v spans only %d points on [%v,%v]",
			ErrResolution, dk, points, kmin, kmax)
	}
	grid := make([]float64, points)
	floats.Span(grid, kmin, kmax)

	rows, err := snapshotRows(grid, n)
	if err != nil {
		return nil, err
	}

	mean := make([]float64, n)
	col := make([]float64, points)
	for m := 0; m < n; m++ {
		for i, k := range grid {
			col[i] = math.Pow(k, -alpha) / norm * rows[i][m]
		}
		mean[m] = integrate.Simpsons(grid, col)
	}
	return mean, nil
}
