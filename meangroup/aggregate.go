package meangroup

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"

	"github.com/temporalnets/flockwork/equilibrium"
	"github.com/temporalnets/flockwork/meandegree"
)

// OverTime — time-averaged group-size distribution
//
// Description:
//
//	Evolves the mean degree from k0 = 2·initialEdges/n under the given
//	schedules, treats every sampled instant as a locally-equilibrium
//	snapshot at P_eff = k/(k+1), and averages the resulting equilibrium
//	histograms over time with the trapezoidal rule.
//
// The result has length n; entry i holds the mean number of groups of
// size i+1 (the always-zero size-0 slot is dropped).
//
// Errors: everything meandegree.Evolve rejects, plus
// equilibrium.ErrTooFewNodes / ErrNonFinite from the per-sample closed
// form.
//
// Complexity: O(samples · n) time, O(samples + n) memory.
func OverTime(initialEdges, n int, rewiring, reconnect meandegree.Schedule, tmax float64) ([]float64, error) {
	series, err := meandegree.Evolve(initialEdges, n, rewiring, reconnect, tmax)
	if err != nil {
		return nil, err
	}
	return FromSeries(series, n)
}

// FromSeries — time average over an already-measured mean-degree series
//
// Description:
//
//	The same average as OverTime, taken over an externally supplied
//	(t, k) series — typically measured from a recorded temporal network —
//	instead of an ODE solution. This is the entry point for estimating a
//	group-size distribution of real data under the Flockwork-P ansatz.
//
// Errors:
//   - ErrSeries — fewer than two samples, length mismatch, or
//     non-increasing times (a zero elapsed span would divide away).
//   - equilibrium errors — propagated from the per-sample closed form.
//
// Complexity: O(samples · n) time, O(samples + n) memory.
func FromSeries(series meandegree.Series, n int) ([]float64, error) {
	if series.Len() < 2 || len(series.Degrees) != series.Len() {
		return nil, fmt.Errorf("%w: got %d times, %d degrees",
			ErrSeries, series.Len(), len(series.Degrees))
	}
	for i := 1; i < series.Len(); i++ {
		if series.Times[i] <= series.Times[i-1] {
			return nil, fmt.Errorf("%w: time %v at index %d does not increase",
				ErrSeries, series.Times[i], i)
		}
	}

	rows, err := snapshotRows(series.Degrees, n)
	if err != nil {
		return nil, err
	}

	elapsed := series.Times[series.Len()-1] - series.Times[0]
	mean := make([]float64, n)
	col := make([]float64, series.Len())
	for m := 0; m < n; m++ {
		for i, row := range rows {
			col[i] = row[m]
		}
		mean[m] = integrate.Trapezoidal(series.Times, col) / elapsed
	}
	return mean, nil
}

// snapshotRows evaluates the equilibrium histogram at P_eff = k/(k+1) for
// every degree sample, dropping the size-0 slot; each row has length n.
func snapshotRows(degrees []float64, n int) ([][]float64, error) {
	rows := make([][]float64, len(degrees))
	for i, k := range degrees {
		dist, err := equilibrium.GroupSizeDistribution(n, k/(k+1))
		if err != nil {
			return nil, err
		}
		rows[i] = dist[1:]
	}
	return rows, nil
}
