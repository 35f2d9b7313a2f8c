package meandegree

import (
	"fmt"

	"github.com/temporalnets/flockwork/ode"
)

// samplesPerInterval is the number of evenly spaced evaluation points per
// schedule interval, endpoints included; the start point is carried from
// the previous interval, so each interval contributes samplesPerInterval−1
// fresh samples.
const samplesPerInterval = 10

// Evolve — mean-degree trajectory under varying rates
//
// Description:
//
//	Integrates dk/dt = 2γ(t)P(t) − 2kγ(t)(1−P(t)) from the initial mean
//	degree k0 = 2·initialEdges/n across the schedule intervals up to tmax.
//
// Outline:
//  1. Validate both schedules; they must share one strictly increasing
//     time grid (the original model feeds both parameters from the same
//     event schedule). tmax extends the last interval as a sentinel.
//  2. Walk the intervals in order. Each interval holds γ and P constant,
//     re-arms the Dormand–Prince integrator at the previous interval's
//     final (t, k), and samples ten evenly spaced points, skipping the
//     first to avoid duplicate timestamps.
//  3. Concatenate all samples into one strictly time-ordered Series.
//
// Errors:
//   - ErrNodeCount, ErrEdgeCount — invalid sizes.
//   - ErrEmptySchedule, ErrUnsortedSchedule, ErrRateRange,
//     ErrProbabilityRange — malformed schedules.
//   - ErrScheduleMismatch — the two schedules disagree on times.
//   - ErrHorizon — tmax does not lie strictly after the last entry.
//   - ode.ErrMaxSteps, ode.ErrStiff — propagated integrator failures.
//
// Complexity: O(intervals · steps) time, O(intervals) memory.
func Evolve(initialEdges, n int, rewiring, reconnect Schedule, tmax float64) (Series, error) {
	if n <= 0 {
		return Series{}, fmt.Errorf("%w: got %d", ErrNodeCount, n)
	}
	if initialEdges < 0 {
		return Series{}, fmt.Errorf("%w: got %d", ErrEdgeCount, initialEdges)
	}
	if err := rewiring.validateRates(); err != nil {
		return Series{}, err
	}
	if err := reconnect.validateProbabilities(); err != nil {
		return Series{}, err
	}
	if len(rewiring) != len(reconnect) {
		return Series{}, fmt.Errorf("%w: %d rate entries vs %d probability entries",
			ErrScheduleMismatch, len(rewiring), len(reconnect))
	}
	for i := range rewiring {
		if rewiring[i].T != reconnect[i].T {
			return Series{}, fmt.Errorf("%w: entry %d at %v vs %v",
				ErrScheduleMismatch, i, rewiring[i].T, reconnect[i].T)
		}
	}
	if tmax <= rewiring[len(rewiring)-1].T {
		return Series{}, fmt.Errorf("%w: tmax=%v, last entry at %v",
			ErrHorizon, tmax, rewiring[len(rewiring)-1].T)
	}

	// Interval bounds: schedule times plus the tmax sentinel.
	bounds := make([]float64, len(rewiring)+1)
	for i, pt := range rewiring {
		bounds[i] = pt.T
	}
	bounds[len(rewiring)] = tmax

	// γ and P for the current interval; the closure reads them so one
	// integrator serves every interval.
	var gamma, prob float64
	rhs := func(_, k float64) float64 { return 2*gamma*prob - 2*k*gamma*(1-prob) }
	integ, err := ode.NewDopri5(rhs, nil)
	if err != nil {
		return Series{}, err
	}

	k0 := 2 * float64(initialEdges) / float64(n)
	series := Series{
		Times:   make([]float64, 0, 1+(samplesPerInterval-1)*len(rewiring)),
		Degrees: make([]float64, 0, 1+(samplesPerInterval-1)*len(rewiring)),
	}
	series.Times = append(series.Times, bounds[0])
	series.Degrees = append(series.Degrees, k0)

	for i := 0; i < len(rewiring); i++ {
		gamma, prob = rewiring[i].V, reconnect[i].V
		integ.Init(bounds[i], series.Degrees[len(series.Degrees)-1])

		width := bounds[i+1] - bounds[i]
		for j := 1; j < samplesPerInterval; j++ {
			tj := bounds[i] + width*float64(j)/float64(samplesPerInterval-1)
			if j == samplesPerInterval-1 {
				tj = bounds[i+1] // land exactly on the interval end
			}
			k, err := integ.Integrate(tj)
			if err != nil {
				return Series{}, err
			}
			series.Times = append(series.Times, tj)
			series.Degrees = append(series.Degrees, k)
		}
	}
	return series, nil
}
