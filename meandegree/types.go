// Package meandegree: schedules, series and sentinel errors.
package meandegree

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for schedule validation and evolution.
var (
	// ErrNodeCount indicates a non-positive node count.
	ErrNodeCount = errors.New("meandegree: node count must be positive")

	// ErrEdgeCount indicates a negative initial edge count.
	ErrEdgeCount = errors.New("meandegree: initial edge count must be non-negative")

	// ErrEmptySchedule indicates a schedule with no entries.
	ErrEmptySchedule = errors.New("meandegree: schedule must have at least one entry")

	// ErrUnsortedSchedule indicates schedule times that are not strictly
	// increasing or not finite.
	ErrUnsortedSchedule = errors.New("meandegree: schedule times must be finite and strictly increasing")

	// ErrRateRange indicates a rewiring rate that is negative or not finite.
	ErrRateRange = errors.New("meandegree: rewiring rate must be finite and non-negative")

	// ErrProbabilityRange indicates a reconnection probability outside [0,1].
	ErrProbabilityRange = errors.New("meandegree: reconnection probability must lie in [0,1]")

	// ErrScheduleMismatch indicates rate and probability schedules whose
	// time grids differ.
	ErrScheduleMismatch = errors.New("meandegree: rate and probability schedules must share one time grid")

	// ErrHorizon indicates tmax at or before the last schedule time.
	ErrHorizon = errors.New("meandegree: tmax must lie strictly after the last schedule time")
)

// Point is one (time, value) entry of a piecewise-constant schedule.
type Point struct {
	T, V float64
}

// Schedule is a piecewise-constant function of time: entry i holds on
// [s[i].T, s[i+1].T), and the last value extends to the evolution horizon.
// Times must be finite and strictly increasing.
type Schedule []Point

// validate checks the structural schedule invariants shared by rates and
// probabilities: non-empty, finite, strictly increasing times.
func (s Schedule) validate() error {
	if len(s) == 0 {
		return ErrEmptySchedule
	}
	for i, pt := range s {
		if math.IsNaN(pt.T) || math.IsInf(pt.T, 0) {
			return fmt.Errorf("%w: entry %d has time %v", ErrUnsortedSchedule, i, pt.T)
		}
		if i > 0 && pt.T <= s[i-1].T {
			return fmt.Errorf("%w: entry %d (%v) after %v", ErrUnsortedSchedule, i, pt.T, s[i-1].T)
		}
	}
	return nil
}

// validateRates checks a rewiring-rate schedule: γ ≥ 0, finite.
func (s Schedule) validateRates() error {
	if err := s.validate(); err != nil {
		return err
	}
	for i, pt := range s {
		if math.IsNaN(pt.V) || math.IsInf(pt.V, 0) || pt.V < 0 {
			return fmt.Errorf("%w: entry %d has rate %v", ErrRateRange, i, pt.V)
		}
	}
	return nil
}

// validateProbabilities checks a reconnection-probability schedule: P ∈ [0,1].
func (s Schedule) validateProbabilities() error {
	if err := s.validate(); err != nil {
		return err
	}
	for i, pt := range s {
		if math.IsNaN(pt.V) || pt.V < 0 || pt.V > 1 {
			return fmt.Errorf("%w: entry %d has probability %v", ErrProbabilityRange, i, pt.V)
		}
	}
	return nil
}

// Series is a time-ordered sequence of (time, mean-degree) samples.
// Times are strictly increasing; both slices share one length. A Series is
// append-only during construction and immutable once returned.
type Series struct {
	Times   []float64
	Degrees []float64
}

// Len returns the number of samples in the series.
func (s Series) Len() int { return len(s.Times) }
