// Package meangroup: collaborator contracts, options and sentinel errors.
package meangroup

import "errors"

// Sentinel errors for aggregation.
var (
	// ErrSeries indicates a mean-degree series that is too short or
	// structurally inconsistent to average over.
	ErrSeries = errors.New("meangroup: series must hold at least two time-ordered samples")

	// ErrResolution indicates a non-positive dk, or one too coarse to put
	// at least three points on the fitted k-range.
	ErrResolution = errors.New("meangroup: unusable k-grid resolution")

	// ErrDegenerateRange indicates an empty or zero-width mean-degree range
	// after the k ≥ 2/N filter.
	ErrDegenerateRange = errors.New("meangroup: degenerate mean-degree range")

	// ErrTailFit indicates the power-law tail fit failed or returned a
	// non-finite exponent.
	ErrTailFit = errors.New("meangroup: power-law tail fit failed")
)

// TailFit estimates a power-law tail p(k) ∝ k^(−alpha) from positive
// samples. It returns the exponent, its standard error, and the lower
// cutoff xmin the fit considers valid. The aggregator treats the fitter as
// an opaque collaborator; any implementation honoring this contract can be
// injected through DensityOptions.
type TailFit func(samples []float64) (alpha, stderr, xmin float64, err error)

// DensityOptions configures OverDegreeDensity.
//
// Fields:
//   - Fit — tail-fitting collaborator; nil selects ClausetMLE.
type DensityOptions struct {
	Fit TailFit
}

// DefaultDensityOptions returns the stand-alone configuration using the
// built-in maximum-likelihood fitter.
func DefaultDensityOptions() DensityOptions {
	return DensityOptions{Fit: ClausetMLE}
}
