package meangroup_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temporalnets/flockwork/meangroup"
)

// TestOverDegreeDensity_BadResolution verifies that dk ≤ 0 is rejected
// before any computation.
func TestOverDegreeDensity_BadResolution(t *testing.T) {
	for _, dk := range []float64{0, -0.1, math.NaN()} {
		_, err := meangroup.OverDegreeDensity(10, 10, constant(1), constant(0.9), 5, dk, nil)
		assert.ErrorIs(t, err, meangroup.ErrResolution, "dk=%v", dk)
	}
}

// TestOverDegreeDensity_CoarseResolution verifies that a dk wider than the
// fitted k-range cannot carry a Simpson integral and errors.
func TestOverDegreeDensity_CoarseResolution(t *testing.T) {
	_, err := meangroup.OverDegreeDensity(10, 10, constant(1), constant(0.9), 5, 100, nil)
	assert.ErrorIs(t, err, meangroup.ErrResolution)
}

// TestOverDegreeDensity_DegenerateRange verifies the two degenerate-range
// paths: a frozen degree (zero-width range) and a trajectory that never
// reaches one expected edge.
func TestOverDegreeDensity_DegenerateRange(t *testing.T) {
	// γ = 0 freezes k at k0 = 1: a one-value sample spans no range.
	_, err := meangroup.OverDegreeDensity(5, 10, constant(0), constant(0.5), 5, 0.01, nil)
	assert.ErrorIs(t, err, meangroup.ErrDegenerateRange)

	// k0 = 0 with P = 0 keeps k at zero, below the 2/N floor throughout.
	_, err = meangroup.OverDegreeDensity(0, 10, constant(1), constant(0), 5, 0.01, nil)
	assert.ErrorIs(t, err, meangroup.ErrDegenerateRange)
}

// TestOverDegreeDensity_MassNearConservation verifies that the density
// average accounts for nearly all n nodes: the density is normalized
// analytically, so the only loss is Simpson discretization.
func TestOverDegreeDensity_MassNearConservation(t *testing.T) {
	const n = 10
	// k grows from 2 toward k* = 9, giving a wide, well-behaved k-range.
	mean, err := meangroup.OverDegreeDensity(10, n, constant(1), constant(0.9), 3, 0.01, nil)
	require.NoError(t, err)
	require.Len(t, mean, n)

	var mass float64
	for m, v := range mean {
		mass += float64(m+1) * v
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "entry %d must be finite", m)
	}
	assert.InDelta(t, float64(n), mass, 0.2, "density average must conserve mass up to discretization")
}

// TestOverDegreeDensity_InjectedFitter verifies that a custom TailFit
// collaborator replaces the built-in one.
func TestOverDegreeDensity_InjectedFitter(t *testing.T) {
	called := false
	opts := meangroup.DensityOptions{
		Fit: func(samples []float64) (float64, float64, float64, error) {
			called = true
			require.NotEmpty(t, samples)
			return 2.5, 0.1, samples[0], nil
		},
	}

	_, err := meangroup.OverDegreeDensity(10, 10, constant(1), constant(0.9), 3, 0.01, &opts)
	require.NoError(t, err)
	assert.True(t, called, "injected fitter must be consulted")
}

// TestOverDegreeDensity_FitterFailure verifies that a failing collaborator
// aborts the aggregation with its error.
func TestOverDegreeDensity_FitterFailure(t *testing.T) {
	opts := meangroup.DensityOptions{
		Fit: func([]float64) (float64, float64, float64, error) {
			return 0, 0, 0, meangroup.ErrTailFit
		},
	}
	_, err := meangroup.OverDegreeDensity(10, 10, constant(1), constant(0.9), 3, 0.01, &opts)
	assert.ErrorIs(t, err, meangroup.ErrTailFit)
}

// TestOverDegreeDensity_NonFiniteExponent verifies that a collaborator
// returning a non-finite exponent is surfaced as ErrTailFit.
func TestOverDegreeDensity_NonFiniteExponent(t *testing.T) {
	opts := meangroup.DensityOptions{
		Fit: func([]float64) (float64, float64, float64, error) {
			return math.Inf(1), 0, 1, nil
		},
	}
	_, err := meangroup.OverDegreeDensity(10, 10, constant(1), constant(0.9), 3, 0.01, &opts)
	assert.ErrorIs(t, err, meangroup.ErrTailFit)
}

// TestClausetMLE_Basics verifies estimator structure on a clean sample:
// xmin is the minimum, the exponent exceeds one, the error shrinks with n.
func TestClausetMLE_Basics(t *testing.T) {
	samples := []float64{1, 1.2, 1.5, 2, 3, 5, 9, 17}
	alpha, stderr, xmin, err := meangroup.ClausetMLE(samples)
	require.NoError(t, err)

	assert.Equal(t, 1.0, xmin)
	assert.Greater(t, alpha, 1.0)
	assert.Positive(t, stderr)
}

// TestClausetMLE_Rejections verifies the failure paths: empty input,
// non-positive samples, and a degenerate all-equal sample.
func TestClausetMLE_Rejections(t *testing.T) {
	_, _, _, err := meangroup.ClausetMLE(nil)
	assert.ErrorIs(t, err, meangroup.ErrTailFit, "empty input")

	_, _, _, err = meangroup.ClausetMLE([]float64{1, -2, 3})
	assert.ErrorIs(t, err, meangroup.ErrTailFit, "negative sample")

	_, _, _, err = meangroup.ClausetMLE([]float64{2, 2, 2})
	assert.ErrorIs(t, err, meangroup.ErrTailFit, "all-equal sample diverges")
}
