package meangroup

import (
	"fmt"
	"math"
)

// ClausetMLE fits the continuous power-law exponent by maximum likelihood
// with the cutoff fixed at the smallest sample:
//
//	alpha = 1 + n / Σ ln(x_i / xmin),  stderr = (alpha − 1)/√n
//
// This is the closed-form estimator behind Clauset-style fits when xmin is
// taken from the data rather than scanned. It is the default TailFit
// collaborator; callers with a full Clauset/Kolmogorov–Smirnov pipeline
// can inject their own.
//
// Errors (all wrapping ErrTailFit): empty input, non-positive samples, and
// an all-equal sample (the likelihood diverges).
//
// Complexity: O(n) time, O(1) memory.
func ClausetMLE(samples []float64) (alpha, stderr, xmin float64, err error) {
	if len(samples) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: no samples", ErrTailFit)
	}

	xmin = math.Inf(1)
	for _, x := range samples {
		if !(x > 0) || math.IsInf(x, 1) {
			return 0, 0, 0, fmt.Errorf("%w: sample %v outside (0,∞)", ErrTailFit, x)
		}
		xmin = math.Min(xmin, x)
	}

	var logSum float64
	for _, x := range samples {
		logSum += math.Log(x / xmin)
	}
	if logSum == 0 {
		return 0, 0, 0, fmt.Errorf("%w: all %d samples equal %v", ErrTailFit, len(samples), xmin)
	}

	n := float64(len(samples))
	alpha = 1 + n/logSum
	stderr = (alpha - 1) / math.Sqrt(n)
	return alpha, stderr, xmin, nil
}
