// Package ode: options and sentinel errors.
package ode

import "errors"

// Sentinel errors for integrator construction and stepping.
var (
	// ErrNilFunc indicates a nil right-hand side was supplied.
	ErrNilFunc = errors.New("ode: right-hand side function is nil")

	// ErrTolerance indicates a non-positive or non-finite tolerance.
	ErrTolerance = errors.New("ode: tolerances must be positive and finite")

	// ErrBackward indicates an Integrate target behind the current time.
	ErrBackward = errors.New("ode: integration target precedes current time")

	// ErrMaxSteps indicates the step budget ran out before the target.
	ErrMaxSteps = errors.New("ode: maximum step count exceeded")

	// ErrStiff indicates the step size underflowed: the error control
	// cannot meet the tolerance with a representable step.
	ErrStiff = errors.New("ode: step size underflow")
)

// Defaults for Options; chosen to match common dopri5 configurations.
const (
	// DefaultAbsTol is the default absolute error tolerance per step.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the default relative error tolerance per step.
	DefaultRelTol = 1e-7

	// DefaultMaxSteps bounds the number of attempted steps per Integrate
	// call; hitting it reports ErrMaxSteps rather than spinning.
	DefaultMaxSteps = 100_000
)

// Options configures a Dopri5 integrator.
//
// Fields:
//   - AbsTol, RelTol — per-step error tolerances; the error estimate is
//     compared against AbsTol + RelTol·|y|.
//   - InitialStep    — first trial step; 0 picks a conservative default
//     from the interval length.
//   - MaxSteps       — attempted-step budget per Integrate call; 0 means
//     DefaultMaxSteps.
type Options struct {
	AbsTol      float64
	RelTol      float64
	InitialStep float64
	MaxSteps    int
}

// DefaultOptions returns the standard dopri5-style configuration.
func DefaultOptions() Options {
	return Options{
		AbsTol:   DefaultAbsTol,
		RelTol:   DefaultRelTol,
		MaxSteps: DefaultMaxSteps,
	}
}
