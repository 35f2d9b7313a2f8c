// Package equilibrium - RNG policy for the configuration sampler.
//
// This file centralizes random generation for sampling.
//
// Goals:
//   - Determinism: same nonzero seed ⇒ identical configurations.
//   - Encapsulation: a single RNG factory; callers never touch global state.
//   - Parallel safety: one *rand.Rand per call; nothing shared.
//
// Concurrency:
//   - golang.org/x/exp/rand.Rand is NOT goroutine-safe. Do not share a
//     handle across goroutines; pass a fresh one per Configuration call.
package equilibrium

import (
	"time"

	"golang.org/x/exp/rand"
)

// rngFromOptions resolves the generator for one sampling call.
// Policy: explicit Rand handle wins; otherwise a nonzero Seed is used
// verbatim; otherwise the generator is seeded from the wall clock.
//
// Complexity: O(1).
func rngFromOptions(opts *ConfigOptions) *rand.Rand {
	if opts != nil && opts.Rand != nil {
		return opts.Rand
	}
	var seed uint64
	if opts != nil && opts.Seed != 0 {
		seed = opts.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
