// SPDX-License-Identifier: MIT

package evolve

import "math"

// DefaultTolerance bounds |Σs0 - 1| for a classical initial state.
const DefaultTolerance = 1e-9

// Options holds evolver settings. Fields are unexported; use Option constructors.
type Options struct {
	checkConserved bool
	conserveTol    float64
}

// Option mutates Options.
type Option func(*Options)

func gatherOptions(opts []Option) Options {
	o := Options{conserveTol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithConservationCheck asserts that total probability equals 1 within eps.
//
// Classical runs validate column-stochasticity up front and the sum after every
// step; quantum runs compare the final Total. Violations return ErrNotConserved.
// Panics on negative or non-finite eps.
func WithConservationCheck(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("evolve: WithConservationCheck: eps must be finite, non-negative")
	}
	return func(o *Options) {
		o.checkConserved = true
		o.conserveTol = eps
	}
}
