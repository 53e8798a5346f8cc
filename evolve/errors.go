// SPDX-License-Identifier: MIT

package evolve

import "errors"

var (
	// ErrNegativeSteps indicates a negative step count.
	ErrNegativeSteps = errors.New("evolve: steps must be >= 0")

	// ErrInvalidState indicates an initial probability vector that is not a
	// distribution (negative or non-finite entry, or sum != 1).
	ErrInvalidState = errors.New("evolve: initial state is not a probability vector")

	// ErrNotConserved indicates that conservation of total probability was
	// asserted by the caller but does not hold.
	ErrNotConserved = errors.New("evolve: probability not conserved")
)
