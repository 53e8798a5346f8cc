// SPDX-License-Identifier: MIT

package evolve

import (
	"errors"
	"fmt"
)

// ErrBasisIndex indicates a basis index outside [0, n).
var ErrBasisIndex = errors.New("evolve: basis index out of range")

// Basis returns the one-hot probability vector of length n with 1 at i.
// The reference runs start from Basis(6, 0): all mass on the source.
func Basis(n, i int) ([]float64, error) {
	if n <= 0 || i < 0 || i >= n {
		return nil, fmt.Errorf("Basis(%d,%d): %w", n, i, ErrBasisIndex)
	}
	s := make([]float64, n)
	s[i] = 1

	return s, nil
}

// CBasis is Basis for amplitude vectors.
func CBasis(n, i int) ([]complex128, error) {
	if n <= 0 || i < 0 || i >= n {
		return nil, fmt.Errorf("CBasis(%d,%d): %w", n, i, ErrBasisIndex)
	}
	s := make([]complex128, n)
	s[i] = 1

	return s, nil
}
