// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and structure checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateColumnStochastic
//    allocates (one column buffer).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that a rows×cols shape is square.
// Errors: ErrNonSquare (which also matches ErrDimensionMismatch).
func ValidateSquare(rows, cols int) error {
	if rows != cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as ErrNilMatrix.
func ValidateVecLen(length int, isNil bool, n int) error {
	if isNil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if length != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", length, n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateColumnStochastic checks that every entry of m is non-negative and
// every column sums to 1 within eps.
//
// Implementation:
//   - Stage 1: validate nil/square/eps.
//   - Stage 2: for each column j (ascending): reject negatives, compare sum.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotStochastic (with column index).
// Complexity: O(n^2).
//
// AI-Hints: a column-stochastic matrix maps probability vectors to probability
// vectors, which is exactly the conservation guarantee of the classical evolver.
func ValidateColumnStochastic(m *Dense, eps float64) error {
	if m == nil {
		return validatorErrorf("ValidateColumnStochastic", ErrNilMatrix)
	}
	if err := ValidateSquare(m.r, m.c); err != nil {
		return validatorErrorf("ValidateColumnStochastic", err)
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("matrix: ValidateColumnStochastic: eps must be finite, non-negative")
	}
	var col []float64
	var i, j int
	for j = 0; j < m.c; j++ {
		col, _ = m.Col(j) // j in range by construction
		for i = range col {
			if col[i] < 0 {
				return validatorErrorf("ValidateColumnStochastic",
					fmt.Errorf("entry (%d,%d)=%g is negative: %w", i, j, col[i], ErrNotStochastic))
			}
		}
		if s := floats.Sum(col); math.Abs(s-1) > eps {
			return validatorErrorf("ValidateColumnStochastic",
				fmt.Errorf("column %d sums to %.12g: %w", j, s, ErrNotStochastic))
		}
	}

	return nil
}
