// SPDX-License-Identifier: MIT
// Package matrix — the handful of kernels the evolvers need.
//
// Determinism:
//   - Fixed i→j loop order; no parallelism; no map iteration.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opMatVec     = "MatVec"
	opCMatVec    = "CMatVec"
	opColumnSums = "ColumnSums"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Cols().
//   - Stage 2: y[i] = dot(row_i, x) over the flat row slice.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) space. x is never modified.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(len(x), x == nil, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		y[i] = floats.Dot(m.data[base:base+m.c], x)
	}

	return y, nil
}

// CMatVec computes y = m·x over complex128.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func CMatVec(m *CDense, x []complex128) ([]complex128, error) {
	if m == nil {
		return nil, matrixErrorf(opCMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(len(x), x == nil, m.c); err != nil {
		return nil, matrixErrorf(opCMatVec, err)
	}
	y := make([]complex128, m.r)
	var i, j, base int
	var acc complex128
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// ColumnSums returns Σ_i m(i,j) for every column j.
// Errors: ErrNilMatrix.
func ColumnSums(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opColumnSums, ErrNilMatrix)
	}
	out := make([]float64, m.c)
	var col []float64
	for j := 0; j < m.c; j++ {
		col, _ = m.Col(j)
		out[j] = floats.Sum(col)
	}

	return out, nil
}
