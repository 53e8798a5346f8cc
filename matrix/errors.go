// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with "Ctx: %w");
// callers and tests match them via errors.Is. Nothing here panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row literal is ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(x) != m.Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It unwraps to ErrDimensionMismatch so every shape failure matches one sentinel.
	ErrNonSquare error = &subError{msg: "matrix: matrix is not square", parent: ErrDimensionMismatch}

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix or vector was used.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrNotStochastic indicates a matrix that is not column-stochastic within eps.
	ErrNotStochastic = errors.New("matrix: matrix is not column-stochastic")

	// ErrComplexWeight indicates a non-zero imaginary weight where a real matrix
	// was requested.
	ErrComplexWeight = errors.New("matrix: complex weight in real matrix")
)

// subError is a sentinel that also matches its parent sentinel under errors.Is.
type subError struct {
	msg    string
	parent error
}

func (e *subError) Error() string { return e.msg }
func (e *subError) Unwrap() error { return e.parent }
