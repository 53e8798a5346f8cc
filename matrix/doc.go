// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-shape transition matrices used by slitsim.
//
// What & Why:
//
//	Dense is a row-major float64 matrix for classical (probabilistic) transitions;
//	CDense is its complex128 twin for quantum amplitudes. Both expose the same
//	safe surface: At/Set return errors instead of panicking, Set rejects NaN/Inf,
//	Clone deep-copies.
//
//	Entry (to, from) holds the weight of the directed edge from → to, so one
//	application of the operator is the matrix–vector product y = M·x.
//
// Scope:
//
//	This is deliberately not a linear-algebra library: it offers construction,
//	MatVec/CMatVec, column sums and the validators the evolvers need.
//
// Errors:
//
//	ErrInvalidDimensions - non-positive shape or ragged rows.
//	ErrOutOfRange        - At/Set outside the shape.
//	ErrDimensionMismatch - operand shapes are incompatible (ShapeError).
//	ErrNonSquare         - square operator required (matches ErrDimensionMismatch too).
//	ErrNaNInf            - non-finite value rejected by Set.
//	ErrNilMatrix         - nil matrix or vector argument.
//	ErrNotStochastic     - a column does not sum to 1 or has a negative entry.
//	ErrComplexWeight     - a real matrix was requested from a complex-weighted topology.
//
// Complexity quicksheet:
//
//	NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); MatVec: O(r*c).
package matrix
