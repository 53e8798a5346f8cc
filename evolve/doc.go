// SPDX-License-Identifier: MIT

// Package evolve advances state vectors through a transition matrix.
//
// Two evolvers share one contract (apply M to s0, steps times) and differ only
// in algebra:
//
//   - Probabilistic: real, non-negative weights; the state is a probability
//     vector and, for a column-stochastic M, its sum stays 1 forever.
//   - Quantum: complex amplitudes; probabilities are |a|² read out at the end.
//     Phases let paths cancel (destructive) or reinforce (constructive).
//
// Running both on the same slit topology is the point: identical branching,
// divergent interference.
//
// Conservation:
//
//	The quantum result exposes its raw Total instead of renormalizing; a
//	non-unitary matrix shows up as Total != 1. Callers that require
//	conservation pass WithConservationCheck and get ErrNotConserved instead of
//	a silently masked violation.
//
// Errors:
//
//	ErrNegativeSteps  - steps < 0.
//	ErrInvalidState   - classical s0 with a negative/non-finite entry or sum != 1.
//	ErrNotConserved   - conservation asserted but violated.
//	matrix.ErrDimensionMismatch / matrix.ErrNonSquare - shape errors.
package evolve
