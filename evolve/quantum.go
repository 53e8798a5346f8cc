// SPDX-License-Identifier: MIT
// File: quantum.go
// Role: quantum evolver. a_{k+1} = M·a_k over complex amplitudes, then
// P_i = |a_i|². Total is reported raw; nothing is renormalized.

package evolve

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slitsim/matrix"
)

const (
	opQuantum           = "Quantum"
	opQuantumTrajectory = "QuantumTrajectory"
)

// QuantumResult is the outcome of a quantum evolution.
//
//   - Amplitudes: final complex state.
//   - Probabilities: |a_i|² per entry.
//   - Total: Σ Probabilities. Equals 1 only for a norm-preserving matrix; the
//     reference double slit yields 2/3.
type QuantumResult struct {
	Amplitudes    []complex128
	Probabilities []float64
	Total         float64
}

// Quantum applies m to s0 steps times and reads out probabilities.
//
// Errors:
//   - ErrNegativeSteps, ErrInvalidState (non-finite amplitude),
//     ErrNotConserved (only with WithConservationCheck and |Total-1| > eps),
//     matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity: O(steps·n²).
func Quantum(m *matrix.CDense, s0 []complex128, steps int, opts ...Option) (*QuantumResult, error) {
	traj, err := quantumRun(opQuantum, m, s0, steps, false)
	if err != nil {
		return nil, err
	}
	res := newQuantumResult(traj[len(traj)-1])

	if o := gatherOptions(opts); o.checkConserved && math.Abs(res.Total-1) > o.conserveTol {
		return nil, fmt.Errorf("%s: total %.12g: %w", opQuantum, res.Total, ErrNotConserved)
	}

	return res, nil
}

// QuantumTrajectory returns the amplitudes after 0..steps applications.
func QuantumTrajectory(m *matrix.CDense, s0 []complex128, steps int) ([][]complex128, error) {
	return quantumRun(opQuantumTrajectory, m, s0, steps, true)
}

// Probabilities returns |a_i|² for every amplitude.
func Probabilities(amps []complex128) []float64 {
	out := make([]float64, len(amps))
	for i, a := range amps {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return out
}

func newQuantumResult(amps []complex128) *QuantumResult {
	p := Probabilities(amps)

	return &QuantumResult{Amplitudes: amps, Probabilities: p, Total: floats.Sum(p)}
}

func quantumRun(op string, m *matrix.CDense, s0 []complex128, steps int, keep bool) ([][]complex128, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%s: steps=%d: %w", op, steps, ErrNegativeSteps)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m.Rows(), m.Cols()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateVecLen(len(s0), s0 == nil, m.Cols()); err != nil {
		return nil, fmt.Errorf("%s: initial state: %w", op, err)
	}
	for i, a := range s0 {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return nil, fmt.Errorf("%s: amplitude %d=%v: %w", op, i, a, ErrInvalidState)
		}
	}

	state := make([]complex128, len(s0))
	copy(state, s0)

	var traj [][]complex128
	if keep {
		traj = make([][]complex128, 0, steps+1)
	}
	traj = append(traj, state)

	var err error
	for k := 1; k <= steps; k++ {
		if state, err = matrix.CMatVec(m, state); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", op, k, err)
		}
		if keep {
			traj = append(traj, state)
		} else {
			traj[0] = state
		}
	}

	return traj, nil
}
