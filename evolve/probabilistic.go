// SPDX-License-Identifier: MIT
// File: probabilistic.go
// Role: classical evolver. s_{k+1} = M·s_k over real, non-negative weights.
//
// Determinism:
//   - Pure: m and s0 are only read; every step allocates a fresh vector.

package evolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slitsim/matrix"
)

const (
	opProbabilistic           = "Probabilistic"
	opProbabilisticTrajectory = "ProbabilisticTrajectory"
)

// Probabilistic applies m to s0 steps times and returns the final state.
//
// Implementation:
//   - Stage 1: validate steps, shape (square m, len(s0) == order) and s0.
//   - Stage 2: optionally assert column-stochasticity.
//   - Stage 3: iterate MatVec; optionally assert Σs == 1 after each step.
//
// Errors:
//   - ErrNegativeSteps, ErrInvalidState, ErrNotConserved,
//     matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity: O(steps·n²).
//
// AI-Hints: steps == 0 returns a copy of s0.
func Probabilistic(m *matrix.Dense, s0 []float64, steps int, opts ...Option) ([]float64, error) {
	traj, err := probabilisticRun(opProbabilistic, m, s0, steps, false, gatherOptions(opts))
	if err != nil {
		return nil, err
	}

	return traj[len(traj)-1], nil
}

// ProbabilisticTrajectory is Probabilistic keeping every intermediate state:
// result[k] is the state after k steps, result[0] a copy of s0.
func ProbabilisticTrajectory(m *matrix.Dense, s0 []float64, steps int, opts ...Option) ([][]float64, error) {
	return probabilisticRun(opProbabilisticTrajectory, m, s0, steps, true, gatherOptions(opts))
}

func probabilisticRun(op string, m *matrix.Dense, s0 []float64, steps int, keep bool, o Options) ([][]float64, error) {
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
	if err := validateDistribution(s0); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if o.checkConserved {
		if err := matrix.ValidateColumnStochastic(m, o.conserveTol); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrNotConserved, err)
		}
	}

	state := make([]float64, len(s0))
	copy(state, s0)

	var traj [][]float64
	if keep {
		traj = make([][]float64, 0, steps+1)
	}
	traj = append(traj, state)

	var err error
	for k := 1; k <= steps; k++ {
		if state, err = matrix.MatVec(m, state); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", op, k, err)
		}
		if o.checkConserved {
			if s := floats.Sum(state); math.Abs(s-1) > o.conserveTol {
				return nil, fmt.Errorf("%s: step %d: total %.12g: %w", op, k, s, ErrNotConserved)
			}
		}
		if keep {
			traj = append(traj, state)
		} else {
			traj[0] = state
		}
	}

	return traj, nil
}

// validateDistribution checks entries are finite, non-negative and sum to 1.
func validateDistribution(s []float64) error {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("entry %d=%g: %w", i, v, ErrInvalidState)
		}
	}
	if sum := floats.Sum(s); math.Abs(sum-1) > DefaultTolerance {
		return fmt.Errorf("sum %.12g: %w", sum, ErrInvalidState)
	}

	return nil
}
