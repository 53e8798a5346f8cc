package evolve_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slitsim/evolve"
	"github.com/katalvlaran/slitsim/matrix"
	"github.com/katalvlaran/slitsim/topology"
)

const tol = 1e-9

func classical(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromTopology(topology.ClassicalDoubleSlit())
	require.NoError(t, err)

	return m
}

func quantum(t *testing.T) *matrix.CDense {
	t.Helper()
	m, err := matrix.ComplexFromTopology(topology.QuantumDoubleSlit())
	require.NoError(t, err)

	return m
}

func source(t *testing.T) []float64 {
	t.Helper()
	s, err := evolve.Basis(6, 0)
	require.NoError(t, err)

	return s
}

func csource(t *testing.T) []complex128 {
	t.Helper()
	s, err := evolve.CBasis(6, 0)
	require.NoError(t, err)

	return s
}

// TestProbabilistic_TwoSteps is literal scenario 1: targets end at 1/3 each.
func TestProbabilistic_TwoSteps(t *testing.T) {
	got, err := evolve.Probabilistic(classical(t), source(t), 2)
	require.NoError(t, err)
	require.Len(t, got, 6)

	for _, i := range []int{3, 4, 5} {
		require.InDelta(t, 1.0/3, got[i], tol, "target %d", i)
	}
	require.InDelta(t, 0, got[0]+got[1]+got[2], tol)
}

// TestProbabilistic_Conservation checks Σs == 1 for every n in 0..25, with
// and without the explicit conservation assertion.
func TestProbabilistic_Conservation(t *testing.T) {
	m, s0 := classical(t), source(t)
	for n := 0; n <= 25; n++ {
		got, err := evolve.Probabilistic(m, s0, n, evolve.WithConservationCheck(tol))
		require.NoError(t, err, "n=%d", n)

		var sum float64
		for _, v := range got {
			require.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		require.InDelta(t, 1.0, sum, tol, "n=%d", n)
	}
}

// TestProbabilistic_ZeroStepsCopies ensures steps=0 returns an independent copy of s0.
func TestProbabilistic_ZeroStepsCopies(t *testing.T) {
	s0 := source(t)
	got, err := evolve.Probabilistic(classical(t), s0, 0)
	require.NoError(t, err)
	require.Equal(t, s0, got)

	got[0] = 42
	require.Equal(t, 1.0, s0[0])
}

// TestProbabilistic_NotStochastic surfaces a leaky matrix only when conservation is asserted.
func TestProbabilistic_NotStochastic(t *testing.T) {
	leaky, err := matrix.NewDenseFrom([][]float64{{0, 0}, {0.5, 1}})
	require.NoError(t, err)
	s0 := []float64{1, 0}

	got, err := evolve.Probabilistic(leaky, s0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got[0]+got[1], tol)

	_, err = evolve.Probabilistic(leaky, s0, 1, evolve.WithConservationCheck(tol))
	require.ErrorIs(t, err, evolve.ErrNotConserved)
	require.ErrorIs(t, err, matrix.ErrNotStochastic)
}

// TestProbabilistic_Errors is a table of precondition failures.
func TestProbabilistic_Errors(t *testing.T) {
	m := classical(t)
	rect, err := matrix.NewDense(6, 5)
	require.NoError(t, err)

	cases := []struct {
		name  string
		m     *matrix.Dense
		s0    []float64
		steps int
		want  error
	}{
		{"negative steps", m, source(t), -1, evolve.ErrNegativeSteps},
		{"nil matrix", nil, source(t), 1, matrix.ErrNilMatrix},
		{"non-square", rect, source(t), 1, matrix.ErrDimensionMismatch},
		{"short state", m, []float64{1, 0}, 1, matrix.ErrDimensionMismatch},
		{"nil state", m, nil, 1, matrix.ErrNilMatrix},
		{"negative entry", m, []float64{1.5, -0.5, 0, 0, 0, 0}, 1, evolve.ErrInvalidState},
		{"sum not one", m, []float64{0.5, 0, 0, 0, 0, 0}, 1, evolve.ErrInvalidState},
		{"NaN entry", m, []float64{math.NaN(), 0, 0, 0, 0, 0}, 1, evolve.ErrInvalidState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := evolve.Probabilistic(tc.m, tc.s0, tc.steps)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, got)
		})
	}
}

// TestProbabilisticTrajectory keeps every intermediate state.
func TestProbabilisticTrajectory(t *testing.T) {
	traj, err := evolve.ProbabilisticTrajectory(classical(t), source(t), 2)
	require.NoError(t, err)
	require.Len(t, traj, 3)

	require.Equal(t, []float64{1, 0, 0, 0, 0, 0}, traj[0])
	require.Equal(t, []float64{0, 0.5, 0.5, 0, 0, 0}, traj[1])
	require.InDelta(t, 1.0/3, traj[2][4], tol)
}

// TestQuantum_Interference is literal scenario 2.
func TestQuantum_Interference(t *testing.T) {
	res, err := evolve.Quantum(quantum(t), csource(t), 2)
	require.NoError(t, err)
	require.Len(t, res.Probabilities, 6)

	require.Greater(t, res.Probabilities[4], 0.6, "constructive interference at target-1")
	require.Less(t, res.Probabilities[3], 0.1, "destructive interference at target-0")
	require.Less(t, res.Probabilities[5], 0.1, "destructive interference at target-2")
}

// TestQuantum_NonConservation documents that the reference matrix is not unitary:
// the raw total is 2/3, inside the (0.5, 1.5) band and not renormalized.
func TestQuantum_NonConservation(t *testing.T) {
	res, err := evolve.Quantum(quantum(t), csource(t), 2)
	require.NoError(t, err)

	require.Greater(t, res.Total, 0.5)
	require.Less(t, res.Total, 1.5)
	require.InDelta(t, 2.0/3, res.Total, 1e-12)

	_, err = evolve.Quantum(quantum(t), csource(t), 2, evolve.WithConservationCheck(tol))
	require.ErrorIs(t, err, evolve.ErrNotConserved)

	// One step is still norm-preserving: 1/2 + 1/2.
	res, err = evolve.Quantum(quantum(t), csource(t), 1, evolve.WithConservationCheck(tol))
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Total, tol)
}

// TestQuantum_Errors covers shape and input failures.
func TestQuantum_Errors(t *testing.T) {
	q := quantum(t)

	_, err := evolve.Quantum(q, csource(t), -3)
	require.ErrorIs(t, err, evolve.ErrNegativeSteps)

	_, err = evolve.Quantum(q, []complex128{1}, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = evolve.Quantum(nil, csource(t), 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := csource(t)
	bad[2] = complex(math.Inf(1), 0)
	_, err = evolve.Quantum(q, bad, 1)
	require.ErrorIs(t, err, evolve.ErrInvalidState)
}

// TestQuantumTrajectory checks the intermediate slit amplitudes.
func TestQuantumTrajectory(t *testing.T) {
	traj, err := evolve.QuantumTrajectory(quantum(t), csource(t), 2)
	require.NoError(t, err)
	require.Len(t, traj, 3)

	require.InDelta(t, 1/math.Sqrt2, real(traj[1][1]), 1e-15)
	require.InDelta(t, 1/math.Sqrt2, real(traj[1][2]), 1e-15)
	require.InDelta(t, 0, real(traj[2][3]), 1e-15)
	require.InDelta(t, 2/math.Sqrt(6), real(traj[2][4]), 1e-15)
}

// TestDeterminism runs every evolver twice and requires identical output.
func TestDeterminism(t *testing.T) {
	a, err := evolve.Probabilistic(classical(t), source(t), 7)
	require.NoError(t, err)
	b, err := evolve.Probabilistic(classical(t), source(t), 7)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, b))

	qa, err := evolve.Quantum(quantum(t), csource(t), 5)
	require.NoError(t, err)
	qb, err := evolve.Quantum(quantum(t), csource(t), 5)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(qa, qb))
}

// TestBasis checks one-hot construction and bounds.
func TestBasis(t *testing.T) {
	s, err := evolve.Basis(3, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, s)

	_, err = evolve.Basis(3, 3)
	require.ErrorIs(t, err, evolve.ErrBasisIndex)
	_, err = evolve.CBasis(0, 0)
	require.ErrorIs(t, err, evolve.ErrBasisIndex)

	require.Equal(t, []float64{1, 0.25}, evolve.Probabilities([]complex128{1i, complex(0, -0.5)}))
}
