// SPDX-License-Identifier: MIT

package validation

import (
	"context"
	"math"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slitsim/entropy"
	"github.com/katalvlaran/slitsim/evolve"
	"github.com/katalvlaran/slitsim/matrix"
	"github.com/katalvlaran/slitsim/topology"
	"github.com/katalvlaran/slitsim/wave"
)

// Names of the reference checks, in run order.
const (
	CheckProbabilistic = "probabilistic_system"
	CheckQuantum       = "quantum_system"
	CheckWave          = "wave_simulation"
	CheckMatrix        = "matrix_properties"
	CheckEntropy       = "information_entropy"
	CheckDeterminism   = "determinism"
)

// Fixed thresholds of the reference scenarios.
const (
	peakTol         = 1e-10
	entropyTol      = 1e-10
	quantumPeakMin  = 0.6
	quantumDarkMax  = 0.1
	quantumTotalLo  = 0.5
	quantumTotalHi  = 1.5
	waveDarkMax     = 0.1
	waveCenterMin   = 0.5
	waveCenterHalf  = 2
	sourceIndex     = 0
	centralTarget   = 4
	referenceOrder  = 6
	uniformOutcomes = 3
)

// ReferenceChecks returns the standard checks parameterized by cfg.
func ReferenceChecks(cfg Config) []Check {
	return []Check{
		{Name: CheckProbabilistic, Run: func(context.Context) error { return checkProbabilistic(cfg) }},
		{Name: CheckQuantum, Run: func(context.Context) error { return checkQuantum(cfg) }},
		{Name: CheckWave, Run: func(context.Context) error { return checkWave(cfg) }},
		{Name: CheckMatrix, Run: func(context.Context) error { return checkMatrix(cfg) }},
		{Name: CheckEntropy, Run: func(context.Context) error { return checkEntropy() }},
		{Name: CheckDeterminism, Run: func(context.Context) error { return checkDeterminism(cfg) }},
	}
}

func classicalSetup() (*matrix.Dense, []float64, error) {
	m, err := matrix.FromTopology(topology.ClassicalDoubleSlit())
	if err != nil {
		return nil, nil, err
	}
	s0, err := evolve.Basis(m.Rows(), sourceIndex)
	if err != nil {
		return nil, nil, err
	}

	return m, s0, nil
}

func quantumSetup() (*matrix.CDense, []complex128, error) {
	m, err := matrix.ComplexFromTopology(topology.QuantumDoubleSlit())
	if err != nil {
		return nil, nil, err
	}
	s0, err := evolve.CBasis(m.Rows(), sourceIndex)
	if err != nil {
		return nil, nil, err
	}

	return m, s0, nil
}

func checkProbabilistic(cfg Config) error {
	m, s0, err := classicalSetup()
	if err != nil {
		return err
	}
	s, err := evolve.Probabilistic(m, s0, cfg.Probabilistic.Steps, evolve.WithConservationCheck(cfg.Tolerance))
	if err != nil {
		return err
	}
	if err = expect(math.Abs(floats.Sum(s)-1) <= cfg.Tolerance, "total probability %.12g != 1", floats.Sum(s)); err != nil {
		return err
	}
	for _, i := range topology.ClassicalDoubleSlit().IndicesOf(topology.Target) {
		if err = expect(math.Abs(s[i]-1.0/3) <= cfg.Tolerance, "target %d holds %.12g, want 1/3", i, s[i]); err != nil {
			return err
		}
	}

	return nil
}

func checkQuantum(cfg Config) error {
	m, s0, err := quantumSetup()
	if err != nil {
		return err
	}
	res, err := evolve.Quantum(m, s0, cfg.Quantum.Steps)
	if err != nil {
		return err
	}
	p := res.Probabilities
	if err = expect(p[centralTarget] > quantumPeakMin, "P[%d]=%.6g, want > %g", centralTarget, p[centralTarget], quantumPeakMin); err != nil {
		return err
	}
	for _, i := range []int{centralTarget - 1, centralTarget + 1} {
		if err = expect(p[i] < quantumDarkMax, "P[%d]=%.6g, want < %g", i, p[i], quantumDarkMax); err != nil {
			return err
		}
	}

	return expect(res.Total > quantumTotalLo && res.Total < quantumTotalHi,
		"total %.6g outside (%g, %g)", res.Total, quantumTotalLo, quantumTotalHi)
}

func checkWave(cfg Config) error {
	pat, err := wave.Compute(cfg.Wave.Params(), wave.WithWorkers(cfg.Wave.Workers))
	if err != nil {
		return err
	}
	if err = expect(pat.Len() == cfg.Wave.NumPoints, "pattern has %d points, want %d", pat.Len(), cfg.Wave.NumPoints); err != nil {
		return err
	}
	if err = expect(math.Abs(pat.Max()-1) <= peakTol, "max intensity %.12g, want 1", pat.Max()); err != nil {
		return err
	}
	if err = expect(pat.Min() < waveDarkMax, "min intensity %.6g, want < %g", pat.Min(), waveDarkMax); err != nil {
		return err
	}
	center := pat.CenterWindow(waveCenterHalf)

	return expect(len(center) > 0 && floats.Max(center) > waveCenterMin, "no central intensity above %g", waveCenterMin)
}

func checkMatrix(cfg Config) error {
	m, _, err := classicalSetup()
	if err != nil {
		return err
	}
	sums, err := matrix.ColumnSums(m)
	if err != nil {
		return err
	}
	if err = expect(len(sums) == referenceOrder, "%d column sums, want %d", len(sums), referenceOrder); err != nil {
		return err
	}
	for j, s := range sums {
		if err = expect(s >= 0, "column %d sums to %g", j, s); err != nil {
			return err
		}
	}

	return matrix.ValidateColumnStochastic(m, cfg.Tolerance)
}

func checkEntropy() error {
	uniform, err := entropy.Shannon(entropy.Uniform(uniformOutcomes))
	if err != nil {
		return err
	}
	peaked, err := entropy.Shannon(entropy.OneHot(uniformOutcomes, 1))
	if err != nil {
		return err
	}
	if err = expect(uniform > peaked, "uniform entropy %.6g <= one-hot entropy %.6g", uniform, peaked); err != nil {
		return err
	}
	if err = expect(peaked == 0, "one-hot entropy %g, want 0", peaked); err != nil {
		return err
	}

	return expect(math.Abs(uniform-math.Log2(uniformOutcomes)) < entropyTol,
		"uniform entropy %.12g, want log2(3)", uniform)
}

// checkDeterminism runs every evolver twice and requires identical output.
func checkDeterminism(cfg Config) error {
	m, s0, err := classicalSetup()
	if err != nil {
		return err
	}
	a, err := evolve.Probabilistic(m, s0, cfg.Probabilistic.Steps)
	if err != nil {
		return err
	}
	b, err := evolve.Probabilistic(m, s0, cfg.Probabilistic.Steps)
	if err != nil {
		return err
	}
	if d := cmp.Diff(a, b); d != "" {
		return expect(false, "probabilistic runs differ (-first +second):\n%s", d)
	}

	qm, q0, err := quantumSetup()
	if err != nil {
		return err
	}
	qa, err := evolve.Quantum(qm, q0, cfg.Quantum.Steps)
	if err != nil {
		return err
	}
	qb, err := evolve.Quantum(qm, q0, cfg.Quantum.Steps)
	if err != nil {
		return err
	}
	if d := cmp.Diff(qa, qb); d != "" {
		return expect(false, "quantum runs differ (-first +second):\n%s", d)
	}

	pa, err := wave.Compute(cfg.Wave.Params(), wave.WithWorkers(cfg.Wave.Workers))
	if err != nil {
		return err
	}
	pb, err := wave.Compute(cfg.Wave.Params())
	if err != nil {
		return err
	}
	if d := cmp.Diff(pa, pb); d != "" {
		return expect(false, "wave patterns differ (-first +second):\n%s", d)
	}

	return nil
}
