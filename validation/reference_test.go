// SPDX-License-Identifier: MIT

package validation_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slitsim/validation"
	"github.com/katalvlaran/slitsim/wave"
)

func TestReferenceChecks_AllPass(t *testing.T) {
	for _, parallel := range []int{1, 3} {
		cfg := validation.DefaultConfig()
		cfg.Parallel = parallel
		cfg.Wave.Workers = parallel

		checks := validation.ReferenceChecks(cfg)
		rep := validation.NewSuite(zerolog.Nop(), checks, validation.WithParallel(cfg.Parallel)).
			Run(context.Background())

		for _, r := range rep.Results {
			assert.NoError(t, r.Err, r.Name)
		}
		assert.Equal(t, "TEST RESULTS: 6 passed, 0 failed", rep.String())
	}
}

func TestReferenceChecks_Names(t *testing.T) {
	checks := validation.ReferenceChecks(validation.DefaultConfig())

	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		validation.CheckProbabilistic,
		validation.CheckQuantum,
		validation.CheckWave,
		validation.CheckMatrix,
		validation.CheckEntropy,
		validation.CheckDeterminism,
	}, names)
}

func TestReferenceChecks_FailuresAreIsolated(t *testing.T) {
	cfg := validation.DefaultConfig()
	cfg.Probabilistic.Steps = 1 // targets are still empty after one step
	cfg.Wave.Wavelength = -1    // rejected by wave.Compute

	rep := validation.NewSuite(zerolog.Nop(), validation.ReferenceChecks(cfg)).Run(context.Background())

	byName := map[string]error{}
	for _, r := range rep.Results {
		byName[r.Name] = r.Err
	}
	assert.ErrorIs(t, byName[validation.CheckProbabilistic], validation.ErrAssertion)
	assert.ErrorIs(t, byName[validation.CheckWave], wave.ErrDomain)
	assert.ErrorIs(t, byName[validation.CheckDeterminism], wave.ErrDomain)
	assert.NoError(t, byName[validation.CheckQuantum])
	assert.NoError(t, byName[validation.CheckMatrix])
	assert.NoError(t, byName[validation.CheckEntropy])
	require.Equal(t, 3, rep.Passed)
	assert.Equal(t, 1, rep.ExitCode())
}
