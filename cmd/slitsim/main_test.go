// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slitsim/entropy"
	"github.com/katalvlaran/slitsim/wave"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestValidate_AllPass(t *testing.T) {
	out, logs, err := execute(t, "validate", "--parallel", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "PASS probabilistic_system")
	assert.Contains(t, out, "PASS determinism")
	assert.Contains(t, out, "TEST RESULTS: 6 passed, 0 failed")
	assert.Contains(t, logs, `"status":"pass"`)
}

func TestValidate_FailureSetsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wave:\n  wavelength: -1\n"), 0o600))

	out, _, err := execute(t, "validate", "--config", path, "--log-level", "off")
	require.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, out, "FAIL wave_simulation")
	assert.Contains(t, out, "TEST RESULTS: 4 passed, 2 failed")
}

func TestValidate_BadFlags(t *testing.T) {
	_, _, err := execute(t, "validate", "--parallel", "0")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errChecksFailed)
}

func TestEvolve_Classical(t *testing.T) {
	out, _, err := execute(t, "evolve", "--steps", "2", "--check-conservation", "1e-9")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "0.333333"))
	assert.Contains(t, out, "target-1")
	assert.Contains(t, out, "1.000000")

	md, _, err := execute(t, "evolve", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, md, "| source |")
}

func TestEvolve_Quantum(t *testing.T) {
	out, _, err := execute(t, "evolve", "--quantum")
	require.NoError(t, err)
	assert.Contains(t, out, "0.666667")

	_, _, err = execute(t, "evolve", "--quantum", "--check-conservation", "1e-3")
	assert.Error(t, err)
}

func TestPattern(t *testing.T) {
	out, _, err := execute(t, "pattern", "--points", "11", "--workers", "2")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 11)

	_, _, err = execute(t, "pattern", "--wavelength", "0")
	assert.ErrorIs(t, err, wave.ErrDomain)
}

func TestEntropy(t *testing.T) {
	out, _, err := execute(t, "entropy", "0.5", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1 bits\n", out)

	_, _, err = execute(t, "entropy", "1.5")
	assert.ErrorIs(t, err, entropy.ErrInvalidProbability)

	_, _, err = execute(t, "entropy", "half")
	assert.Error(t, err)
}
