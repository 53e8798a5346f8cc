package wave_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slitsim/wave"
)

// TestCompute_Reference is the literal wave scenario.
func TestCompute_Reference(t *testing.T) {
	pat, err := wave.Compute(wave.DefaultParams())
	require.NoError(t, err)

	require.Equal(t, 100, pat.Len())
	require.Len(t, pat.Points, 100)
	assert.InDelta(t, 1.0, pat.Max(), 1e-10, "pattern must be normalized")
	assert.Less(t, pat.Min(), 0.1, "a destructive minimum must be sampled")

	center := pat.CenterWindow(2)
	require.Len(t, center, 5)
	peak := 0.0
	for _, v := range center {
		peak = math.Max(peak, v)
	}
	assert.Greater(t, peak, 0.5, "central fringe must dominate")

	for i, v := range pat.Intensity {
		require.GreaterOrEqual(t, v, 0.0, "sample %d", i)
		require.LessOrEqual(t, v, 1.0, "sample %d", i)
	}
}

// TestCompute_ScreenCoordinates checks the sampled span and spacing.
func TestCompute_ScreenCoordinates(t *testing.T) {
	pat, err := wave.Compute(wave.DefaultParams())
	require.NoError(t, err)

	require.InDelta(t, -0.01, pat.Points[0], 1e-15)
	require.InDelta(t, 0.01, pat.Points[99], 1e-15)
	step := 0.02 / 99
	for i := 1; i < len(pat.Points); i++ {
		require.InDelta(t, step, pat.Points[i]-pat.Points[i-1], 1e-12)
	}
}

// TestCompute_Symmetry: symmetric slits and screen give a mirror-symmetric pattern.
func TestCompute_Symmetry(t *testing.T) {
	pat, err := wave.Compute(wave.DefaultParams())
	require.NoError(t, err)

	n := pat.Len()
	for i := 0; i < n/2; i++ {
		require.InDelta(t, pat.Intensity[i], pat.Intensity[n-1-i], 1e-6, "pair %d", i)
	}
}

// TestCompute_Workers requires the parallel path to match the serial one exactly.
func TestCompute_Workers(t *testing.T) {
	serial, err := wave.Compute(wave.DefaultParams())
	require.NoError(t, err)

	for _, w := range []int{1, 2, 3, 8, 64} {
		par, err := wave.Compute(wave.DefaultParams(), wave.WithWorkers(w))
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(serial, par), "workers=%d", w)
	}
	require.Panics(t, func() { wave.WithWorkers(0) })
}

// TestCompute_Deterministic runs the calculator twice with identical input.
func TestCompute_Deterministic(t *testing.T) {
	a, err := wave.Compute(wave.DefaultParams())
	require.NoError(t, err)
	b, err := wave.Compute(wave.DefaultParams())
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, b))
}

// TestCompute_Domain is a table of DomainError cases.
func TestCompute_Domain(t *testing.T) {
	mut := func(f func(p *wave.Params)) wave.Params {
		p := wave.DefaultParams()
		f(&p)

		return p
	}
	cases := map[string]wave.Params{
		"zero screen distance": mut(func(p *wave.Params) { p.ScreenDistance = 0 }),
		"negative screen":      mut(func(p *wave.Params) { p.ScreenDistance = -1 }),
		"zero wavelength":      mut(func(p *wave.Params) { p.Wavelength = 0 }),
		"NaN wavelength":       mut(func(p *wave.Params) { p.Wavelength = math.NaN() }),
		"zero slit distance":   mut(func(p *wave.Params) { p.SlitDistance = 0 }),
		"Inf slit distance":    mut(func(p *wave.Params) { p.SlitDistance = math.Inf(1) }),
		"negative width":       mut(func(p *wave.Params) { p.ScreenWidth = -0.1 }),
		"one point":            mut(func(p *wave.Params) { p.NumPoints = 1 }),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			pat, err := wave.Compute(p)
			require.ErrorIs(t, err, wave.ErrDomain)
			require.Nil(t, pat)
		})
	}
}

// TestCompute_ZeroWidth samples one screen coordinate N times; every sample is the peak.
func TestCompute_ZeroWidth(t *testing.T) {
	p := wave.DefaultParams()
	p.ScreenWidth = 0
	p.NumPoints = 4

	pat, err := wave.Compute(p)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1}, pat.Intensity)
}

// TestPattern_Fringes checks dark fringes land roughly λL/d apart.
func TestPattern_Fringes(t *testing.T) {
	p := wave.DefaultParams()
	p.NumPoints = 2001
	pat, err := wave.Compute(p)
	require.NoError(t, err)

	idx := pat.Fringes()
	require.GreaterOrEqual(t, len(idx), 2)
	for i := 1; i < len(idx); i++ {
		gap := pat.Points[idx[i]] - pat.Points[idx[i-1]]
		require.InDelta(t, p.FringeSpacing(), gap, 2e-5)
	}
	require.InDelta(t, 5e-4, p.FringeSpacing(), 1e-15)
}

// TestPattern_CenterWindowClipping covers window bounds.
func TestPattern_CenterWindowClipping(t *testing.T) {
	pat := &wave.Pattern{Intensity: []float64{0.1, 0.2, 0.3}}

	require.Equal(t, []float64{0.2}, pat.CenterWindow(0))
	require.Equal(t, []float64{0.1, 0.2, 0.3}, pat.CenterWindow(5))
	require.Nil(t, pat.CenterWindow(-1))
}
