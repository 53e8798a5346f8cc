// SPDX-License-Identifier: MIT
// File: interference.go
// Role: the per-point amplitude sum and normalization.

package wave

import (
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

const opCompute = "Compute"

// Compute evaluates the interference pattern for p.
//
// Implementation:
//   - Stage 1: validate p (ErrDomain).
//   - Stage 2: place N points on [-w/2, +w/2] with floats.Span.
//   - Stage 3: I[i] = |exp(ikr1)/r1 + exp(ikr2)/r2|², serially or in chunks.
//   - Stage 4: divide by max so the peak is exactly 1.
//
// Errors:
//   - ErrDomain for invalid parameters, a zero path length, or an all-zero
//     (or non-finite) raw pattern.
//
// Complexity: O(N) time, O(N) space.
func Compute(p Params, opts ...Option) (*Pattern, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	n := p.NumPoints
	points := make([]float64, n)
	floats.Span(points, -p.ScreenWidth/2, p.ScreenWidth/2)

	intensity := make([]float64, n)
	ev := evaluator{
		k:     p.WaveNumber(),
		l:     p.ScreenDistance,
		slit1: -p.SlitDistance / 2,
		slit2: p.SlitDistance / 2,
	}

	if err := ev.fill(points, intensity, o.workers); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	peak := floats.Max(intensity)
	if !(peak > 0) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("%s: peak intensity %g: %w", opCompute, peak, ErrDomain)
	}
	for i := range intensity {
		intensity[i] /= peak
	}

	return &Pattern{Points: points, Intensity: intensity}, nil
}

type evaluator struct {
	k, l         float64
	slit1, slit2 float64
}

// fill writes intensity[i] for every point. With workers > 1 the range is cut
// into contiguous chunks; each goroutine owns a disjoint slice window.
func (ev evaluator) fill(points, intensity []float64, workers int) error {
	if workers <= 1 || len(points) < 2*workers {
		return ev.fillRange(points, intensity, 0, len(points))
	}

	var g errgroup.Group
	chunk := (len(points) + workers - 1) / workers
	for lo := 0; lo < len(points); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(points))
		g.Go(func() error { return ev.fillRange(points, intensity, lo, hi) })
	}

	return g.Wait()
}

func (ev evaluator) fillRange(points, intensity []float64, lo, hi int) error {
	var a1, a2 complex128
	var err error
	for i := lo; i < hi; i++ {
		if a1, err = ev.amplitude(points[i], ev.slit1); err != nil {
			return err
		}
		if a2, err = ev.amplitude(points[i], ev.slit2); err != nil {
			return err
		}
		intensity[i] = sqAbs(a1 + a2)
	}

	return nil
}

// amplitude returns exp(i·k·r)/r for the path from a slit at y=slit to the
// screen point y.
func (ev evaluator) amplitude(y, slit float64) (complex128, error) {
	r := math.Hypot(ev.l, y-slit)
	if r == 0 {
		return 0, fmt.Errorf("zero path length at y=%g from slit %g: %w", y, slit, ErrDomain)
	}

	return cmplx.Exp(complex(0, ev.k*r)) / complex(r, 0), nil
}

func sqAbs(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }
