// SPDX-License-Identifier: MIT

package wave

import "gonum.org/v1/gonum/floats"

// Pattern is a normalized intensity pattern: Intensity[i] is the intensity at
// screen coordinate Points[i]; max(Intensity) == 1.
type Pattern struct {
	Points    []float64
	Intensity []float64
}

// Len returns the number of samples.
func (p *Pattern) Len() int { return len(p.Intensity) }

// Max returns the largest intensity (1 for a computed pattern).
func (p *Pattern) Max() float64 { return floats.Max(p.Intensity) }

// Min returns the smallest intensity.
func (p *Pattern) Min() float64 { return floats.Min(p.Intensity) }

// CenterWindow returns a copy of the samples [c-half, c+half] around
// c = Len()/2, clipped to the pattern bounds.
func (p *Pattern) CenterWindow(half int) []float64 {
	n := p.Len()
	if half < 0 || n == 0 {
		return nil
	}
	c := n / 2
	lo, hi := max(0, c-half), min(n, c+half+1)
	out := make([]float64, hi-lo)
	copy(out, p.Intensity[lo:hi])

	return out
}

// Fringes returns the indices of interior local minima (dark fringes), ascending.
func (p *Pattern) Fringes() []int {
	var out []int
	in := p.Intensity
	for i := 1; i+1 < len(in); i++ {
		if in[i] < in[i-1] && in[i] <= in[i+1] {
			out = append(out, i)
		}
	}

	return out
}
