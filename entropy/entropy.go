// SPDX-License-Identifier: MIT

// Package entropy measures how informative an outcome distribution is.
//
// Shannon entropy in bits, H(p) = -Σ p·log2 p over entries with p > 0
// (0·log 0 is taken as 0). It is maximal, log2 k, for the uniform distribution
// over k outcomes and zero for a one-hot distribution: the classical double
// slit spreads mass evenly over the screen (high entropy) while quantum
// interference concentrates it (low entropy).
//
// Inputs are not required to sum to 1: the quantum evolver exposes raw,
// non-renormalized probabilities and the entropy of those is still defined
// term by term.
package entropy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyDistribution indicates a distribution with no outcomes.
	ErrEmptyDistribution = errors.New("entropy: empty distribution")

	// ErrInvalidProbability indicates an entry outside [0, 1] or non-finite.
	ErrInvalidProbability = errors.New("entropy: probability outside [0,1]")
)

// Shannon returns the Shannon entropy of p in bits.
//
// Implementation:
//   - Stage 1: validate every entry lies in [0, 1].
//   - Stage 2: stat.Entropy (nats, zero entries skipped) divided by ln 2.
//
// Errors: ErrEmptyDistribution, ErrInvalidProbability.
// Complexity: O(len(p)).
func Shannon(p []float64) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyDistribution
	}
	for i, v := range p {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return 0, fmt.Errorf("Shannon: p[%d]=%g: %w", i, v, ErrInvalidProbability)
		}
	}

	h := stat.Entropy(p) / math.Ln2
	if h == 0 {
		// Normalize -0 from a one-hot input.
		return 0, nil
	}

	return h, nil
}

// MaxBits returns log2 k, the entropy of the uniform distribution over k
// outcomes. k < 1 yields 0.
func MaxBits(k int) float64 {
	if k < 1 {
		return 0
	}

	return math.Log2(float64(k))
}

// Uniform returns the uniform distribution over k outcomes (nil for k < 1).
func Uniform(k int) []float64 {
	if k < 1 {
		return nil
	}
	p := make([]float64, k)
	for i := range p {
		p[i] = 1 / float64(k)
	}

	return p
}

// OneHot returns the degenerate distribution of length k with all mass at i.
// It returns nil when i is outside [0, k).
func OneHot(k, i int) []float64 {
	if i < 0 || i >= k {
		return nil
	}
	p := make([]float64, k)
	p[i] = 1

	return p
}
