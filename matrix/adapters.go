// SPDX-License-Identifier: MIT
// Package matrix — topology → transition-matrix adapters.
//
// Contract:
//   - Matrix order n = topology node count; index = node insertion index.
//   - Edge from→to with weight w is written to cell (to, from), so M·x moves
//     mass (or amplitude) along edge direction.
//   - At most one edge per pair exists (the topology enforces it), so no
//     overwrite policy is needed.
//
// AI-Hints:
//   - Use FromTopology for probabilistic systems; it refuses complex weights
//     instead of silently dropping the imaginary part.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/slitsim/topology"
)

const (
	opFromTopology        = "FromTopology"
	opComplexFromTopology = "ComplexFromTopology"
)

// ErrNilTopology indicates a nil *topology.Topology argument.
var ErrNilTopology = fmt.Errorf("%w: topology", ErrNilMatrix)

// FromTopology builds the real n×n transition matrix of t.
//
// Errors:
//   - ErrNilTopology, ErrInvalidDimensions (empty topology),
//     ErrComplexWeight (imag(w) != 0), lookup errors from topology.
//
// Complexity: O(n^2 + E).
func FromTopology(t *topology.Topology) (*Dense, error) {
	if t == nil {
		return nil, matrixErrorf(opFromTopology, ErrNilTopology)
	}
	n := t.Len()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opFromTopology, err)
	}
	var from, to int
	for _, e := range t.Edges() {
		if imag(e.Weight) != 0 {
			return nil, matrixErrorf(opFromTopology,
				fmt.Errorf("edge %q->%q weight %v: %w", e.From, e.To, e.Weight, ErrComplexWeight))
		}
		if from, to, err = t.EdgeIndices(e); err != nil {
			return nil, matrixErrorf(opFromTopology, err)
		}
		if err = m.Set(to, from, real(e.Weight)); err != nil {
			return nil, matrixErrorf(opFromTopology, err)
		}
	}

	return m, nil
}

// ComplexFromTopology builds the complex n×n amplitude matrix of t.
// Errors: ErrNilTopology, ErrInvalidDimensions, lookup errors from topology.
// Complexity: O(n^2 + E).
func ComplexFromTopology(t *topology.Topology) (*CDense, error) {
	if t == nil {
		return nil, matrixErrorf(opComplexFromTopology, ErrNilTopology)
	}
	n := t.Len()
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opComplexFromTopology, err)
	}
	var from, to int
	for _, e := range t.Edges() {
		if from, to, err = t.EdgeIndices(e); err != nil {
			return nil, matrixErrorf(opComplexFromTopology, err)
		}
		if err = m.Set(to, from, e.Weight); err != nil {
			return nil, matrixErrorf(opComplexFromTopology, err)
		}
	}

	return m, nil
}
