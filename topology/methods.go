// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Node and edge lifecycle: AddNode/AddEdge plus read-only queries.
// Determinism:
//   - Nodes() and Edges() return insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package topology

import (
	"fmt"
	"math/cmplx"
)

// AddNode appends a node of the given kind.
//
// Steps:
//  1. Validate ID.
//  2. Lock mu, reject duplicates.
//  3. Append with Index = current node count.
//
// Complexity: O(1) amortized.
func (t *Topology) AddNode(id string, kind Kind) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.index[id]; ok {
		return fmt.Errorf("AddNode %q: %w", id, ErrDuplicateNode)
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{ID: id, Kind: kind, Index: idx})
	t.index[id] = idx

	return nil
}

// AddEdge adds the directed transition from → to with the given weight.
//
// AI-HINT:
//   - Both endpoints must already exist (ErrNodeNotFound otherwise).
//   - At most one edge per (from,to) pair; a dense transition matrix has one
//     cell per pair, so parallel edges are rejected with ErrDuplicateEdge.
//   - Self-loops are legal; absorbing targets use them.
//
// Complexity: O(1) amortized.
func (t *Topology) AddEdge(from, to string, weight complex128) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if !finite(weight) {
		return fmt.Errorf("AddEdge %q->%q: %w", from, to, ErrInvalidWeight)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	src, ok := t.index[from]
	if !ok {
		return fmt.Errorf("AddEdge: unknown node %q: %w", from, ErrNodeNotFound)
	}
	dst, ok := t.index[to]
	if !ok {
		return fmt.Errorf("AddEdge: unknown node %q: %w", to, ErrNodeNotFound)
	}
	key := [2]int{src, dst}
	if _, ok = t.pairs[key]; ok {
		return fmt.Errorf("AddEdge %q->%q: %w", from, to, ErrDuplicateEdge)
	}
	t.pairs[key] = len(t.edges)
	t.edges = append(t.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// Len returns the number of nodes.
func (t *Topology) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// EdgeCount returns the number of edges.
func (t *Topology) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// Index returns the position of node id, or ErrNodeNotFound.
func (t *Topology) Index(id string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx, ok := t.index[id]
	if !ok {
		return 0, fmt.Errorf("Index: unknown node %q: %w", id, ErrNodeNotFound)
	}

	return idx, nil
}

// Nodes returns a copy of the nodes in insertion order.
func (t *Topology) Nodes() []Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Edges returns a copy of the edges in insertion order.
func (t *Topology) Edges() []Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// IndicesOf returns the indices of all nodes of the given kind, ascending.
func (t *Topology) IndicesOf(kind Kind) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []int
	for _, n := range t.nodes {
		if n.Kind == kind {
			out = append(out, n.Index)
		}
	}

	return out
}

// EdgeIndices returns (from, to) matrix indices for e.
// Used by matrix adapters so they never touch the ID map directly.
func (t *Topology) EdgeIndices(e Edge) (from, to int, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var ok bool
	if from, ok = t.index[e.From]; !ok {
		return 0, 0, fmt.Errorf("EdgeIndices: unknown node %q: %w", e.From, ErrNodeNotFound)
	}
	if to, ok = t.index[e.To]; !ok {
		return 0, 0, fmt.Errorf("EdgeIndices: unknown node %q: %w", e.To, ErrNodeNotFound)
	}

	return from, to, nil
}

// finite reports whether neither component of w is NaN or ±Inf.
func finite(w complex128) bool {
	return !cmplx.IsNaN(w) && !cmplx.IsInf(w)
}
