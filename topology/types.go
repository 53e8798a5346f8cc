// SPDX-License-Identifier: MIT

package topology

import "sync"

// Kind classifies a node by the layer it belongs to.
type Kind int

const (
	// Source is the single emitter node (index 0 in builder output).
	Source Kind = iota

	// Slit is an intermediate node between the source and the screen.
	Slit

	// Target is a terminal (screen) node.
	Target
)

// String returns a short lower-case label for k.
func (k Kind) String() string {
	switch k {
	case Source:
		return "source"
	case Slit:
		return "slit"
	case Target:
		return "target"
	default:
		return "unknown"
	}
}

// Node is a vertex of the topology.
//
// ID uniquely identifies the node; Index is its position in insertion order and
// therefore its row/column in any matrix built from the topology.
type Node struct {
	ID    string
	Kind  Kind
	Index int
}

// Edge is a directed, weighted transition From → To.
//
// Weight is complex so that one description can carry both a classical
// probability (imaginary part 0) and a quantum amplitude with phase.
type Edge struct {
	From   string
	To     string
	Weight complex128
}

// Option configures a Topology before creation.
type Option func(t *Topology)

// WithCapacity pre-sizes internal storage for n nodes.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("topology: WithCapacity: n must be >= 0")
	}
	return func(t *Topology) { t.capHint = n }
}

// Topology is an ordered set of nodes plus directed weighted edges.
//
// mu guards nodes, index and edges; the type is safe for concurrent reads
// after construction and for concurrent mutation during construction.
type Topology struct {
	mu sync.RWMutex

	capHint int

	nodes []Node         // insertion order
	index map[string]int // node ID → position in nodes
	edges []Edge         // insertion order
	pairs map[[2]int]int // (from,to) → position in edges
}

// New creates an empty Topology.
// Complexity: O(1) plus the capacity hint allocation.
func New(opts ...Option) *Topology {
	t := &Topology{}
	for _, opt := range opts {
		opt(t)
	}
	t.nodes = make([]Node, 0, t.capHint)
	t.index = make(map[string]int, t.capHint)
	t.edges = make([]Edge, 0, t.capHint)
	t.pairs = make(map[[2]int]int, t.capHint)

	return t
}
