// SPDX-License-Identifier: MIT

// Package topology describes the directed multi-path systems evolved by slitsim.
//
// What & Why:
//
//	A slit system is a layered directed graph: one Source node, S Slit nodes and
//	T Target nodes. Every edge carries a complex128 weight, so the same description
//	feeds both the classical (real, non-negative weights) and the quantum
//	(complex amplitudes with phases) transition matrices.
//
//	       ┌──► slit-1 ──┬──► target-0
//	source ┤             ├──► target-1
//	       └──► slit-2 ──┴──► target-2
//
//	Targets are absorbing by default (self-loop of weight 1), which keeps the
//	probability mass on the screen once it arrives.
//
// Determinism:
//
//	Nodes and edges are stored in insertion order; builders insert them in a fixed
//	order (source, slits ascending, targets ascending), so node indices are stable
//	and equal matrix row/column indices.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - node ID already present.
//	ErrNodeNotFound   - edge endpoint does not exist.
//	ErrDuplicateEdge  - an edge from→to already exists.
//	ErrInvalidWeight  - NaN or ±Inf in either weight component.
//	ErrTooFewSlits    - builder asked for fewer than one slit.
//	ErrTooFewTargets  - builder asked for fewer than one target.
package topology
