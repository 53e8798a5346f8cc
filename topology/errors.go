// SPDX-License-Identifier: MIT

package topology

import "errors"

// Sentinel errors for topology construction.
var (
	// ErrEmptyNodeID indicates that the provided node has an empty ID.
	ErrEmptyNodeID = errors.New("topology: node ID is empty")

	// ErrDuplicateNode indicates a node with the same ID was already added.
	ErrDuplicateNode = errors.New("topology: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("topology: node not found")

	// ErrDuplicateEdge indicates an edge with the same endpoints already exists.
	ErrDuplicateEdge = errors.New("topology: duplicate edge")

	// ErrInvalidWeight indicates a NaN or infinite weight component.
	ErrInvalidWeight = errors.New("topology: invalid edge weight")

	// ErrTooFewSlits indicates a slit system with no slits was requested.
	ErrTooFewSlits = errors.New("topology: slit count must be >= 1")

	// ErrTooFewTargets indicates a slit system with no targets was requested.
	ErrTooFewTargets = errors.New("topology: target count must be >= 1")
)
