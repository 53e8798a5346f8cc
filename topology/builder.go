// SPDX-License-Identifier: MIT
// File: builder.go
// Role: slit-system constructors (NewSlitSystem, ClassicalDoubleSlit, QuantumDoubleSlit).
//
// Contract:
//   - slits ≥ 1 (else ErrTooFewSlits), targets ≥ 1 (else ErrTooFewTargets).
//   - Nodes are inserted source, slits ascending, targets ascending; so the
//     reference double slit has indices 0 / 1..2 / 3..5.
//   - Edges are emitted source→slit[i] for each i, then slit[i]→target[j]
//     in (i, j) ascending order, then target self-loops when absorbing.
//   - Weight policy:
//       classical  source→slit = 1/S,   slit→target = 1/T
//       amplitudes source→slit = 1/√S,  slit→target = phase(i,j)/√T
//
// Determinism:
//   - No randomness; identical arguments produce identical topologies.

package topology

import (
	"fmt"
	"math"
	"strconv"
)

const (
	methodSlitSystem = "NewSlitSystem"
	minSlits         = 1
	minTargets       = 1

	// Reference double-slit shape.
	doubleSlitSlits   = 2
	doubleSlitTargets = 3
)

// IDFn names the i-th node (0-based within its layer) of the given kind.
type IDFn func(kind Kind, i int) string

// DefaultIDFn yields "source", "slit-1".."slit-S" and "target-0".."target-(T-1)".
func DefaultIDFn(kind Kind, i int) string {
	switch kind {
	case Source:
		return "source"
	case Slit:
		return "slit-" + strconv.Itoa(i+1)
	default:
		return "target-" + strconv.Itoa(i)
	}
}

// PhaseFn returns the factor applied to the slit→target amplitude.
// slit and target are 0-based within their layers.
type PhaseFn func(slit, target int) complex128

type builderConfig struct {
	idFn       IDFn
	phaseFn    PhaseFn
	amplitudes bool
	absorbing  bool
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{
		idFn:      DefaultIDFn,
		absorbing: true,
	}
}

// BuilderOption customizes NewSlitSystem.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("topology: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithAmplitudes switches the weight policy from probabilities (1/S, 1/T)
// to amplitudes (1/√S, 1/√T).
func WithAmplitudes() BuilderOption {
	return func(c *builderConfig) { c.amplitudes = true }
}

// WithPhaseFn multiplies every slit→target weight by fn(slit, target).
// Panics on nil.
func WithPhaseFn(fn PhaseFn) BuilderOption {
	if fn == nil {
		panic("topology: WithPhaseFn(nil)")
	}
	return func(c *builderConfig) { c.phaseFn = fn }
}

// WithAbsorbingTargets controls whether targets get a weight-1 self-loop.
// Default true.
func WithAbsorbingTargets(on bool) BuilderOption {
	return func(c *builderConfig) { c.absorbing = on }
}

// NewSlitSystem builds a source → slits → targets topology.
//
// Implementation:
//   - Stage 1: validate counts.
//   - Stage 2: insert nodes layer by layer.
//   - Stage 3: emit branching edges with the configured weight policy.
//   - Stage 4: emit absorbing self-loops.
//
// Complexity: O(S·T).
func NewSlitSystem(slits, targets int, opts ...BuilderOption) (*Topology, error) {
	if slits < minSlits {
		return nil, fmt.Errorf("%s: slits=%d: %w", methodSlitSystem, slits, ErrTooFewSlits)
	}
	if targets < minTargets {
		return nil, fmt.Errorf("%s: targets=%d: %w", methodSlitSystem, targets, ErrTooFewTargets)
	}
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := New(WithCapacity(1 + slits + targets))

	src := cfg.idFn(Source, 0)
	slitIDs := make([]string, slits)
	targetIDs := make([]string, targets)

	if err := t.AddNode(src, Source); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSlitSystem, err)
	}
	var i, j int
	for i = 0; i < slits; i++ {
		slitIDs[i] = cfg.idFn(Slit, i)
		if err := t.AddNode(slitIDs[i], Slit); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSlitSystem, err)
		}
	}
	for j = 0; j < targets; j++ {
		targetIDs[j] = cfg.idFn(Target, j)
		if err := t.AddNode(targetIDs[j], Target); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSlitSystem, err)
		}
	}

	toSlit, toTarget := branchWeights(slits, targets, cfg.amplitudes)

	for i = 0; i < slits; i++ {
		if err := t.AddEdge(src, slitIDs[i], toSlit); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSlitSystem, err)
		}
	}
	var w complex128
	for i = 0; i < slits; i++ {
		for j = 0; j < targets; j++ {
			w = toTarget
			if cfg.phaseFn != nil {
				w *= cfg.phaseFn(i, j)
			}
			if err := t.AddEdge(slitIDs[i], targetIDs[j], w); err != nil {
				return nil, fmt.Errorf("%s: %w", methodSlitSystem, err)
			}
		}
	}
	if cfg.absorbing {
		for j = 0; j < targets; j++ {
			if err := t.AddEdge(targetIDs[j], targetIDs[j], 1); err != nil {
				return nil, fmt.Errorf("%s: %w", methodSlitSystem, err)
			}
		}
	}

	return t, nil
}

// branchWeights returns the uniform source→slit and slit→target weights.
func branchWeights(slits, targets int, amplitudes bool) (toSlit, toTarget complex128) {
	s, tg := float64(slits), float64(targets)
	if amplitudes {
		return complex(1/math.Sqrt(s), 0), complex(1/math.Sqrt(tg), 0)
	}

	return complex(1/s, 0), complex(1/tg, 0)
}

// ClassicalDoubleSlit returns the reference probabilistic topology:
// source splits 1/2 into two slits, each slit splits 1/3 into three
// absorbing targets.
func ClassicalDoubleSlit() *Topology {
	t, err := NewSlitSystem(doubleSlitSlits, doubleSlitTargets)
	if err != nil {
		// Fixed arguments are always valid.
		panic(err)
	}

	return t
}

// DoubleSlitPhase is the reference interference pattern: slit-1 reaches
// target-0 and slit-2 reaches target-2 with a flipped sign, so those targets
// cancel and target-1 reinforces.
func DoubleSlitPhase(slit, target int) complex128 {
	switch {
	case slit == 0 && target == 0:
		return -1
	case slit == 1 && target == doubleSlitTargets-1:
		return -1
	default:
		return 1
	}
}

// QuantumDoubleSlit returns the reference amplitude topology (1/√2 into the
// slits, ±1/√3 onto the targets with DoubleSlitPhase signs).
func QuantumDoubleSlit() *Topology {
	t, err := NewSlitSystem(doubleSlitSlits, doubleSlitTargets,
		WithAmplitudes(),
		WithPhaseFn(DoubleSlitPhase),
	)
	if err != nil {
		panic(err)
	}

	return t
}
