// Package slitsim models the double-slit experiment three ways and measures
// the information in the outcome.
//
// What is inside?
//
//   - Topology: source → slits → screen targets, with real or complex edge weights
//   - Matrix views: column-oriented transition matrices built from a topology
//   - Probabilistic evolution: s_{k+1} = M·s_k, total mass conserved
//   - Quantum evolution: a_{k+1} = M·a_k, P_i = |a_i|², interference visible
//   - Wave optics: two point sources, normalized intensity on a screen
//   - Entropy: Shannon entropy of the resulting distributions, in bits
//
// Packages:
//
//	topology/   — nodes, edges, and the double-slit builders
//	matrix/     — Dense / CDense, validators, MatVec, topology adapters
//	evolve/     — Probabilistic, Quantum, trajectories, conservation check
//	wave/       — Params, Compute, Pattern
//	entropy/    — Shannon, Uniform, OneHot, MaxBits
//	validation/ — reference checks, Suite, YAML Config
//	cmd/slitsim — the command-line front end
//
// Quick start:
//
//	t := topology.ClassicalDoubleSlit()
//	m, _ := matrix.FromTopology(t)
//	s0, _ := evolve.Basis(t.Len(), 0)
//	s, _ := evolve.Probabilistic(m, s0, 2) // targets hold 1/3 each
//
// Core packages are synchronous, allocate fresh results, and keep no state
// between calls; identical inputs give identical outputs.
package slitsim
