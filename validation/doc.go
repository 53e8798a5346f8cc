// SPDX-License-Identifier: MIT

// Package validation runs the reference checks of the double-slit models and
// reports pass/fail counts.
//
// A Check is a named function returning nil on success. A Suite runs every
// check in isolation: an error or panic fails that check only, and the run
// always continues. Results keep registration order regardless of how many
// checks run concurrently (WithParallel).
//
// ReferenceChecks builds the standard set from a Config:
//
//	probabilistic_system  two classical steps put 1/3 on each target, mass conserved
//	quantum_system        two quantum steps give P[4]=2/3, P[3]=P[5]=0, total in (0.5, 0.9)
//	wave_simulation       normalized pattern, bright centre, at least one dark fringe
//	matrix_properties     classical column sums are non-negative and equal 1
//	information_entropy   uniform(3) gives log2 3 bits, one-hot gives 0
//	determinism           repeated runs are identical
//
// Configuration is YAML (LoadConfig) overlaid on DefaultConfig.
package validation
