// SPDX-License-Identifier: MIT

// Package wave computes the two-source interference pattern on a 1-D screen.
//
// Model:
//
//	Two coherent point sources (slits) sit at y = ∓d/2 on the source line; the
//	screen is a line at perpendicular distance L. For each of N equally spaced
//	screen points y in [-w/2, +w/2]:
//
//	  r_s = √(L² + (y - y_s)²)          path length from slit s
//	  a_s = exp(i·k·r_s) / r_s           spherical-wave amplitude, k = 2π/λ
//	  I(y) = |a_1 + a_2|²                unnormalized intensity
//
//	The pattern is then divided by its maximum, so the brightest sample is 1.
//
// Domain:
//
//	Every length must be positive and finite (ScreenWidth may be 0) and
//	NumPoints >= 2. L > 0 guarantees r > 0; a zero path length is still checked
//	at evaluation time and reported as ErrDomain rather than dividing by zero.
//
// Concurrency:
//
//	Points are independent. WithWorkers splits them into contiguous chunks
//	evaluated by an errgroup; the result is bit-identical to the serial path.
package wave
