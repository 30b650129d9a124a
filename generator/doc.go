// SPDX-License-Identifier: MIT

// Package generator produces synthetic Matrix Collections: N feature vectors of
// dimension D whose values are drawn from N(0, σ) and clamped to [-1, 1]
// (samples outside the interval are replaced by 0, not saturated).
//
// Options follow the functional style used across the module:
//
//	c, err := generator.Generate(1001, 100,
//		generator.WithDeviation(0.195),
//		generator.WithSeed(42),
//	)
//
// Determinism: with WithSeed or WithRand the output is a pure function of
// (n, d, σ, seed). Without either, a seed is taken from the wall clock.
package generator
