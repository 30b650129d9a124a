// SPDX-License-Identifier: MIT

// Package distance computes a robust dissimilarity score between two feature
// vectors of equal length D.
//
// Modes:
//
//   - Full: mean of squared element-wise differences over all D features.
//   - Part: absolute differences are sorted ascending and only the smallest
//     k = ceil(TrimPercent·D/100) are kept; the score is their mean square.
//     A minority of outlier features cannot dominate the score, while a
//     strong majority of features still has to agree for it to be small.
//
// Usage:
//
//	ev, err := distance.NewEvaluator(distance.Options{Mode: distance.Part, TrimPercent: 70})
//	d, err := ev.Between(a, b)
//
// Guarantees:
//
//   - d ≥ 0, and d == 0 iff every kept difference is zero.
//   - Symmetric: Between(a,b) == Between(b,a) in both modes.
//   - Part ≤ Full for the same pair (the largest differences are discarded).
//
// Errors:
//
//   - ErrUnknownMode       unrecognized Mode (never silently 0).
//   - ErrBadTrimPercent    TrimPercent outside (0, 100].
//   - ErrDimensionMismatch vectors of different length, or empty vectors.
//   - ErrNoCandidates      MostSimilar on a collection with fewer than two rows.
//
// Performance:
//
//   - Full: O(D) time, no allocation.
//   - Part: O(D log D) time; the Evaluator reuses one scratch buffer, so there
//     is no allocation per pair. An Evaluator is NOT safe for concurrent use.
package distance
