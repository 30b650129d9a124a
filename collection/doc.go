// SPDX-License-Identifier: MIT

// Package collection holds the Matrix Collection: an ordered, immutable set of
// N fixed-length feature vectors ("matrices") of dimension D.
//
// What:
//
//   - Collection stores all vectors row-major in a single gonum *mat.Dense,
//     so row i is a contiguous []float64 view (no per-row allocation).
//   - Every row carries a label (the first CSV column, or its decimal index).
//   - ReadCSV / WriteCSV (and Load / Save for files) move collections in and
//     out of the delimited text format used by the generator and the CLI.
//
// Why:
//
//   - Pairwise analysis is O(N²·D); the distance and similarity kernels walk
//     raw row views directly, so the storage layout matters more than the API.
//
// Invariants:
//
//   - All rows have the same dimension D ≥ 1 (a collection with N = 0 is legal).
//   - Values are finite; NaN and ±Inf are rejected at construction time.
//   - Nothing mutates a Collection after New returns; RawRow views MUST be
//     treated as read-only by callers.
//
// Errors:
//
//   - ErrRagged          rows have differing lengths.
//   - ErrEmptyVector     N > 0 but D = 0.
//   - ErrNaNInf          a value is NaN or ±Inf.
//   - ErrLabelCount      label count differs from row count.
//   - ErrIndexOutOfRange row index outside [0, N).
//   - ErrMalformedCSV    input text could not be parsed as a collection.
//
// Complexity:
//
//   - New: O(N·D) time and memory (deep copy). Row/RawRow/Label: O(1).
//   - ReadCSV / WriteCSV: O(N·D).
package collection
