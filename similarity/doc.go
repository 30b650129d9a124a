// SPDX-License-Identifier: MIT

// Package similarity decides which feature vectors are "similar" and builds the
// resulting Adjacency Relation over a whole collection.
//
// Similarity predicate:
//
//	count = |{ k : |a_k − b_k| ≤ Tolerance }|
//	similar ⇔ count / D > MinFraction        (strict)
//
// Defaults: Tolerance = 0.2, MinFraction = 0.7 ("more than 70% of features
// within 0.2"). MinFraction is a fraction in [0,1); it is unrelated to the
// trim percentage of package distance.
//
// Adjacency:
//
//   - One roaring bitmap of neighbor indices per vertex; symmetric and
//     irreflexive by construction (AddEdge rejects self-loops and mirrors).
//   - Build evaluates every unordered pair i<j exactly once. Rows are handed
//     to a bounded errgroup pool; a worker only writes the upper-triangle
//     bitmap of the rows it owns, and a final single-threaded pass mirrors
//     them, so no two goroutines ever touch the same bitmap.
//
// Complexity:
//
//   - Build: O(N²·D) comparisons, O(N + E) memory for the relation.
//   - HasEdge/AddEdge: O(log deg) amortized; Neighbors: O(deg).
package similarity
