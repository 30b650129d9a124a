// SPDX-License-Identifier: MIT

// Package components partitions an undirected relation into connected
// components ("similarity groups").
//
// Two interchangeable methods produce the same canonical Partition:
//
//   - MethodUnionFind: one pass over the edges with a DisjointSet
//     (path compression + union by rank). O(N + E·α(N)).
//   - MethodBFS: breadth-first flood from every unvisited vertex
//     in ascending order. O(N + E).
//
// Canonical form:
//
//   - members of every component are sorted ascending;
//   - components are ordered by their smallest member;
//   - every vertex in [0, N) belongs to exactly one component, so an
//     isolated vertex forms a singleton component.
//
// Any type with Len and ForEachNeighbor is a Graph; *similarity.Adjacency
// satisfies it directly.
package components
