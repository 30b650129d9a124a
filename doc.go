// SPDX-License-Identifier: MIT

// Package simgraph groups feature vectors by pairwise similarity.
//
// A collection of N vectors of dimension D is turned into an undirected
// "similarity graph": two vectors are related when more than MinFraction of
// their features differ by at most Tolerance. The connected components of
// that graph are the similarity groups.
//
// Packages:
//
//	collection/   immutable N×D storage (gonum mat.Dense) and CSV load/save
//	generator/    seeded synthetic vectors, N(0,σ) clamped to [-1,1]
//	distance/     full and trimmed ("part") mean squared distance, nearest-row query
//	similarity/   similarity predicate and parallel relation build (roaring bitmaps)
//	components/   union-find and BFS connected components, canonical partitions
//	report/       summary statistics and console tables
//	stopwatch/    labelled stage timing
//	pipeline/     configurable generate / group / similar workflows
//	cmd/simgraph  command-line front end (pflag + viper, logrus)
//
// Quick start:
//
//	c, _ := generator.Generate(1001, 100, generator.WithSeed(1))
//	adj, _ := similarity.Build(ctx, c, similarity.DefaultCriteria())
//	part, _ := components.Find(adj)
//	fmt.Println(report.Summarize(part, adj.EdgeCount()))
package simgraph
