// SPDX-License-Identifier: MIT

// Package pipeline wires the library packages into the three workflows of
// the simgraph command:
//
//   - Generate: synthesize a collection and save it as CSV.
//   - Group:    load or generate, build the similarity relation, find
//     components, print the summary.
//   - Similar:  load or generate, find the nearest vector to a target,
//     print the per-feature comparison.
//
// Config carries mapstructure tags so it can be filled by viper. Every stage
// is timed with a stopwatch and reported through the Runner's logrus logger.
package pipeline
