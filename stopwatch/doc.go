// SPDX-License-Identifier: MIT

// Package stopwatch measures consecutive labelled stages of a run.
//
// A Stopwatch is an ordinary value owned by its caller; there is no package
// state. Start opens a stage, Lap closes it and opens the next, Stop closes
// the last one. Closed stages are kept as Laps in order.
//
//	sw := stopwatch.New()
//	sw.Start("load")
//	...
//	lap, _ := sw.Lap("build")
//	...
//	lap, _ = sw.Stop()
package stopwatch
