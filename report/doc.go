// SPDX-License-Identifier: MIT

// Package report turns grouping and query results into numbers and
// human-readable console text.
//
// Summarize condenses a components.Partition; WriteSummary and
// WriteComponents print it. Compare and WriteComparison render the
// per-feature table of a most-similar query. Nothing here affects the
// computation; writers only format.
package report
