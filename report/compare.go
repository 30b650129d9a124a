// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrDimensionMismatch indicates vectors of different length.
var ErrDimensionMismatch = errors.New("report: vector dimensions differ")

// FeatureRow is one line of a comparison table.
type FeatureRow struct {
	Given, Similar, Diff float64
	Within               bool // Diff <= tolerance
}

// Comparison is the per-feature view of two vectors.
type Comparison struct {
	Tolerance float64
	Rows      []FeatureRow
	Within    int // rows with Within set
}

// Compare lines up a and b feature by feature.
func Compare(a, b []float64, tol float64) (Comparison, error) {
	if len(a) != len(b) {
		return Comparison{}, fmt.Errorf("Compare: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	cmp := Comparison{Tolerance: tol, Rows: make([]FeatureRow, len(a))}
	for k := range a {
		d := math.Abs(a[k] - b[k])
		row := FeatureRow{Given: a[k], Similar: b[k], Diff: d, Within: d <= tol}
		if row.Within {
			cmp.Within++
		}
		cmp.Rows[k] = row
	}

	return cmp, nil
}

// WriteComparison prints the query header, the table and the count of
// features within tolerance.
func WriteComparison(w io.Writer, given, similar int, dist float64, cmp Comparison) error {
	ew := &errWriter{w: w}
	ew.printf("Given vector: %d\n", given)
	ew.printf("Similar vector: %d (distance %.6f)\n", similar, dist)
	ew.printf("\nGiven :Similar:  Diff : d<=%g\n", cmp.Tolerance)
	ew.printf("-----------------------------\n")
	for _, r := range cmp.Rows {
		mark := ""
		if r.Within {
			mark = "+"
		}
		ew.printf("%5.2f : %5.2f : %5.2f : %s\n", r.Given, r.Similar, r.Diff, mark)
	}
	ew.printf("\nCount of similar features = %d\n", cmp.Within)

	return ew.err
}
