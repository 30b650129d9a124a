// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"

	"github.com/katalvlaran/simgraph/collection"
)

// CountWithin returns how many features satisfy |a_k − b_k| ≤ tol.
// Only the common prefix is compared when lengths differ.
func CountWithin(a, b []float64, tol float64) int {
	if len(b) < len(a) {
		a = a[:len(b)]
	}
	b = b[:len(a)]

	count := 0
	for k, x := range a {
		d := x - b[k]
		if d <= tol && -d <= tol {
			count++
		}
	}

	return count
}

// Similar applies the predicate to two vectors of equal length D ≥ 1.
// Vectors of different or zero length are never similar.
func Similar(a, b []float64, crit Criteria) bool {
	d := len(a)
	if d == 0 || d != len(b) {
		return false
	}

	return float64(CountWithin(a, b, crit.Tolerance))/float64(d) > crit.MinFraction
}

// IsSimilar applies the predicate to rows i and j of c.
// Errors: ErrBadCriteria, wrapped collection.ErrIndexOutOfRange.
func IsSimilar(c *collection.Collection, i, j int, crit Criteria) (bool, error) {
	if err := crit.Validate(); err != nil {
		return false, fmt.Errorf("IsSimilar: %w", err)
	}
	if err := c.CheckIndex(i); err != nil {
		return false, fmt.Errorf("IsSimilar: %w", err)
	}
	if err := c.CheckIndex(j); err != nil {
		return false, fmt.Errorf("IsSimilar: %w", err)
	}

	return Similar(c.RawRow(i), c.RawRow(j), crit), nil
}
