// SPDX-License-Identifier: MIT

package collection

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Collection is an immutable set of N feature vectors of dimension D.
//   - data holds the vectors row-major (nil when N == 0, gonum forbids 0×D).
//   - labels[i] identifies row i in reports and CSV output.
type Collection struct {
	n, d   int
	data   *mat.Dense
	labels []string
}

// New builds a Collection from rows, deep-copying them.
// Labels default to the decimal row index ("0", "1", ...).
//
// Errors: ErrRagged, ErrEmptyVector, ErrNaNInf (wrapped with the offending position).
// Complexity: O(N·D) time and memory.
func New(rows [][]float64) (*Collection, error) {
	return NewWithLabels(nil, rows)
}

// NewWithLabels is New with explicit row labels. A nil labels slice selects
// the default index labels; otherwise len(labels) must equal len(rows).
func NewWithLabels(labels []string, rows [][]float64) (*Collection, error) {
	if labels != nil && len(labels) != len(rows) {
		return nil, fmt.Errorf("NewWithLabels: %d labels for %d rows: %w", len(labels), len(rows), ErrLabelCount)
	}

	n := len(rows)
	if n == 0 {
		return &Collection{labels: []string{}}, nil
	}

	d := len(rows[0])
	if d == 0 {
		return nil, fmt.Errorf("NewWithLabels: row 0: %w", ErrEmptyVector)
	}

	buf := make([]float64, 0, n*d)
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("NewWithLabels: row %d has %d features, want %d: %w", i, len(row), d, ErrRagged)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewWithLabels: row %d feature %d: %w", i, j, ErrNaNInf)
			}
		}
		buf = append(buf, row...)
	}

	lbl := make([]string, n)
	if labels == nil {
		for i := range lbl {
			lbl[i] = strconv.Itoa(i)
		}
	} else {
		copy(lbl, labels)
	}

	return &Collection{
		n:      n,
		d:      d,
		data:   mat.NewDense(n, d, buf),
		labels: lbl,
	}, nil
}

// FromDense wraps a copy of m as a Collection with default labels.
// Returns ErrNaNInf if m holds non-finite values.
func FromDense(m *mat.Dense) (*Collection, error) {
	if m == nil || m.IsEmpty() {
		return &Collection{labels: []string{}}, nil
	}
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = m.RawRowView(i)
	}

	return New(rows)
}

// Len returns the number of feature vectors N.
func (c *Collection) Len() int { return c.n }

// Dim returns the number of features per vector D (0 for an empty collection).
func (c *Collection) Dim() int { return c.d }

// CheckIndex reports ErrIndexOutOfRange (wrapped with the index) when i ∉ [0, N).
func (c *Collection) CheckIndex(i int) error {
	if i < 0 || i >= c.n {
		return fmt.Errorf("index %d not in [0,%d): %w", i, c.n, ErrIndexOutOfRange)
	}

	return nil
}

// Row returns a read-only view of feature vector i.
func (c *Collection) Row(i int) ([]float64, error) {
	if err := c.CheckIndex(i); err != nil {
		return nil, fmt.Errorf("Row: %w", err)
	}

	return c.data.RawRowView(i), nil
}

// RawRow returns the view of row i without bounds reporting; it panics on a
// bad index like any slice access. Intended for validated hot loops.
func (c *Collection) RawRow(i int) []float64 {
	return c.data.RawRowView(i)
}

// Label returns the label of row i, or "" when i is out of range.
func (c *Collection) Label(i int) string {
	if i < 0 || i >= c.n {
		return ""
	}

	return c.labels[i]
}

// Dense returns the underlying gonum matrix (nil for an empty collection).
// The matrix is shared; callers must not modify it.
func (c *Collection) Dense() *mat.Dense {
	return c.data
}
