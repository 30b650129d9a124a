// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Adjacency is a symmetric, irreflexive relation over vertex indices [0, n).
// Each vertex owns one roaring bitmap of its neighbors.
// Vertex ids are stored as uint32, which bounds n by math.MaxUint32.
type Adjacency struct {
	rows  []*roaring.Bitmap
	edges int
}

// NewAdjacency returns an empty relation over n vertices. Panics if n < 0.
func NewAdjacency(n int) *Adjacency {
	if n < 0 {
		panic(fmt.Sprintf("similarity: NewAdjacency(%d): negative size", n))
	}
	rows := make([]*roaring.Bitmap, n)
	for i := range rows {
		rows[i] = roaring.New()
	}

	return &Adjacency{rows: rows}
}

// Len returns the number of vertices.
func (a *Adjacency) Len() int { return len(a.rows) }

// EdgeCount returns the number of unordered pairs {i, j} in the relation.
func (a *Adjacency) EdgeCount() int { return a.edges }

func (a *Adjacency) check(i int) error {
	if i < 0 || i >= len(a.rows) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", i, len(a.rows), ErrIndexOutOfRange)
	}

	return nil
}

// AddEdge relates i and j in both directions. Adding an existing edge is a no-op.
// Errors: ErrSelfLoop, ErrIndexOutOfRange.
func (a *Adjacency) AddEdge(i, j int) error {
	if err := a.check(i); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if err := a.check(j); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if i == j {
		return fmt.Errorf("AddEdge: vertex %d: %w", i, ErrSelfLoop)
	}
	if a.rows[i].CheckedAdd(uint32(j)) {
		a.rows[j].Add(uint32(i))
		a.edges++
	}

	return nil
}

// HasEdge reports whether i and j are related. Out-of-range indices yield false.
func (a *Adjacency) HasEdge(i, j int) bool {
	if a.check(i) != nil || a.check(j) != nil {
		return false
	}

	return a.rows[i].Contains(uint32(j))
}

// Degree returns the number of neighbors of i (0 when i is out of range).
func (a *Adjacency) Degree(i int) int {
	if a.check(i) != nil {
		return 0
	}

	return int(a.rows[i].GetCardinality())
}

// Neighbors returns the neighbors of i in ascending order.
func (a *Adjacency) Neighbors(i int) ([]int, error) {
	if err := a.check(i); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}
	out := make([]int, 0, a.rows[i].GetCardinality())
	a.rows[i].Iterate(func(x uint32) bool {
		out = append(out, int(x))
		return true
	})

	return out, nil
}

// ForEachNeighbor calls fn for every neighbor of i in ascending order until fn
// returns false. Out-of-range i visits nothing.
func (a *Adjacency) ForEachNeighbor(i int, fn func(j int) bool) {
	if a.check(i) != nil {
		return
	}
	a.rows[i].Iterate(func(x uint32) bool {
		return fn(int(x))
	})
}

// Edges lists every unordered pair once as [i, j] with i < j, ordered by i then j.
func (a *Adjacency) Edges() [][2]int {
	out := make([][2]int, 0, a.edges)
	for i, row := range a.rows {
		row.Iterate(func(x uint32) bool {
			if j := int(x); j > i {
				out = append(out, [2]int{i, j})
			}
			return true
		})
	}

	return out
}
