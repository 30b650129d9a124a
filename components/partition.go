// SPDX-License-Identifier: MIT

package components

import "fmt"

// Partition is the canonical set of connected components of a graph.
type Partition struct {
	comps [][]int
	label []int // vertex -> component index
}

// NewPartition builds a canonical Partition of n vertices from arbitrary groups.
// Vertices not mentioned become singletons. A vertex listed twice or outside
// [0, n) yields ErrIndexOutOfRange.
func NewPartition(n int, groups [][]int) (*Partition, error) {
	ds := NewDisjointSet(n)
	seen := make([]bool, n)
	for gi, grp := range groups {
		for _, v := range grp {
			if v < 0 || v >= n || seen[v] {
				return nil, fmt.Errorf("NewPartition: group %d vertex %d: %w", gi, v, ErrIndexOutOfRange)
			}
			seen[v] = true
			ds.Union(grp[0], v)
		}
	}

	return fromDisjointSet(ds), nil
}

// Len returns the number of components.
func (p *Partition) Len() int { return len(p.comps) }

// Vertices returns the number of vertices covered.
func (p *Partition) Vertices() int { return len(p.label) }

// Components returns all components; callers must not modify them.
func (p *Partition) Components() [][]int { return p.comps }

// ComponentOf returns the index of the component holding vertex i.
func (p *Partition) ComponentOf(i int) (int, error) {
	if i < 0 || i >= len(p.label) {
		return 0, fmt.Errorf("ComponentOf(%d): %w", i, ErrIndexOutOfRange)
	}

	return p.label[i], nil
}

// Sizes returns the size of every component, in component order.
func (p *Partition) Sizes() []int {
	out := make([]int, len(p.comps))
	for k, c := range p.comps {
		out[k] = len(c)
	}

	return out
}

// NonTrivial returns the components with at least two members.
func (p *Partition) NonTrivial() [][]int {
	var out [][]int
	for _, c := range p.comps {
		if len(c) > 1 {
			out = append(out, c)
		}
	}

	return out
}

// Isolated returns the vertices that are alone in their component, ascending.
func (p *Partition) Isolated() []int {
	var out []int
	for _, c := range p.comps {
		if len(c) == 1 {
			out = append(out, c[0])
		}
	}

	return out
}

// Grouped returns the number of vertices in non-trivial components.
func (p *Partition) Grouped() int {
	n := 0
	for _, c := range p.comps {
		if len(c) > 1 {
			n += len(c)
		}
	}

	return n
}
