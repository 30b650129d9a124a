// SPDX-License-Identifier: MIT

package components

import (
	"fmt"
	"sort"
)

// Find partitions g into connected components.
//
// Errors: ErrUnknownMethod for an unrecognised Options.Method.
//
// Complexity: O(N + E·α(N)) for union-find, O(N + E) for BFS; O(N) extra memory.
func Find(g Graph, opts ...Option) (*Partition, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodUnionFind:
		return unionFind(g), nil
	case MethodBFS:
		return breadthFirst(g), nil
	default:
		return nil, fmt.Errorf("Find: method %q: %w", o.Method, ErrUnknownMethod)
	}
}

func unionFind(g Graph) *Partition {
	n := g.Len()
	ds := NewDisjointSet(n)
	for i := 0; i < n; i++ {
		g.ForEachNeighbor(i, func(j int) bool {
			if j > i && j < n {
				ds.Union(i, j)
			}
			return true
		})
	}

	return fromDisjointSet(ds)
}

// fromDisjointSet labels vertices by set. Ascending i makes the first visit of
// each root its smallest member, so components come out in canonical order.
func fromDisjointSet(ds *DisjointSet) *Partition {
	n := len(ds.parent)
	label := make([]int, n)
	slot := make(map[int]int, ds.Sets())
	var comps [][]int
	for i := 0; i < n; i++ {
		r := ds.Find(i)
		k, ok := slot[r]
		if !ok {
			k = len(comps)
			slot[r] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], i)
		label[i] = k
	}

	return &Partition{comps: comps, label: label}
}

func breadthFirst(g Graph) *Partition {
	n := g.Len()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	var comps [][]int
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		k := len(comps)
		label[s] = k
		queue = append(queue[:0], s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			g.ForEachNeighbor(u, func(v int) bool {
				if v >= 0 && v < n && label[v] < 0 {
					label[v] = k
					queue = append(queue, v)
				}
				return true
			})
		}
		comp := append([]int(nil), queue...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return &Partition{comps: comps, label: label}
}
