// SPDX-License-Identifier: MIT

package components

// DisjointSet is a union-find forest over 0..n-1.
// Find compresses paths by halving; Union attaches the lower-rank root.
type DisjointSet struct {
	parent []int
	rank   []uint8
	sets   int
}

// NewDisjointSet returns n singleton sets. Panics if n < 0.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		panic("components: NewDisjointSet: negative size")
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &DisjointSet{parent: parent, rank: make([]uint8, n), sets: n}
}

// Find returns the root of x's set.
func (s *DisjointSet) Find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were distinct.
func (s *DisjointSet) Union(x, y int) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.sets--

	return true
}

// Connected reports whether x and y share a set.
func (s *DisjointSet) Connected(x, y int) bool { return s.Find(x) == s.Find(y) }

// Sets returns the current number of disjoint sets.
func (s *DisjointSet) Sets() int { return s.sets }
