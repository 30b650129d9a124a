// SPDX-License-Identifier: MIT

package components

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod indicates a method name other than MethodUnionFind or MethodBFS.
var ErrUnknownMethod = errors.New("components: unknown method")

// ErrIndexOutOfRange indicates a vertex outside [0, N).
var ErrIndexOutOfRange = errors.New("components: vertex index out of range")

// MethodUnionFind selects the disjoint-set pass over edges.
const MethodUnionFind = "union-find"

// MethodBFS selects breadth-first flooding.
const MethodBFS = "bfs"

// Graph is the read-only view Find needs: vertices are 0..Len()-1 and
// ForEachNeighbor enumerates the neighbors of i until fn returns false.
// The relation is assumed symmetric.
type Graph interface {
	Len() int
	ForEachNeighbor(i int, fn func(j int) bool)
}

// Options configures Find. Use DefaultOptions for union-find.
type Options struct {
	Method string
}

// Option mutates Options.
type Option func(*Options)

// WithMethod sets the algorithm; validated by Find.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Method = MethodUnionFind.
func DefaultOptions() Options {
	return Options{Method: MethodUnionFind}
}

// ParseMethod normalizes a user supplied method name.
// Accepts "union-find", "unionfind", "uf" and "bfs" (case-insensitive).
func ParseMethod(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "union-find", "unionfind", "uf":
		return MethodUnionFind, nil
	case "bfs":
		return MethodBFS, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}
