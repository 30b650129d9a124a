// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/simgraph/collection"
)

// Evaluator computes distances with validated Options and a reusable scratch
// buffer. Create one per goroutine.
type Evaluator struct {
	opts    Options
	scratch []float64
}

// NewEvaluator validates opts and returns an Evaluator.
// Errors: ErrUnknownMode, ErrBadTrimPercent.
func NewEvaluator(opts Options) (*Evaluator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}

	return &Evaluator{opts: opts}, nil
}

// Options returns the evaluator's configuration.
func (e *Evaluator) Options() Options { return e.opts }

// Between returns the distance between a and b.
//
// Implementation:
//  1. diff = a - b into the scratch buffer (grown once, then reused).
//  2. Full: Σ diff² / D.
//  3. Part: |diff| sorted ascending, Σ of the first k squares / k.
//
// Errors: ErrDimensionMismatch when len(a) != len(b) or either is empty.
func (e *Evaluator) Between(a, b []float64) (float64, error) {
	d := len(a)
	if d == 0 || d != len(b) {
		return 0, fmt.Errorf("Between: len(a)=%d, len(b)=%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	if cap(e.scratch) < d {
		e.scratch = make([]float64, d)
	}
	diff := e.scratch[:d]
	floats.SubTo(diff, a, b)

	if e.opts.Mode == Full {
		return floats.Dot(diff, diff) / float64(d), nil
	}

	for i, v := range diff {
		diff[i] = math.Abs(v)
	}
	sort.Float64s(diff)
	kept := diff[:keepCount(e.opts.TrimPercent, d)]

	return floats.Dot(kept, kept) / float64(len(kept)), nil
}

// Distance returns the distance between rows i and j of c.
// i == j is allowed and yields 0.
// Errors: wrapped collection.ErrIndexOutOfRange, plus NewEvaluator errors.
func (e *Evaluator) Distance(c *collection.Collection, i, j int) (float64, error) {
	if err := c.CheckIndex(i); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}
	if err := c.CheckIndex(j); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}

	return e.Between(c.RawRow(i), c.RawRow(j))
}

// Between is a one-shot helper around NewEvaluator + Evaluator.Between.
func Between(a, b []float64, opts Options) (float64, error) {
	ev, err := NewEvaluator(opts)
	if err != nil {
		return 0, err
	}

	return ev.Between(a, b)
}

// Distance is a one-shot helper around NewEvaluator + Evaluator.Distance.
func Distance(c *collection.Collection, i, j int, opts Options) (float64, error) {
	ev, err := NewEvaluator(opts)
	if err != nil {
		return 0, err
	}

	return ev.Distance(c, i, j)
}

// MostSimilar returns the row of c closest to row target (target itself is
// excluded). Ties resolve to the lowest index.
//
// Errors:
//   - ErrNoCandidates when c has fewer than two rows.
//   - wrapped collection.ErrIndexOutOfRange for a bad target.
//   - NewEvaluator errors for invalid opts.
//
// Complexity: O(N·D log D) in Part mode, O(N·D) in Full mode.
func MostSimilar(c *collection.Collection, target int, opts Options) (Match, error) {
	if c.Len() < 2 {
		return Match{}, fmt.Errorf("MostSimilar: collection has %d rows: %w", c.Len(), ErrNoCandidates)
	}
	if err := c.CheckIndex(target); err != nil {
		return Match{}, fmt.Errorf("MostSimilar: %w", err)
	}
	ev, err := NewEvaluator(opts)
	if err != nil {
		return Match{}, fmt.Errorf("MostSimilar: %w", err)
	}

	best := Match{Index: -1, Distance: math.Inf(1)}
	ref := c.RawRow(target)
	for j := 0; j < c.Len(); j++ {
		if j == target {
			continue
		}
		dist, err := ev.Between(ref, c.RawRow(j))
		if err != nil {
			return Match{}, fmt.Errorf("MostSimilar: row %d: %w", j, err)
		}
		if best.Index < 0 || dist < best.Distance {
			best = Match{Index: j, Distance: dist}
		}
	}

	return best, nil
}
