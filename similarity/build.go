// SPDX-License-Identifier: MIT

package similarity

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simgraph/collection"
)

// Build evaluates Similar for every unordered pair i<j of c and returns the
// resulting relation. Rows are compared by a bounded pool of goroutines
// (WithWorkers, default GOMAXPROCS); the result does not depend on the pool size.
//
// Errors:
//   - ErrBadCriteria when crit is invalid.
//   - ctx.Err() when ctx is cancelled before all rows are compared.
//
// Complexity: O(N²·D) time, O(N + E) memory.
func Build(ctx context.Context, c *collection.Collection, crit Criteria, opts ...Option) (*Adjacency, error) {
	if err := crit.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuildConfig(opts...)

	n := c.Len()
	upper := make([]*roaring.Bitmap, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			upper[i] = similarRow(c, i, crit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Mirror the upper triangle into full rows.
	adj := &Adjacency{rows: upper}
	for _, row := range upper {
		adj.edges += int(row.GetCardinality())
	}
	for i := 0; i < n; i++ {
		upper[i].Iterate(func(x uint32) bool {
			if j := int(x); j > i {
				upper[j].Add(uint32(i))
			}
			return true
		})
	}

	return adj, nil
}

// similarRow returns {j > i : Similar(row_i, row_j)}.
func similarRow(c *collection.Collection, i int, crit Criteria) *roaring.Bitmap {
	row := roaring.New()
	a := c.RawRow(i)
	for j := i + 1; j < c.Len(); j++ {
		if Similar(a, c.RawRow(j), crit) {
			row.Add(uint32(j))
		}
	}

	return row
}
