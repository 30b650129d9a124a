// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/simgraph/collection"
)

// Generate draws n feature vectors of dimension d.
//
// Each sample is rng.NormFloat64()·σ; a sample outside [-1, 1] becomes 0.
// Rows are filled in order 0..n-1 and features 0..d-1, so a fixed seed
// always yields the same collection.
//
// Errors: ErrBadSize when n < 0 or d < 1.
// Complexity: O(n·d) time and memory.
func Generate(n, d int, opts ...Option) (*collection.Collection, error) {
	if n < 0 {
		return nil, fmt.Errorf("Generate: n=%d < 0: %w", n, ErrBadSize)
	}
	if d < 1 {
		return nil, fmt.Errorf("Generate: d=%d < 1: %w", d, ErrBadSize)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n == 0 {
		return collection.New(nil)
	}

	buf := make([]float64, n*d)
	for k := range buf {
		buf[k] = clamp(rng.NormFloat64() * cfg.deviation)
	}

	c, err := collection.FromDense(mat.NewDense(n, d, buf))
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return c, nil
}

// clamp zeroes samples outside [lowerBound, upperBound].
func clamp(v float64) float64 {
	if v < lowerBound || v > upperBound {
		return 0
	}

	return v
}
