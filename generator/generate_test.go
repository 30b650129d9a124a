// SPDX-License-Identifier: MIT

package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/generator"
)

// TestGenerate_ShapeAndRange checks dimensions and the clamp interval.
func TestGenerate_ShapeAndRange(t *testing.T) {
	c, err := generator.Generate(50, 20, generator.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 50, c.Len())
	assert.Equal(t, 20, c.Dim())

	for i := 0; i < c.Len(); i++ {
		for _, v := range c.RawRow(i) {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

// TestGenerate_Deterministic verifies that equal seeds give equal collections.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := generator.Generate(10, 8, generator.WithSeed(42), generator.WithDeviation(0.3))
	require.NoError(t, err)
	b, err := generator.Generate(10, 8, generator.WithRand(rand.New(rand.NewSource(42))), generator.WithDeviation(0.3))
	require.NoError(t, err)

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.RawRow(i), b.RawRow(i), "row %d", i)
	}
}

// TestGenerate_OutliersZeroed uses a huge σ so most samples leave [-1,1];
// they must become exactly 0, never ±1.
func TestGenerate_OutliersZeroed(t *testing.T) {
	c, err := generator.Generate(20, 50, generator.WithSeed(7), generator.WithDeviation(100))
	require.NoError(t, err)

	zeros := 0
	for i := 0; i < c.Len(); i++ {
		for _, v := range c.RawRow(i) {
			if v == 0 {
				zeros++
			}
		}
	}
	// P(|N(0,100)| ≤ 1) ≈ 0.008, so nearly all of the 1000 samples are zeroed.
	assert.Greater(t, zeros, 900)
}

// TestGenerate_Errors covers invalid sizes and the empty collection.
func TestGenerate_Errors(t *testing.T) {
	_, err := generator.Generate(-1, 10, generator.WithSeed(1))
	assert.ErrorIs(t, err, generator.ErrBadSize)

	_, err = generator.Generate(10, 0, generator.WithSeed(1))
	assert.ErrorIs(t, err, generator.ErrBadSize)

	c, err := generator.Generate(0, 10, generator.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

// TestOptions_Panics ensures option constructors reject nonsense early.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { generator.WithDeviation(0) })
	assert.Panics(t, func() { generator.WithDeviation(-1) })
	assert.Panics(t, func() { generator.WithRand(nil) })
}
