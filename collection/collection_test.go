// SPDX-License-Identifier: MIT

package collection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/simgraph/collection"
)

// TestNew_Shape verifies dimensions, default labels and row views.
func TestNew_Shape(t *testing.T) {
	c, err := collection.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, "0", c.Label(0))
	assert.Equal(t, "1", c.Label(1))
	assert.Equal(t, "", c.Label(2), "out-of-range label is empty")

	row, err := c.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	assert.Equal(t, []float64{1, 2, 3}, c.RawRow(0))
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]float64{{1, 1}, {2, 2}}
	c, err := collection.New(in)
	require.NoError(t, err)

	in[0][0] = 99
	assert.Equal(t, 1.0, c.RawRow(0)[0])
}

// TestNew_Empty covers the legal N=0 collection.
func TestNew_Empty(t *testing.T) {
	c, err := collection.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Dim())
	assert.Nil(t, c.Dense())

	_, err = c.Row(0)
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
}

// TestNew_Errors is a table of construction failures matched by sentinel.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		rows   [][]float64
		want   error
	}{
		{"ragged", nil, [][]float64{{1, 2}, {3}}, collection.ErrRagged},
		{"no features", nil, [][]float64{{}, {}}, collection.ErrEmptyVector},
		{"nan", nil, [][]float64{{1, math.NaN()}}, collection.ErrNaNInf},
		{"inf", nil, [][]float64{{math.Inf(-1), 0}}, collection.ErrNaNInf},
		{"labels", []string{"a"}, [][]float64{{1}, {2}}, collection.ErrLabelCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := collection.NewWithLabels(tc.labels, tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCheckIndex checks both bounds.
func TestCheckIndex(t *testing.T) {
	c, err := collection.New([][]float64{{0}, {1}, {2}})
	require.NoError(t, err)

	assert.NoError(t, c.CheckIndex(0))
	assert.NoError(t, c.CheckIndex(2))
	assert.ErrorIs(t, c.CheckIndex(-1), collection.ErrIndexOutOfRange)
	assert.ErrorIs(t, c.CheckIndex(3), collection.ErrIndexOutOfRange)
}

// TestFromDense wraps a gonum matrix and copies it.
func TestFromDense(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	c, err := collection.FromDense(m)
	require.NoError(t, err)

	m.Set(0, 0, -1)
	assert.Equal(t, []float64{1, 2}, c.RawRow(0))
	assert.Equal(t, []float64{3, 4}, c.RawRow(1))

	empty, err := collection.FromDense(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
