// SPDX-License-Identifier: MIT

package collection_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/collection"
)

// TestReadCSV_Basic parses labels and features.
func TestReadCSV_Basic(t *testing.T) {
	in := "0,0.10,-0.20,0.30\n1,1.00,0.00,-1.00\n"
	c, err := collection.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, "1", c.Label(1))
	assert.InDeltaSlice(t, []float64{0.1, -0.2, 0.3}, c.RawRow(0), 1e-12)
}

// TestReadCSV_Empty returns an empty collection for empty input.
func TestReadCSV_Empty(t *testing.T) {
	c, err := collection.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

// TestReadCSV_Malformed rejects bad numbers and uneven rows.
func TestReadCSV_Malformed(t *testing.T) {
	cases := map[string]string{
		"not a number": "0,0.1,abc\n",
		"uneven rows":  "0,0.1,0.2\n1,0.3\n",
		"bare quote":   "0,\"0.1,0.2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := collection.ReadCSV(strings.NewReader(in))
			assert.ErrorIs(t, err, collection.ErrMalformedCSV)
		})
	}

	// label column only: parses, but there are no features
	_, err := collection.ReadCSV(strings.NewReader("a\nb\n"))
	assert.ErrorIs(t, err, collection.ErrEmptyVector)
}

// TestWriteCSV_Format checks two-decimal output without a header.
func TestWriteCSV_Format(t *testing.T) {
	c, err := collection.NewWithLabels([]string{"7", "8"}, [][]float64{{0.123, -0.5}, {1, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, collection.WriteCSV(&buf, c))
	assert.Equal(t, "7,0.12,-0.50\n8,1.00,0.00\n", buf.String())
}

// TestSaveLoad_RoundTrip writes to disk and reads back to two decimals.
func TestSaveLoad_RoundTrip(t *testing.T) {
	c, err := collection.New([][]float64{{0.111, 0.999}, {-0.444, 0.5}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "matrices.csv")
	require.NoError(t, collection.Save(path, c))

	got, err := collection.Load(path)
	require.NoError(t, err)
	require.Equal(t, c.Len(), got.Len())
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, c.Label(i), got.Label(i))
		assert.InDeltaSlice(t, c.RawRow(i), got.RawRow(i), 0.005+1e-12)
	}
}

// TestLoad_Missing surfaces the filesystem error.
func TestLoad_Missing(t *testing.T) {
	_, err := collection.Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
