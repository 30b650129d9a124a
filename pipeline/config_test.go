// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/components"
	"github.com/katalvlaran/simgraph/distance"
	"github.com/katalvlaran/simgraph/generator"
	"github.com/katalvlaran/simgraph/pipeline"
	"github.com/katalvlaran/simgraph/similarity"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, generator.DefaultCount, cfg.Generate.Count)
	assert.Equal(t, generator.DefaultDim, cfg.Generate.Dim)
	assert.Equal(t, "part", cfg.Distance.Mode)
	assert.Equal(t, components.MethodUnionFind, cfg.Components.Method)

	opts, err := cfg.DistanceOptions()
	require.NoError(t, err)
	assert.Equal(t, distance.DefaultOptions(), opts)
	assert.Equal(t, similarity.DefaultCriteria(), cfg.Criteria())
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Target = -1
	cfg.Generate.Count = -1
	cfg.Generate.Dim = 0
	cfg.Generate.Deviation = 0
	cfg.Distance.Mode = "manhattan"
	cfg.Similarity.MinFraction = 1
	cfg.Similarity.Workers = -2
	cfg.Components.Method = "dfs"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 10)
	assert.ErrorIs(t, err, distance.ErrUnknownMode)
	assert.ErrorIs(t, err, similarity.ErrBadCriteria)
	assert.ErrorIs(t, err, components.ErrUnknownMethod)
	assert.ErrorIs(t, err, generator.ErrBadSize)
}

func TestConfig_BadTrimPercent(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Distance.TrimPercent = 0
	assert.ErrorIs(t, cfg.Validate(), distance.ErrBadTrimPercent)

	// Full mode ignores the trim percentage.
	cfg.Distance.Mode = "FULL"
	assert.NoError(t, cfg.Validate())
}
