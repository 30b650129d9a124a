// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/simgraph/components"
	"github.com/katalvlaran/simgraph/distance"
	"github.com/katalvlaran/simgraph/generator"
	"github.com/katalvlaran/simgraph/similarity"
)

// DefaultOutput is the CSV file written by Generate when none is configured.
const DefaultOutput = "matrices.csv"

// DefaultTarget is the vector queried by Similar when none is configured.
const DefaultTarget = 875

// Config is the complete run configuration.
type Config struct {
	// Input is a CSV file to load. Empty means generate in memory.
	Input string `mapstructure:"input"`
	// Output is the CSV file Generate writes.
	Output string `mapstructure:"output"`
	// Target is the row index queried by Similar.
	Target int `mapstructure:"target"`

	Generate   GenerateConfig   `mapstructure:"generate"`
	Distance   DistanceConfig   `mapstructure:"distance"`
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Components ComponentsConfig `mapstructure:"components"`
	Log        LogConfig        `mapstructure:"log"`
}

// GenerateConfig controls synthetic data. Seed 0 seeds from the clock.
type GenerateConfig struct {
	Count     int     `mapstructure:"count"`
	Dim       int     `mapstructure:"dim"`
	Deviation float64 `mapstructure:"deviation"`
	Seed      int64   `mapstructure:"seed"`
}

// DistanceConfig selects the distance mode.
type DistanceConfig struct {
	Mode        string  `mapstructure:"mode"`
	TrimPercent float64 `mapstructure:"trim_percent"`
}

// SimilarityConfig holds the similarity thresholds. Workers 0 means GOMAXPROCS.
type SimilarityConfig struct {
	Tolerance   float64 `mapstructure:"tolerance"`
	MinFraction float64 `mapstructure:"min_fraction"`
	Workers     int     `mapstructure:"workers"`
}

// ComponentsConfig selects the component method.
type ComponentsConfig struct {
	Method string `mapstructure:"method"`
}

// LogConfig controls the logger built by NewLogger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig mirrors the package defaults of every stage.
func DefaultConfig() Config {
	dopts := distance.DefaultOptions()
	crit := similarity.DefaultCriteria()

	return Config{
		Output: DefaultOutput,
		Target: DefaultTarget,
		Generate: GenerateConfig{
			Count:     generator.DefaultCount,
			Dim:       generator.DefaultDim,
			Deviation: generator.DefaultDeviation,
		},
		Distance: DistanceConfig{
			Mode:        dopts.Mode.String(),
			TrimPercent: dopts.TrimPercent,
		},
		Similarity: SimilarityConfig{
			Tolerance:   crit.Tolerance,
			MinFraction: crit.MinFraction,
		},
		Components: ComponentsConfig{Method: components.MethodUnionFind},
		Log:        LogConfig{Level: "info", Format: "json"},
	}
}

// Validate reports every invalid field at once as a *multierror.Error.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Target < 0 {
		result = multierror.Append(result, fmt.Errorf("target: %d must be >= 0", c.Target))
	}
	if c.Generate.Count < 0 {
		result = multierror.Append(result, fmt.Errorf("generate.count: %d must be >= 0: %w", c.Generate.Count, generator.ErrBadSize))
	}
	if c.Generate.Dim < 1 {
		result = multierror.Append(result, fmt.Errorf("generate.dim: %d must be >= 1: %w", c.Generate.Dim, generator.ErrBadSize))
	}
	if !(c.Generate.Deviation > 0) || math.IsInf(c.Generate.Deviation, 0) {
		result = multierror.Append(result, fmt.Errorf("generate.deviation: %g must be finite and > 0", c.Generate.Deviation))
	}
	if _, err := c.DistanceOptions(); err != nil {
		result = multierror.Append(result, fmt.Errorf("distance: %w", err))
	}
	if err := c.Criteria().Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("similarity: %w", err))
	}
	if c.Similarity.Workers < 0 {
		result = multierror.Append(result, fmt.Errorf("similarity.workers: %d must be >= 0", c.Similarity.Workers))
	}
	if _, err := components.ParseMethod(c.Components.Method); err != nil {
		result = multierror.Append(result, fmt.Errorf("components.method: %w", err))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		result = multierror.Append(result, fmt.Errorf("log.format: %q must be json or text", c.Log.Format))
	}

	return result.ErrorOrNil()
}

// DistanceOptions converts the distance section.
func (c Config) DistanceOptions() (distance.Options, error) {
	mode, err := distance.ParseMode(c.Distance.Mode)
	if err != nil {
		return distance.Options{}, err
	}
	opts := distance.Options{Mode: mode, TrimPercent: c.Distance.TrimPercent}

	return opts, opts.Validate()
}

// Criteria converts the similarity section.
func (c Config) Criteria() similarity.Criteria {
	return similarity.Criteria{Tolerance: c.Similarity.Tolerance, MinFraction: c.Similarity.MinFraction}
}

// generatorOptions converts the generate section.
func (c Config) generatorOptions() []generator.Option {
	opts := []generator.Option{generator.WithDeviation(c.Generate.Deviation)}
	if c.Generate.Seed != 0 {
		opts = append(opts, generator.WithSeed(c.Generate.Seed))
	}

	return opts
}
