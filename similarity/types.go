// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Sentinel errors for the similarity package.
var (
	// ErrBadCriteria indicates a negative/non-finite Tolerance or a MinFraction outside [0,1).
	ErrBadCriteria = errors.New("similarity: invalid criteria")

	// ErrSelfLoop indicates an attempt to relate a vertex to itself.
	ErrSelfLoop = errors.New("similarity: self-loop not allowed")

	// ErrIndexOutOfRange indicates a vertex index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("similarity: vertex index out of range")
)

// Default thresholds.
const (
	DefaultTolerance   = 0.2
	DefaultMinFraction = 0.7
)

// Criteria holds the similarity thresholds.
//   - Tolerance:   maximum absolute per-feature difference that still "agrees".
//   - MinFraction: the share of agreeing features must strictly exceed this.
type Criteria struct {
	Tolerance   float64
	MinFraction float64
}

// DefaultCriteria returns Tolerance=0.2, MinFraction=0.7.
func DefaultCriteria() Criteria {
	return Criteria{Tolerance: DefaultTolerance, MinFraction: DefaultMinFraction}
}

// Validate reports ErrBadCriteria with the offending field.
func (c Criteria) Validate() error {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("Tolerance=%g must be finite and >= 0: %w", c.Tolerance, ErrBadCriteria)
	}
	if !(c.MinFraction >= 0 && c.MinFraction < 1) {
		return fmt.Errorf("MinFraction=%g must be in [0,1): %w", c.MinFraction, ErrBadCriteria)
	}

	return nil
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	workers int
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers bounds the number of goroutines comparing rows.
// 1 gives a fully sequential build. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("similarity: WithWorkers(%d): need at least one worker", n))
	}
	return func(c *buildConfig) {
		c.workers = n
	}
}
