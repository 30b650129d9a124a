// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for distance evaluation.
var (
	// ErrUnknownMode indicates a Mode other than Full or Part.
	ErrUnknownMode = errors.New("distance: unknown mode")

	// ErrBadTrimPercent indicates TrimPercent outside (0, 100] in Part mode.
	ErrBadTrimPercent = errors.New("distance: trim percent must be in (0,100]")

	// ErrDimensionMismatch indicates vectors of different (or zero) length.
	ErrDimensionMismatch = errors.New("distance: dimension mismatch")

	// ErrNoCandidates indicates a most-similar query with nothing to compare against.
	ErrNoCandidates = errors.New("distance: no comparison candidates")
)

// Mode selects the distance formula.
type Mode int

const (
	// Full averages the squared differences of all features.
	Full Mode = iota

	// Part averages the squared differences of the closest TrimPercent of features.
	Part
)

// Mode names as accepted by ParseMode and printed by String.
const (
	nameFull = "full"
	namePart = "part"
)

// String returns "full", "part" or "Mode(n)".
func (m Mode) String() string {
	switch m {
	case Full:
		return nameFull
	case Part:
		return namePart
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "full" / "part" (case-insensitive, surrounding blanks ignored)
// to a Mode. Anything else yields ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameFull:
		return Full, nil
	case namePart:
		return Part, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// DefaultTrimPercent keeps the closest 70% of features in Part mode.
const DefaultTrimPercent = 70.0

// Options configures the distance.
//
// Fields:
//   - Mode        Full or Part.
//   - TrimPercent percentage of features kept in Part mode, in (0, 100].
//     Ignored in Full mode.
type Options struct {
	Mode        Mode
	TrimPercent float64
}

// DefaultOptions returns Part mode with DefaultTrimPercent.
func DefaultOptions() Options {
	return Options{Mode: Part, TrimPercent: DefaultTrimPercent}
}

// Validate reports ErrUnknownMode or ErrBadTrimPercent.
func (o Options) Validate() error {
	switch o.Mode {
	case Full:
		return nil
	case Part:
		if !(o.TrimPercent > 0 && o.TrimPercent <= 100) {
			return fmt.Errorf("TrimPercent=%g: %w", o.TrimPercent, ErrBadTrimPercent)
		}
		return nil
	default:
		return fmt.Errorf("%v: %w", o.Mode, ErrUnknownMode)
	}
}

// keepCount returns k = ceil(percent·d/100) clamped to [1, d].
func keepCount(percent float64, d int) int {
	k := int(math.Ceil(percent * float64(d) / 100))
	if k < 1 {
		return 1
	}
	if k > d {
		return d
	}

	return k
}

// Match is the result of a most-similar query.
type Match struct {
	Index    int     // row index of the nearest other vector
	Distance float64 // its distance to the target
}
