// SPDX-License-Identifier: MIT

package stopwatch

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotRunning is returned by Lap and Stop when no stage is open.
var ErrNotRunning = errors.New("stopwatch: not running")

// Lap is one closed stage.
type Lap struct {
	Label    string
	Started  time.Time
	Duration time.Duration
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("stopwatch: WithClock(nil)")
	}
	return func(s *Stopwatch) {
		s.now = now
	}
}

// Stopwatch records labelled stages. Not safe for concurrent use.
type Stopwatch struct {
	now     func() time.Time
	running bool
	label   string
	started time.Time
	laps    []Lap
}

// New returns a stopped Stopwatch.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens a stage. A stage already open is closed first and recorded.
func (s *Stopwatch) Start(label string) {
	if s.running {
		s.close()
	}
	s.running = true
	s.label = label
	s.started = s.now()
}

// Lap closes the open stage and opens next.
func (s *Stopwatch) Lap(next string) (Lap, error) {
	if !s.running {
		return Lap{}, fmt.Errorf("Lap(%q): %w", next, ErrNotRunning)
	}
	lap := s.close()
	s.running = true
	s.label = next
	s.started = lap.Started.Add(lap.Duration)

	return lap, nil
}

// Stop closes the open stage.
func (s *Stopwatch) Stop() (Lap, error) {
	if !s.running {
		return Lap{}, fmt.Errorf("Stop: %w", ErrNotRunning)
	}

	return s.close(), nil
}

// Running reports whether a stage is open.
func (s *Stopwatch) Running() bool { return s.running }

// Laps returns a copy of the closed stages in order.
func (s *Stopwatch) Laps() []Lap { return append([]Lap(nil), s.laps...) }

// Total is the sum of all closed stages.
func (s *Stopwatch) Total() time.Duration {
	var d time.Duration
	for _, l := range s.laps {
		d += l.Duration
	}

	return d
}

func (s *Stopwatch) close() Lap {
	lap := Lap{Label: s.label, Started: s.started, Duration: s.now().Sub(s.started)}
	s.laps = append(s.laps, lap)
	s.running = false

	return lap
}
