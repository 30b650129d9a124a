// SPDX-License-Identifier: MIT

package stopwatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/stopwatch"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func TestStopwatch_Laps(t *testing.T) {
	sw := stopwatch.New(stopwatch.WithClock(fakeClock(time.Second)))
	assert.False(t, sw.Running())

	sw.Start("load")
	assert.True(t, sw.Running())
	lap, err := sw.Lap("build")
	require.NoError(t, err)
	assert.Equal(t, "load", lap.Label)
	assert.Equal(t, time.Second, lap.Duration)

	lap, err = sw.Stop()
	require.NoError(t, err)
	assert.Equal(t, "build", lap.Label)
	assert.Equal(t, time.Second, lap.Duration)
	assert.False(t, sw.Running())

	laps := sw.Laps()
	require.Len(t, laps, 2)
	assert.Equal(t, laps[0].Started.Add(laps[0].Duration), laps[1].Started)
	assert.Equal(t, 2*time.Second, sw.Total())
}

func TestStopwatch_RestartClosesOpenStage(t *testing.T) {
	sw := stopwatch.New(stopwatch.WithClock(fakeClock(time.Millisecond)))
	sw.Start("a")
	sw.Start("b")
	_, err := sw.Stop()
	require.NoError(t, err)

	laps := sw.Laps()
	require.Len(t, laps, 2)
	assert.Equal(t, "a", laps[0].Label)
	assert.Equal(t, "b", laps[1].Label)
}

func TestStopwatch_NotRunning(t *testing.T) {
	sw := stopwatch.New()
	_, err := sw.Lap("x")
	assert.ErrorIs(t, err, stopwatch.ErrNotRunning)
	_, err = sw.Stop()
	assert.ErrorIs(t, err, stopwatch.ErrNotRunning)
	assert.Zero(t, sw.Total())
	assert.Empty(t, sw.Laps())

	assert.Panics(t, func() { stopwatch.WithClock(nil) })
}
