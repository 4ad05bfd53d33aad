package counter

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/wanderwise/internal/clock"
)

const (
	statsDuration = 2000 * time.Millisecond
	statsSteps    = 60
)

func newFake() *clock.Fake { return clock.NewFake(time.Unix(0, 0)) }

func TestFrames_Integer(t *testing.T) {
	frames := Frames(50000, statsSteps, false)
	require.Len(t, frames, statsSteps)
	prev := 0.0
	for i, v := range frames {
		assert.GreaterOrEqual(t, v, prev, "frame %d decreased", i)
		assert.LessOrEqual(t, v, 50000.0)
		assert.Equal(t, float64(int64(v)), v, "integer frames are whole numbers")
		prev = v
	}
	assert.Equal(t, 50000.0, frames[len(frames)-1])
	assert.Equal(t, 833.0, frames[0])
}

func TestFrames_Decimal(t *testing.T) {
	frames := Frames(4.9, statsSteps, true)
	require.Len(t, frames, statsSteps)
	prev := 0.0
	for _, v := range frames {
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, 4.9)
		prev = v
	}
	assert.Equal(t, "4.9", Format(frames[len(frames)-1], true))
	assert.Equal(t, "0.1", Format(frames[0], true))
}

func TestFrames_DegenerateSteps(t *testing.T) {
	assert.Equal(t, []float64{25}, Frames(25, 0, false))
	assert.Equal(t, []float64{0, 0, 0}, Frames(0, 3, false))
}

func TestCounter_ProducesExactlyStepsUpdates(t *testing.T) {
	fc := newFake()
	var updates []Update
	c := New(fc, func(u Update) { updates = append(updates, u) })

	c.Start(Spec{Target: 50000, Duration: statsDuration, Steps: statsSteps})
	fc.Advance(10 * statsDuration)

	require.Len(t, updates, statsSteps)
	prev := 0.0
	for i, u := range updates {
		assert.Equal(t, i+1, u.Step)
		assert.GreaterOrEqual(t, u.Value, prev)
		assert.LessOrEqual(t, u.Value, 50000.0)
		assert.Equal(t, i == statsSteps-1, u.Done)
		prev = u.Value
	}
	assert.Equal(t, 50000.0, c.Value())
	assert.True(t, c.Done())
	assert.False(t, c.Running())
	assert.Equal(t, 0, fc.Pending())
}

func TestCounter_StepSpacing(t *testing.T) {
	fc := newFake()
	c := New(fc, nil)
	spec := Spec{Target: 200, Duration: statsDuration, Steps: statsSteps}
	c.Start(spec)

	fc.Advance(spec.Interval() - time.Nanosecond)
	assert.Equal(t, 0, c.Updates())
	fc.Advance(time.Nanosecond)
	assert.Equal(t, 1, c.Updates())
	assert.Equal(t, 3.0, c.Value())

	fc.Advance(statsDuration)
	assert.Equal(t, 200.0, c.Value())
	assert.InDelta(t, 1.0, c.Progress(), 1e-9)
}

func TestCounter_DecimalFinalValue(t *testing.T) {
	fc := newFake()
	var last Update
	c := New(fc, func(u Update) {
		assert.LessOrEqual(t, u.Value, 4.9)
		last = u
	})
	c.Start(Spec{Target: 4.9, Duration: statsDuration, Steps: statsSteps, Decimal: true})
	fc.Advance(statsDuration)

	assert.True(t, last.Done)
	assert.Equal(t, "4.9", strconv.FormatFloat(last.Value, 'f', -1, 64))
}

func TestCounter_StopCancelsPendingUpdates(t *testing.T) {
	fc := newFake()
	calls := 0
	c := New(fc, func(Update) { calls++ })
	c.Start(Spec{Target: 25, Duration: statsDuration, Steps: statsSteps})

	fc.Advance(statsDuration / 2)
	frozen := c.Value()
	seen := calls
	c.Stop()
	assert.Equal(t, 0, fc.Pending())

	fc.Advance(time.Minute)
	assert.Equal(t, seen, calls)
	assert.Equal(t, frozen, c.Value())
	assert.False(t, c.Done())
}

func TestCounter_TerminalStateIsIdempotent(t *testing.T) {
	fc := newFake()
	c := New(fc, nil)
	c.Start(Spec{Target: 25, Duration: statsDuration, Steps: statsSteps})
	fc.Advance(statsDuration)
	require.True(t, c.Done())

	c.Stop()
	fc.Advance(time.Hour)
	assert.Equal(t, 25.0, c.Value())
	assert.True(t, c.Done())
}

func TestCounter_RestartResets(t *testing.T) {
	fc := newFake()
	c := New(fc, nil)
	spec := Spec{Target: 25, Duration: statsDuration, Steps: statsSteps}
	c.Start(spec)
	fc.Advance(statsDuration / 2)

	c.Start(spec)
	assert.Equal(t, 0.0, c.Value())
	assert.Equal(t, 1, fc.Pending(), "restart replaces the pending update")

	fc.Advance(statsDuration)
	assert.Equal(t, 25.0, c.Value())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "50,000", Format(50000, false))
	assert.Equal(t, "833", Format(833, false))
	assert.Equal(t, "4.9", Format(4.9, true))
	assert.Equal(t, "0.0", Format(0, true))
}
