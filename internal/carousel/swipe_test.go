package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPower(t *testing.T) {
	assert.InDelta(t, 7500.0, Power(50, 150), 1e-9)
	assert.InDelta(t, 12000.0, Power(-80, 150), 1e-9)
	assert.InDelta(t, -12000.0, Power(80, -150), 1e-9)
}

func TestRotator_Swipe(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		velocity  float64
		wantMoved bool
		wantIndex int
	}{
		{name: "below threshold", offset: 50, velocity: 150, wantMoved: false, wantIndex: 0},
		{name: "below threshold leftwards", offset: -50, velocity: -150, wantMoved: false, wantIndex: 0},
		{name: "fling right goes back", offset: 80, velocity: 150, wantMoved: true, wantIndex: 4},
		{name: "fling left goes forward", offset: -80, velocity: -150, wantMoved: true, wantIndex: 1},
		{name: "exactly at threshold", offset: 100, velocity: 100, wantMoved: false, wantIndex: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var changes []Change
			r := New([]int{1, 2, 3, 4, 5}, WithOnChange(func(c Change) { changes = append(changes, c) }))

			moved := r.Swipe(tt.offset, tt.velocity, DefaultSwipeThreshold)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantIndex, r.Index())
			if tt.wantMoved {
				require.Len(t, changes, 1)
				assert.Equal(t, CauseSwipe, changes[0].Cause)
			} else {
				assert.Empty(t, changes)
			}
		})
	}
}

func TestDragTracker_OffsetAndVelocity(t *testing.T) {
	d := NewDragTracker(8)
	t0 := time.Unix(0, 0)

	d.Press(20, t0)
	require.True(t, d.Active())
	d.Move(15, t0.Add(20*time.Millisecond))
	assert.InDelta(t, -40.0, d.Offset(), 1e-9)

	offset, velocity := d.Release(10, t0.Add(50*time.Millisecond))
	assert.False(t, d.Active())
	assert.InDelta(t, -80.0, offset, 1e-9)
	// 80 px over 50 ms.
	assert.InDelta(t, -1600.0, velocity, 1e-6)
	assert.Less(t, Power(offset, velocity), -float64(DefaultSwipeThreshold))
}

func TestDragTracker_VelocityUsesTrailingWindow(t *testing.T) {
	d := NewDragTracker(1)
	t0 := time.Unix(0, 0)

	d.Press(0, t0)
	d.Move(100, t0.Add(time.Second))
	// Held still long enough that the early movement leaves the window.
	d.Move(100, t0.Add(2*time.Second))

	offset, velocity := d.Release(100, t0.Add(2*time.Second+50*time.Millisecond))
	assert.InDelta(t, 100.0, offset, 1e-9)
	assert.InDelta(t, 0.0, velocity, 1e-9)
}

func TestDragTracker_IgnoresMovesWithoutPress(t *testing.T) {
	d := NewDragTracker(0)
	d.Move(5, time.Unix(0, 0))
	offset, velocity := d.Release(5, time.Unix(1, 0))
	assert.Zero(t, offset)
	assert.Zero(t, velocity)

	d.Press(1, time.Unix(0, 0))
	d.Cancel()
	assert.False(t, d.Active())
	assert.Zero(t, d.Offset())
}
