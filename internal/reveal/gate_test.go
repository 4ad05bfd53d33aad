package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/wanderwise/internal/clock"
)

func TestGate_LatchesAtThreshold(t *testing.T) {
	g := New(0.5)
	assert.False(t, g.Observe(0.2))
	assert.False(t, g.Visible())

	assert.True(t, g.Observe(0.5), "opening call reports true")
	assert.True(t, g.Visible())

	assert.False(t, g.Observe(0.9), "already open")
	assert.False(t, g.Observe(0))
	assert.True(t, g.Visible(), "not intersecting does not revert the latch")
}

func TestGate_ThresholdClamped(t *testing.T) {
	assert.InDelta(t, 0.0, New(-1).Threshold(), 1e-9)
	assert.InDelta(t, 1.0, New(3).Threshold(), 1e-9)

	zero := New(0)
	assert.False(t, zero.Observe(0), "nothing visible never opens")
	assert.True(t, zero.Observe(0.01))

	full := New(1)
	assert.False(t, full.Observe(0.99))
	assert.True(t, full.Observe(1))
}

func TestGate_OnRevealRunsOnce(t *testing.T) {
	g := New(0.1)
	calls := 0
	g.OnReveal(func() { calls++ })

	g.Observe(0.05)
	assert.Equal(t, 0, calls)
	g.Observe(0.2)
	g.Observe(0.3)
	assert.Equal(t, 1, calls)

	late := 0
	g.OnReveal(func() { late++ })
	assert.Equal(t, 1, late, "registering on an open gate runs immediately")
}

func TestGate_RunsEveryHandler(t *testing.T) {
	g := New(0.5)
	var order []string
	first, second := 0, 0
	g.OnReveal(func() { first++; order = append(order, "first") })
	g.OnReveal(func() { second++; order = append(order, "second") })

	require.True(t, g.Observe(1))
	g.Observe(1)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestGate_SharedByCounterAndStagger(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	g := New(0.5)
	started := false
	g.OnReveal(func() { started = true })
	s := NewStagger(fc, 3, 200*time.Millisecond, nil)
	s.Attach(g)

	require.True(t, g.Observe(0.6))
	assert.True(t, started)
	assert.Equal(t, 1, s.Shown())

	fc.Advance(400 * time.Millisecond)
	assert.Equal(t, 3, s.Shown())
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name                                    string
		elemTop, elemHeight, viewTop, viewHeight int
		want                                    float64
	}{
		{name: "fully inside", elemTop: 10, elemHeight: 5, viewTop: 0, viewHeight: 40, want: 1},
		{name: "below view", elemTop: 50, elemHeight: 10, viewTop: 0, viewHeight: 40, want: 0},
		{name: "above view", elemTop: 0, elemHeight: 10, viewTop: 10, viewHeight: 40, want: 0},
		{name: "half at bottom edge", elemTop: 35, elemHeight: 10, viewTop: 0, viewHeight: 40, want: 0.5},
		{name: "taller than view", elemTop: 0, elemHeight: 100, viewTop: 20, viewHeight: 25, want: 0.25},
		{name: "empty element", elemTop: 5, elemHeight: 0, viewTop: 0, viewHeight: 40, want: 0},
		{name: "empty view", elemTop: 5, elemHeight: 5, viewTop: 0, viewHeight: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.elemTop, tt.elemHeight, tt.viewTop, tt.viewHeight), 1e-9)
		})
	}
}

func TestStagger_RevealsInOrder(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	var seen []int
	s := NewStagger(fc, 6, 200*time.Millisecond, func(n int) { seen = append(seen, n) })
	g := New(0.1)
	s.Attach(g)

	fc.Advance(time.Second)
	assert.Equal(t, 0, s.Shown(), "nothing before the gate opens")

	require.True(t, g.Observe(0.5))
	assert.Equal(t, 1, s.Shown())

	fc.Advance(200 * time.Millisecond)
	assert.Equal(t, 2, s.Shown())

	fc.Advance(time.Second)
	assert.Equal(t, 6, s.Shown())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seen)
	assert.Equal(t, 0, fc.Pending())
}

func TestStagger_StopCancels(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	s := NewStagger(fc, 4, 200*time.Millisecond, nil)
	s.Start()
	fc.Advance(200 * time.Millisecond)
	s.Stop()

	assert.Equal(t, 0, fc.Pending())
	fc.Advance(time.Minute)
	assert.Equal(t, 2, s.Shown())

	s.Start()
	assert.Equal(t, 2, s.Shown())
}

func TestStagger_ZeroStepShowsAll(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	s := NewStagger(fc, 3, 0, nil)
	s.Start()
	assert.Equal(t, 3, s.Shown())
	assert.Equal(t, 0, fc.Pending())
}
