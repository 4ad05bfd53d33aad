package counter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanel_StartsOnceAndFinishes(t *testing.T) {
	fc := newFake()
	specs := []Spec{
		{Target: 50000, Duration: statsDuration, Steps: statsSteps},
		{Target: 200, Duration: statsDuration, Steps: statsSteps},
		{Target: 4.9, Duration: statsDuration, Steps: statsSteps, Decimal: true},
		{Target: 25, Duration: statsDuration, Steps: statsSteps},
	}
	var mu sync.Mutex
	perCounter := make(map[int]int)
	p := NewPanel(fc, specs, func(i int, _ Update) {
		mu.Lock()
		perCounter[i]++
		mu.Unlock()
	})
	require.Equal(t, 4, p.Len())
	assert.False(t, p.Started())

	require.True(t, p.Start())
	assert.False(t, p.Start(), "a panel animates once")

	fc.Advance(statsDuration)
	assert.True(t, p.Done())
	assert.Equal(t, []float64{50000, 200, 4.9, 25}, p.Values())
	for i := range specs {
		assert.Equal(t, statsSteps, perCounter[i], "counter %d", i)
		assert.InDelta(t, 1.0, p.Progress(i), 1e-9)
	}
}

func TestPanel_StopLeavesNoTimers(t *testing.T) {
	fc := newFake()
	p := NewPanel(fc, []Spec{
		{Target: 10, Duration: time.Second, Steps: 10},
		{Target: 20, Duration: time.Second, Steps: 10},
	}, nil)
	p.Start()
	fc.Advance(300 * time.Millisecond)
	p.Stop()

	assert.Equal(t, 0, fc.Pending())
	assert.False(t, p.Done())
	assert.Equal(t, []float64{3, 6}, p.Values())
	assert.Equal(t, 6.0, p.Value(1))
}
