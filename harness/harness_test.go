package harness_test

import (
	"testing"
	"time"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
	"github.com/stretchr/testify/assert"
)

// recurse is a toy recursive search instrumented with h, used to exercise
// step/call/depth bookkeeping the way a real algorithm package would.
func recurse(h *harness.Harness, n int) bool {
	h.EnterCall()
	defer h.ExitCall()
	h.AddStep()
	if n == 0 {
		return true
	}

	return recurse(h, n-1)
}

func TestExecuteCountersReset(t *testing.T) {
	h := &harness.Harness{}
	assert.False(t, h.Started())

	ok := harness.Execute(h, func() bool { return recurse(h, 3) })
	assert.True(t, ok)
	assert.True(t, h.Completed())
	assert.Equal(t, 4, h.Steps())
	assert.Equal(t, 4, h.Calls())
	assert.Equal(t, 4, h.MaxDepth())
	assert.Equal(t, 0, h.Depth())

	// A second run on the same harness starts from zero again.
	ok = harness.Execute(h, func() bool { return recurse(h, 1) })
	assert.True(t, ok)
	assert.Equal(t, 2, h.Steps())
	assert.Equal(t, 2, h.MaxDepth())
}

func TestDurationZeroBeforeExecute(t *testing.T) {
	h := &harness.Harness{}
	assert.Equal(t, time.Duration(0), h.Duration())
}

func TestDurationReflectsElapsedTimeWhileRunInFlight(t *testing.T) {
	h := &harness.Harness{}
	var inFlight time.Duration
	harness.Execute(h, func() bool {
		time.Sleep(time.Millisecond)
		inFlight = h.Duration()
		return true
	})

	assert.Greater(t, inFlight, time.Duration(0))
	assert.GreaterOrEqual(t, h.Duration(), inFlight)
}
