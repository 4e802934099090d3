package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceTrailingEdge(t *testing.T) {
	var calls int32
	debounced := Debounce(30*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	// A burst of calls collapses into a single trailing invocation.
	debounced()
	debounced()
	debounced()

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	// The count stays at one once the burst has fired.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebounceSeparateBursts(t *testing.T) {
	var calls int32
	debounced := Debounce(20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	debounced()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	debounced()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDebounceLeadingEdge(t *testing.T) {
	var calls int32
	debounced := DebounceLeading(50*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	// The first call fires immediately, the rest of the burst is swallowed.
	debounced()
	debounced()
	debounced()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebounceLeadingEdgeWindowExtends(t *testing.T) {
	var calls int32
	debounced := DebounceLeading(40*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	debounced()
	// Continuous calls inside the window keep extending it.
	for i := 0; i < 3; i++ {
		time.Sleep(15 * time.Millisecond)
		debounced()
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Once the window lapses the next call fires again.
	time.Sleep(60 * time.Millisecond)
	debounced()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
