package utils

import (
	"sync"
	"time"
)

// Debounce returns a wrapper that delays fn until wait has elapsed since the
// wrapper's most recent call. Intended for search-as-you-type integrations:
// the engine must not run on every keystroke, only on the trailing edge of a
// burst.
func Debounce(wait time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}

// DebounceLeading returns a wrapper that runs fn immediately and then
// suppresses further calls until wait has elapsed since the last one. Used
// for discrete actions (buttons) to prevent double-submission.
func DebounceLeading(wait time.Duration, fn func()) func() {
	var mu sync.Mutex
	var last time.Time

	return func() {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(last) < wait {
			last = now
			return
		}
		last = now
		fn()
	}
}
