package utils

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// SlowOperationThreshold marks the point where a timed operation stops being
// debug noise: a full reload or search pass over the catalog should finish
// well under it on any realistic dataset.
const SlowOperationThreshold = 500 * time.Millisecond

// LogDuration records how long an operation took. Call it with defer and the
// operation's start time; durations past SlowOperationThreshold escalate to
// a warning so slow searches surface without debug logging enabled.
func LogDuration(operation string, start time.Time, args ...interface{}) {
	elapsed := time.Since(start)

	if elapsed >= SlowOperationThreshold {
		log.Warnf("%s took %v (slow) with args %v", operation, elapsed, args)
		return
	}

	if len(args) > 0 {
		log.Debugf("%s took %v with args %v", operation, elapsed, args)
	} else {
		log.Debugf("%s took %v", operation, elapsed)
	}
}
