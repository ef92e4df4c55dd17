package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Manual is a Clock that only moves when told to. It is safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual instant.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Advance moves the clock forward. Negative values are ignored.
func (manual *Manual) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	manual.mu.Lock()
	manual.now = manual.now.Add(delta)
	manual.mu.Unlock()
}

// Since returns the whole milliseconds elapsed between start and now.
// Sub-millisecond remainders are dropped so results match the display resolution.
func Since(source Clock, start time.Time) time.Duration {
	elapsed := source.Now().Sub(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed.Truncate(time.Millisecond)
}
