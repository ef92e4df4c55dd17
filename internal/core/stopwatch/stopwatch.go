package stopwatch

import (
	"time"

	"laptimer/internal/core/clock"
	"laptimer/internal/core/timing"
)

// Seed carries the values a Timer is hydrated from when a display mode opens.
type Seed struct {
	Elapsed       time.Duration
	LapNumber     int
	LastLap       timing.Span
	BestLap       timing.Span
	BestLapNumber int
	BestSplit     timing.Span
}

// Snapshot is a read-only copy of a Timer for queries.
type Snapshot struct {
	State         State
	Elapsed       time.Duration
	LapNumber     int
	LastLap       timing.Span
	LastLapNumber int
	BestLap       timing.Span
	BestLapNumber int
	Diff          time.Duration
	Trend         Trend
	SplitCount    int
	LastSplit     timing.Span
	BestSplit     timing.Span
	Laps          []Lap
	Splits        []Split
}

// Timer is a single driver's stopwatch and lap engine. It is not safe for
// concurrent use; callers serialize access.
type Timer struct {
	clock         clock.Clock
	running       bool
	startedAt     time.Time
	accumulated   time.Duration
	lapNumber     int
	lastLap       timing.Span
	bestLap       timing.Span
	bestLapNumber int
	diff          time.Duration
	trend         Trend
	splitCount    int
	lastSplit     timing.Span
	bestSplit     timing.Span
	laps          []Lap
	splits        []Split
}

// New creates an idle Timer on lap 1.
func New(source clock.Clock) *Timer {
	if source == nil {
		source = clock.System()
	}
	timer := &Timer{clock: source}
	timer.Reset()
	return timer
}

// Start begins a run segment. No-op while running.
func (timer *Timer) Start() {
	if timer.running {
		return
	}
	timer.running = true
	timer.startedAt = timer.clock.Now()
}

// Stop banks the current run segment. No-op while stopped.
func (timer *Timer) Stop() {
	if !timer.running {
		return
	}
	timer.accumulated += clock.Since(timer.clock, timer.startedAt)
	timer.running = false
	timer.startedAt = time.Time{}
}

// Lap arms lap 1 when idle, otherwise closes the running lap and opens the next
// one without stopping the clock.
func (timer *Timer) Lap() LapEvent {
	if !timer.running {
		timer.Reset()
		timer.Start()
		return LapEvent{
			Kind:    LapArmed,
			NextLap: timer.lapNumber,
			At:      timer.startedAt,
		}
	}

	now := timer.clock.Now()
	duration := timer.elapsedAt(now)
	closed := Lap{Number: timer.lapNumber, Duration: duration}
	previousBest := timer.bestLap

	timer.laps = append(timer.laps, closed)
	timer.lastLap = timing.SpanOf(duration)
	if timer.lastLap.Beats(timer.bestLap) {
		timer.bestLap = timer.lastLap
		timer.bestLapNumber = closed.Number
	}
	timer.trend = Classify(duration, previousBest)
	timer.diff = duration - timer.bestLap.Value()

	timer.lapNumber++
	timer.accumulated = 0
	timer.startedAt = now
	timer.splitCount = 0
	timer.lastSplit = timing.Unset()

	return LapEvent{
		Kind:          LapClosed,
		Lap:           closed,
		PreviousBest:  previousBest,
		BestLap:       timer.bestLap,
		BestLapNumber: timer.bestLapNumber,
		Diff:          timer.diff,
		Trend:         timer.trend,
		NextLap:       timer.lapNumber,
		BestSplit:     timer.bestSplit,
		At:            now,
	}
}

// Split records a checkpoint measured from the start of the current lap. It
// returns false and does nothing unless the Timer is running.
func (timer *Timer) Split() (SplitEvent, bool) {
	if !timer.running {
		return SplitEvent{}, false
	}

	now := timer.clock.Now()
	elapsed := timer.elapsedAt(now)
	timer.splitCount++
	recorded := Split{Lap: timer.lapNumber, Number: timer.splitCount, Duration: elapsed}
	timer.splits = append(timer.splits, recorded)
	timer.lastSplit = timing.SpanOf(elapsed)
	if timer.lastSplit.Beats(timer.bestSplit) {
		timer.bestSplit = timer.lastSplit
	}

	return SplitEvent{
		Split:     recorded,
		BestSplit: timer.bestSplit,
		Elapsed:   elapsed,
		At:        now,
	}, true
}

// Reset returns the Timer to a fresh idle state, discarding history and bests.
func (timer *Timer) Reset() {
	source := timer.clock
	*timer = Timer{
		clock:     source,
		lapNumber: 1,
	}
}

// Seed hydrates an idle Timer. It is ignored while running.
func (timer *Timer) Seed(seed Seed) {
	if timer.running {
		return
	}
	if seed.Elapsed < 0 {
		seed.Elapsed = 0
	}
	if seed.LapNumber < 1 {
		seed.LapNumber = 1
	}
	timer.accumulated = seed.Elapsed
	timer.lapNumber = seed.LapNumber
	timer.lastLap = seed.LastLap
	timer.bestLap = seed.BestLap
	timer.bestLapNumber = seed.BestLapNumber
	timer.bestSplit = seed.BestSplit
	if !seed.BestLap.IsSet() {
		timer.bestLapNumber = 0
	}
}

// Running reports whether the clock is advancing.
func (timer *Timer) Running() bool {
	return timer.running
}

// State returns the current state.
func (timer *Timer) State() State {
	if timer.running {
		return StateRunning
	}
	return StateIdle
}

// Elapsed returns the time accumulated in the current lap.
func (timer *Timer) Elapsed() time.Duration {
	return timer.elapsedAt(timer.clock.Now())
}

// LapNumber returns the 1-based number of the lap in progress.
func (timer *Timer) LapNumber() int {
	return timer.lapNumber
}

// BestLap returns the fastest completed lap.
func (timer *Timer) BestLap() timing.Span {
	return timer.bestLap
}

// BestSplit returns the fastest split since the last reset.
func (timer *Timer) BestSplit() timing.Span {
	return timer.bestSplit
}

// Snapshot copies the Timer state at the current instant.
func (timer *Timer) Snapshot() Snapshot {
	lastLapNumber := 0
	if timer.lapNumber > 1 {
		lastLapNumber = timer.lapNumber - 1
	}
	return Snapshot{
		State:         timer.State(),
		Elapsed:       timer.Elapsed(),
		LapNumber:     timer.lapNumber,
		LastLap:       timer.lastLap,
		LastLapNumber: lastLapNumber,
		BestLap:       timer.bestLap,
		BestLapNumber: timer.bestLapNumber,
		Diff:          timer.diff,
		Trend:         timer.trend,
		SplitCount:    timer.splitCount,
		LastSplit:     timer.lastSplit,
		BestSplit:     timer.bestSplit,
		Laps:          append([]Lap(nil), timer.laps...),
		Splits:        append([]Split(nil), timer.splits...),
	}
}

func (timer *Timer) elapsedAt(now time.Time) time.Duration {
	if !timer.running {
		return timer.accumulated
	}
	live := now.Sub(timer.startedAt).Truncate(time.Millisecond)
	if live < 0 {
		live = 0
	}
	return timer.accumulated + live
}
