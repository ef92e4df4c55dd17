package stopwatch

import (
	"time"

	"laptimer/internal/core/timing"
)

// State represents the Timer mode.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Trend classifies a closed lap against the best lap held before it closed.
type Trend string

const (
	TrendNone      Trend = ""
	TrendImproved  Trend = "improved"
	TrendRegressed Trend = "regressed"
)

// LapKind tells which branch of the lap button ran.
type LapKind string

const (
	// LapArmed means the Timer was idle and the tap started lap 1.
	LapArmed LapKind = "armed"
	// LapClosed means a running lap was completed and the next one opened.
	LapClosed LapKind = "closed"
)

// Lap is one completed lap.
type Lap struct {
	Number   int
	Duration time.Duration
}

// Split is one checkpoint inside a lap.
type Split struct {
	Lap      int
	Number   int
	Duration time.Duration
}

// LapEvent describes the outcome of Timer.Lap.
type LapEvent struct {
	Kind          LapKind
	Lap           Lap
	PreviousBest  timing.Span
	BestLap       timing.Span
	BestLapNumber int
	Diff          time.Duration
	Trend         Trend
	NextLap       int
	BestSplit     timing.Span
	At            time.Time
}

// SplitEvent describes the outcome of Timer.Split.
type SplitEvent struct {
	Split     Split
	BestSplit timing.Span
	Elapsed   time.Duration
	At        time.Time
}

// Classify reports whether lap improved on previousBest. previousBest must be the
// best lap as it was before lap was recorded.
func Classify(lap time.Duration, previousBest timing.Span) Trend {
	best, ok := previousBest.Get()
	if !ok || lap < best {
		return TrendImproved
	}
	return TrendRegressed
}
