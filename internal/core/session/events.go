package session

import (
	"time"

	"laptimer/internal/core/stopwatch"
)

// EventType defines the type of session event.
type EventType string

const (
	EventLapStart   EventType = "lap_start"
	EventLap        EventType = "lap"
	EventSplit      EventType = "split"
	EventModeChange EventType = "mode_change"
	EventStop       EventType = "stop"
	EventReset      EventType = "reset"
	EventTick       EventType = "tick"
)

// Event represents a session update for observers.
type Event struct {
	Type     EventType
	Mode     Mode
	Previous Mode
	Promoted bool
	Slot     int
	Lap      stopwatch.LapEvent
	Split    stopwatch.SplitEvent
	At       time.Time
}
