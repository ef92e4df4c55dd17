package session

import (
	"laptimer/internal/core/driverstore"
	"laptimer/internal/core/leaderboard"
	"laptimer/internal/core/stopwatch"
	"laptimer/internal/core/timing"
)

// DriverView is the formatted state of one driver for rendering.
type DriverView struct {
	Slot    int
	Label   string
	Running bool

	Elapsed       string
	LapNumber     int
	LastLap       string
	LastLapNumber int
	Trend         stopwatch.Trend
	BestLap       string
	BestLapNumber int

	SplitCount int
	LastSplit  string
	BestSplit  string

	// Diff is only populated in 1-driver mode.
	Diff     string
	ShowDiff bool

	LapLeader   bool
	SplitLeader bool

	Snapshot stopwatch.Snapshot
}

// Board is everything the presentation layer renders for the active mode.
type Board struct {
	Mode       Mode
	Title      string
	Drivers    []DriverView
	Leaders    leaderboard.Leaders
	Highlight  bool
	Refreshing bool
}

// View returns the formatted board for the active mode.
func (controller *Controller) View() Board {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	highlight := controller.config.HighlightLeaders && controller.mode != ModeOne
	board := Board{
		Mode:       controller.mode,
		Title:      controller.mode.String(),
		Drivers:    make([]DriverView, len(controller.timers)),
		Leaders:    controller.leaders,
		Highlight:  highlight,
		Refreshing: controller.refresh.active(),
	}

	for slot, timer := range controller.timers {
		snapshot := timer.Snapshot()
		view := DriverView{
			Slot:          slot,
			Label:         driverstore.Label(slot),
			Running:       snapshot.State == stopwatch.StateRunning,
			Elapsed:       timing.Clock(snapshot.Elapsed),
			LapNumber:     snapshot.LapNumber,
			LastLap:       timing.ClockSpan(snapshot.LastLap),
			LastLapNumber: snapshot.LastLapNumber,
			Trend:         snapshot.Trend,
			BestLap:       timing.ClockSpan(snapshot.BestLap),
			BestLapNumber: snapshot.BestLapNumber,
			SplitCount:    snapshot.SplitCount,
			LastSplit:     timing.Seconds(snapshot.LastSplit),
			BestSplit:     timing.Seconds(snapshot.BestSplit),
			LapLeader:     highlight && controller.leaders.IsLapLeader(slot),
			SplitLeader:   highlight && controller.leaders.IsSplitLeader(slot),
			Snapshot:      snapshot,
		}
		if controller.mode == ModeOne && controller.config.ShowDiff {
			view.ShowDiff = true
			view.Diff = diffText(snapshot)
		}
		board.Drivers[slot] = view
	}
	return board
}

func diffText(snapshot stopwatch.Snapshot) string {
	last, hasLast := snapshot.LastLap.Get()
	best, hasBest := snapshot.BestLap.Get()
	if !hasLast || !hasBest {
		return timing.ZeroDiff
	}
	return timing.Diff(last - best)
}
