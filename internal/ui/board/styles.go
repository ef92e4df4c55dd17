package board

import (
	"fmt"
	"image/color"

	"laptimer/internal/core/session"
	"laptimer/internal/core/stopwatch"
)

var (
	colorBackground = color.NRGBA{R: 18, G: 18, B: 20, A: 255}
	colorText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorMuted      = color.NRGBA{R: 150, G: 150, B: 156, A: 255}
	colorLeader     = color.NRGBA{R: 175, G: 82, B: 222, A: 255}
	colorImproved   = color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	colorRegressed  = color.NRGBA{R: 255, G: 204, B: 0, A: 255}
)

// lastLapColor maps the comparison of the last lap against the previous best.
func lastLapColor(trend stopwatch.Trend) color.Color {
	switch trend {
	case stopwatch.TrendImproved:
		return colorImproved
	case stopwatch.TrendRegressed:
		return colorRegressed
	default:
		return colorText
	}
}

func leaderColor(leader bool) color.Color {
	if leader {
		return colorLeader
	}
	return colorText
}

func lapNumberText(driver session.DriverView) string {
	return fmt.Sprintf("Lap %d", driver.LapNumber)
}

func lastLapText(driver session.DriverView) string {
	if driver.LastLapNumber == 0 {
		return "Last " + driver.LastLap
	}
	return fmt.Sprintf("Last %s (L%d)", driver.LastLap, driver.LastLapNumber)
}

func bestLapText(driver session.DriverView) string {
	if driver.BestLapNumber == 0 {
		return "Best " + driver.BestLap
	}
	return fmt.Sprintf("Best %s (L%d)", driver.BestLap, driver.BestLapNumber)
}

func splitText(driver session.DriverView) string {
	return fmt.Sprintf("S%d %s  Best %s", driver.SplitCount, driver.LastSplit, driver.BestSplit)
}
