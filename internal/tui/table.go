package tui

import (
	"fmt"

	"laptimer/internal/core/session"
	"laptimer/internal/core/stopwatch"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

const (
	columnDriver    = "driver"
	columnLap       = "lap"
	columnElapsed   = "elapsed"
	columnLast      = "last"
	columnBest      = "best"
	columnSplits    = "splits"
	columnLastSplit = "lastsplit"
	columnBestSplit = "bestsplit"
	columnDiff      = "diff"
)

func driverTable(board session.Board) table.Model {
	showDiff := len(board.Drivers) > 0 && board.Drivers[0].ShowDiff
	rows := make([]table.Row, 0, len(board.Drivers))
	for _, driver := range board.Drivers {
		data := table.RowData{
			columnDriver:    driver.Label,
			columnLap:       driver.LapNumber,
			columnElapsed:   driver.Elapsed,
			columnLast:      table.NewStyledCell(lapCell(driver.LastLap, driver.LastLapNumber), trendStyle(driver.Trend)),
			columnBest:      table.NewStyledCell(lapCell(driver.BestLap, driver.BestLapNumber), leaderStyle(driver.LapLeader)),
			columnSplits:    driver.SplitCount,
			columnLastSplit: driver.LastSplit,
			columnBestSplit: table.NewStyledCell(driver.BestSplit, leaderStyle(driver.SplitLeader)),
		}
		if showDiff {
			data[columnDiff] = table.NewStyledCell(driver.Diff, trendStyle(driver.Trend))
		}
		rows = append(rows, table.NewRow(data))
	}
	return newTable(showDiff).WithRows(rows)
}

func newTable(showDiff bool) table.Model {
	columns := []table.Column{
		table.NewColumn(columnDriver, "DRV", 4).WithStyle(lipgloss.NewStyle().Align(lipgloss.Left)),
		table.NewColumn(columnLap, "LAP", 4),
		table.NewColumn(columnElapsed, "TIME", 10),
		table.NewColumn(columnLast, "LAST", 14),
		table.NewColumn(columnBest, "BEST", 14),
		table.NewColumn(columnSplits, "SPL", 4),
		table.NewColumn(columnLastSplit, "SPLIT", 7),
		table.NewColumn(columnBestSplit, "BEST SPL", 9),
	}
	if showDiff {
		columns = append(columns, table.NewColumn(columnDiff, "DIFF", 8))
	}
	return table.New(columns).
		WithRows([]table.Row{}).
		WithBaseStyle(s.Cell.AlignHorizontal(lipgloss.Center))
}

func lapCell(value string, number int) string {
	if number == 0 {
		return value
	}
	return fmt.Sprintf("%s L%d", value, number)
}

func trendStyle(trend stopwatch.Trend) lipgloss.Style {
	switch trend {
	case stopwatch.TrendImproved:
		return s.Green
	case stopwatch.TrendRegressed:
		return s.Yellow
	default:
		return lipgloss.NewStyle()
	}
}

func leaderStyle(leader bool) lipgloss.Style {
	if leader {
		return s.Purple
	}
	return lipgloss.NewStyle()
}
