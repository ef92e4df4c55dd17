package board

import (
	"testing"

	"laptimer/internal/core/session"
	"laptimer/internal/core/stopwatch"

	"github.com/stretchr/testify/assert"
)

func TestLastLapColor(t *testing.T) {
	tests := []struct {
		name  string
		trend stopwatch.Trend
		want  any
	}{
		{name: "first lap", trend: stopwatch.TrendNone, want: colorText},
		{name: "improved", trend: stopwatch.TrendImproved, want: colorImproved},
		{name: "regressed", trend: stopwatch.TrendRegressed, want: colorRegressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lastLapColor(tt.trend))
		})
	}
}

func TestLeaderColor(t *testing.T) {
	assert.Equal(t, colorLeader, leaderColor(true))
	assert.Equal(t, colorText, leaderColor(false))
}

func TestRowTexts(t *testing.T) {
	fresh := session.DriverView{LapNumber: 1, LastLap: "--:--.--", BestLap: "--:--.--", LastSplit: "--.--", BestSplit: "--.--"}
	assert.Equal(t, "Lap 1", lapNumberText(fresh))
	assert.Equal(t, "Last --:--.--", lastLapText(fresh))
	assert.Equal(t, "Best --:--.--", bestLapText(fresh))
	assert.Equal(t, "S0 --.--  Best --.--", splitText(fresh))

	timed := session.DriverView{
		LapNumber:     3,
		LastLap:       "0:04.83",
		LastLapNumber: 2,
		BestLap:       "0:04.12",
		BestLapNumber: 1,
		SplitCount:    2,
		LastSplit:     "1.50",
		BestSplit:     "1.20",
	}
	assert.Equal(t, "Last 0:04.83 (L2)", lastLapText(timed))
	assert.Equal(t, "Best 0:04.12 (L1)", bestLapText(timed))
	assert.Equal(t, "S2 1.50  Best 1.20", splitText(timed))
}
