package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"laptimer/internal/core/timing"
)

type fakeDriver struct {
	lap   timing.Span
	split timing.Span
}

func (driver fakeDriver) BestLap() timing.Span   { return driver.lap }
func (driver fakeDriver) BestSplit() timing.Span { return driver.split }

func lapOnly(ms int) fakeDriver {
	return fakeDriver{lap: timing.SpanOf(time.Duration(ms) * time.Millisecond)}
}

func TestBestLap(t *testing.T) {
	tests := []struct {
		name    string
		drivers []fakeDriver
		want    Leader
	}{
		{
			name:    "no drivers",
			drivers: nil,
			want:    Leader{Index: NoLeader},
		},
		{
			name:    "no completed laps",
			drivers: []fakeDriver{{}, {}, {}},
			want:    Leader{Index: NoLeader},
		},
		{
			name:    "single finisher",
			drivers: []fakeDriver{{}, lapOnly(41000)},
			want:    Leader{Best: timing.SpanOf(41 * time.Second), Index: 1},
		},
		{
			name:    "tie keeps the lowest index",
			drivers: []fakeDriver{lapOnly(1000), {}, lapOnly(1000), lapOnly(1200)},
			want:    Leader{Best: timing.SpanOf(time.Second), Index: 0},
		},
		{
			name:    "fastest wins",
			drivers: []fakeDriver{lapOnly(1300), lapOnly(1200), lapOnly(900), lapOnly(950)},
			want:    Leader{Best: timing.SpanOf(900 * time.Millisecond), Index: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestLap(tt.drivers))
		})
	}
}

func TestBestSplitIgnoresLaps(t *testing.T) {
	drivers := []fakeDriver{
		{lap: timing.SpanOf(time.Second), split: timing.SpanOf(800 * time.Millisecond)},
		{lap: timing.SpanOf(500 * time.Millisecond), split: timing.SpanOf(600 * time.Millisecond)},
	}

	assert.Equal(t, 1, BestSplit(drivers).Index)
	assert.Equal(t, 1, BestLap(drivers).Index)
	drivers[1].split = timing.Unset()
	assert.Equal(t, 0, BestSplit(drivers).Index)
}

func TestLeadersClearsPreviousWinner(t *testing.T) {
	leaders := Empty()
	assert.False(t, leaders.IsLapLeader(0))
	assert.False(t, leaders.IsSplitLeader(NoLeader))

	leaders.RecomputeLap([]Source{lapOnly(900), lapOnly(1000)})
	assert.True(t, leaders.IsLapLeader(0))

	leaders.RecomputeLap([]Source{lapOnly(900), lapOnly(800)})
	assert.False(t, leaders.IsLapLeader(0), "the previous leader must be cleared")
	assert.True(t, leaders.IsLapLeader(1))

	leaders.RecomputeLap([]Source{fakeDriver{}, fakeDriver{}})
	assert.False(t, leaders.IsLapLeader(0))
	assert.False(t, leaders.IsLapLeader(1))
	assert.Equal(t, NoLeader, leaders.Lap.Index)
}
