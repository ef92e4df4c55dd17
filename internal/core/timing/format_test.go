package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	tests := []struct {
		name  string
		value time.Duration
		want  string
	}{
		{"zero", 0, "0:00.00"},
		{"sample", 4830 * time.Millisecond, "0:04.83"},
		{"floors centiseconds", 999 * time.Millisecond, "0:00.99"},
		{"floors into seconds boundary", 59999 * time.Millisecond, "0:59.99"},
		{"minutes are unpadded", 12*time.Minute + 3*time.Second + 70*time.Millisecond, "12:03.07"},
		{"negative clamps", -time.Second, "0:00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clock(tt.value))
		})
	}
}

func TestClockSpanUnset(t *testing.T) {
	assert.Equal(t, EmptyClock, ClockSpan(Unset()))
	assert.Equal(t, "0:00.00", ClockSpan(SpanOf(0)), "zero must render distinctly from unset")
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, EmptySplit, Seconds(Unset()))
	assert.Equal(t, "0.00", Seconds(SpanOf(0)))
	assert.Equal(t, "4.83", Seconds(SpanOf(4839*time.Millisecond)))
	assert.Equal(t, "75.20", Seconds(SpanOf(75200*time.Millisecond)))
}

func TestDiff(t *testing.T) {
	assert.Equal(t, ZeroDiff, Diff(0))
	assert.Equal(t, "+00.35", Diff(350*time.Millisecond))
	assert.Equal(t, "-01.20", Diff(-1209*time.Millisecond))
}

func TestSpanBeats(t *testing.T) {
	assert.True(t, SpanOf(time.Second).Beats(Unset()))
	assert.True(t, SpanOf(time.Second).Beats(SpanOf(2*time.Second)))
	assert.False(t, SpanOf(time.Second).Beats(SpanOf(time.Second)), "ties never beat")
	assert.False(t, Unset().Beats(SpanOf(time.Second)))
	assert.False(t, Unset().Beats(Unset()))
}
