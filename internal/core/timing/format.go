package timing

import (
	"fmt"
	"time"
)

const (
	// EmptyClock is rendered for a lap time that has not been recorded.
	EmptyClock = "--:--.--"
	// EmptySplit is rendered for a split that has not been recorded.
	EmptySplit = "--.--"
	// ZeroDiff is rendered while there is no lap to compare.
	ZeroDiff = "+00.00"
)

type parts struct {
	minutes      int64
	seconds      int64
	centiseconds int64
}

// split floors every field so 999ms stays .99 and never carries into seconds.
func split(value time.Duration) parts {
	ms := value.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return parts{
		minutes:      ms / 60000,
		seconds:      (ms % 60000) / 1000,
		centiseconds: (ms % 1000) / 10,
	}
}

// Clock formats a duration as M:SS.CC, e.g. 0:04.83.
func Clock(value time.Duration) string {
	p := split(value)
	return fmt.Sprintf("%d:%02d.%02d", p.minutes, p.seconds, p.centiseconds)
}

// ClockSpan formats a Span as M:SS.CC or EmptyClock when unset.
func ClockSpan(span Span) string {
	value, ok := span.Get()
	if !ok {
		return EmptyClock
	}
	return Clock(value)
}

// Seconds formats a Span as whole seconds with two decimals, e.g. 4.83 or 75.20.
func Seconds(span Span) string {
	value, ok := span.Get()
	if !ok {
		return EmptySplit
	}
	ms := value.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d.%02d", ms/1000, (ms%1000)/10)
}

// Diff formats a signed lap delta as +SS.CC or -SS.CC.
func Diff(delta time.Duration) string {
	sign := '+'
	if delta < 0 {
		sign = '-'
		delta = -delta
	}
	ms := delta.Milliseconds()
	return fmt.Sprintf("%c%02d.%02d", sign, ms/1000, (ms%1000)/10)
}
