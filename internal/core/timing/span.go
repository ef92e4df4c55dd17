package timing

import "time"

// Span is an optional duration. The zero value is unset, which is distinct from a
// set duration of zero.
type Span struct {
	value time.Duration
	set   bool
}

// Unset returns an empty Span.
func Unset() Span {
	return Span{}
}

// SpanOf returns a Span holding value.
func SpanOf(value time.Duration) Span {
	return Span{value: value, set: true}
}

// Get returns the duration and whether it is set.
func (span Span) Get() (time.Duration, bool) {
	return span.value, span.set
}

// IsSet reports whether the span carries a value.
func (span Span) IsSet() bool {
	return span.set
}

// Value returns the duration, or 0 when unset.
func (span Span) Value() time.Duration {
	if !span.set {
		return 0
	}
	return span.value
}

// Beats reports whether span is set and strictly faster than other.
// Every set span beats an unset one.
func (span Span) Beats(other Span) bool {
	if !span.set {
		return false
	}
	return !other.set || span.value < other.value
}
