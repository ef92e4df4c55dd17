package model

import "time"

// DefaultRefreshInterval is the display refresh cadence while a clock runs (~32 Hz).
const DefaultRefreshInterval = 31 * time.Millisecond

// SessionConfig contains runtime settings for the timing session.
type SessionConfig struct {
	RefreshInterval time.Duration
	// StartMode is the number of drivers shown at start-up: 1, 2 or 4.
	StartMode int

	HighlightLeaders bool
	ShowDiff         bool
}

// DefaultSessionConfig returns the session defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		RefreshInterval:  DefaultRefreshInterval,
		StartMode:        1,
		HighlightLeaders: true,
		ShowDiff:         true,
	}
}
