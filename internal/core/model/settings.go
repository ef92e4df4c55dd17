package model

import "time"

// Settings defines editable user preferences.
type Settings struct {
	RefreshInterval time.Duration
	StartMode       int

	HighlightLeaders bool
	ShowDiff         bool

	LogLevel string
}

// DefaultSettings returns default settings for LapTimer.
func DefaultSettings() Settings {
	return Settings{
		RefreshInterval:  DefaultRefreshInterval,
		StartMode:        1,
		HighlightLeaders: true,
		ShowDiff:         true,
		LogLevel:         "info",
	}
}

// SessionConfig converts settings to a SessionConfig.
func (settings Settings) SessionConfig() SessionConfig {
	return SessionConfig{
		RefreshInterval:  settings.RefreshInterval,
		StartMode:        settings.StartMode,
		HighlightLeaders: settings.HighlightLeaders,
		ShowDiff:         settings.ShowDiff,
	}
}
