package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.RefreshInterval = 50 * time.Millisecond
	settings.StartMode = 4
	settings.ShowDiff = false

	config := settings.SessionConfig()
	assert.Equal(t, 50*time.Millisecond, config.RefreshInterval)
	assert.Equal(t, 4, config.StartMode)
	assert.True(t, config.HighlightLeaders)
	assert.False(t, config.ShowDiff)
}

func TestDefaultsAgree(t *testing.T) {
	assert.Equal(t, DefaultSessionConfig(), DefaultSettings().SessionConfig())
}
