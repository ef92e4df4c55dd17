package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoIsCached(t *testing.T) {
	first, err := Logo(IconRunning)
	require.NoError(t, err)
	assert.Equal(t, IconRunning, first.Name())
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustLogo(IconRunning)
	assert.Same(t, first, second)
	assert.NotNil(t, MustLogo(IconIdle))
}

func TestMissingLogo(t *testing.T) {
	_, err := Logo("missing.svg")
	require.Error(t, err)
	assert.Panics(t, func() { MustLogo("missing.svg") })
}
