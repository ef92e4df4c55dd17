package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, drivers := range []int{1, 2, 4} {
		mode, err := ParseMode(drivers)
		require.NoError(t, err)
		assert.Equal(t, drivers, mode.Drivers())
	}

	for _, drivers := range []int{0, 3, 5, -1} {
		_, err := ParseMode(drivers)
		assert.True(t, errors.Is(err, ErrInvalidMode), "drivers=%d", drivers)
	}
}

func TestModeCycle(t *testing.T) {
	assert.Equal(t, ModeTwo, ModeOne.Next())
	assert.Equal(t, ModeFour, ModeTwo.Next())
	assert.Equal(t, ModeOne, ModeFour.Next())
	assert.Equal(t, ModeOne, Mode(3).Next())
}

func TestRequiredMode(t *testing.T) {
	assert.Equal(t, ModeOne, RequiredMode(0))
	assert.Equal(t, ModeTwo, RequiredMode(1))
	assert.Equal(t, ModeFour, RequiredMode(2))
	assert.Equal(t, ModeFour, RequiredMode(3))
}

func TestExposes(t *testing.T) {
	assert.True(t, ModeOne.Exposes(0))
	assert.False(t, ModeOne.Exposes(1))
	assert.True(t, ModeTwo.Exposes(1))
	assert.False(t, ModeTwo.Exposes(2))
	assert.True(t, ModeFour.Exposes(3))
	assert.False(t, ModeFour.Exposes(4))
	assert.False(t, ModeFour.Exposes(-1))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "1 Driver Mode", ModeOne.String())
	assert.Equal(t, "4 Driver Mode", ModeFour.String())
}
