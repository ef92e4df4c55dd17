package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"laptimer/internal/core/clock"
	"laptimer/internal/core/model"
	"laptimer/internal/core/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Stopwatch, *session.Controller, *clock.Manual) {
	t.Helper()
	manual := clock.NewManual(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	config := model.DefaultSessionConfig()
	config.RefreshInterval = time.Hour
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	controller := session.New(config, session.WithClock(manual), session.WithLogger(discard))
	t.Cleanup(controller.Close)
	return NewModel(controller, WithLogger(discard)), controller, manual
}

func press(t *testing.T, m Stopwatch, keys string) (Stopwatch, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	updated, cmd := m.Update(msg)
	next, ok := updated.(Stopwatch)
	require.True(t, ok)
	return next, cmd
}

func TestLapKeysDriveController(t *testing.T) {
	m, controller, manual := newTestModel(t)

	m, _ = press(t, m, "1")
	assert.True(t, controller.DriverState(0).Running)
	assert.True(t, m.board.Drivers[0].Running)

	manual.Advance(4830 * time.Millisecond)
	m, _ = press(t, m, "1")
	assert.Equal(t, "0:04.83", m.board.Drivers[0].LastLap)
	assert.Equal(t, 2, m.board.Drivers[0].LapNumber)
}

func TestLapKeyOutsideModePromotes(t *testing.T) {
	m, controller, _ := newTestModel(t)

	m, _ = press(t, m, "3")
	assert.Equal(t, session.ModeFour, controller.Mode())
	assert.Equal(t, session.ModeFour, m.board.Mode)
	assert.Len(t, m.board.Drivers, 4)
	assert.True(t, m.board.Drivers[2].Running)
}

func TestSplitKey(t *testing.T) {
	m, _, manual := newTestModel(t)

	m, _ = press(t, m, "1")
	manual.Advance(1500 * time.Millisecond)
	m, _ = press(t, m, "q")
	assert.Equal(t, 1, m.board.Drivers[0].SplitCount)
	assert.Equal(t, "1.50", m.board.Drivers[0].LastSplit)

	m, _ = press(t, m, "w")
	assert.Len(t, m.board.Drivers, 1, "split on a hidden driver is ignored")
}

func TestModeStopAndResetKeys(t *testing.T) {
	m, controller, _ := newTestModel(t)

	m, _ = press(t, m, "m")
	assert.Equal(t, session.ModeTwo, m.board.Mode)

	m, _ = press(t, m, "1")
	m, _ = press(t, m, "2")
	m, _ = press(t, m, "s")
	assert.False(t, m.board.Drivers[0].Running)
	assert.False(t, m.board.Drivers[1].Running)

	m, _ = press(t, m, "x")
	assert.Equal(t, session.ModeTwo, controller.Mode())
	for _, driver := range m.board.Drivers {
		assert.Equal(t, 1, driver.LapNumber)
		assert.Equal(t, "0:00.00", driver.Elapsed)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.False(t, m.help.ShowAll)
	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
}

func TestQuitKeys(t *testing.T) {
	for _, keys := range []string{"ctrl+c", "esc"} {
		t.Run(keys, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			_, cmd := press(t, m, keys)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestEventMsgRefreshesBoard(t *testing.T) {
	m, controller, manual := newTestModel(t)

	controller.TapLap(0)
	manual.Advance(2 * time.Second)
	updated, cmd := m.Update(EventMsg(session.Event{Type: session.EventTick}))
	assert.Nil(t, cmd)
	assert.Equal(t, "0:02.00", updated.(Stopwatch).board.Drivers[0].Elapsed)
}

func TestViewRendersBoard(t *testing.T) {
	m, _, manual := newTestModel(t)
	m, _ = press(t, m, "1")
	manual.Advance(1234 * time.Millisecond)
	m, _ = press(t, m, "1")

	view := m.View()
	assert.Contains(t, view, "1 Driver Mode")
	assert.Contains(t, view, "0:01.23 L1")
	assert.Contains(t, view, "DIFF")
	assert.Contains(t, view, "1 running")
}

func TestSlotFor(t *testing.T) {
	assert.Equal(t, 0, slotFor(lapKeys, "1"))
	assert.Equal(t, 3, slotFor(splitKeys, "r"))
	assert.Equal(t, -1, slotFor(lapKeys, "z"))
}
