package tui

import (
	"context"
	"fmt"
	"log/slog"

	"laptimer/internal/core/session"
	"laptimer/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	s = styles.Default()
)

// Controller is the subset of the session the terminal UI drives.
type Controller interface {
	View() session.Board
	TapLap(slot int)
	TapSplit(slot int)
	CycleMode()
	StopAllInMode()
	ResetEverything()
}

// NewStopwatch returns the bubbletea program for controller.
func NewStopwatch(controller Controller, opts ...TUIOption) *tea.Program {
	m := NewModel(controller, opts...)
	return tea.NewProgram(m, tea.WithContext(m.ctx), tea.WithAltScreen())
}

// NewModel returns the stopwatch model without starting a program.
func NewModel(controller Controller, opts ...TUIOption) Stopwatch {
	m := Stopwatch{
		controller: controller,
		logger:     slog.Default(),
		ctx:        context.Background(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.board = controller.View()
	return m
}

type TUIOption = func(m *Stopwatch)

// WithLogger configures the logger to use within the TUI program
func WithLogger(l *slog.Logger) TUIOption {
	return func(m *Stopwatch) { m.logger = l }
}

// WithContext configures the context to use within the TUI program
func WithContext(ctx context.Context) TUIOption {
	return func(m *Stopwatch) { m.ctx = ctx }
}

/* Bubbletea Interface Implementation
------------------------------------------------------------------------------------------------- */

func (m Stopwatch) Init() tea.Cmd {
	return nil
}

func (m Stopwatch) View() string {
	title := s.TitleBar.Width(m.width - 4).Render(m.board.Title)
	status := s.Status.Render(statusLine(m.board))
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		driverTable(m.board).View(),
		status,
		m.help.View(m.keys),
	)
	return s.Doc.Render(body)
}

func (m Stopwatch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case EventMsg:
		return handleEventMsg(m, msg)
	}
	return m, nil
}

/* Tea Message Types
------------------------------------------------------------------------------------------------- */

// EventMsg carries a session event into the program.
type EventMsg session.Event

/* Tea Message handlers
------------------------------------------------------------------------------------------------- */

func handleKeyMsg(m Stopwatch, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := msg.String()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Debug("received quit key")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Lap):
		m.controller.TapLap(slotFor(lapKeys, pressed))
	case key.Matches(msg, m.keys.Split):
		m.controller.TapSplit(slotFor(splitKeys, pressed))
	case key.Matches(msg, m.keys.Mode):
		m.controller.CycleMode()
	case key.Matches(msg, m.keys.Stop):
		m.controller.StopAllInMode()
	case key.Matches(msg, m.keys.Reset):
		m.controller.ResetEverything()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	m.board = m.controller.View()
	return m, nil
}

func handleEventMsg(m Stopwatch, msg EventMsg) (tea.Model, tea.Cmd) {
	if msg.Type != session.EventTick {
		m.logger.Debug("session event", "type", msg.Type, "mode", msg.Mode, "slot", msg.Slot)
	}
	m.board = m.controller.View()
	return m, nil
}

/* View Helper Functions
------------------------------------------------------------------------------------------------- */

func statusLine(board session.Board) string {
	running := 0
	for _, driver := range board.Drivers {
		if driver.Running {
			running++
		}
	}
	if running == 0 {
		return "stopped"
	}
	return fmt.Sprintf("%d running", running)
}

/* Type Definitions
------------------------------------------------------------------------------------------------- */

type Stopwatch struct {
	controller Controller
	logger     *slog.Logger
	ctx        context.Context
	keys       keyMap
	help       help.Model
	board      session.Board
	width      int
}
