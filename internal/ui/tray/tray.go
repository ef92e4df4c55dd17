package tray

import (
	"fmt"

	"laptimer/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnMode        func(session.Mode)
	OnStop        func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	modeItems   []*fyne.MenuItem
	callbacks   Callbacks
	mode        session.Mode
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	for _, mode := range session.Modes {
		mode := mode
		manager.modeItems = append(manager.modeItems, fyne.NewMenuItem(mode.String(), func() {
			if manager.callbacks.OnMode != nil {
				manager.callbacks.OnMode(mode)
			}
		}))
	}

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetMode marks the active mode in the mode submenu.
func (manager *Manager) SetMode(mode session.Mode) {
	manager.mode = mode
	for index, item := range manager.modeItems {
		item.Checked = session.Modes[index] == mode
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	modes := fyne.NewMenuItem("Drivers", nil)
	modes.ChildMenu = fyne.NewMenu("", manager.modeItems...)

	manager.app.SetSystemTrayMenu(fyne.NewMenu("LapTimer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", invoke(manager.callbacks.OnShow)),
		modes,
		fyne.NewMenuItem("Stop timing", invoke(manager.callbacks.OnStop)),
		fyne.NewMenuItem("Reset timing", invoke(manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(manager.callbacks.OnQuit)),
	))
}

func invoke(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}

// Running counts the running drivers of a board.
func Running(board session.Board) int {
	running := 0
	for _, driver := range board.Drivers {
		if driver.Running {
			running++
		}
	}
	return running
}

// Status summarizes a board for the tray status line.
func Status(board session.Board) string {
	running := Running(board)
	if running == 0 {
		return fmt.Sprintf("idle, %s", board.Title)
	}
	return fmt.Sprintf("%d running, %s", running, board.Title)
}
