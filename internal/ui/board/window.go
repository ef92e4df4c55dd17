package board

import (
	"context"
	"fmt"
	"image/color"

	"laptimer/internal/core/driverstore"
	"laptimer/internal/core/session"
	"laptimer/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the subset of the session the board drives.
type Controller interface {
	View() session.Board
	TapLap(slot int)
	TapSplit(slot int)
	CycleMode()
	StopAllInMode()
	ResetEverything()
}

const userGuide = `Lap starts a driver. Each further Lap closes the lap and starts the next one.
Split records the running lap time without closing the lap.
Tap the mode header to cycle 1, 2 and 4 drivers. Timing continues across modes.
Lap on a hidden driver switches to a mode that shows it.
Purple marks the overall best lap and split. Green and yellow compare the last lap with the previous best.`

type driverRow struct {
	box       *fyne.Container
	label     *canvas.Text
	elapsed   *canvas.Text
	lapNumber *canvas.Text
	lastLap   *canvas.Text
	bestLap   *canvas.Text
	split     *canvas.Text
	diff      *canvas.Text
	lapButton *widget.Button
	splitTap  *widget.Button
}

// Window is the stopwatch board.
type Window struct {
	app        fyne.App
	window     fyne.Window
	controller Controller
	modeButton *widget.Button
	rows       [driverstore.Slots]*driverRow
	flashes    *animation.Engine
	dimmed     [driverstore.Slots]bool
}

// New creates the board window. Render must be called before Show.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("LapTimer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	board := &Window{
		app:        app,
		window:     window,
		controller: controller,
	}
	board.flashes = animation.New(animation.DefaultConfig(), board.applyFlash)

	board.modeButton = widget.NewButton("", controller.CycleMode)
	menuButton := widget.NewButtonWithIcon("", theme.MenuIcon(), board.showMenu)
	header := container.NewBorder(nil, nil, nil, menuButton, board.modeButton)

	rows := container.NewVBox()
	buttons := container.NewGridWithColumns(2)
	for slot := range board.rows {
		row := newDriverRow(slot, controller)
		board.rows[slot] = row
		rows.Add(row.box)
		buttons.Add(row.lapButton)
		buttons.Add(row.splitTap)
	}

	background := canvas.NewRectangle(colorBackground)
	content := container.NewBorder(header, buttons, nil, nil, rows)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 520))

	return board
}

func newDriverRow(slot int, controller Controller) *driverRow {
	label := driverstore.Label(slot)
	row := &driverRow{
		label:     newText(fmt.Sprintf("Driver %s", label), 16, true),
		elapsed:   newText("", 28, true),
		lapNumber: newText("", 14, false),
		lastLap:   newText("", 14, false),
		bestLap:   newText("", 14, false),
		split:     newText("", 14, false),
		diff:      newText("", 14, true),
		lapButton: widget.NewButton("Lap "+label, func() { controller.TapLap(slot) }),
		splitTap:  widget.NewButton("Split "+label, func() { controller.TapSplit(slot) }),
	}
	row.lapButton.Importance = widget.HighImportance
	row.lapNumber.Color = colorMuted

	row.box = container.NewVBox(
		container.NewHBox(row.label, row.lapNumber),
		container.NewHBox(row.elapsed, row.diff),
		container.NewHBox(row.lastLap, row.bestLap),
		row.split,
		widget.NewSeparator(),
	)
	return row
}

func newText(value string, size float32, bold bool) *canvas.Text {
	text := canvas.NewText(value, colorText)
	text.TextSize = size
	text.TextStyle = fyne.TextStyle{Bold: bold, Monospace: true}
	return text
}

// Show displays the board.
func (board *Window) Show() {
	board.window.Show()
	board.window.RequestFocus()
}

// Hide hides the board window.
func (board *Window) Hide() {
	board.window.Hide()
}

// SetOnClose sets the handler for closing the board window.
func (board *Window) SetOnClose(handler func()) {
	board.window.SetCloseIntercept(handler)
}

// Update re-renders the board from the controller. Safe to call from any goroutine.
func (board *Window) Update() {
	view := board.controller.View()
	fyne.Do(func() {
		board.Render(view)
	})
}

// FlashLastLap blinks a driver's last-lap readout.
func (board *Window) FlashLastLap(slot int) {
	board.flashes.Flash(context.Background(), slot)
}

// Stop terminates running flashes.
func (board *Window) Stop() {
	board.flashes.Stop()
}

// Render draws the board. Must run on the fyne goroutine.
func (board *Window) Render(view session.Board) {
	board.modeButton.SetText(view.Title)

	for slot, row := range board.rows {
		if !view.Mode.Exposes(slot) || slot >= len(view.Drivers) {
			row.box.Hide()
			row.lapButton.Hide()
			row.splitTap.Hide()
			continue
		}
		row.box.Show()
		row.lapButton.Show()
		row.splitTap.Show()
		board.renderRow(row, view.Drivers[slot])
	}
}

func (board *Window) renderRow(row *driverRow, driver session.DriverView) {
	setText(row.elapsed, driver.Elapsed, colorText)
	setText(row.lapNumber, lapNumberText(driver), colorMuted)
	setText(row.lastLap, lastLapText(driver), lastLapColor(driver.Trend))
	setText(row.bestLap, bestLapText(driver), leaderColor(driver.LapLeader))
	setText(row.split, splitText(driver), leaderColor(driver.SplitLeader))

	if driver.ShowDiff {
		setText(row.diff, driver.Diff, lastLapColor(driver.Trend))
		row.diff.Show()
	} else {
		row.diff.Hide()
	}

	if board.dimmed[driver.Slot] {
		row.lastLap.Hide()
	} else {
		row.lastLap.Show()
	}
}

func (board *Window) applyFlash(slot int, lit bool) {
	fyne.Do(func() {
		board.dimmed[slot] = !lit
		row := board.rows[slot]
		if lit {
			row.lastLap.Show()
			return
		}
		row.lastLap.Hide()
	})
}

func (board *Window) showMenu() {
	var popup dialog.Dialog
	stop := widget.NewButton("Stop timing", func() {
		board.controller.StopAllInMode()
		popup.Hide()
	})
	reset := widget.NewButton("Reset timing", func() {
		popup.Hide()
		dialog.ShowConfirm("Reset timing", "Clear every driver, lap and split?", func(confirmed bool) {
			if confirmed {
				board.controller.ResetEverything()
			}
		}, board.window)
	})
	guide := widget.NewButton("User guide", func() {
		popup.Hide()
		dialog.ShowInformation("User guide", userGuide, board.window)
	})
	popup = dialog.NewCustom("Timing", "OK", container.NewVBox(stop, reset, guide), board.window)
	popup.Show()
}

func setText(text *canvas.Text, value string, fill color.Color) {
	if text.Text == value && text.Color == fill {
		return
	}
	text.Text = value
	text.Color = fill
	text.Refresh()
}
