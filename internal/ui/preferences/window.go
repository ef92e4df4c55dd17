package preferences

import (
	"fmt"
	"strconv"
	"time"

	"laptimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	modeOptions  = []string{"1", "2", "4"}
	levelOptions = []string{"debug", "info", "warn", "error"}
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  model.Settings
	onSave    func(model.Settings)
	refresh   *widget.Entry
	startMode *widget.Select
	highlight *widget.Check
	showDiff  *widget.Check
	logLevel  *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("LapTimer Settings")

	refresh := widget.NewEntry()
	startMode := widget.NewSelect(modeOptions, nil)
	highlight := widget.NewCheck("Highlight overall best lap and split", nil)
	showDiff := widget.NewCheck("Show lap diff in 1 driver mode", nil)
	logLevel := widget.NewSelect(levelOptions, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timing", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Refresh every"), refresh, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Drivers at start-up"), startMode),
		highlight,
		showDiff,
		widget.NewLabelWithStyle("Diagnostics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 300))

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		refresh:   refresh,
		startMode: startMode,
		highlight: highlight,
		showDiff:  showDiff,
		logLevel:  logLevel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.refresh.SetText(fmt.Sprintf("%d", settings.RefreshInterval.Milliseconds()))
	prefs.startMode.SetSelected(strconv.Itoa(settings.StartMode))
	prefs.highlight.SetChecked(settings.HighlightLeaders)
	prefs.showDiff.SetChecked(settings.ShowDiff)
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.refresh.Text); ok {
		settings.RefreshInterval = time.Duration(millis) * time.Millisecond
	}
	if mode, ok := parsePositiveInt(prefs.startMode.Selected); ok {
		settings.StartMode = mode
	}
	settings.HighlightLeaders = prefs.highlight.Checked
	settings.ShowDiff = prefs.showDiff.Checked
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
