package tui

import "github.com/charmbracelet/bubbles/key"

var (
	lapKeys   = []string{"1", "2", "3", "4"}
	splitKeys = []string{"q", "w", "e", "r"}
)

type keyMap struct {
	Lap   key.Binding
	Split key.Binding
	Mode  key.Binding
	Stop  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Lap: key.NewBinding(
			key.WithKeys(lapKeys...),
			key.WithHelp("1-4", "lap A-D"),
		),
		Split: key.NewBinding(
			key.WithKeys(splitKeys...),
			key.WithHelp("q/w/e/r", "split A-D"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "cycle drivers"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop timing"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset timing"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Lap, keys.Split, keys.Help, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Lap, keys.Split},
		{keys.Mode, keys.Stop, keys.Reset},
		{keys.Help, keys.Quit},
	}
}

// slotFor returns the driver slot bound to pressed, or -1.
func slotFor(bound []string, pressed string) int {
	for slot, candidate := range bound {
		if candidate == pressed {
			return slot
		}
	}
	return -1
}
