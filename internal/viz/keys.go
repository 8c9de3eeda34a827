package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Randomize key.Binding
	Start     key.Binding
	Stop      key.Binding
	Cycle     key.Binding
	Theme     key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		Start:     key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s/enter", "start")),
		Stop:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Cycle:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sort type")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Randomize, k.Start, k.Cycle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Randomize, k.Start, k.Stop},
		{k.Cycle, k.Theme},
		{k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}
