package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Send, Direct, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Send:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "send")),
		Direct: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "send method")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Send, k.Direct, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
