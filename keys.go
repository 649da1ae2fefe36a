package main

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding; the help line shows the ones that apply
type keyMap struct {
	Search  key.Binding
	Focus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	Back    key.Binding
	Theme   key.Binding
	Help    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "browse results")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:    key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "back")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch reality 🌗")),
		Help:    key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("?", "help")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// modeKeys adapts the key map to the help component for one mode
type modeKeys struct {
	keys keyMap
	mode string
}

func (k modeKeys) ShortHelp() []key.Binding {
	switch k.mode {
	case modeBrowse:
		return []key.Binding{k.keys.Up, k.keys.Down, k.keys.Open, k.keys.Back, k.keys.Theme, k.keys.Help}
	case modeDetails, modeHelp:
		return []key.Binding{k.keys.Up, k.keys.Down, k.keys.Back, k.keys.Theme}
	case modeAlert:
		return []key.Binding{k.keys.Dismiss}
	default:
		return []key.Binding{k.keys.Search, k.keys.Focus, k.keys.Theme, k.keys.Quit}
	}
}

func (k modeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.keys.Search, k.keys.Focus, k.keys.Theme, k.keys.Quit},
		{k.keys.Up, k.keys.Down, k.keys.Left, k.keys.Right},
		{k.keys.Open, k.keys.Back, k.keys.Help, k.keys.Dismiss},
	}
}
