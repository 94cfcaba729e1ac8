package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap implements help.KeyMap.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	ThirdCard  key.Binding
	Sets       key.Binding
	AddRow     key.Binding
	NewGame    key.Binding
	Scoreboard key.Binding
	Rules      key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		ThirdCard:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "third card")),
		Sets:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "possible sets")),
		AddRow:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "add row")),
		NewGame:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Scoreboard: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scoreboard")),
		Rules:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "rules")),
		Help:       key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "more keys")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.ThirdCard, k.Sets, k.AddRow, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.ThirdCard, k.Sets, k.AddRow},
		{k.NewGame, k.Scoreboard, k.Rules, k.Help, k.Quit},
	}
}
