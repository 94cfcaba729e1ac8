// Package ui provides the terminal front end for a game of Set.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/set-game/internal/game"
)

// New creates the bubbletea program model for g.
func New(g *game.Game, opts Options) *Model {
	return NewModel(g, opts)
}

// Run starts an alt-screen program and blocks until the player quits.
func Run(g *game.Game, opts Options) error {
	_, err := tea.NewProgram(New(g, opts), tea.WithAltScreen()).Run()
	return err
}
