// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/set-game/internal/game/card"
)

// Card face dimensions
const (
	CardWidth  = 11
	CardHeight = 5
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	CardStyle = lipgloss.NewStyle().
			Width(CardWidth).
			Height(CardHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	CursorCardStyle   = CardStyle.BorderForeground(lipgloss.Color("228"))
	SelectedCardStyle = CardStyle.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("10"))
	HintCardStyle     = CardStyle.Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("12"))
)

// CardColors foreground colour for each card colour ordinal
var CardColors = [card.NumValues]lipgloss.Color{
	lipgloss.Color("#CD0000"), // red
	lipgloss.Color("#9B30FF"), // purple
	lipgloss.Color("#228B22"), // green
}

// Glyphs symbol per [shape][fill]
var Glyphs = [card.NumValues][card.NumValues]string{
	{"≋", "≈", "~"}, // squiggle
	{"◆", "◈", "◇"}, // diamond
	{"●", "◐", "○"}, // pill
}
