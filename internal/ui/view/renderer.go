package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/set-game/internal/game/card"
	"github.com/palemoky/set-game/internal/game/tutorial"
	"github.com/palemoky/set-game/internal/storage"
	"github.com/palemoky/set-game/internal/ui/common"
)

// BoardState is everything the board view needs from the model.
type BoardState struct {
	Cards    []card.Card
	Selected map[int]bool // by card ID
	Cursor   int
	Rows     int // cards per column; new rows of cards become new columns
}

// RenderCard draws one card face: count glyphs, coloured, shaded by fill.
func RenderCard(c card.Card, style lipgloss.Style) string {
	glyph := common.Glyphs[c.Shape()][c.Fill()]
	symbols := strings.TrimSpace(strings.Repeat(glyph+" ", c.Count()+1))
	face := lipgloss.NewStyle().Foreground(common.CardColors[c.Color()]).Render(symbols)
	return style.Render(face)
}

// RenderBoard lays the cards out column by column, Rows cards high.
func RenderBoard(s BoardState) string {
	if len(s.Cards) == 0 {
		return common.StatusStyle.Render("(the board is empty)")
	}
	rows := s.Rows
	if rows <= 0 {
		rows = 3
	}

	grid := make([][]string, rows)
	for i, c := range s.Cards {
		style := common.CardStyle
		switch {
		case s.Selected[c.ID()]:
			style = common.SelectedCardStyle
		case i == s.Cursor:
			style = common.CursorCardStyle
		}
		if i == s.Cursor && s.Selected[c.ID()] {
			style = style.BorderForeground(lipgloss.Color("228"))
		}
		grid[i%rows] = append(grid[i%rows], RenderCard(c, style))
	}

	lines := make([]string, 0, rows)
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderStatus renders the header line.
func RenderStatus(player string, score, deckLeft, onBoard int) string {
	return common.StatusStyle.Render(fmt.Sprintf("Player: %s   Score: %d   Deck: %d   Board: %d",
		common.TruncateName(player, 16), score, deckLeft, onBoard))
}

// RenderHintCard draws the card suggested by the third-card hint.
func RenderHintCard(c card.Card) string {
	return RenderCard(c, common.HintCardStyle)
}

// RenderSets lists every possible set on the board.
func RenderSets(sets []tutorial.Triple) string {
	var sb strings.Builder
	sb.WriteString(common.CountSets(len(sets)))
	for _, s := range sets {
		sb.WriteString("\n  • ")
		sb.WriteString(s.Describe())
	}
	return sb.String()
}

// RenderLeaderboard renders the scoreboard table.
func RenderLeaderboard(entries []storage.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "No games recorded yet."
	}
	var sb strings.Builder
	sb.WriteString("🏆 Best scores")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n  %2d. %-16s %3d sets  (%d games, %d total)",
			e.Rank, common.TruncateName(e.Player, 16), e.BestScore, e.Games, e.TotalSets))
	}
	return sb.String()
}
