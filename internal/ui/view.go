package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/set-game/internal/ui/common"
	"github.com/palemoky/set-game/internal/ui/view"
)

// --- 视图渲染 ---

func (m *Model) View() string {
	if m.screen == screenRules {
		return view.RulesView(m.width, m.height)
	}
	return common.DocStyle.Render(m.boardView())
}

func (m *Model) boardView() string {
	var sb strings.Builder

	b := m.game.Board()
	sb.WriteString(common.TitleStyle("🃏 Set"))
	sb.WriteString("\n")
	sb.WriteString(view.RenderStatus(m.opts.Player, m.game.Score(), b.Deck().Len(), b.Len()))
	sb.WriteString("\n\n")

	selected := make(map[int]bool, b.SelectedCount())
	for _, c := range b.Selected() {
		selected[c.ID()] = true
	}
	sb.WriteString(view.RenderBoard(view.BoardState{
		Cards:    b.Cards(),
		Selected: selected,
		Cursor:   m.cursor,
		Rows:     b.RowWidth(),
	}))

	if m.notice.text != "" {
		sb.WriteString("\n")
		sb.WriteString(common.PromptStyle.Render(m.noticeStyle().Render(m.notice.text)))
		if !m.hint.IsZero() {
			sb.WriteString("\n")
			sb.WriteString(view.RenderHintCard(m.hint))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) noticeStyle() lipgloss.Style {
	switch m.notice.kind {
	case noticeSuccess:
		return common.SuccessStyle
	case noticeError:
		return common.ErrorStyle
	default:
		return common.InfoStyle
	}
}
