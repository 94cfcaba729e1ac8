// Package view provides UI rendering functions.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/set-game/internal/ui/common"
)

// Re-export styles for use in this package
var (
	BoxStyle   = common.BoxStyle
	TitleStyle = common.TitleStyle
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb string

	sb += "[Goal]\n"
	sb += "Find Sets: three cards where every attribute is\n"
	sb += "either all the same or all different.\n\n"

	sb += "[Attributes]\n"
	sb += "• Shape: squiggle, diamond, pill\n"
	sb += "• Color: red, purple, green\n"
	sb += "• Count: 1, 2, 3\n"
	sb += "• Fill: solid, semi, empty\n\n"

	sb += "[Play]\n"
	sb += "1. Twelve cards are dealt to the board\n"
	sb += "2. Select three cards; a Set scores a point and is replaced\n"
	sb += "3. If two of a kind and one odd appear in any attribute, it is not a Set\n"
	sb += "4. Stuck? Add a row of three more cards\n"
	sb += "5. The game ends when the deck is empty and no Set is left\n\n"

	sb += "[Keys]\n"
	sb += "• Arrows / hjkl: move\n"
	sb += "• Space / Enter: select or deselect\n"
	sb += "• T: show the card completing two selected cards\n"
	sb += "• P: list every possible Set\n"
	sb += "• R: add a row   N: new game   S: scoreboard\n"
	sb += "• ?: rules   H: more keys   Q: quit\n"

	return BoxStyle.Render(sb)
}

// RulesView renders the full rules view.
func RulesView(width, height int) string {
	var sb string

	title := TitleStyle("📖 Rules")
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
	sb += "\n\n"

	rules := RenderGameRules()
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, rules)
	sb += "\n\n"

	hint := "Press ? or ESC to return"
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)

	return sb
}
