// Package tutorial provides read-only helpers for learning the game: the card
// that completes a pair, and every set currently on the board.
package tutorial

import (
	"strings"

	"github.com/palemoky/set-game/internal/apperrors"
	"github.com/palemoky/set-game/internal/game/board"
	"github.com/palemoky/set-game/internal/game/card"
)

// Triple three cards forming a set, in board order.
type Triple [3]card.Card

// Describe joins the descriptions of the three cards.
func (t Triple) Describe() string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = c.Describe()
	}
	return strings.Join(parts, ", ")
}

// thirdKey computes, per attribute, the value that makes the three sum to 0 mod 3.
func thirdKey(a, b card.Key) card.Key {
	var k card.Key
	for _, attr := range card.Attributes {
		k[attr] = (card.NumValues - (a[attr]+b[attr])%card.NumValues) % card.NumValues
	}
	return k
}

// ThirdCard returns the unique card completing a and b into a set. The result
// is virtual: it has no instance ID and may not be on the board or in the deck.
func ThirdCard(a, b card.Card) card.Card {
	c, err := card.FromKey(thirdKey(a.Key(), b.Key()))
	if err != nil {
		// unreachable for cards built through card.New or a deck
		panic(err)
	}
	return c
}

// AllSets returns every set among cards. Each pair is completed arithmetically
// and looked up, so the search is quadratic. A set is reported once, ordered by
// the positions of its cards; the result is stable for a given slice.
func AllSets(cards []card.Card) []Triple {
	positions := make(map[card.Key][]int, len(cards))
	for i, c := range cards {
		positions[c.Key()] = append(positions[c.Key()], i)
	}

	sets := []Triple{}
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			want := thirdKey(cards[i].Key(), cards[j].Key())
			for _, k := range positions[want] {
				if k > j {
					sets = append(sets, Triple{cards[i], cards[j], cards[k]})
				}
			}
		}
	}
	return sets
}

// Count returns the number of sets among cards.
func Count(cards []card.Card) int {
	return len(AllSets(cards))
}

// BoardSets returns every set on the board.
func BoardSets(b *board.Board) []Triple {
	return AllSets(b.Cards())
}

// Hint returns the card completing the two currently selected cards.
func Hint(b *board.Board) (card.Card, error) {
	sel := b.Selected()
	if len(sel) != 2 {
		return card.Card{}, apperrors.IncompleteSelection(len(sel), 2)
	}
	return ThirdCard(sel[0], sel[1]), nil
}
