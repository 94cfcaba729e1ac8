// Package board holds the cards in play and the current selection.
package board

import (
	"slices"

	"github.com/palemoky/set-game/internal/apperrors"
	"github.com/palemoky/set-game/internal/game/card"
	"github.com/palemoky/set-game/internal/game/rule"
)

const (
	DefaultInitialSize = 12 // 开局桌面上的牌数
	DefaultRowWidth    = 3  // 每次加一行的牌数
	MaxSelected        = rule.SetSize
)

// Hooks 可选的事件回调，均在调用方的 goroutine 中同步执行
type Hooks struct {
	OnSelectionFull func(selected []card.Card)
	OnSetRemoved    func(removed []card.Card)
	OnInvalidSet    func(selected []card.Card, violations []card.Attribute)
}

// Option 配置 Board
type Option func(*Board)

func WithInitialSize(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.initialSize = n
		}
	}
}

func WithRowWidth(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.rowWidth = n
		}
	}
}

func WithHooks(h Hooks) Option {
	return func(b *Board) { b.hooks = h }
}

// Board 桌面：按顺序排列的在场牌，以及其中被选中的牌
type Board struct {
	deck       *card.Deck
	cards      []card.Card
	selected   []card.Card
	violations []card.Attribute

	initialSize int
	rowWidth    int
	hooks       Hooks
}

// New 创建一个空桌面，调用 FillInitial 发牌
func New(deck *card.Deck, opts ...Option) *Board {
	b := &Board{
		deck:        deck,
		initialSize: DefaultInitialSize,
		rowWidth:    DefaultRowWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetHooks 替换事件回调
func (b *Board) SetHooks(h Hooks) { b.hooks = h }

// --- 发牌 ---

// addCard 从牌堆补一张牌，牌堆已空时返回 false
func (b *Board) addCard() bool {
	c, err := b.deck.Draw()
	if err != nil {
		return false
	}
	b.cards = append(b.cards, c)
	return true
}

// FillInitial 补牌直到达到开局牌数，牌堆不足时提前停止。返回补了几张
func (b *Board) FillInitial() int {
	drawn := 0
	for len(b.cards) < b.initialSize && b.addCard() {
		drawn++
	}
	return drawn
}

// AddRow 最多补一行，牌堆不足时只补剩下的牌。返回补了几张
func (b *Board) AddRow() int {
	drawn := 0
	for drawn < b.rowWidth && b.addCard() {
		drawn++
	}
	return drawn
}

// --- 选牌 ---

// Select 选中一张桌面上的牌
func (b *Board) Select(c card.Card) error {
	if len(b.selected) >= MaxSelected {
		return apperrors.SelectionFull(c.ID(), MaxSelected)
	}
	if b.IsSelected(c) {
		return apperrors.AlreadySelected(c.ID())
	}
	if !b.Contains(c) {
		return apperrors.CardNotOnBoard(c.ID())
	}

	b.selected = append(b.selected, c)
	if len(b.selected) == MaxSelected && b.hooks.OnSelectionFull != nil {
		b.hooks.OnSelectionFull(b.Selected())
	}
	return nil
}

// Toggle 已选中则取消，否则选中。返回操作后是否处于选中状态
func (b *Board) Toggle(c card.Card) (bool, error) {
	if b.IsSelected(c) {
		b.Deselect(c)
		return false, nil
	}
	if err := b.Select(c); err != nil {
		return false, err
	}
	return true, nil
}

// Deselect 取消选中，未选中时什么也不做
func (b *Board) Deselect(c card.Card) {
	b.selected = slices.DeleteFunc(b.selected, c.Same)
}

// DeselectAll 清空选择
func (b *Board) DeselectAll() {
	b.selected = b.selected[:0]
}

// --- 判定与弃牌 ---

// CheckSet 判定选中的三张牌是否为 Set，并记录不合法的属性
func (b *Board) CheckSet() (bool, error) {
	if len(b.selected) != MaxSelected {
		return false, apperrors.IncompleteSelection(len(b.selected), MaxSelected)
	}

	res, err := rule.Check(b.selected...)
	if err != nil {
		return false, err
	}
	b.violations = res.Violations

	if !res.Valid && b.hooks.OnInvalidSet != nil {
		b.hooks.OnInvalidSet(b.Selected(), b.Violations())
	}
	return res.Valid, nil
}

// Violations 最近一次 CheckSet 发现的不合法属性
func (b *Board) Violations() []card.Attribute {
	return slices.Clone(b.violations)
}

// DiscardSelected 把选中的牌移出桌面，返回被移除的牌
func (b *Board) DiscardSelected() []card.Card {
	removed := make([]card.Card, 0, len(b.selected))
	for i := len(b.selected) - 1; i >= 0; i-- {
		c := b.selected[i]
		if b.RemoveCard(c) {
			removed = append(removed, c)
		}
	}
	slices.Reverse(removed)

	if len(removed) == MaxSelected && b.hooks.OnSetRemoved != nil {
		b.hooks.OnSetRemoved(slices.Clone(removed))
	}
	return removed
}

// RemoveCard 取消选中并把牌移出桌面，牌不在桌面上时返回 false
func (b *Board) RemoveCard(c card.Card) bool {
	b.Deselect(c)
	i := slices.IndexFunc(b.cards, c.Same)
	if i < 0 {
		return false
	}
	b.cards = slices.Delete(b.cards, i, i+1)
	return true
}

// --- 查询 ---

// Cards 返回桌面牌的副本
func (b *Board) Cards() []card.Card { return slices.Clone(b.cards) }

// Selected 返回已选牌的副本，按选择顺序
func (b *Board) Selected() []card.Card { return slices.Clone(b.selected) }

func (b *Board) Len() int           { return len(b.cards) }
func (b *Board) SelectedCount() int { return len(b.selected) }
func (b *Board) Full() bool         { return len(b.selected) == MaxSelected }
func (b *Board) Deck() *card.Deck   { return b.deck }
func (b *Board) InitialSize() int   { return b.initialSize }
func (b *Board) RowWidth() int      { return b.rowWidth }

// IsSelected 按实例判断牌是否已选中
func (b *Board) IsSelected(c card.Card) bool {
	return slices.ContainsFunc(b.selected, c.Same)
}

// Contains 按实例判断牌是否在桌面上
func (b *Board) Contains(c card.Card) bool {
	return slices.ContainsFunc(b.cards, c.Same)
}

// Card 按实例编号查找桌面上的牌
func (b *Board) Card(id int) (card.Card, bool) {
	for _, c := range b.cards {
		if c.ID() == id {
			return c, true
		}
	}
	return card.Card{}, false
}

// At 返回第 i 张牌
func (b *Board) At(i int) (card.Card, bool) {
	if i < 0 || i >= len(b.cards) {
		return card.Card{}, false
	}
	return b.cards[i], true
}
