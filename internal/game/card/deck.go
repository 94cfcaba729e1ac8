package card

import (
	"math/rand/v2"
	"slices"

	"github.com/palemoky/set-game/internal/apperrors"
)

// FullDeckSize 一副完整的牌：3^4 = 81 张
const FullDeckSize = NumValues * NumValues * NumValues * NumValues

// Deck 尚未发出的牌，无序
type Deck struct {
	cards  []Card
	rng    *rand.Rand
	nextID int
}

// NewSeededRand 返回确定性的随机源，用于测试和复现
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewDeck 生成全部 81 种组合，每种一张。rng 为 nil 时使用随机种子
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = defaultRand()
	}
	d := &Deck{cards: make([]Card, 0, FullDeckSize), rng: rng}
	for fill := range NumValues {
		for shape := range NumValues {
			for color := range NumValues {
				for count := range NumValues {
					d.nextID++
					d.cards = append(d.cards, newCard(d.nextID, Key{shape, color, count, fill}))
				}
			}
		}
	}
	return d
}

// NewDeckFrom 用指定的牌组成牌堆。没有实例编号的牌会被分配新编号
func NewDeckFrom(cards []Card, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = defaultRand()
	}
	d := &Deck{cards: make([]Card, 0, len(cards)), rng: rng}
	for _, c := range cards {
		d.nextID = max(d.nextID, c.id)
	}
	for _, c := range cards {
		if c.id == 0 {
			d.nextID++
			c = c.withID(d.nextID)
		}
		d.cards = append(d.cards, c)
	}
	return d
}

// Draw 随机抽出一张牌并从牌堆移除，牌堆为空时返回 ErrEmptyDeck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, apperrors.ErrEmptyDeck
	}
	i := d.rng.IntN(len(d.cards))
	c := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)
	return c, nil
}

// Len 剩余牌数
func (d *Deck) Len() int { return len(d.cards) }

// Empty 牌堆是否已空
func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Contains 牌堆中是否还有该属性组合的牌
func (d *Deck) Contains(k Key) bool {
	return slices.ContainsFunc(d.cards, func(c Card) bool { return c.key == k })
}

// Cards 返回剩余牌的副本
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
