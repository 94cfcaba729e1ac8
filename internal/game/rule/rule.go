package rule

import (
	"strings"

	"github.com/palemoky/set-game/internal/apperrors"
	"github.com/palemoky/set-game/internal/game/card"
)

// SetSize 一组 Set 的牌数
const SetSize = 3

// Result 三张牌的校验结果
type Result struct {
	Valid      bool
	Violations []card.Attribute // 不满足"全同或全异"的属性，按 card.Attributes 顺序
}

// String 返回校验结果的简短说明
func (r Result) String() string {
	if r.Valid {
		return "set"
	}
	names := make([]string, len(r.Violations))
	for i, a := range r.Violations {
		names[i] = a.String()
	}
	return "not a set: " + strings.Join(names, ", ")
}

// ValidAttribute 三个取值全同或全异。取值均在 0..2 时等价于三者之和模 3 为 0
func ValidAttribute(x, y, z int) bool {
	return (x+y+z)%card.NumValues == 0
}

// IsValidSet 判断三张牌是否组成 Set
func IsValidSet(a, b, c card.Card) bool {
	for _, attr := range card.Attributes {
		if !ValidAttribute(a.Value(attr), b.Value(attr), c.Value(attr)) {
			return false
		}
	}
	return true
}

// Violations 返回三张牌中不合法的属性
func Violations(a, b, c card.Card) []card.Attribute {
	var bad []card.Attribute
	for _, attr := range card.Attributes {
		if !ValidAttribute(a.Value(attr), b.Value(attr), c.Value(attr)) {
			bad = append(bad, attr)
		}
	}
	return bad
}

// Check 校验恰好三张牌，牌数不对时返回 ErrWrongArity
func Check(cards ...card.Card) (Result, error) {
	if len(cards) != SetSize {
		return Result{}, apperrors.WrongArity(len(cards))
	}
	bad := Violations(cards[0], cards[1], cards[2])
	return Result{Valid: len(bad) == 0, Violations: bad}, nil
}
