package apperrors

import (
	"errors"
	"fmt"
)

// Kind 错误类别
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyDeck
	KindSelectionFull
	KindAlreadySelected
	KindIncompleteSelection
	KindWrongArity
	KindInvalidAttribute
	KindCardNotOnBoard
)

var kindNames = map[Kind]string{
	KindEmptyDeck:           "empty_deck",
	KindSelectionFull:       "selection_full",
	KindAlreadySelected:     "already_selected",
	KindIncompleteSelection: "incomplete_selection",
	KindWrongArity:          "wrong_arity",
	KindInvalidAttribute:    "invalid_attribute",
	KindCardNotOnBoard:      "card_not_on_board",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// GameError 游戏错误，按 Kind 区分，附带出错的牌或属性
type GameError struct {
	Kind    Kind
	Message string

	CardID    int    // 相关牌的实例编号，0 表示无
	Attribute string // 相关属性名
	Value     int    // 非法的属性值
	Count     int    // 实际的牌数
}

func (e *GameError) Error() string {
	return e.Message
}

// Is 按 Kind 匹配，使 errors.Is(err, ErrSelectionFull) 对带上下文的错误同样成立
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// 预定义错误
var (
	ErrEmptyDeck           = &GameError{Kind: KindEmptyDeck, Message: "the deck is empty"}
	ErrSelectionFull       = &GameError{Kind: KindSelectionFull, Message: "the maximum number of cards (3) has already been selected"}
	ErrAlreadySelected     = &GameError{Kind: KindAlreadySelected, Message: "this card is already selected"}
	ErrIncompleteSelection = &GameError{Kind: KindIncompleteSelection, Message: "incorrect number of cards to make a set"}
	ErrWrongArity          = &GameError{Kind: KindWrongArity, Message: "a set is made of exactly 3 cards"}
	ErrInvalidAttribute    = &GameError{Kind: KindInvalidAttribute, Message: "attribute value out of range"}
	ErrCardNotOnBoard      = &GameError{Kind: KindCardNotOnBoard, Message: "card is not on the board"}
)

// AlreadySelected 返回带牌编号的 ErrAlreadySelected
func AlreadySelected(cardID int) error {
	return &GameError{Kind: KindAlreadySelected, Message: ErrAlreadySelected.Message, CardID: cardID}
}

// SelectionFull 返回带牌编号的 ErrSelectionFull
func SelectionFull(cardID, max int) error {
	return &GameError{
		Kind:    KindSelectionFull,
		Message: fmt.Sprintf("the maximum number of cards (%d) has already been selected", max),
		CardID:  cardID,
		Count:   max,
	}
}

// IncompleteSelection 当前已选牌数不足
func IncompleteSelection(have, want int) error {
	return &GameError{
		Kind:    KindIncompleteSelection,
		Message: fmt.Sprintf("incorrect number of cards to make a set: have %d, want %d", have, want),
		Count:   have,
	}
}

// WrongArity 校验时传入的牌数不是 3
func WrongArity(got int) error {
	return &GameError{
		Kind:    KindWrongArity,
		Message: fmt.Sprintf("a set is made of exactly 3 cards, got %d", got),
		Count:   got,
	}
}

// InvalidAttribute 属性值越界
func InvalidAttribute(attribute string, value int) error {
	return &GameError{
		Kind:      KindInvalidAttribute,
		Message:   fmt.Sprintf("invalid %s value %d: must be 0, 1 or 2", attribute, value),
		Attribute: attribute,
		Value:     value,
	}
}

// CardNotOnBoard 所选的牌不在桌面上
func CardNotOnBoard(cardID int) error {
	return &GameError{
		Kind:    KindCardNotOnBoard,
		Message: fmt.Sprintf("card #%d is not on the board", cardID),
		CardID:  cardID,
	}
}

// KindOf 返回错误链中第一个 GameError 的 Kind
func KindOf(err error) Kind {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}
