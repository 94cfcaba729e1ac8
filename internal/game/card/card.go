package card

import (
	"strconv"

	"github.com/palemoky/set-game/internal/apperrors"
)

// Attribute 定义牌的属性维度
type Attribute int

const (
	Shape Attribute = iota // 形状
	Color                  // 颜色
	Count                  // 数量
	Fill                   // 填充
)

// NumAttributes 属性个数，NumValues 每个属性的取值个数
const (
	NumAttributes = 4
	NumValues     = 3
)

// Attributes 按校验顺序排列的全部属性
var Attributes = [NumAttributes]Attribute{Shape, Color, Count, Fill}

// attributeNames 属性名映射表
var attributeNames = map[Attribute]string{
	Shape: "shape",
	Color: "color",
	Count: "count",
	Fill:  "fill",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return "attribute(" + strconv.Itoa(int(a)) + ")"
}

// valueNames 属性值的显示文本
var valueNames = map[Attribute][NumValues]string{
	Shape: {"squiggle", "diamond", "pill"},
	Color: {"red", "purple", "green"},
	Count: {"1", "2", "3"},
	Fill:  {"solid", "semi", "empty"},
}

// Key 牌的属性向量，可比较，用于按值判等
type Key [NumAttributes]int

// Card 定义一张牌。创建后不可变
type Card struct {
	id          int
	key         Key
	description string
}

// New 按四个属性序号创建一张虚拟牌（ID 为 0）
func New(shape, color, count, fill int) (Card, error) {
	k := Key{shape, color, count, fill}
	for _, attr := range Attributes {
		if v := k[attr]; v < 0 || v >= NumValues {
			return Card{}, apperrors.InvalidAttribute(attr.String(), v)
		}
	}
	return newCard(0, k), nil
}

// MustNew 同 New，属性越界时 panic
func MustNew(shape, color, count, fill int) Card {
	c, err := New(shape, color, count, fill)
	if err != nil {
		panic(err)
	}
	return c
}

// FromKey 由属性向量创建一张虚拟牌
func FromKey(k Key) (Card, error) {
	return New(k[Shape], k[Color], k[Count], k[Fill])
}

func newCard(id int, k Key) Card {
	return Card{id: id, key: k, description: describe(k)}
}

// withID 为牌分配实例编号
func (c Card) withID(id int) Card {
	c.id = id
	return c
}

// ID 返回实例编号。牌堆中的牌从 1 开始编号，0 表示虚拟牌
func (c Card) ID() int { return c.id }

// Key 返回属性向量
func (c Card) Key() Key { return c.key }

// Value 返回指定属性的序号
func (c Card) Value(a Attribute) int { return c.key[a] }

func (c Card) Shape() int { return c.key[Shape] }
func (c Card) Color() int { return c.key[Color] }
func (c Card) Count() int { return c.key[Count] }
func (c Card) Fill() int  { return c.key[Fill] }

// Same 按实例判断两张牌是否为同一张
func (c Card) Same(other Card) bool {
	return c.id != 0 && c.id == other.id
}

// IsZero 是否为零值
func (c Card) IsZero() bool {
	return c.description == ""
}

// Translate 将属性序号翻译为显示文本
func (c Card) Translate(a Attribute) string {
	return translate(a, c.key[a])
}

// Describe 返回形如 "2 red solid diamonds" 的描述
func (c Card) Describe() string {
	if c.description == "" {
		return describe(c.key)
	}
	return c.description
}

func (c Card) String() string {
	return c.Describe()
}

func translate(a Attribute, v int) string {
	names, ok := valueNames[a]
	if !ok || v < 0 || v >= NumValues {
		return ""
	}
	return names[v]
}

// describe 先翻译再比较数量，显示值为 2、3 时名词用复数
func describe(k Key) string {
	count := translate(Count, k[Count])
	desc := count + " " + translate(Color, k[Color]) + " " + translate(Fill, k[Fill]) + " " + translate(Shape, k[Shape])
	if n, err := strconv.Atoi(count); err == nil && n > 1 {
		desc += "s"
	}
	return desc
}
