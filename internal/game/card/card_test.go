package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/set-game/internal/apperrors"
)

func TestNew_RejectsOutOfRangeOrdinals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		values    [4]int
		attribute string
	}{
		{"shape too big", [4]int{3, 0, 0, 0}, "shape"},
		{"negative color", [4]int{0, -1, 0, 0}, "color"},
		{"count too big", [4]int{0, 0, 7, 0}, "count"},
		{"fill too big", [4]int{0, 0, 0, 3}, "fill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.values[0], tt.values[1], tt.values[2], tt.values[3])
			require.ErrorIs(t, err, apperrors.ErrInvalidAttribute)

			var ge *apperrors.GameError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tt.attribute, ge.Attribute)
		})
	}

	assert.Panics(t, func() { MustNew(0, 0, 0, 9) })
}

func TestCard_Translate(t *testing.T) {
	t.Parallel()

	c := MustNew(1, 2, 0, 2)
	assert.Equal(t, "diamond", c.Translate(Shape))
	assert.Equal(t, "green", c.Translate(Color))
	assert.Equal(t, "1", c.Translate(Count))
	assert.Equal(t, "empty", c.Translate(Fill))
	assert.Equal(t, 1, c.Shape())
	assert.Equal(t, 2, c.Color())
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 2, c.Fill())
}

func TestCard_Describe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card     Card
		expected string
	}{
		{MustNew(0, 0, 0, 0), "1 red solid squiggle"},
		{MustNew(1, 1, 1, 1), "2 purple semi diamonds"},
		{MustNew(2, 2, 2, 2), "3 green empty pills"},
		{MustNew(2, 0, 0, 1), "1 red semi pill"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.card.Describe())
			assert.Equal(t, tt.expected, tt.card.String())
		})
	}
}

func TestCard_DescriptionIsPureFunctionOfOrdinals(t *testing.T) {
	t.Parallel()

	for _, c := range NewDeck(NewSeededRand(7)).Cards() {
		twin, err := FromKey(c.Key())
		require.NoError(t, err)
		assert.Equal(t, c.Describe(), twin.Describe())
		assert.Equal(t, describe(c.Key()), c.Describe())
		for _, attr := range Attributes {
			assert.Equal(t, twin.Translate(attr), c.Translate(attr))
			assert.NotEmpty(t, c.Translate(attr))
		}
	}
}

func TestCard_Same(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	a, err := d.Draw()
	require.NoError(t, err)
	b, err := d.Draw()
	require.NoError(t, err)

	assert.True(t, a.Same(a))
	assert.False(t, a.Same(b))

	virtual, err := FromKey(a.Key())
	require.NoError(t, err)
	assert.False(t, virtual.Same(a), "virtual cards have no instance")
	assert.False(t, virtual.Same(virtual))
	assert.Zero(t, virtual.ID())
}

func TestAttribute_String(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, NumAttributes)
	for _, a := range Attributes {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"shape", "color", "count", "fill"}, names)
	assert.Equal(t, "attribute(9)", Attribute(9).String())
}
