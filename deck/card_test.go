package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardType(t *testing.T) {
	cases := []struct {
		cardType CardType
		expected string
	}{
		{Room, "room"},
		{Weapon, "weapon"},
		{Character, "character"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.cardType.String())

		parsed, err := ParseCardType(c.expected)
		require.NoError(t, err)
		assert.Equal(t, c.cardType, parsed)
	}

	t.Run("unknown type", func(t *testing.T) {
		_, err := ParseCardType("spoon")
		assert.Error(t, err)
		assert.Equal(t, "", CardType(7).String())
	})
}

func TestCombination(t *testing.T) {
	comb := NewCombination("Library", "Knife", "Col. Mustard")

	t.Run("equality compares all three names", func(t *testing.T) {
		assert.True(t, comb.Equal(NewCombination("Library", "Knife", "Col. Mustard")))
		assert.False(t, comb.Equal(NewCombination("Library", "Rope", "Col. Mustard")))
		assert.False(t, comb.Equal(NewCombination("Hall", "Knife", "Col. Mustard")))
		assert.False(t, comb.Equal(NewCombination("Library", "Knife", "Prof. Plum")))
	})

	t.Run("contains checks name and type", func(t *testing.T) {
		assert.True(t, comb.Contains(NewCard("Knife", Weapon)))
		assert.True(t, comb.Contains(NewCard("Library", Room)))
		assert.False(t, comb.Contains(NewCard("Knife", Room)))
		assert.False(t, comb.Contains(NewCard("Rope", Weapon)))
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, comb.Valid())
		assert.False(t, NewCombination("", "Knife", "Col. Mustard").Valid())
		assert.False(t, Combination{}.Valid())

		swapped := comb
		swapped.Room = NewCard("Library", Weapon)
		assert.False(t, swapped.Valid())
	})

	t.Run("json uses card names", func(t *testing.T) {
		data, err := json.Marshal(comb)
		require.NoError(t, err)
		assert.JSONEq(t, `{"room":"Library","weapon":"Knife","character":"Col. Mustard"}`, string(data))

		var got Combination
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, comb, got)
	})

	t.Run("card json carries its type", func(t *testing.T) {
		data, err := json.Marshal(NewCard("Knife", Weapon))
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Knife","type":"weapon"}`, string(data))
	})
}
