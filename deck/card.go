package deck

import (
	"encoding/json"
	"fmt"
)

// CardType is the kind of a card: room, weapon or character
type CardType int

const (
	Room CardType = iota
	Weapon
	Character
)

var cardTypeNames = []string{"room", "weapon", "character"}

func (t CardType) String() string {
	if t < Room || t > Character {
		return ""
	}
	return cardTypeNames[t]
}

// ParseCardType is the inverse of CardType.String
func ParseCardType(s string) (CardType, error) {
	for i, name := range cardTypeNames {
		if name == s {
			return CardType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card type %q", s)
}

func (t CardType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CardType) UnmarshalText(text []byte) error {
	parsed, err := ParseCardType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Card represents a single card. Cards are plain values and compare with ==.
type Card struct {
	Name string   `json:"name"`
	Type CardType `json:"type"`
}

// NewCard constructs a card
func NewCard(name string, t CardType) Card {
	return Card{Name: name, Type: t}
}

func (c Card) String() string {
	return c.Name
}

// Combination is one room, one weapon and one character. It is the shape of
// the murder solution as well as of every suspicion and accusation.
type Combination struct {
	Room      Card
	Weapon    Card
	Character Card
}

// NewCombination builds a combination from card names
func NewCombination(room, weapon, character string) Combination {
	return Combination{
		Room:      NewCard(room, Room),
		Weapon:    NewCard(weapon, Weapon),
		Character: NewCard(character, Character),
	}
}

// Equal compares the names of all three cards.
func (c Combination) Equal(other Combination) bool {
	return c.Room.Name == other.Room.Name &&
		c.Weapon.Name == other.Weapon.Name &&
		c.Character.Name == other.Character.Name
}

// Contains reports whether card is one of the three cards.
func (c Combination) Contains(card Card) bool {
	for _, member := range c.Cards() {
		if member == card {
			return true
		}
	}
	return false
}

// Cards returns the cards in room, weapon, character order
func (c Combination) Cards() []Card {
	return []Card{c.Room, c.Weapon, c.Character}
}

// Valid reports whether each slot holds a named card of the right type.
func (c Combination) Valid() bool {
	return c.Room.Name != "" && c.Room.Type == Room &&
		c.Weapon.Name != "" && c.Weapon.Type == Weapon &&
		c.Character.Name != "" && c.Character.Type == Character
}

func (c Combination) String() string {
	return fmt.Sprintf("%s with the %s in the %s", c.Character.Name, c.Weapon.Name, c.Room.Name)
}

type combinationJSON struct {
	Room      string `json:"room"`
	Weapon    string `json:"weapon"`
	Character string `json:"character"`
}

// MarshalJSON flattens a combination to its three card names
func (c Combination) MarshalJSON() ([]byte, error) {
	return json.Marshal(combinationJSON{
		Room:      c.Room.Name,
		Weapon:    c.Weapon.Name,
		Character: c.Character.Name,
	})
}

func (c *Combination) UnmarshalJSON(data []byte) error {
	var raw combinationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = NewCombination(raw.Room, raw.Weapon, raw.Character)
	return nil
}
