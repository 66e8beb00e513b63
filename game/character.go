package game

import "github.com/minaorangina/cluedo/refdata"

// Character is a token on the board. Turn is fixed by roster order.
type Character struct {
	Name       string `json:"name"`
	TokenColor string `json:"color"`
	Turn       int    `json:"turn"`
	Position   string `json:"position"`
	Start      bool   `json:"start"`
}

func newCharacter(c refdata.Character, turn int) *Character {
	return &Character{
		Name:       c.Name,
		TokenColor: c.Color,
		Turn:       turn,
		Position:   c.Position,
		Start:      true,
	}
}

func (c *Character) moveTo(pos string) {
	c.Position = pos
	c.Start = false
}

// Token is a character's place on the board. Unseated tokens belong to no
// player but are still moved by suspicions and accusations.
type Token struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position string `json:"position"`
	Start    bool   `json:"start"`
	Seated   bool   `json:"seated"`
}

func tokenOf(c *Character, seated bool) Token {
	return Token{
		Name:     c.Name,
		Color:    c.TokenColor,
		Position: c.Position,
		Start:    c.Start,
		Seated:   seated,
	}
}
