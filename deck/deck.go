package deck

import (
	"math/rand"

	"github.com/minaorangina/cluedo/refdata"
)

// Deck represents a deck of cards
type Deck []Card

// New creates the full deck described by the reference data, rooms first,
// then weapons, then characters.
func New(data *refdata.Data) Deck {
	cards := Deck{}
	for _, name := range data.RoomNames() {
		cards = append(cards, NewCard(name, Room))
	}
	for _, name := range data.Weapons {
		cards = append(cards, NewCard(name, Weapon))
	}
	for _, name := range data.CharacterNames() {
		cards = append(cards, NewCard(name, Character))
	}
	return cards
}

// Shuffle puts the deck in a random order
func (d *Deck) Shuffle(rng *rand.Rand) {
	cards := *d
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Deal removes n cards from the top of the deck and returns them. Asking for
// more cards than are left deals nothing.
func (d *Deck) Deal(n int) []Card {
	left := len(*d) - n
	if n < 0 || left < 0 {
		return []Card{}
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[left:])
	*d = (*d)[:left]
	return dealt
}

// OfType returns the cards of one type, in deck order
func (d Deck) OfType(t CardType) []Card {
	cards := []Card{}
	for _, c := range d {
		if c.Type == t {
			cards = append(cards, c)
		}
	}
	return cards
}
