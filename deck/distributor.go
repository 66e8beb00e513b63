package deck

import (
	"math/rand"

	"github.com/minaorangina/cluedo/refdata"
)

// Distributor picks the murder combination and deals the rest of the deck
// one card at a time from a shuffled pool.
type Distributor struct {
	all       Deck
	murder    Combination
	remaining Deck
	rng       *rand.Rand
}

// NewDistributor constructs a Distributor over the full deck
func NewDistributor(data *refdata.Data, rng *rand.Rand) *Distributor {
	return &Distributor{
		all: New(data),
		rng: rng,
	}
}

// RandomCombination draws one room, one weapon and one character uniformly
// at random and remembers them as withheld.
func (d *Distributor) RandomCombination() Combination {
	d.murder = Combination{
		Room:      d.pick(d.all.OfType(Room)),
		Weapon:    d.pick(d.all.OfType(Weapon)),
		Character: d.pick(d.all.OfType(Character)),
	}
	return d.murder
}

// GatherRemainingCards builds the pool of every card not in the murder
// combination, shuffled.
func (d *Distributor) GatherRemainingCards() {
	d.remaining = Deck{}
	for _, c := range d.all {
		if !d.murder.Contains(c) {
			d.remaining = append(d.remaining, c)
		}
	}
	d.remaining.Shuffle(d.rng)
}

// HasRemainingCard reports whether the pool still has cards
func (d *Distributor) HasRemainingCard() bool {
	return len(d.remaining) > 0
}

// RandomCard deals the top card of the shuffled pool. It returns the zero
// Card once the pool is empty.
func (d *Distributor) RandomCard() Card {
	dealt := d.remaining.Deal(1)
	if len(dealt) == 0 {
		return Card{}
	}
	return dealt[0]
}

func (d *Distributor) pick(cards []Card) Card {
	return cards[d.rng.Intn(len(cards))]
}
