package sim

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/minaorangina/cluedo/board"
	"github.com/minaorangina/cluedo/deck"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/refdata"
)

// bot remembers which cards cannot be part of the murder
type bot struct {
	seat   string
	data   *refdata.Data
	all    map[deck.CardType][]string
	own    map[string]bool
	ruled  map[string]bool
	solved map[deck.CardType]string
}

func newBot(seat string, data *refdata.Data, hand []deck.Card) *bot {
	b := &bot{
		seat:   seat,
		data:   data,
		all:    map[deck.CardType][]string{},
		own:    map[string]bool{},
		ruled:  map[string]bool{},
		solved: map[deck.CardType]string{},
	}
	for _, c := range deck.New(data) {
		b.all[c.Type] = append(b.all[c.Type], c.Name)
	}
	for _, c := range hand {
		b.own[c.Name] = true
		b.ruled[c.Name] = true
	}
	return b
}

// candidates are the names of type t that could still be the murder card
func (b *bot) candidates(t deck.CardType) []string {
	if name, ok := b.solved[t]; ok {
		return []string{name}
	}
	names := []string{}
	for _, name := range b.all[t] {
		if !b.ruled[name] {
			names = append(names, name)
		}
	}
	return names
}

func (b *bot) solution() (deck.Combination, bool) {
	rooms := b.candidates(deck.Room)
	weapons := b.candidates(deck.Weapon)
	characters := b.candidates(deck.Character)
	if len(rooms) != 1 || len(weapons) != 1 || len(characters) != 1 {
		return deck.Combination{}, false
	}
	return deck.NewCombination(rooms[0], weapons[0], characters[0]), true
}

func (b *bot) learnShown(name string) {
	b.ruled[name] = true
}

// learnUndisproved: nobody else holds any of comb, so every card of it the
// bot does not hold itself is in the murder.
func (b *bot) learnUndisproved(comb deck.Combination) {
	for _, c := range comb.Cards() {
		if !b.own[c.Name] {
			b.solved[c.Type] = c.Name
		}
	}
}

func (b *bot) chooseSuspicion(room string, rng *rand.Rand) deck.Combination {
	pick := func(t deck.CardType) string {
		names := b.candidates(t)
		if len(names) == 0 {
			names = b.all[t]
		}
		return names[rng.Intn(len(names))]
	}
	return deck.NewCombination(room, pick(deck.Weapon), pick(deck.Character))
}

// chooseMove heads for a room that could still be the murder room: straight
// in when one is reachable, otherwise to the reachable cell nearest a door.
func (b *bot) chooseMove(g *game.Game, path *board.Path, rng *rand.Rand) string {
	invalid := map[string]bool{}
	for _, pos := range g.InvalidMoves() {
		invalid[pos] = true
	}

	wanted := map[string]bool{}
	for _, name := range b.candidates(deck.Room) {
		wanted[name] = true
	}

	rooms := []string{}
	for _, name := range path.Rooms() {
		if !invalid[name] && wanted[name] {
			rooms = append(rooms, name)
		}
	}
	if len(rooms) > 0 {
		return rooms[rng.Intn(len(rooms))]
	}

	doors := []int{}
	for name := range wanted {
		if r, ok := path.Room(name); ok {
			doors = append(doors, r.Doors...)
		}
	}
	sort.Ints(doors)

	best, bestDist := "", -1
	for _, cell := range path.Cells() {
		if invalid[cell] {
			continue
		}
		n, _ := strconv.Atoi(cell)
		d := nearest(n, doors, b.data.Board)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cell, d
		}
	}
	return best
}

func nearest(cell int, doors []int, bd refdata.Board) int {
	size := bd.LastCell - bd.FirstCell + 1
	best := size
	for _, door := range doors {
		d := cell - door
		if d < 0 {
			d = -d
		}
		if size-d < d {
			d = size - d
		}
		if d < best {
			best = d
		}
	}
	return best
}
