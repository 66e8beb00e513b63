package game

import (
	"time"

	"github.com/minaorangina/cluedo/activity"
	"github.com/minaorangina/cluedo/deck"
)

// Player is one seat at the table: who sits there, the character they play,
// the cards they hold and whether they may still take turns.
type Player struct {
	id            string
	name          string
	character     *Character
	cards         []deck.Card
	active        bool
	inRoom        bool
	lastSuspicion *suspicion
	log           ActivityLog
}

func newPlayer(id, name string, character *Character, log ActivityLog) *Player {
	return &Player{
		id:        id,
		name:      name,
		character: character,
		cards:     []deck.Card{},
		active:    true,
		log:       log,
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

// Character returns a copy of the player's character
func (p *Player) Character() Character {
	return *p.character
}

// Cards returns the player's hand in deal order
func (p *Player) Cards() []deck.Card {
	cards := make([]deck.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// IsActive reports whether the player still takes turns. Eliminated players
// keep their cards and still answer suspicions.
func (p *Player) IsActive() bool {
	return p.active
}

func (p *Player) InRoom() bool {
	return p.inRoom
}

func (p *Player) addCard(c deck.Card) {
	p.cards = append(p.cards, c)
}

// updatePos moves the player's token. A player who is moved, by themselves or
// by someone else's suspicion, may suspect again wherever they end up.
func (p *Player) updatePos(pos string, inRoom bool) {
	p.character.moveTo(pos)
	p.inRoom = inRoom
	p.lastSuspicion = nil
}

func (p *Player) deactivate() {
	p.active = false
}

// canSuspect is false only when the player's last own suspicion named the
// room they are standing in.
func (p *Player) canSuspect() bool {
	if p.lastSuspicion == nil {
		return true
	}
	return p.lastSuspicion.combination.Room.Name != p.character.Position
}

func (p *Player) canCancel(comb deck.Combination) bool {
	for _, c := range p.cards {
		if comb.Contains(c) {
			return true
		}
	}
	return false
}

func (p *Player) cancellingCards(comb deck.Combination) []deck.Card {
	cards := []deck.Card{}
	for _, c := range p.cards {
		if comb.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

func (p *Player) addActivity(text string) time.Time {
	return p.log.AddActivity(text)
}

func (p *Player) activitiesAfter(t time.Time) []activity.Activity {
	return p.log.ActivitiesAfter(t)
}
