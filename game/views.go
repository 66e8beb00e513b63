package game

import (
	"sort"
	"time"

	"github.com/minaorangina/cluedo/activity"
	"github.com/minaorangina/cluedo/deck"
)

// PlayerDetails is a snapshot of a seat. ID and Cards are only filled in for
// the player the snapshot is meant for, since the seat id is what a player
// acts with.
type PlayerDetails struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name"`
	InRoom    bool        `json:"inRoom"`
	Active    bool        `json:"active"`
	Character Character   `json:"character"`
	Cards     []deck.Card `json:"cards,omitempty"`
}

func detailsOf(p *Player) PlayerDetails {
	return PlayerDetails{
		Name:      p.name,
		InRoom:    p.inRoom,
		Active:    p.active,
		Character: *p.character,
	}
}

// PlayerDetails returns the public snapshot of one seat
func (g *Game) PlayerDetails(seatID string) (PlayerDetails, bool) {
	p, ok := g.Player(seatID)
	if !ok {
		return PlayerDetails{}, false
	}
	return detailsOf(p), true
}

// PlayerData is PlayerDetails plus the player's seat id and hand
func (g *Game) PlayerData(seatID string) (PlayerDetails, bool) {
	p, ok := g.Player(seatID)
	if !ok {
		return PlayerDetails{}, false
	}
	details := detailsOf(p)
	details.ID = p.id
	details.Cards = p.Cards()
	return details, true
}

// AllPlayerDetails lists every seat in turn order as seen by viewerID: only
// the viewer's own entry carries a seat id and cards.
func (g *Game) AllPlayerDetails(viewerID string) []PlayerDetails {
	all := make([]PlayerDetails, 0, len(g.seats))
	for _, p := range g.seats {
		if p.id == viewerID {
			details, _ := g.PlayerData(p.id)
			all = append(all, details)
			continue
		}
		all = append(all, detailsOf(p))
	}
	return all
}

// PlayersPosition returns every token on the board: seated characters in
// turn order followed by the unseated ones.
func (g *Game) PlayersPosition() []Token {
	tokens := make([]Token, 0, len(g.seats)+len(g.unseated))
	for _, p := range g.seats {
		tokens = append(tokens, tokenOf(p.character, true))
	}
	for _, c := range g.unseated {
		tokens = append(tokens, tokenOf(c, false))
	}
	return tokens
}

// SuspicionView projects the current suspicion for one viewer.
func (g *Game) SuspicionView(viewerID string) (SuspicionView, bool) {
	if g.suspicion == nil {
		return SuspicionView{}, false
	}
	return g.suspicion.viewFor(viewerID, g.CurrentPlayerID()), true
}

func (g *Game) AccusationView() (AccusationView, bool) {
	if g.accusation == nil {
		return AccusationView{}, false
	}
	return g.accusation.view(), true
}

// MurderCombination reveals the solution, but only once the game is over.
func (g *Game) MurderCombination() (deck.Combination, bool) {
	if !g.started || g.State() == Running {
		return deck.Combination{}, false
	}
	return g.murder, true
}

// ActivitiesAfter merges the game's log with seatID's private log, oldest
// first.
func (g *Game) ActivitiesAfter(t time.Time, seatID string) []activity.Activity {
	all := g.activities.ActivitiesAfter(t)
	if p, ok := g.Player(seatID); ok {
		all = append(all, p.activitiesAfter(t)...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time.Before(all[j].Time)
	})
	return all
}
