package game

import (
	"fmt"

	"github.com/minaorangina/cluedo/deck"
	"github.com/sirupsen/logrus"
)

// Turn is the turn index of the character whose turn it is
func (g *Game) Turn() int {
	return g.turn
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() (*Player, bool) {
	idx := g.currentIdx()
	if idx < 0 {
		return nil, false
	}
	return g.seats[idx], true
}

func (g *Game) CurrentPlayerID() string {
	p, ok := g.CurrentPlayer()
	if !ok {
		return ""
	}
	return p.id
}

func (g *Game) IsCurrentPlayer(seatID string) bool {
	p, ok := g.CurrentPlayer()
	return ok && p.id == seatID
}

// actor returns the current player if seatID names them and they may act.
func (g *Game) actor(seatID string) (*Player, bool) {
	if !g.started || g.State() != Running {
		return nil, false
	}
	p, ok := g.CurrentPlayer()
	if !ok || p.id != seatID || !p.active {
		return nil, false
	}
	return p, true
}

// RollDie returns a value from 1 to 6. The value is kept for the rest of the
// turn, so rolling again returns the same number.
func (g *Game) RollDie() int {
	if g.dieValue == 0 {
		g.dieValue = g.rng.Intn(dieFaces) + 1
	}
	return g.dieValue
}

// DieValue is the roll for this turn, or 0 before the die is rolled
func (g *Game) DieValue() int {
	return g.dieValue
}

func (g *Game) HasMoved() bool {
	return g.hasMoved
}

// ValidateMove reports whether the current player could move to pos
func (g *Game) ValidateMove(pos string) bool {
	p, ok := g.CurrentPlayer()
	if !ok {
		return false
	}
	return g.board.ValidateMove(pos, p.character.Position, p.inRoom, g.dieValue)
}

// InvalidMoves lists every room and cell the current player cannot reach
func (g *Game) InvalidMoves() []string {
	positions := append(g.board.Rooms(), g.board.Cells()...)
	invalid := []string{}
	for _, pos := range positions {
		if !g.ValidateMove(pos) {
			invalid = append(invalid, pos)
		}
	}
	return invalid
}

// Move moves the current player to pos. It fails if the player has already
// moved or suspected this turn, or if the board does not allow the move.
func (g *Game) Move(seatID, pos string) bool {
	p, ok := g.actor(seatID)
	if !ok || g.hasMoved {
		return false
	}
	if !g.ValidateMove(pos) {
		return false
	}

	_, inRoom := g.board.Room(pos)
	p.updatePos(pos, inRoom)
	g.hasMoved = true

	g.log.WithFields(logrus.Fields{
		"seat":     p.id,
		"position": pos,
	}).Debug("player moved")
	return true
}

func (g *Game) IsPlayerInRoom() bool {
	p, ok := g.CurrentPlayer()
	return ok && g.board.IsRoom(p.character.Position)
}

// SecretPassage names the room the current player could reach by secret
// passage, or "" if there is none.
func (g *Game) SecretPassage() string {
	p, ok := g.CurrentPlayer()
	if !ok || !p.inRoom {
		return ""
	}
	return g.board.ConnectedRoom(p.character.Position)
}

// CanSuspect reports whether the player may declare a suspicion where they
// stand. Rooms are compared by name.
func (g *Game) CanSuspect(seatID string) bool {
	p, ok := g.Player(seatID)
	return ok && p.canSuspect()
}

func (g *Game) IsSuspecting() bool {
	return g.suspicion != nil
}

// Suspect declares a suspicion for the current player. The suspected
// character is brought to the suspector, then the seats after the suspector
// are searched in turn order for someone who can rule it out. Suspecting
// uses up the turn's move.
func (g *Game) Suspect(seatID string, comb deck.Combination) bool {
	p, ok := g.actor(seatID)
	if !ok || g.suspicion != nil || !comb.Valid() || !p.canSuspect() {
		return false
	}

	g.moveToken(comb.Character.Name, p.character.Position, p.inRoom)

	s := newSuspicion(comb, p)
	resolve(s, g.seats, g.currentIdx())
	if !s.canBeCancelled {
		g.addActivity(noOneRuledOut)
	}
	g.suspicion = s
	g.hasMoved = true

	g.log.WithFields(logrus.Fields{
		"seat":        p.id,
		"combination": comb.String(),
		"canceller":   s.cancellerID,
	}).Debug("suspicion declared")
	return true
}

// CanRuleOut reports whether seatID may disprove the current suspicion with
// the named card.
func (g *Game) CanRuleOut(seatID, cardName string) bool {
	s := g.suspicion
	if s == nil || !s.pending() || s.cancellerID != seatID {
		return false
	}
	_, ok := s.cancellingCard(cardName)
	return ok
}

// RuleOut shows one of the canceller's matching cards to the suspector.
func (g *Game) RuleOut(seatID, cardName string) bool {
	if !g.CanRuleOut(seatID, cardName) {
		return false
	}
	s := g.suspicion
	card, _ := s.cancellingCard(cardName)
	s.cancelled = true
	s.ruleOutCard = &card

	if suspector, ok := g.Player(s.suspectorID); ok {
		suspector.addActivity(fmt.Sprintf("Ruled out by %s using %s card", s.cancellerName, card.Type))
	}

	g.log.WithField("seat", seatID).Debug("suspicion ruled out")
	return true
}

// Pass ends the current player's turn and hands it to the next active
// player in turn order. With no active players left the turn stays put.
func (g *Game) Pass(seatID string) bool {
	if !g.started || g.won {
		return false
	}
	p, ok := g.CurrentPlayer()
	if !ok || p.id != seatID {
		return false
	}

	p.lastSuspicion = g.suspicion
	g.hasMoved = false
	g.dieValue = 0
	g.suspicion = nil
	g.accusation = nil
	g.turn = g.nextActiveTurn()

	g.log.WithFields(logrus.Fields{
		"seat": p.id,
		"turn": g.turn,
	}).Debug("turn passed")
	return true
}

func (g *Game) nextActiveTurn() int {
	n := len(g.seats)
	idx := g.currentIdx()
	if n == 0 || idx < 0 {
		return g.turn
	}
	for i := 1; i <= n; i++ {
		p := g.seats[(idx+i)%n]
		if p.active {
			return p.character.Turn
		}
	}
	return g.turn
}

func (g *Game) IsAccusing() bool {
	return g.accusation != nil
}

// Accuse checks comb against the murder combination. A correct accusation
// wins the game; a wrong one eliminates the accuser from further turns.
// The turn still has to be passed afterwards.
func (g *Game) Accuse(seatID string, comb deck.Combination) bool {
	p, ok := g.actor(seatID)
	if !ok || g.accusation != nil || !comb.Valid() {
		return false
	}

	g.moveToken(comb.Character.Name, p.character.Position, p.inRoom)

	a := &accusation{
		combination: comb,
		accuserID:   p.id,
		accuser:     p.name,
		correct:     g.murder.Equal(comb),
	}
	g.accusation = a

	if a.correct {
		g.won = true
		g.winner = p.name
		g.addActivity(fmt.Sprintf("%s has won the game", p.name))
		g.log.WithField("winner", p.name).Info("murder solved")
		return true
	}

	p.deactivate()
	g.addActivity(fmt.Sprintf("%s accusation failed", p.name))
	g.log.WithField("seat", p.id).Info("accusation failed")
	return true
}
