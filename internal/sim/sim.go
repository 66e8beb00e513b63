// Package sim plays whole games of Cluedo with simple deducing bots.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/minaorangina/cluedo/board"
	"github.com/minaorangina/cluedo/deck"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/refdata"
	"github.com/sirupsen/logrus"
)

var ErrTooManyTurns = errors.New("no one solved the murder in time")

// Result is how a simulated game ended
type Result struct {
	State  game.State
	Winner string
	Turns  int
	Murder deck.Combination
}

// Sim seats one bot per player and drives the game until it ends.
type Sim struct {
	game *game.Game
	data *refdata.Data
	path *board.Path
	rng  *rand.Rand
	log  logrus.FieldLogger
	bots map[string]*bot
}

// New seats numberOfPlayers bots in a new game and starts it
func New(numberOfPlayers int, rng *rand.Rand, logger logrus.FieldLogger) (*Sim, error) {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	data := refdata.Default()
	path := board.NewPath(data.Board.FirstCell, data.Board.LastCell)

	g := game.New("simulation", numberOfPlayers,
		game.WithReferenceData(data),
		game.WithBoard(path),
		game.WithRand(rng),
		game.WithLogger(logger),
	)
	for i := 0; i < numberOfPlayers; i++ {
		if err := g.AddPlayer(fmt.Sprintf("Bot %d", i+1), fmt.Sprintf("bot-%d", i+1)); err != nil {
			return nil, err
		}
	}
	// Start adds the rooms to path
	if err := g.Start(); err != nil {
		return nil, err
	}

	s := &Sim{
		game: g,
		data: data,
		path: path,
		rng:  rng,
		log:  logger.WithField("game", g.ID()),
		bots: map[string]*bot{},
	}
	for _, p := range g.Players() {
		s.bots[p.ID()] = newBot(p.ID(), data, p.Cards())
	}
	return s, nil
}

// Game is the game being simulated
func (s *Sim) Game() *game.Game {
	return s.game
}

// Run plays turns until the game ends or maxTurns have been taken
func (s *Sim) Run(maxTurns int) (Result, error) {
	turns := 0
	for s.game.State() == game.Running {
		if turns >= maxTurns {
			return Result{State: s.game.State(), Turns: turns}, ErrTooManyTurns
		}
		if err := s.takeTurn(); err != nil {
			return Result{State: s.game.State(), Turns: turns}, err
		}
		turns++
	}

	murder, _ := s.game.MurderCombination()
	return Result{
		State:  s.game.State(),
		Winner: s.game.Winner(),
		Turns:  turns,
		Murder: murder,
	}, nil
}

func (s *Sim) takeTurn() error {
	current, ok := s.game.CurrentPlayer()
	if !ok {
		return errors.New("no current player")
	}
	seat := current.ID()
	b := s.bots[seat]
	log := s.log.WithField("seat", seat)

	if !current.IsActive() {
		s.pass(seat)
		return nil
	}

	if comb, ok := b.solution(); ok {
		log.WithField("combination", comb.String()).Debug("accusing")
		s.game.Accuse(seat, comb)
		if s.game.State() == game.Running {
			s.pass(seat)
		}
		return nil
	}

	s.game.RollDie()
	if dest := b.chooseMove(s.game, s.path, s.rng); dest != "" {
		s.game.Move(seat, dest)
	}

	if s.game.IsPlayerInRoom() && s.game.CanSuspect(seat) {
		room := current.Character().Position
		comb := b.chooseSuspicion(room, s.rng)
		if s.game.Suspect(seat, comb) {
			s.resolveSuspicion(b, comb)
		}
	}

	s.pass(seat)
	return nil
}

func (s *Sim) pass(seat string) {
	if !s.game.Pass(seat) {
		s.log.WithField("seat", seat).Warn("could not pass")
	}
}

// resolveSuspicion lets the canceller, if any, show a card and tells the
// suspector what they learned.
func (s *Sim) resolveSuspicion(suspector *bot, comb deck.Combination) {
	for _, p := range s.game.Players() {
		view, _ := s.game.SuspicionView(p.ID())
		if len(view.CancellingCards) == 0 {
			continue
		}
		card := view.CancellingCards[s.rng.Intn(len(view.CancellingCards))]
		s.game.RuleOut(p.ID(), card.Name)
		break
	}

	view, ok := s.game.SuspicionView(suspector.seat)
	if !ok {
		return
	}
	if !view.CanBeCancelled {
		suspector.learnUndisproved(comb)
		return
	}
	if view.RuleOutCard != "" {
		suspector.learnShown(view.RuleOutCard)
	}
}
