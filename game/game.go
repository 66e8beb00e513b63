// Package game is the Cluedo rules engine: seating, dealing, turn order,
// movement bookkeeping, suspicions and accusations for a single game.
//
// A Game is a plain in-memory state machine. It holds no locks; callers must
// serialise every call on one Game. Separate Games share nothing.
package game

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/minaorangina/cluedo/activity"
	"github.com/minaorangina/cluedo/board"
	"github.com/minaorangina/cluedo/deck"
	"github.com/minaorangina/cluedo/refdata"
	"github.com/sirupsen/logrus"
)

var (
	ErrGameFull         = errors.New("all seats have been taken")
	ErrDuplicateSeat    = errors.New("seat has already been taken")
	ErrAlreadyStarted   = errors.New("game has already started")
	ErrNotEnoughPlayers = errors.New("game needs every seat filled to start")
)

const dieFaces = 6

// Board answers movement and room questions about the board.
type Board interface {
	ValidateMove(dest, cur string, inRoom bool, die int) bool
	Room(pos string) (refdata.Room, bool)
	IsRoom(pos string) bool
	ConnectedRoom(pos string) string
	AddRooms(rooms []refdata.Room)
	Cells() []string
	Rooms() []string
}

// Distributor picks the murder combination and deals out the other cards.
type Distributor interface {
	RandomCombination() deck.Combination
	GatherRemainingCards()
	HasRemainingCard() bool
	RandomCard() deck.Card
	Remaining() []deck.Card
}

// ActivityLog is an append-only record of events.
type ActivityLog interface {
	AddActivity(text string) time.Time
	ActivitiesAfter(t time.Time) []activity.Activity
}

type settings struct {
	data        *refdata.Data
	board       Board
	distributor Distributor
	clock       func() time.Time
	rng         *rand.Rand
	logger      logrus.FieldLogger
}

// Option configures a Game
type Option func(*settings)

// WithReferenceData replaces the default roster, weapons and rooms
func WithReferenceData(d *refdata.Data) Option {
	return func(s *settings) { s.data = d }
}

func WithBoard(b Board) Option {
	return func(s *settings) { s.board = b }
}

func WithDistributor(d Distributor) Option {
	return func(s *settings) { s.distributor = d }
}

// WithClock sets the clock activities are stamped with
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

// WithRand sets the source for die rolls and for the default distributor
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) { s.logger = l }
}

// Game holds the whole state of one game of Cluedo.
type Game struct {
	id              string
	numberOfPlayers int
	data            *refdata.Data

	board       Board
	distributor Distributor
	activities  ActivityLog
	clock       func() time.Time
	rng         *rand.Rand
	log         logrus.FieldLogger

	seats    []*Player // sorted by character turn
	unseated []*Character

	murder  deck.Combination
	started bool

	turn       int
	dieValue   int
	hasMoved   bool
	suspicion  *suspicion
	accusation *accusation

	won    bool
	winner string
}

// New constructs a game waiting for numberOfPlayers players
func New(id string, numberOfPlayers int, opts ...Option) *Game {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	if s.data == nil {
		s.data = refdata.Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.board == nil {
		s.board = board.NewPath(s.data.Board.FirstCell, s.data.Board.LastCell)
	}
	if s.distributor == nil {
		s.distributor = deck.NewDistributor(s.data, s.rng)
	}
	if s.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.logger = discard
	}

	clock := activity.Monotonic(s.clock)

	return &Game{
		id:              id,
		numberOfPlayers: numberOfPlayers,
		data:            s.data,
		board:           s.board,
		distributor:     s.distributor,
		activities:      activity.NewLog(clock),
		clock:           clock,
		rng:             s.rng,
		log:             s.logger.WithField("game", id),
		seats:           []*Player{},
		unseated:        []*Character{},
		turn:            1,
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) NumberOfPlayers() int {
	return g.numberOfPlayers
}

// AddPlayer seats a player under seatID and gives them the next character
// in roster order.
func (g *Game) AddPlayer(name, seatID string) error {
	if g.started {
		return ErrAlreadyStarted
	}
	if len(g.seats) >= g.numberOfPlayers || len(g.seats) >= len(g.data.Characters) {
		return ErrGameFull
	}
	if _, ok := g.Player(seatID); ok {
		return ErrDuplicateSeat
	}

	turn := len(g.seats) + 1
	character := newCharacter(g.data.Characters[turn-1], turn)
	g.seats = append(g.seats, newPlayer(seatID, name, character, activity.NewLog(g.clock)))

	g.log.WithFields(logrus.Fields{
		"seat":      seatID,
		"character": character.Name,
	}).Debug("player seated")

	return nil
}

func (g *Game) PlayerCount() int {
	return len(g.seats)
}

func (g *Game) HaveAllPlayersJoined() bool {
	return len(g.seats) == g.numberOfPlayers
}

func (g *Game) HasStarted() bool {
	return g.started
}

// Player finds a seated player by seat id
func (g *Game) Player(seatID string) (*Player, bool) {
	for _, p := range g.seats {
		if p.id == seatID {
			return p, true
		}
	}
	return nil, false
}

// Players returns the seated players in turn order
func (g *Game) Players() []*Player {
	ps := make([]*Player, len(g.seats))
	copy(ps, g.seats)
	return ps
}

// ActivePlayers returns the players who still take turns
func (g *Game) ActivePlayers() []*Player {
	active := []*Player{}
	for _, p := range g.seats {
		if p.active {
			active = append(active, p)
		}
	}
	return active
}

// Start draws the murder combination, deals every other card round-robin
// from the first seat and puts the unseated characters on the board.
func (g *Game) Start() error {
	if g.started {
		return ErrAlreadyStarted
	}
	if len(g.seats) == 0 || !g.HaveAllPlayersJoined() {
		return ErrNotEnoughPlayers
	}

	g.murder = g.distributor.RandomCombination()
	g.distributor.GatherRemainingCards()
	g.distributeCards()
	g.addInactivePlayers()
	g.board.AddRooms(g.data.Rooms)
	g.addActivity("Game has started")
	g.started = true

	g.log.WithField("players", len(g.seats)).Info("game started")
	return nil
}

// distributeCards deals the pool round-robin from the first seat. The deal
// stops after as many cards as the pool held when dealing began.
func (g *Game) distributeCards() {
	pool := len(g.distributor.Remaining())
	for i := 0; i < pool && g.distributor.HasRemainingCard(); i++ {
		g.seats[i%len(g.seats)].addCard(g.distributor.RandomCard())
	}
	g.log.WithField("cards", pool).Debug("cards dealt")
}

func (g *Game) addInactivePlayers() {
	for i := len(g.seats); i < len(g.data.Characters); i++ {
		g.unseated = append(g.unseated, newCharacter(g.data.Characters[i], i+1))
	}
}

// State is Win after a correct accusation, Draw once every seated player
// has been eliminated, and Running otherwise.
func (g *Game) State() State {
	if g.won {
		return Win
	}
	if len(g.seats) > 0 && len(g.ActivePlayers()) == 0 {
		return Draw
	}
	return Running
}

// Winner is the name of the player who solved the murder, if anyone has
func (g *Game) Winner() string {
	return g.winner
}

func (g *Game) addActivity(text string) time.Time {
	return g.activities.AddActivity(text)
}

func (g *Game) currentIdx() int {
	for i, p := range g.seats {
		if p.character.Turn == g.turn {
			return i
		}
	}
	return -1
}

// moveToken brings the named character to pos: a seated player's character
// if someone plays it, the unseated token otherwise.
func (g *Game) moveToken(name, pos string, inRoom bool) {
	for _, p := range g.seats {
		if p.character.Name == name {
			p.updatePos(pos, inRoom)
			return
		}
	}
	for _, c := range g.unseated {
		if c.Name == name {
			c.moveTo(pos)
			return
		}
	}
}
