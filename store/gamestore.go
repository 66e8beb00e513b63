package store

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/minaorangina/cluedo/game"
	"github.com/sirupsen/logrus"
)

const (
	MinPlayers = 3
	MaxPlayers = 6
)

var (
	ErrUnknownGameID      = errors.New("unknown game ID")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrInvalidPlayerCount = fmt.Errorf("a game needs between %d and %d players", MinPlayers, MaxPlayers)
	ErrMissingName        = errors.New("missing player name")
)

type GameStore interface {
	AddGame(numberOfPlayers int) (string, error)
	FindGame(gameID string) (*Session, bool)
	JoinGame(gameID, name string) (string, error)
	Games() []string
}

// InMemoryGameStore maps game id to the session holding that game
type InMemoryGameStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	gameOpts []game.Option
	log      logrus.FieldLogger
	rng      *rand.Rand
	newID    func() string
}

// Option configures an InMemoryGameStore
type Option func(*InMemoryGameStore)

// WithGameOptions passes opts to every game the store creates
func WithGameOptions(opts ...game.Option) Option {
	return func(s *InMemoryGameStore) { s.gameOpts = append(s.gameOpts, opts...) }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *InMemoryGameStore) { s.log = l }
}

// WithRand sets the source for game codes
func WithRand(rng *rand.Rand) Option {
	return func(s *InMemoryGameStore) { s.rng = rng }
}

// WithIDs replaces the seat id generator
func WithIDs(newID func() string) Option {
	return func(s *InMemoryGameStore) { s.newID = newID }
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore(opts ...Option) *InMemoryGameStore {
	s := &InMemoryGameStore{
		sessions: map[string]*Session{},
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.log = discard
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// AddGame creates a game waiting for numberOfPlayers players and returns its id
func (s *InMemoryGameStore) AddGame(numberOfPlayers int) (string, error) {
	if numberOfPlayers < MinPlayers || numberOfPlayers > MaxPlayers {
		return "", ErrInvalidPlayerCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := s.uniqueGameID()
	opts := append([]game.Option{game.WithLogger(s.log)}, s.gameOpts...)
	s.sessions[gameID] = newSession(game.New(gameID, numberOfPlayers, opts...))

	s.log.WithFields(logrus.Fields{
		"game":    gameID,
		"players": numberOfPlayers,
	}).Info("game created")

	return gameID, nil
}

// uniqueGameID must be called with s.mu held
func (s *InMemoryGameStore) uniqueGameID() string {
	for {
		id := NewGameID(s.rng)
		if _, exists := s.sessions[id]; !exists {
			return id
		}
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[gameID]
	return session, ok
}

// JoinGame seats name in the game and returns their new seat id. The game
// starts as soon as the last seat is filled.
func (s *InMemoryGameStore) JoinGame(gameID, name string) (string, error) {
	if name == "" {
		return "", ErrMissingName
	}
	session, ok := s.FindGame(gameID)
	if !ok {
		return "", ErrUnknownGameID
	}

	seatID := s.newID()
	err := session.Do(func(g *game.Game) error {
		if g.HasStarted() || g.HaveAllPlayersJoined() {
			return ErrGameAlreadyStarted
		}
		if err := g.AddPlayer(name, seatID); err != nil {
			return fmt.Errorf("joining game %s: %w", gameID, err)
		}
		if g.HaveAllPlayersJoined() {
			return g.Start()
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"game": gameID,
		"seat": seatID,
	}).Info("player joined")

	return seatID, nil
}

// Games lists every game id in order
func (s *InMemoryGameStore) Games() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
