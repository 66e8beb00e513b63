package store

import (
	"sync"

	"github.com/minaorangina/cluedo/game"
)

// Session owns one game. Every read or write of the game goes through Do,
// so calls on the same game never overlap.
type Session struct {
	mu   sync.Mutex
	game *game.Game
}

func newSession(g *game.Game) *Session {
	return &Session{game: g}
}

func (s *Session) ID() string {
	return s.game.ID()
}

// Do runs fn with exclusive access to the game and returns its error
func (s *Session) Do(fn func(g *game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}
