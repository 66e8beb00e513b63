package store

import (
	"math/rand"

	uuid "github.com/satori/go.uuid"
)

var gameIDLetters = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// NewID returns a fresh seat id
func NewID() string {
	return uuid.NewV4().String()
}

// NewGameID returns a six-letter code players can type in to join a game
func NewGameID(rng *rand.Rand) string {
	code := make([]byte, 0, 6)
	for i := 0; i < 6; i++ {
		code = append(code, gameIDLetters[rng.Intn(len(gameIDLetters))])
	}
	return string(code)
}
