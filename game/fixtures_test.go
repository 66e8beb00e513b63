package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/minaorangina/cluedo/deck"
	"github.com/stretchr/testify/require"
)

// stackedDistributor deals a known murder combination and a known order of
// cards, so tests can decide exactly who holds what.
type stackedDistributor struct {
	murder    deck.Combination
	deal      []deck.Card
	remaining []deck.Card
}

func (d *stackedDistributor) RandomCombination() deck.Combination { return d.murder }

func (d *stackedDistributor) GatherRemainingCards() {
	d.remaining = append([]deck.Card{}, d.deal...)
}

func (d *stackedDistributor) HasRemainingCard() bool { return len(d.remaining) > 0 }

func (d *stackedDistributor) Remaining() []deck.Card {
	return append([]deck.Card{}, d.remaining...)
}

func (d *stackedDistributor) RandomCard() deck.Card {
	c := d.remaining[0]
	d.remaining = d.remaining[1:]
	return c
}

// interleave turns per-seat hands into a round-robin deal order
func interleave(hands ...[]deck.Card) []deck.Card {
	order := []deck.Card{}
	for i := 0; ; i++ {
		added := false
		for _, h := range hands {
			if i < len(h) {
				order = append(order, h[i])
				added = true
			}
		}
		if !added {
			return order
		}
	}
}

func room(name string) deck.Card      { return deck.NewCard(name, deck.Room) }
func weapon(name string) deck.Card    { return deck.NewCard(name, deck.Weapon) }
func character(name string) deck.Card { return deck.NewCard(name, deck.Character) }

var (
	theMurder = deck.NewCombination("Hall", "Rope", "Prof. Plum")

	harrysHand = []deck.Card{
		room("Library"), character("Col. Mustard"), room("Lounge"),
		weapon("Candlestick"), character("Miss Scarlett"), room("Dining Room"),
	}
	sallysHand = []deck.Card{
		weapon("Knife"), room("Kitchen"), weapon("Lead Pipe"),
		character("Mrs. White"), room("Ballroom"), room("Conservatory"),
	}
	hermionesHand = []deck.Card{
		weapon("Revolver"), weapon("Spanner"), character("Rev. Green"),
		character("Mrs. Peacock"), room("Billiard Room"), room("Study"),
	}
)

func fixedClock() func() time.Time {
	start := time.Date(2020, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return start }
}

// threePlayerGame is a started game where Harry (Miss Scarlett), Sally
// (Col. Mustard) and Hermione (Mrs. White) hold the hands above.
func threePlayerGame(t *testing.T) *Game {
	t.Helper()

	g := New("test-game", 3,
		WithDistributor(&stackedDistributor{
			murder: theMurder,
			deal:   interleave(harrysHand, sallysHand, hermionesHand),
		}),
		WithClock(fixedClock()),
		WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, g.AddPlayer("Harry", "p1"))
	require.NoError(t, g.AddPlayer("Sally", "p2"))
	require.NoError(t, g.AddPlayer("Hermione", "p3"))
	require.NoError(t, g.Start())

	return g
}

func mustPlayer(t *testing.T, g *Game, seatID string) *Player {
	t.Helper()
	p, ok := g.Player(seatID)
	require.True(t, ok, "no player in seat %s", seatID)
	return p
}

func activityTexts(g *Game, seatID string) []string {
	texts := []string{}
	for _, a := range g.ActivitiesAfter(time.Time{}, seatID) {
		texts = append(texts, a.Text)
	}
	return texts
}
