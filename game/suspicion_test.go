package game

import (
	"testing"

	"github.com/minaorangina/cluedo/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuspect(t *testing.T) {
	t.Run("the next player holding a card becomes the canceller", func(t *testing.T) {
		g := threePlayerGame(t)

		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Col. Mustard")))

		s := g.suspicion
		assert.True(t, s.canBeCancelled)
		assert.Equal(t, "p2", s.cancellerID)
		assert.Equal(t, "Sally", s.cancellerName)
		assert.Equal(t, []deck.Card{weapon("Knife")}, s.cancellingCards)
		assert.False(t, s.cancelled)
		assert.NotContains(t, activityTexts(g, ""), noOneRuledOut)
	})

	t.Run("players without a match are skipped", func(t *testing.T) {
		g := threePlayerGame(t)

		require.True(t, g.Suspect("p1", deck.NewCombination("Study", "Rope", "Prof. Plum")))

		assert.Equal(t, "p3", g.suspicion.cancellerID)
		assert.Equal(t, []deck.Card{room("Study")}, g.suspicion.cancellingCards)
	})

	t.Run("every matching card is offered", func(t *testing.T) {
		g := threePlayerGame(t)

		require.True(t, g.Suspect("p1", deck.NewCombination("Kitchen", "Knife", "Mrs. White")))

		assert.Equal(t, "p2", g.suspicion.cancellerID)
		assert.ElementsMatch(t,
			[]deck.Card{weapon("Knife"), room("Kitchen"), character("Mrs. White")},
			g.suspicion.cancellingCards)
	})

	t.Run("the search wraps round the table", func(t *testing.T) {
		g := threePlayerGame(t)
		require.True(t, g.Pass("p1"))
		require.True(t, g.Pass("p2"))

		require.True(t, g.Suspect("p3", deck.NewCombination("Library", "Rope", "Prof. Plum")))

		assert.Equal(t, "p1", g.suspicion.cancellerID)
	})

	t.Run("eliminated players still rule out", func(t *testing.T) {
		g := threePlayerGame(t)
		require.True(t, g.Pass("p1"))
		require.True(t, g.Accuse("p2", deck.NewCombination("Study", "Rope", "Prof. Plum")))
		require.True(t, g.Pass("p2"))

		require.True(t, g.Suspect("p3", deck.NewCombination("Kitchen", "Rope", "Prof. Plum")))

		assert.Equal(t, "p2", g.suspicion.cancellerID)
		assert.True(t, g.RuleOut("p2", "Kitchen"))
	})

	t.Run("no one can rule out the murder itself", func(t *testing.T) {
		g := threePlayerGame(t)

		require.True(t, g.Suspect("p1", theMurder))

		assert.False(t, g.suspicion.canBeCancelled)
		assert.Empty(t, g.suspicion.cancellingCards)
		assert.NotNil(t, g.suspicion.cancellingCards)
		assert.Contains(t, activityTexts(g, ""), noOneRuledOut)
	})

	t.Run("the suspector's own cards do not count", func(t *testing.T) {
		g := threePlayerGame(t)

		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Candlestick", "Col. Mustard")))

		assert.False(t, g.suspicion.canBeCancelled)
		assert.Contains(t, activityTexts(g, ""), noOneRuledOut)
	})

	t.Run("uses up the move", func(t *testing.T) {
		g := threePlayerGame(t)
		g.dieValue = 3

		require.True(t, g.Suspect("p1", theMurder))
		assert.True(t, g.HasMoved())
		assert.False(t, g.Move("p1", "2"))
	})

	t.Run("once per turn", func(t *testing.T) {
		g := threePlayerGame(t)
		require.True(t, g.Suspect("p1", theMurder))
		assert.False(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Col. Mustard")))
	})

	t.Run("only by the current player", func(t *testing.T) {
		g := threePlayerGame(t)
		assert.False(t, g.Suspect("p2", theMurder))
		assert.False(t, g.IsSuspecting())
	})

	t.Run("only with a full combination", func(t *testing.T) {
		g := threePlayerGame(t)
		assert.False(t, g.Suspect("p1", deck.Combination{}))
	})

	t.Run("brings a seated suspect to the suspector", func(t *testing.T) {
		g := threePlayerGame(t)
		mustPlayer(t, g, "p1").updatePos("Library", true)

		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Col. Mustard")))

		sally := mustPlayer(t, g, "p2")
		assert.Equal(t, "Library", sally.Character().Position)
		assert.True(t, sally.InRoom())
		assert.False(t, sally.Character().Start)
	})

	t.Run("brings an unseated suspect to the suspector", func(t *testing.T) {
		g := threePlayerGame(t)
		mustPlayer(t, g, "p1").updatePos("Library", true)

		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Rev. Green")))

		for _, tk := range g.PlayersPosition() {
			if tk.Name == "Rev. Green" {
				assert.Equal(t, "Library", tk.Position)
				assert.False(t, tk.Seated)
			}
		}
	})
}

func TestRuleOut(t *testing.T) {
	t.Run("Harry suspects, Sally shows the knife", func(t *testing.T) {
		g := threePlayerGame(t)
		mustPlayer(t, g, "p1").updatePos("Library", true)
		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Col. Mustard")))

		t.Log("Sally sees the cards she could show")
		sallysView, ok := g.SuspicionView("p2")
		require.True(t, ok)
		assert.Equal(t, []deck.Card{weapon("Knife")}, sallysView.CancellingCards)
		assert.Equal(t, "Sally", sallysView.CancelledBy)
		assert.Equal(t, "", sallysView.RuleOutCard)
		assert.Equal(t, "", sallysView.Suspector)

		t.Log("Harry cannot see which card yet")
		harrysView, ok := g.SuspicionView("p1")
		require.True(t, ok)
		assert.Equal(t, "", harrysView.RuleOutCard)
		assert.Equal(t, "Harry", harrysView.Suspector)
		assert.Empty(t, harrysView.CancellingCards)
		assert.True(t, harrysView.CanBeCancelled)
		assert.False(t, harrysView.Cancelled)

		t.Log("Sally rules out with the knife")
		assert.False(t, g.RuleOut("p3", "Knife"))
		assert.False(t, g.RuleOut("p2", "Library"))
		assert.True(t, g.CanRuleOut("p2", "Knife"))
		require.True(t, g.RuleOut("p2", "Knife"))

		harrysView, _ = g.SuspicionView("p1")
		assert.Equal(t, "Knife", harrysView.RuleOutCard)
		assert.True(t, harrysView.Cancelled)

		hermionesView, _ := g.SuspicionView("p3")
		assert.Equal(t, "", hermionesView.RuleOutCard)
		assert.Empty(t, hermionesView.CancellingCards)
		assert.True(t, hermionesView.Cancelled)
		assert.Equal(t, "Harry", hermionesView.CurrentPlayer)

		t.Log("the disproof goes to Harry's log only")
		assert.Contains(t, activityTexts(g, "p1"), "Ruled out by Sally using weapon card")
		assert.NotContains(t, activityTexts(g, "p2"), "Ruled out by Sally using weapon card")
		assert.NotContains(t, activityTexts(g, ""), "Ruled out by Sally using weapon card")
	})

	t.Run("only once", func(t *testing.T) {
		g := threePlayerGame(t)
		require.True(t, g.Suspect("p1", deck.NewCombination("Kitchen", "Knife", "Mrs. White")))
		require.True(t, g.RuleOut("p2", "Kitchen"))
		assert.False(t, g.RuleOut("p2", "Knife"))
		assert.False(t, g.CanRuleOut("p2", "Knife"))
	})

	t.Run("nothing to rule out without a suspicion", func(t *testing.T) {
		g := threePlayerGame(t)
		assert.False(t, g.RuleOut("p2", "Knife"))
		_, ok := g.SuspicionView("p2")
		assert.False(t, ok)
	})

	t.Run("nothing to rule out when no one can", func(t *testing.T) {
		g := threePlayerGame(t)
		require.True(t, g.Suspect("p1", theMurder))
		assert.False(t, g.RuleOut("p2", "Hall"))
	})
}

func TestCanSuspect(t *testing.T) {
	t.Run("true with no earlier suspicion", func(t *testing.T) {
		g := threePlayerGame(t)
		assert.True(t, g.CanSuspect("p1"))
		assert.False(t, g.CanSuspect("nobody"))
	})

	t.Run("not twice in the same room", func(t *testing.T) {
		g := threePlayerGame(t)
		mustPlayer(t, g, "p1").updatePos("Library", true)
		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Rev. Green")))
		for _, seat := range []string{"p1", "p2", "p3"} {
			require.True(t, g.Pass(seat))
		}

		assert.False(t, g.CanSuspect("p1"))
		assert.False(t, g.Suspect("p1", deck.NewCombination("Library", "Rope", "Rev. Green")))

		t.Log("until they move away")
		g.dieValue = 1
		require.True(t, g.Move("p1", "63"))
		assert.True(t, g.CanSuspect("p1"))
	})

	t.Run("being brought in by someone else lifts the block", func(t *testing.T) {
		g := threePlayerGame(t)
		mustPlayer(t, g, "p1").updatePos("Library", true)
		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Rev. Green")))
		require.True(t, g.Pass("p1"))
		assert.False(t, g.CanSuspect("p1"))

		mustPlayer(t, g, "p2").updatePos("Library", true)
		require.True(t, g.Suspect("p2", deck.NewCombination("Library", "Knife", "Miss Scarlett")))

		assert.True(t, g.CanSuspect("p1"))
	})

	t.Run("a turn without a suspicion clears the block", func(t *testing.T) {
		g := threePlayerGame(t)
		mustPlayer(t, g, "p1").updatePos("Library", true)
		require.True(t, g.Suspect("p1", deck.NewCombination("Library", "Knife", "Rev. Green")))
		for _, seat := range []string{"p1", "p2", "p3", "p1", "p2", "p3"} {
			require.True(t, g.Pass(seat))
		}

		assert.True(t, g.CanSuspect("p1"))
	})
}
