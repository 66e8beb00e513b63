package game

import "github.com/minaorangina/cluedo/deck"

const noOneRuledOut = "No one ruled out"

// suspicion is the canonical record of the suspicion declared this turn.
// Viewers only ever see a projection of it, see SuspicionView.
type suspicion struct {
	combination     deck.Combination
	suspectorID     string
	suspector       string
	canBeCancelled  bool
	cancellerID     string
	cancellerName   string
	cancellingCards []deck.Card
	cancelled       bool
	ruleOutCard     *deck.Card
}

func newSuspicion(comb deck.Combination, suspector *Player) *suspicion {
	return &suspicion{
		combination:     comb,
		suspectorID:     suspector.id,
		suspector:       suspector.name,
		cancellingCards: []deck.Card{},
	}
}

func (s *suspicion) pending() bool {
	return s.canBeCancelled && !s.cancelled
}

func (s *suspicion) cancellingCard(name string) (deck.Card, bool) {
	for _, c := range s.cancellingCards {
		if c.Name == name {
			return c, true
		}
	}
	return deck.Card{}, false
}

// accusation is resolved the moment it is made; nobody can cancel it.
type accusation struct {
	combination deck.Combination
	accuserID   string
	accuser     string
	correct     bool
}

// findCanceller walks the seats after the suspector in turn order, wrapping
// round, and returns the first one holding any suspected card. Eliminated
// players are asked too. seats must be sorted by turn.
func findCanceller(seats []*Player, suspectorIdx int, comb deck.Combination) (*Player, bool) {
	n := len(seats)
	for i := 1; i < n; i++ {
		p := seats[(suspectorIdx+i)%n]
		if p.canCancel(comb) {
			return p, true
		}
	}
	return nil, false
}

// resolve fills in who, if anyone, can disprove s.
func resolve(s *suspicion, seats []*Player, suspectorIdx int) {
	canceller, ok := findCanceller(seats, suspectorIdx, s.combination)
	if !ok {
		s.canBeCancelled = false
		s.cancellingCards = []deck.Card{}
		return
	}
	s.canBeCancelled = true
	s.cancellerID = canceller.id
	s.cancellerName = canceller.name
	s.cancellingCards = canceller.cancellingCards(s.combination)
}

// SuspicionView is what one viewer may know about the current suspicion.
type SuspicionView struct {
	Combination    deck.Combination `json:"combination"`
	Cancelled      bool             `json:"cancelled"`
	CancelledBy    string           `json:"cancelledBy,omitempty"`
	CanBeCancelled bool             `json:"canBeCancelled"`
	CurrentPlayer  string           `json:"currentPlayer"`

	// Only for the canceller.
	CancellingCards []deck.Card `json:"cancellingCards,omitempty"`

	// Only for the player whose turn it is.
	RuleOutCard string `json:"ruleOutCard,omitempty"`
	Suspector   string `json:"suspector,omitempty"`
}

func (s *suspicion) viewFor(viewerID, currentID string) SuspicionView {
	view := SuspicionView{
		Combination:    s.combination,
		Cancelled:      s.cancelled,
		CancelledBy:    s.cancellerName,
		CanBeCancelled: s.canBeCancelled,
		CurrentPlayer:  s.suspector,
	}
	if s.canBeCancelled && viewerID == s.cancellerID {
		cards := make([]deck.Card, len(s.cancellingCards))
		copy(cards, s.cancellingCards)
		view.CancellingCards = cards
	}
	if viewerID != "" && viewerID == currentID {
		if s.ruleOutCard != nil {
			view.RuleOutCard = s.ruleOutCard.Name
		}
		view.Suspector = s.suspector
	}
	return view
}

// AccusationView is the public outcome of the current accusation
type AccusationView struct {
	Combination deck.Combination `json:"combination"`
	Accuser     string           `json:"accuser"`
	Failed      bool             `json:"failed"`
}

func (a *accusation) view() AccusationView {
	return AccusationView{
		Combination: a.combination,
		Accuser:     a.accuser,
		Failed:      !a.correct,
	}
}
