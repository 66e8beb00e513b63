package server

import (
	"net/http"
	"time"

	"github.com/minaorangina/cluedo/deck"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/protocol"
	"github.com/sirupsen/logrus"
)

// HandleNewGame creates a game and seats its creator
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var data protocol.NewGameReq
	if err := decodeBody(r, &data); err != nil {
		g.writeError(w, r, err)
		return
	}
	if data.Name == "" {
		g.writeError(w, r, badRequest("missing player name"))
		return
	}

	gameID, err := g.store.AddGame(data.Players)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	playerID, err := g.store.JoinGame(gameID, data.Name)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.log.WithFields(logrus.Fields{
		"game":    gameID,
		"players": data.Players,
	}).Info("new game requested")

	writeJSON(w, http.StatusCreated, protocol.PendingGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
	})
}

func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	var data protocol.JoinGameReq
	if err := decodeBody(r, &data); err != nil {
		g.writeError(w, r, err)
		return
	}
	if data.GameID == "" {
		g.writeError(w, r, badRequest("missing game ID"))
		return
	}

	playerID, err := g.store.JoinGame(data.GameID, data.Name)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, protocol.PendingGameRes{
		GameID:   data.GameID,
		PlayerID: playerID,
		Name:     data.Name,
	})
}

func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		return protocol.NewGetGameRes(gm, viewer), nil
	})
}

// HandlePlayer returns the viewer's own seat, hand included
func (g *GameServer) HandlePlayer(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		details, ok := gm.PlayerData(viewer)
		if !ok {
			return nil, errUnknownPlayer
		}
		return details, nil
	})
}

func (g *GameServer) HandlePositions(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		return gm.PlayersPosition(), nil
	})
}

// currentPlayer fails unless viewer is seated and it is their turn
func currentPlayer(gm *game.Game, viewer string) error {
	if _, ok := gm.Player(viewer); !ok {
		return errUnknownPlayer
	}
	if !gm.HasStarted() || !gm.IsCurrentPlayer(viewer) {
		return errNotYourTurn
	}
	return nil
}

func (g *GameServer) HandleRoll(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if err := currentPlayer(gm, viewer); err != nil {
			return nil, err
		}
		return protocol.RollRes{DieValue: gm.RollDie()}, nil
	})
}

func (g *GameServer) HandleInvalidMoves(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if err := currentPlayer(gm, viewer); err != nil {
			return nil, err
		}
		return gm.InvalidMoves(), nil
	})
}

func (g *GameServer) HandleMove(w http.ResponseWriter, r *http.Request) {
	var data protocol.MoveReq
	if err := decodeBody(r, &data); err != nil {
		g.writeError(w, r, err)
		return
	}
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if err := currentPlayer(gm, viewer); err != nil {
			return nil, err
		}
		if !gm.Move(viewer, data.Position) {
			return nil, errNotPermitted
		}
		details, _ := gm.PlayerData(viewer)
		return details, nil
	})
}

func (g *GameServer) HandleSuspect(w http.ResponseWriter, r *http.Request) {
	var comb deck.Combination
	if err := decodeBody(r, &comb); err != nil {
		g.writeError(w, r, err)
		return
	}
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if err := currentPlayer(gm, viewer); err != nil {
			return nil, err
		}
		if !gm.Suspect(viewer, comb) {
			return nil, errNotPermitted
		}
		view, _ := gm.SuspicionView(viewer)
		return view, nil
	})
}

func (g *GameServer) HandleSuspicion(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		view, ok := gm.SuspicionView(viewer)
		if !ok {
			return nil, errNoSuspicion
		}
		return view, nil
	})
}

// HandleRuleOut is the one action taken out of turn, by the canceller
func (g *GameServer) HandleRuleOut(w http.ResponseWriter, r *http.Request) {
	var data protocol.RuleOutReq
	if err := decodeBody(r, &data); err != nil {
		g.writeError(w, r, err)
		return
	}
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if _, ok := gm.Player(viewer); !ok {
			return nil, errUnknownPlayer
		}
		if !gm.RuleOut(viewer, data.Card) {
			return nil, errNotPermitted
		}
		view, _ := gm.SuspicionView(viewer)
		return view, nil
	})
}

func (g *GameServer) HandleAccuse(w http.ResponseWriter, r *http.Request) {
	var comb deck.Combination
	if err := decodeBody(r, &comb); err != nil {
		g.writeError(w, r, err)
		return
	}
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if err := currentPlayer(gm, viewer); err != nil {
			return nil, err
		}
		if !gm.Accuse(viewer, comb) {
			return nil, errNotPermitted
		}
		view, _ := gm.AccusationView()
		return view, nil
	})
}

func (g *GameServer) HandleAccusation(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		view, ok := gm.AccusationView()
		if !ok {
			return nil, errNoAccusation
		}
		return view, nil
	})
}

func (g *GameServer) HandlePass(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		if err := currentPlayer(gm, viewer); err != nil {
			return nil, err
		}
		if !gm.Pass(viewer) {
			return nil, errNotPermitted
		}
		return protocol.NewGetGameRes(gm, viewer), nil
	})
}

// HandleMurder reveals the murder once the game is over
func (g *GameServer) HandleMurder(w http.ResponseWriter, r *http.Request) {
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		comb, ok := gm.MurderCombination()
		if !ok {
			return nil, errNotPermitted
		}
		return comb, nil
	})
}

// HandleActivities lists what the viewer may see, optionally only what
// happened after the RFC 3339 time in ?after=.
func (g *GameServer) HandleActivities(w http.ResponseWriter, r *http.Request) {
	var after time.Time
	if raw := r.URL.Query().Get("after"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			g.writeError(w, r, badRequest("after must be an RFC 3339 time"))
			return
		}
		after = t
	}
	g.withGame(w, r, func(gm *game.Game, viewer string) (interface{}, error) {
		return protocol.ActivitiesRes{Activities: gm.ActivitiesAfter(after, viewer)}, nil
	})
}
