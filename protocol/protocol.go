// Package protocol holds the JSON bodies exchanged with the game server.
package protocol

import (
	"github.com/minaorangina/cluedo/activity"
	"github.com/minaorangina/cluedo/game"
)

// StatusWaiting is reported for a game that still has empty seats. Started
// games report their game.State.
const StatusWaiting = "waiting"

type NewGameReq struct {
	Name    string `json:"name"`
	Players int    `json:"players"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

// PendingGameRes tells a player which seat they were given
type PendingGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Admin    bool   `json:"is_admin"`
}

type GetGameRes struct {
	GameID        string               `json:"game_id"`
	Status        string               `json:"status"`
	Players       []game.PlayerDetails `json:"players"`
	Seats         int                  `json:"seats"`
	Turn          int                  `json:"turn"`
	CurrentPlayer string               `json:"current_player,omitempty"`
	YourTurn      bool                 `json:"your_turn"`
	DieValue      int                  `json:"die_value"`
	HasMoved      bool                 `json:"has_moved"`
	SecretPassage string               `json:"secret_passage,omitempty"`
	Winner        string               `json:"winner,omitempty"`
}

type RollRes struct {
	DieValue int `json:"die_value"`
}

type MoveReq struct {
	Position string `json:"position"`
}

type RuleOutReq struct {
	Card string `json:"card"`
}

type ActivitiesRes struct {
	Activities []activity.Activity `json:"activities"`
}

// FeedMessage is pushed down the websocket whenever the viewer has new
// activities to see.
type FeedMessage struct {
	Activities    []activity.Activity `json:"activities"`
	Status        string              `json:"status"`
	Turn          int                 `json:"turn"`
	CurrentPlayer string              `json:"current_player,omitempty"`
	YourTurn      bool                `json:"your_turn"`
}

// GameStatus is StatusWaiting before g starts and its state afterwards
func GameStatus(g *game.Game) string {
	if !g.HasStarted() {
		return StatusWaiting
	}
	return g.State().String()
}

// CurrentTurn names the player whose turn it is, by player name rather than
// seat id, and says whether that is viewer.
func CurrentTurn(g *game.Game, viewer string) (name string, yours bool) {
	if !g.HasStarted() {
		return "", false
	}
	p, ok := g.CurrentPlayer()
	if !ok {
		return "", false
	}
	return p.Name(), viewer != "" && p.ID() == viewer
}

// NewGetGameRes is the state of g as viewer may see it
func NewGetGameRes(g *game.Game, viewer string) GetGameRes {
	res := GetGameRes{
		GameID:   g.ID(),
		Status:   GameStatus(g),
		Players:  g.AllPlayerDetails(viewer),
		Seats:    g.NumberOfPlayers(),
		Turn:     g.Turn(),
		DieValue: g.DieValue(),
		HasMoved: g.HasMoved(),
		Winner:   g.Winner(),
	}
	res.CurrentPlayer, res.YourTurn = CurrentTurn(g, viewer)
	if g.HasStarted() {
		res.SecretPassage = g.SecretPassage()
	}
	return res
}
