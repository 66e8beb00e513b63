package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/protocol"
	"github.com/minaorangina/cluedo/store"
	"github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

// HandleFeed upgrades to a websocket and streams the viewer's activities
// until the client goes away.
func (g *GameServer) HandleFeed(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	session, ok := g.store.FindGame(gameID)
	if !ok {
		g.writeError(w, r, store.ErrUnknownGameID)
		return
	}

	viewer := r.URL.Query().Get("player_id")
	var seated bool
	session.Do(func(gm *game.Game) error {
		_, seated = gm.Player(viewer)
		return nil
	})
	if !seated {
		g.writeError(w, r, errUnknownPlayer)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the response
		g.log.WithError(err).Warn("could not upgrade to websocket")
		return
	}
	defer conn.Close()

	log := g.log.WithFields(logrus.Fields{
		"game": gameID,
		"seat": viewer,
	})
	log.Debug("feed opened")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(g.feedInterval)
	defer ticker.Stop()

	var last time.Time
	for {
		var msg protocol.FeedMessage
		session.Do(func(gm *game.Game) error {
			msg = feedMessage(gm, last, viewer)
			return nil
		})

		if len(msg.Activities) > 0 {
			last = msg.Activities[len(msg.Activities)-1].Time
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				log.WithError(err).Debug("feed closed")
				return
			}
		}

		select {
		case <-done:
			log.Debug("feed closed by client")
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func feedMessage(gm *game.Game, after time.Time, viewer string) protocol.FeedMessage {
	msg := protocol.FeedMessage{
		Activities: gm.ActivitiesAfter(after, viewer),
		Status:     protocol.GameStatus(gm),
		Turn:       gm.Turn(),
	}
	msg.CurrentPlayer, msg.YourTurn = protocol.CurrentTurn(gm, viewer)
	return msg
}
