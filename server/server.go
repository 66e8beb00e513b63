package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/store"
	"github.com/sirupsen/logrus"
)

type settings struct {
	logger        *logrus.Logger
	allowedOrigin string
	feedInterval  time.Duration
	readBuffer    int
	writeBuffer   int
}

// Option configures a GameServer
type Option func(*settings)

func WithLogger(l *logrus.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithAllowedOrigin sets the origin allowed by CORS and the websocket
// upgrader. "*" allows any origin.
func WithAllowedOrigin(origin string) Option {
	return func(s *settings) { s.allowedOrigin = origin }
}

// WithFeedInterval sets how often the activity feed checks for news
func WithFeedInterval(d time.Duration) Option {
	return func(s *settings) { s.feedInterval = d }
}

func WithBufferSizes(read, write int) Option {
	return func(s *settings) {
		s.readBuffer = read
		s.writeBuffer = write
	}
}

// GameServer is a game server
type GameServer struct {
	store        store.GameStore
	log          *logrus.Logger
	logWriter    *io.PipeWriter
	upgrader     websocket.Upgrader
	feedInterval time.Duration
	http.Server
}

// NewServer creates a new GameServer
func NewServer(str store.GameStore, opts ...Option) *GameServer {
	cfg := settings{
		allowedOrigin: "*",
		feedInterval:  500 * time.Millisecond,
		readBuffer:    1024,
		writeBuffer:   1024,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logrus.New()
		cfg.logger.SetOutput(io.Discard)
	}

	s := &GameServer{
		store:        str,
		log:          cfg.logger,
		feedInterval: cfg.feedInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.readBuffer,
			WriteBufferSize: cfg.writeBuffer,
			CheckOrigin:     checkOrigin(cfg.allowedOrigin),
		},
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /{$}", s.HandlePing)
	router.HandleFunc("POST /new", s.HandleNewGame)
	router.HandleFunc("POST /join", s.HandleJoinGame)
	router.HandleFunc("GET /game/{id}", s.HandleFindGame)
	router.HandleFunc("GET /game/{id}/player", s.HandlePlayer)
	router.HandleFunc("GET /game/{id}/positions", s.HandlePositions)
	router.HandleFunc("POST /game/{id}/roll", s.HandleRoll)
	router.HandleFunc("GET /game/{id}/invalid-moves", s.HandleInvalidMoves)
	router.HandleFunc("POST /game/{id}/move", s.HandleMove)
	router.HandleFunc("POST /game/{id}/suspect", s.HandleSuspect)
	router.HandleFunc("GET /game/{id}/suspicion", s.HandleSuspicion)
	router.HandleFunc("POST /game/{id}/ruleout", s.HandleRuleOut)
	router.HandleFunc("POST /game/{id}/accuse", s.HandleAccuse)
	router.HandleFunc("GET /game/{id}/accusation", s.HandleAccusation)
	router.HandleFunc("POST /game/{id}/pass", s.HandlePass)
	router.HandleFunc("GET /game/{id}/murder", s.HandleMurder)
	router.HandleFunc("GET /game/{id}/activities", s.HandleActivities)
	router.HandleFunc("GET /game/{id}/feed", s.HandleFeed)

	var h http.Handler = router
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.allowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(s.log),
		handlers.PrintRecoveryStack(true),
	)(h)
	s.logWriter = s.log.WriterLevel(logrus.DebugLevel)
	h = handlers.LoggingHandler(s.logWriter, h)

	s.Handler = h
	s.RegisterOnShutdown(func() { s.logWriter.Close() })

	return s
}

// Close closes the listeners and the request log
func (g *GameServer) Close() error {
	err := g.Server.Close()
	g.logWriter.Close()
	return err
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func checkOrigin(allowed string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if allowed == "*" {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || origin == allowed
	}
}

func (g *GameServer) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("cluedo"))
}

// gameFunc runs with exclusive access to a game on behalf of viewer, the
// seat named by the player_id query parameter.
type gameFunc func(g *game.Game, viewer string) (interface{}, error)

// withGame finds the game named in the path and runs fn inside its session,
// writing fn's result as JSON.
func (g *GameServer) withGame(w http.ResponseWriter, r *http.Request, fn gameFunc) {
	gameID := r.PathValue("id")
	session, ok := g.store.FindGame(gameID)
	if !ok {
		g.writeError(w, r, store.ErrUnknownGameID)
		return
	}

	viewer := r.URL.Query().Get("player_id")
	var payload interface{}
	err := session.Do(func(gm *game.Game) error {
		var err error
		payload, err = fn(gm, viewer)
		return err
	})
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func (g *GameServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := g.log.WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	})
	if status == http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithError(err).Debug("request refused")
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

// decodeBody reads a JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return errMissingBody
	}
	if err != nil {
		return badRequest(err.Error())
	}
	return nil
}
