package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/cluedo/config"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/server"
	"github.com/minaorangina/cluedo/store"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		config.Default().Logger(os.Stderr).WithError(err).Fatal("could not load config")
	}
	log := cfg.Logger(os.Stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	str := store.NewInMemoryGameStore(
		store.WithLogger(log),
		store.WithRand(rand.New(rand.NewSource(seed))),
		store.WithGameOptions(game.WithRand(rand.New(rand.NewSource(seed+1)))),
	)

	s := server.NewServer(str,
		server.WithLogger(log),
		server.WithAllowedOrigin(cfg.AllowedOrigin),
		server.WithFeedInterval(cfg.FeedInterval),
		server.WithBufferSizes(cfg.ReadBuffer, cfg.WriteBuffer),
	)
	s.Addr = cfg.Addr()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithField("addr", s.Addr).Info("listening")
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}
