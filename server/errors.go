package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/store"
)

var (
	errNotYourTurn   = errors.New("it is not your turn")
	errNotPermitted  = errors.New("that is not allowed right now")
	errUnknownPlayer = errors.New("unknown player ID")
	errBadRequest    = errors.New("bad request")
	errMissingBody   = fmt.Errorf("%w: missing body", errBadRequest)
	errNoSuspicion   = errors.New("no one is suspecting")
	errNoAccusation  = errors.New("no one is accusing")
)

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", errBadRequest, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, store.ErrInvalidPlayerCount),
		errors.Is(err, store.ErrMissingName):
		return http.StatusBadRequest
	case errors.Is(err, errNotYourTurn):
		return http.StatusForbidden
	case errors.Is(err, store.ErrUnknownGameID),
		errors.Is(err, errUnknownPlayer),
		errors.Is(err, errNoSuspicion),
		errors.Is(err, errNoAccusation):
		return http.StatusNotFound
	case errors.Is(err, errNotPermitted),
		errors.Is(err, store.ErrGameAlreadyStarted),
		errors.Is(err, game.ErrGameFull),
		errors.Is(err, game.ErrAlreadyStarted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
