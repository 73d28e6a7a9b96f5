package pinochle

import (
	"errors"
	"fmt"

	"pinochle/card"
)

var (
	ErrGameOver    = errors.New("game already over")
	ErrRoundLimit  = errors.New("round limit reached before target score")
	ErrInputClosed = errors.New("input closed")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// IllegalMoveError is returned when a strategy hands back a card the rules
// forbid. A correct Computer never produces one.
type IllegalMoveError struct {
	Player string
	Card   card.Card
	Trick  []card.Card
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move by %s: %v on trick %v: %s", e.Player, e.Card, e.Trick, e.Reason)
}
