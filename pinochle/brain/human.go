package brain

import (
	"errors"
	"fmt"
	"io"

	"pinochle/card"
	"pinochle/pinochle"
)

// Input is the collaborator a Human reads decisions from, typically a
// terminal. Reject is told why the last answer was refused before the
// question is asked again.
type Input interface {
	ReadBid(view pinochle.BidView) (int, error)
	ReadTrump(view pinochle.TrumpView) (card.Suit, error)
	ReadCard(view pinochle.PlayView, legal []int) (int, error)
	Reject(reason error)
}

var (
	errNegativeBid  = errors.New("bid must be 0 (pass) or more")
	errOutOfRange   = errors.New("card number out of range")
	errIllegalCard  = errors.New("move is not allowed in this trick")
	errInvalidTrump = errors.New("unknown trump suit")
)

// Human asks Input until it gets a well-formed, legal answer. Only a closed
// input ends the loop.
type Human struct {
	in Input
}

func NewHuman(in Input) *Human { return &Human{in: in} }

func (h *Human) Bid(view pinochle.BidView) (int, error) {
	for {
		bid, err := h.in.ReadBid(view)
		if err != nil {
			if closed(err) {
				return 0, fmt.Errorf("%w: %v", pinochle.ErrInputClosed, err)
			}
			h.in.Reject(err)
			continue
		}
		if bid < 0 {
			h.in.Reject(errNegativeBid)
			continue
		}
		return bid, nil
	}
}

func (h *Human) CallTrump(view pinochle.TrumpView) (card.Suit, error) {
	for {
		s, err := h.in.ReadTrump(view)
		if err != nil {
			if closed(err) {
				return 0, fmt.Errorf("%w: %v", pinochle.ErrInputClosed, err)
			}
			h.in.Reject(err)
			continue
		}
		if !s.Valid() {
			h.in.Reject(errInvalidTrump)
			continue
		}
		return s, nil
	}
}

func (h *Human) PlayCard(view pinochle.PlayView) (card.Card, error) {
	legal := view.Legal()
	for {
		idx, err := h.in.ReadCard(view, legal)
		if err != nil {
			if closed(err) {
				return card.Card{}, fmt.Errorf("%w: %v", pinochle.ErrInputClosed, err)
			}
			h.in.Reject(err)
			continue
		}
		if idx < 0 || idx >= view.Hand.Len() {
			h.in.Reject(errOutOfRange)
			continue
		}
		if !view.Allowed(view.Hand[idx]) {
			h.in.Reject(errIllegalCard)
			continue
		}
		return view.Hand[idx], nil
	}
}

func closed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, pinochle.ErrInputClosed)
}
