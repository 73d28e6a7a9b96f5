package brain

import (
	"fmt"
	"math/rand"

	"pinochle/card"
	"pinochle/pinochle"
)

// passMargin is how far below the highest bid a computer's meld may fall
// before it passes.
const passMargin = 16

// LeadOffFunc picks an opening lead. ok=false defers to the default choice.
type LeadOffFunc func(view pinochle.PlayView) (c card.Card, ok bool)

// Computer is the scripted heuristic player. All randomness comes from its
// own seeded generator.
type Computer struct {
	rng  *rand.Rand
	pass pinochle.PassPolicy

	// LeadOff is consulted when the computer opens a trick. Nil means no
	// opening preference.
	LeadOff LeadOffFunc
}

func NewComputer(seed int64, pass pinochle.PassPolicy) *Computer {
	return &Computer{
		rng:  rand.New(rand.NewSource(seed)),
		pass: pass,
	}
}

// Bid maps the hand's trump-agnostic meld to an opening bid: below 4 bids
// 20, below 10 bids 21, anything else 22.
func (c *Computer) Bid(view pinochle.BidView) (int, error) {
	score := view.Meld
	if c.pass == pinochle.PassReachable && score < view.MaxBid()-passMargin {
		return 0, nil
	}
	switch {
	case score < 4:
		return pinochle.OpeningBid, nil
	case score < 10:
		return pinochle.OpeningBid + 1, nil
	default:
		return pinochle.OpeningBid + 2, nil
	}
}

// CallTrump names the suit it holds most cards of; ties go to the earlier
// suit in card.Suits order.
func (c *Computer) CallTrump(view pinochle.TrumpView) (card.Suit, error) {
	return LongestSuit(view.Hand), nil
}

func (c *Computer) PlayCard(view pinochle.PlayView) (card.Card, error) {
	if view.Hand.Len() == 0 {
		return card.Card{}, pinochle.ErrInvalidState(fmt.Sprintf("%s asked to play with an empty hand", view.Name))
	}
	if chosen, ok := c.choose(view); ok && view.Allowed(chosen) {
		return chosen, nil
	}
	return c.randomLegal(view)
}

// choose runs forced move, then a coin flip between counter and discard on
// the lead suit. An opening lead only consults LeadOff; without a card from
// it the random fallback picks the lead.
func (c *Computer) choose(view pinochle.PlayView) (card.Card, bool) {
	lead, ok := view.LeadSuit()
	if !ok {
		if c.LeadOff != nil {
			return c.LeadOff(view)
		}
		return card.Card{}, false
	}
	if forced, ok := ForcedMove(view.Hand, lead, view.Trump); ok {
		return forced, true
	}

	if c.rng.Intn(2) == 1 {
		return CounterMove(view.Hand, lead)
	}
	return DiscardMove(view.Hand, lead)
}

// randomLegal draws cards uniformly until one is legal.
func (c *Computer) randomLegal(view pinochle.PlayView) (card.Card, error) {
	if len(view.Legal()) == 0 {
		return card.Card{}, pinochle.ErrInvalidState(fmt.Sprintf("no legal card for %s in %v", view.Name, view.Hand))
	}
	for {
		pick := view.Hand[c.rng.Intn(view.Hand.Len())]
		if view.Allowed(pick) {
			return pick, nil
		}
	}
}

// LongestSuit returns the suit with the most cards in hand.
func LongestSuit(hand card.Hand) card.Suit {
	best := card.Heart
	bestCount := -1
	for _, s := range card.Suits() {
		if n := hand.CountOfSuit(s); n > bestCount {
			best, bestCount = s, n
		}
	}
	return best
}

// ForcedMove returns the only card of the lead suit, or failing that the
// only trump card.
func ForcedMove(hand card.Hand, lead, trump card.Suit) (card.Card, bool) {
	if of := hand.OfSuit(lead); len(of) == 1 {
		return of[0], true
	}
	if of := hand.OfSuit(trump); len(of) == 1 {
		return of[0], true
	}
	return card.Card{}, false
}

// CounterMove returns the lowest card of suit that outranks a queen.
func CounterMove(hand card.Hand, suit card.Suit) (card.Card, bool) {
	var best card.Card
	found := false
	for _, c := range hand.OfSuit(suit) {
		if c.Value <= card.Queen {
			continue
		}
		if !found || c.Less(best) {
			best, found = c, true
		}
	}
	return best, found
}

// DiscardMove returns the lowest card of suit.
func DiscardMove(hand card.Hand, suit card.Suit) (card.Card, bool) {
	var best card.Card
	found := false
	for _, c := range hand.OfSuit(suit) {
		if !found || c.Less(best) {
			best, found = c, true
		}
	}
	return best, found
}
