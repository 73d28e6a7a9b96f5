package pinochle

import "pinochle/card"

// Strategy decides for one seat. The engine validates every returned card
// with AllowedMove, so implementations only see copies of the state.
type Strategy interface {
	Bid(view BidView) (int, error)
	CallTrump(view TrumpView) (card.Suit, error)
	PlayCard(view PlayView) (card.Card, error)
}

// BidView is what a seat sees when it is asked to bid.
type BidView struct {
	Round int
	Seat  int
	Name  string
	Hand  card.Hand
	// Meld is the hand's meld score with trump unknown.
	Meld int
	// Bids so far this round, in turn order; 0 is a pass.
	Bids []int
}

// MaxBid is the highest bid so far, 0 when nobody has bid yet.
func (v BidView) MaxBid() int {
	high := 0
	for _, b := range v.Bids {
		if b > high {
			high = b
		}
	}
	return high
}

type TrumpView struct {
	Round   int
	Seat    int
	Name    string
	Hand    card.Hand
	Meld    int
	MeetBid int
}

// PlayView is what a seat sees when it must put a card on the trick.
type PlayView struct {
	Round       int
	TrickNumber int
	Seat        int
	Leader      int
	Name        string
	Hand        card.Hand
	// Trick holds the cards already played to this trick, in play order.
	Trick []card.Card
	// Used holds every card played in earlier tricks this round.
	Used  []card.Card
	Trump card.Suit
}

// Leading reports whether the seat opens the trick.
func (v PlayView) Leading() bool { return len(v.Trick) == 0 }

// LeadSuit is the suit of the first card on the trick.
func (v PlayView) LeadSuit() (card.Suit, bool) {
	if len(v.Trick) == 0 {
		return 0, false
	}
	return v.Trick[0].Suit, true
}

// Legal returns the hand indices AllowedMove accepts.
func (v PlayView) Legal() []int { return LegalMoves(v.Trick, v.Hand, v.Trump) }

// Allowed reports whether c is playable from the view's hand.
func (v PlayView) Allowed(c card.Card) bool { return AllowedMove(v.Trick, v.Hand, c, v.Trump) }
