package pinochle

import "pinochle/card"

// AllowedMove reports whether c may be played onto trick from hand.
//
// Precedence: a trump card is always legal; any card may open a trick; a card
// of the lead suit is legal; otherwise the player must hold no card of the
// lead suit and no trump.
func AllowedMove(trick []card.Card, hand card.Hand, c card.Card, trump card.Suit) bool {
	if c.Suit == trump {
		return true
	}
	if len(trick) == 0 {
		return true
	}
	lead := trick[0].Suit
	if c.Suit == lead {
		return true
	}
	return !hand.HasSuit(lead) && !hand.HasSuit(trump)
}

// LegalMoves returns the indices into hand of every playable card.
func LegalMoves(trick []card.Card, hand card.Hand, trump card.Suit) []int {
	out := make([]int, 0, len(hand))
	for i, c := range hand {
		if AllowedMove(trick, hand, c, trump) {
			out = append(out, i)
		}
	}
	return out
}

// BeatCard reports whether cur takes the trick from best. A trump beats a
// non-trump best; otherwise cur must follow best's suit with a higher rank.
func BeatCard(best, cur card.Card, trump card.Suit) bool {
	if best.Suit != trump && cur.Suit == trump {
		return true
	}
	return cur.Suit == best.Suit && cur.Beats(best)
}

// TrickWinner returns the seat that won trick. trick is in play order and its
// first card was played by seat leader; seats wrap modulo players.
func TrickWinner(trick []card.Card, leader, players int, trump card.Suit) int {
	winner := leader
	if len(trick) == 0 {
		return winner
	}
	best := trick[0]
	for i := 1; i < len(trick); i++ {
		if BeatCard(best, trick[i], trump) {
			best = trick[i]
			winner = (leader + i) % players
		}
	}
	return winner
}

// TrickPoints counts one point for every ace, ten and king in trick.
func TrickPoints(trick []card.Card) int {
	pts := 0
	for _, c := range trick {
		if c.Value.Counter() {
			pts++
		}
	}
	return pts
}
