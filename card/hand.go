package card

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Hand is the ordered set of cards owned by one player. Duplicates are legal.
type Hand []Card

// Add appends cards and re-sorts the hand by suit. Order inside a suit is
// the order the cards arrived.
func (h *Hand) Add(cards ...Card) {
	*h = append(*h, cards...)
	slices.SortStableFunc(*h, func(a, b Card) int {
		return int(a.Suit) - int(b.Suit)
	})
}

// Remove drops the first entry equal to c. It reports whether c was held.
func (h *Hand) Remove(c Card) bool {
	idx := slices.Index(*h, c)
	if idx < 0 {
		return false
	}
	*h = slices.Delete(*h, idx, idx+1)
	return true
}

func (h Hand) Len() int { return len(h) }

// Contains reports whether the exact card is held.
func (h Hand) Contains(c Card) bool { return slices.Contains(h, c) }

// Count returns how many copies of the exact card are held.
func (h Hand) Count(c Card) int {
	n := 0
	for _, hc := range h {
		if hc == c {
			n++
		}
	}
	return n
}

// CountOfSuit returns how many cards of suit s are held, regardless of value.
func (h Hand) CountOfSuit(s Suit) int {
	n := 0
	for _, hc := range h {
		if hc.Suit == s {
			n++
		}
	}
	return n
}

// HasSuit reports whether any card of suit s is held.
func (h Hand) HasSuit(s Suit) bool {
	return slices.ContainsFunc(h, func(c Card) bool { return c.Suit == s })
}

// OfSuit returns the held cards of suit s in hand order.
func (h Hand) OfSuit(s Suit) []Card {
	var out []Card
	for _, c := range h {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	return slices.Clone(h)
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
