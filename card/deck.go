package card

import (
	"fmt"
	"math/rand"
)

// Copies is the number of physical copies of each card in the deck.
const Copies = 2

// DeckSize is 4 suits x 6 values x 2 copies.
const DeckSize = 4 * 6 * Copies

// Deck is the per-round card stack. It is rebuilt every round.
type Deck []Card

// NewDeck returns the 48 pinochle cards in a fixed, unshuffled order.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for _, v := range allValues {
		for _, s := range allSuits {
			for i := 0; i < Copies; i++ {
				d = append(d, Card{Suit: s, Value: v})
			}
		}
	}
	return d
}

func (d Deck) Count() int { return len(d) }

// Shuffle permutes the deck in place with the supplied generator.
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal hands out the whole deck round-robin: card i goes to hand i mod n.
func (d Deck) Deal(n int) ([]Hand, error) {
	if n <= 0 || len(d)%n != 0 {
		return nil, fmt.Errorf("cannot deal %d cards evenly to %d players", len(d), n)
	}
	hands := make([]Hand, n)
	for i := range hands {
		hands[i] = make(Hand, 0, len(d)/n)
	}
	for i, c := range d {
		hands[i%n].Add(c)
	}
	return hands, nil
}

// ValidateDeck checks that cards form exactly one pinochle deck.
func ValidateDeck(cards []Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("deck must have %d cards, got %d", DeckSize, len(cards))
	}
	seen := make(map[Card]int, DeckSize/Copies)
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("invalid card in deck: %v", c)
		}
		seen[c]++
		if seen[c] > Copies {
			return fmt.Errorf("duplicate card in deck: %v appears more than %d times", c, Copies)
		}
	}
	return nil
}
