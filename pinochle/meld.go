package pinochle

import "pinochle/card"

const (
	pinochlePoints     = 4
	marriagePoints     = 2
	trumpMarriageBonus = 2
	runPoints          = 15
)

var runValues = []card.Value{card.Ace, card.Ten, card.King, card.Queen, card.Jack}

var fourKindPoints = []struct {
	value  card.Value
	points int
}{
	{card.Ace, 10},
	{card.King, 8},
	{card.Queen, 6},
	{card.Jack, 4},
}

// MeldBreakdown holds each meld component of one hand.
type MeldBreakdown struct {
	Pinochle    int `json:"pinochle"`
	Nines       int `json:"nines"`
	Marriages   int `json:"marriages"`
	Runs        int `json:"runs"`
	FourOfAKind int `json:"four_of_a_kind"`
}

// Total combines the components according to policy.
func (m MeldBreakdown) Total(policy MeldPolicy) int {
	if policy == MeldFourKindOverwrites {
		return m.FourOfAKind
	}
	return m.Pinochle + m.Nines + m.Marriages + m.Runs + m.FourOfAKind
}

// Meld scores the hand. A nil trump means trump is not known yet: no nine
// counts and no marriage gets the trump bonus.
func Meld(hand card.Hand, trump *card.Suit) MeldBreakdown {
	var m MeldBreakdown

	if hand.Contains(card.New(card.Diamond, card.Jack)) && hand.Contains(card.New(card.Club, card.Queen)) {
		m.Pinochle = pinochlePoints
	}

	if trump != nil {
		m.Nines = hand.Count(card.New(*trump, card.Nine))
	}

	for _, s := range card.Suits() {
		if hand.Contains(card.New(s, card.King)) && hand.Contains(card.New(s, card.Queen)) {
			m.Marriages += marriagePoints
			if trump != nil && s == *trump {
				m.Marriages += trumpMarriageBonus
			}
		}
		if holdsAll(hand, s, runValues) {
			m.Runs += runPoints
		}
	}

	for _, fk := range fourKindPoints {
		all := true
		for _, s := range card.Suits() {
			if !hand.Contains(card.New(s, fk.value)) {
				all = false
				break
			}
		}
		if all {
			m.FourOfAKind += fk.points
		}
	}
	return m
}

// ScoreHand is Meld(hand, trump).Total(policy).
func ScoreHand(hand card.Hand, trump *card.Suit, policy MeldPolicy) int {
	return Meld(hand, trump).Total(policy)
}

func holdsAll(hand card.Hand, s card.Suit, values []card.Value) bool {
	for _, v := range values {
		if !hand.Contains(card.New(s, v)) {
			return false
		}
	}
	return true
}
