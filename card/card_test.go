package card

import (
	"errors"
	"testing"
)

func TestValueOrder_TenBetweenKingAndAce(t *testing.T) {
	order := []Value{Nine, Jack, Queen, King, Ten, Ace}
	for i := 1; i < len(order); i++ {
		lo := Card{Suit: Heart, Value: order[i-1]}
		hi := Card{Suit: Heart, Value: order[i]}
		if !hi.Beats(lo) || !lo.Less(hi) {
			t.Fatalf("expected %v to outrank %v", hi, lo)
		}
		if lo.Beats(hi) {
			t.Fatalf("%v must not outrank %v", lo, hi)
		}
	}
}

func TestCardCompare_IgnoresSuit(t *testing.T) {
	a := Card{Suit: Spade, Value: Ace}
	k := Card{Suit: Heart, Value: King}
	if !a.Beats(k) {
		t.Fatalf("expected value-only comparison: %v over %v", a, k)
	}
	if (Card{Suit: Club, Value: Ten}).Beats(Card{Suit: Diamond, Value: Ten}) {
		t.Fatalf("equal values must not beat each other")
	}
}

func TestCardEquality_Structural(t *testing.T) {
	if New(Heart, Queen) != (Card{Suit: Heart, Value: Queen}) {
		t.Fatalf("cards with equal suit and value must be equal")
	}
	if New(Heart, Queen) == New(Spade, Queen) {
		t.Fatalf("suit must take part in equality")
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Card{
		"10♥": {Suit: Heart, Value: Ten},
		"Th":  {Suit: Heart, Value: Ten},
		"QC":  {Suit: Club, Value: Queen},
		"9d":  {Suit: Diamond, Value: Nine},
		"A♠":  {Suit: Spade, Value: Ace},
		" Js": {Suit: Spade, Value: Jack},
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "x", "2h", "10x", "Kz"} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("expected Parse(%q) to fail", in)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *ParseError for %q, got %T", in, err)
		}
	}
}

func TestString_RoundTrips(t *testing.T) {
	for _, s := range Suits() {
		for _, v := range Values() {
			c := New(s, v)
			got, err := Parse(c.String())
			if err != nil {
				t.Fatalf("Parse(%q) err: %v", c.String(), err)
			}
			if got != c {
				t.Fatalf("round trip of %v gave %v", c, got)
			}
		}
	}
}
