package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
)

// Card 牌
//
// Two cards are equal when suit and value both match. A pinochle deck holds
// two physically distinct copies of every Card value.
type Card struct {
	Suit  Suit
	Value Value
}

func New(s Suit, v Value) Card { return Card{Suit: s, Value: v} }

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// Colored renders the card for a terminal, red suits in red.
func (c Card) Colored() string {
	if c.Suit.Red() {
		return pterm.LightRed(c.String())
	}
	return pterm.Bold.Sprint(c.String())
}

// Less compares by value rank only; suit is ignored.
func (c Card) Less(o Card) bool { return c.Value < o.Value }

// Beats compares by value rank only; suit is ignored.
func (c Card) Beats(o Card) bool { return c.Value > o.Value }

func (c Card) Valid() bool { return c.Suit.Valid() && c.Value.Valid() }

type ParseError struct {
	Input string
	What  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.What, e.Input)
}

// Parse converts strings such as "10♥", "Th", "QC" or "9d" to a Card.
// The suit is the last rune, everything before it is the value.
func Parse(str string) (Card, error) {
	str = strings.TrimSpace(str)
	if utf8.RuneCountInString(str) < 2 {
		return Card{}, &ParseError{Input: str, What: "card"}
	}
	_, size := utf8.DecodeLastRuneInString(str)
	suit, err := ParseSuit(str[len(str)-size:])
	if err != nil {
		return Card{}, err
	}
	value, err := parseValue(str[:len(str)-size])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Value: value}, nil
}

// MustParse is Parse for literals in tests and tables.
func MustParse(str string) Card {
	c, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses a whitespace or comma separated list of cards.
func ParseList(str string) ([]Card, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
