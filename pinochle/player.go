package pinochle

import (
	"pinochle/card"

	"github.com/google/uuid"
)

// Player is one seat at the table. Players are identified by name.
type Player struct {
	ID   uuid.UUID
	Name string

	seat     int
	team     *Team
	strategy Strategy

	hand card.Hand
	bid  int
}

// NewPlayer creates a player with a random ID.
func NewPlayer(name string, strategy Strategy) *Player {
	return NewPlayerWithID(uuid.New(), name, strategy)
}

// NewPlayerWithID is NewPlayer with a caller-chosen ID, for reproducible
// tables.
func NewPlayerWithID(id uuid.UUID, name string, strategy Strategy) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		seat:     -1,
		strategy: strategy,
	}
}

func (p *Player) Seat() int          { return p.seat }
func (p *Player) Team() *Team        { return p.team }
func (p *Player) Strategy() Strategy { return p.strategy }
func (p *Player) Bid() int           { return p.bid }
func (p *Player) Hand() card.Hand    { return p.hand.Clone() }

// SameAs reports whether two players are the same person (by name).
func (p *Player) SameAs(o *Player) bool {
	return p != nil && o != nil && p.Name == o.Name
}

// AddCard deals cards into the hand, keeping it sorted by suit.
func (p *Player) AddCard(cards ...card.Card) { p.hand.Add(cards...) }

// RemoveCard takes one copy of c out of the hand.
func (p *Player) RemoveCard(c card.Card) bool { return p.hand.Remove(c) }

// ResetForNewRound empties the hand and clears the bid.
func (p *Player) ResetForNewRound() {
	p.hand = nil
	p.bid = 0
}

func (p *Player) String() string {
	return "Player " + p.Name + " with hand " + p.hand.String()
}
