package pinochle

import (
	"pinochle/card"

	"github.com/google/uuid"
)

type PlayerSnapshot struct {
	ID   uuid.UUID
	Name string
	Seat int
	Team int
	Bid  int
	Hand []card.Card
}

type TeamSnapshot struct {
	Number     int
	Players    []string
	Bid        int
	RoundScore int
	TotalScore int
}

type Snapshot struct {
	Round int
	Phase Phase
	Over  bool

	Dealer    int
	TrumpSeat int
	Trump     *card.Suit
	MeetBid   int
	Bids      []int
	MaxScore  int

	UsedCards []card.Card
	Players   []PlayerSnapshot
	Teams     []TeamSnapshot
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Round:     g.round,
		Phase:     g.phase,
		Over:      g.over,
		Dealer:    g.dealer,
		TrumpSeat: g.trumpSeat,
		MeetBid:   g.meetBid,
		Bids:      append([]int(nil), g.bids...),
		MaxScore:  g.maxScore,
		UsedCards: append([]card.Card(nil), g.used...),
	}
	if g.trumpSet {
		trump := g.trump
		s.Trump = &trump
	}
	for _, p := range g.players {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:   p.ID,
			Name: p.Name,
			Seat: p.seat,
			Team: p.team.Number,
			Bid:  p.bid,
			Hand: append([]card.Card(nil), p.hand...),
		})
	}
	for _, t := range g.teams {
		ts := TeamSnapshot{
			Number:     t.Number,
			Bid:        t.bid,
			RoundScore: t.roundScore,
			TotalScore: t.totalScore,
		}
		for _, p := range t.players {
			ts.Players = append(ts.Players, p.Name)
		}
		s.Teams = append(s.Teams, ts)
	}
	return s
}
