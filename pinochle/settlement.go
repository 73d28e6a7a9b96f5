package pinochle

import "pinochle/card"

// RoundResult summarises one finished round.
type RoundResult struct {
	Round     int              `json:"round"`
	Dealer    int              `json:"dealer"`
	TrumpSeat int              `json:"trump_seat"`
	Trump     card.Suit        `json:"trump"`
	MeetBid   int              `json:"meet_bid"`
	Bids      []int            `json:"bids"`
	Teams     []TeamSettlement `json:"teams"`
	MaxScore  int              `json:"max_score"`
}

// MatchResult summarises a match played to the target score.
type MatchResult struct {
	Rounds int   `json:"rounds"`
	Winner int   `json:"winner"`
	Totals []int `json:"totals"`
}

func (g *Game) settleRoundLocked() RoundResult {
	g.phase = PhaseSettle
	res := RoundResult{
		Round:     g.round,
		Dealer:    g.dealer,
		TrumpSeat: g.trumpSeat,
		Trump:     g.trump,
		MeetBid:   g.meetBid,
		Bids:      append([]int(nil), g.bids...),
		Teams:     make([]TeamSettlement, 0, len(g.teams)),
	}
	for _, t := range g.teams {
		res.Teams = append(res.Teams, t.Settle(g.cfg.FloorAtZero))
	}
	g.maxScore = res.Teams[0].Total
	for _, ts := range res.Teams[1:] {
		if ts.Total > g.maxScore {
			g.maxScore = ts.Total
		}
	}
	res.MaxScore = g.maxScore
	return res
}

// matchResultLocked picks the team with the highest total; ties go to the
// lower team index.
func (g *Game) matchResultLocked() MatchResult {
	res := MatchResult{Rounds: g.round, Totals: make([]int, len(g.teams))}
	best := 0
	for i, t := range g.teams {
		res.Totals[i] = t.totalScore
		if t.totalScore > g.teams[best].totalScore {
			best = i
		}
	}
	res.Winner = g.teams[best].Number
	return res
}
