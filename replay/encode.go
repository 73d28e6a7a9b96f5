package replay

import (
	"fmt"

	"pinochle/card"
	"pinochle/pinochle"

	"google.golang.org/protobuf/types/known/structpb"
)

// eventType names the tape entry for an engine event.
func eventType(e pinochle.Event) string {
	switch e.(type) {
	case pinochle.RoundStarted:
		return "roundStart"
	case pinochle.BidPlaced:
		return "bid"
	case pinochle.TrumpCalled:
		return "trump"
	case pinochle.MeldScored:
		return "meld"
	case pinochle.CardPlayed:
		return "card"
	case pinochle.TrickWon:
		return "trick"
	case pinochle.RoundSettled:
		return "roundEnd"
	case pinochle.GameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// eventToStruct flattens an event into a structpb.Struct. Numbers become
// float64 and cards their short text form.
func eventToStruct(e pinochle.Event) (*structpb.Struct, error) {
	var fields map[string]any
	switch ev := e.(type) {
	case pinochle.RoundStarted:
		fields = map[string]any{
			"round":  ev.Round,
			"dealer": ev.Dealer,
		}
	case pinochle.BidPlaced:
		fields = map[string]any{
			"round":     ev.Round,
			"seat":      ev.Seat,
			"player":    ev.Player,
			"player_id": ev.PlayerID.String(),
			"bid":       ev.Bid,
			"leading":   ev.Leading,
		}
	case pinochle.TrumpCalled:
		fields = map[string]any{
			"round":     ev.Round,
			"seat":      ev.Seat,
			"player":    ev.Player,
			"player_id": ev.PlayerID.String(),
			"trump":     ev.Trump.String(),
			"meet_bid":  ev.MeetBid,
		}
	case pinochle.MeldScored:
		fields = map[string]any{
			"round":     ev.Round,
			"seat":      ev.Seat,
			"player":    ev.Player,
			"player_id": ev.PlayerID.String(),
			"team":      ev.Team,
			"score":     ev.Score,
			"meld": map[string]any{
				"pinochle":       ev.Meld.Pinochle,
				"nines":          ev.Meld.Nines,
				"marriages":      ev.Meld.Marriages,
				"runs":           ev.Meld.Runs,
				"four_of_a_kind": ev.Meld.FourOfAKind,
			},
		}
	case pinochle.CardPlayed:
		fields = map[string]any{
			"round":     ev.Round,
			"trick":     ev.TrickNumber,
			"seat":      ev.Seat,
			"player":    ev.Player,
			"player_id": ev.PlayerID.String(),
			"card":      ev.Card.String(),
		}
	case pinochle.TrickWon:
		fields = map[string]any{
			"round":       ev.Round,
			"trick":       ev.TrickNumber,
			"seat":        ev.Seat,
			"player":      ev.Player,
			"player_id":   ev.PlayerID.String(),
			"team":        ev.Team,
			"cards":       cardsToList(ev.Cards),
			"points":      ev.Points,
			"round_score": ev.RoundScore,
		}
	case pinochle.RoundSettled:
		fields = roundResultFields(ev.Result)
	case pinochle.GameOver:
		fields = map[string]any{
			"rounds": ev.Result.Rounds,
			"winner": ev.Result.Winner,
			"totals": intsToList(ev.Result.Totals),
		}
	default:
		return nil, fmt.Errorf("unsupported event %T", e)
	}
	return structpb.NewStruct(fields)
}

func roundResultFields(res pinochle.RoundResult) map[string]any {
	teams := make([]any, 0, len(res.Teams))
	for _, t := range res.Teams {
		teams = append(teams, map[string]any{
			"team":         t.Team,
			"bid":          t.Bid,
			"meld":         t.Meld,
			"trick_points": t.TrickPoints,
			"round_score":  t.RoundScore,
			"made":         t.Made,
			"delta":        t.Delta,
			"total":        t.Total,
		})
	}
	return map[string]any{
		"round":      res.Round,
		"dealer":     res.Dealer,
		"trump_seat": res.TrumpSeat,
		"trump":      res.Trump.String(),
		"meet_bid":   res.MeetBid,
		"bids":       intsToList(res.Bids),
		"teams":      teams,
		"max_score":  res.MaxScore,
	}
}

func cardsToList(cards []card.Card) []any {
	out := make([]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func intsToList(values []int) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
