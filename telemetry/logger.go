// Package telemetry turns engine events into structured log records.
package telemetry

import (
	"context"
	"log/slog"

	"pinochle/pinochle"
)

// Logger is a pinochle.Observer writing one slog record per event. Bids,
// trump calls and settlements log at Info; individual cards and meld at
// Debug.
type Logger struct {
	log *slog.Logger
}

// New wraps l; nil uses slog.Default().
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l.With(slog.String("component", "pinochle"))}
}

func (l *Logger) OnEvent(e pinochle.Event) {
	ctx := context.Background()
	switch ev := e.(type) {
	case pinochle.RoundStarted:
		l.log.LogAttrs(ctx, slog.LevelInfo, "round started",
			slog.Int("round", ev.Round),
			slog.Int("dealer", ev.Dealer))
	case pinochle.BidPlaced:
		l.log.LogAttrs(ctx, slog.LevelInfo, "bid",
			slog.Int("round", ev.Round),
			slog.String("player", ev.Player),
			slog.String("player_id", ev.PlayerID.String()),
			slog.Int("bid", ev.Bid),
			slog.Bool("leading", ev.Leading))
	case pinochle.TrumpCalled:
		l.log.LogAttrs(ctx, slog.LevelInfo, "trump called",
			slog.Int("round", ev.Round),
			slog.String("player", ev.Player),
			slog.String("player_id", ev.PlayerID.String()),
			slog.String("trump", ev.Trump.String()),
			slog.Int("meet_bid", ev.MeetBid))
	case pinochle.MeldScored:
		l.log.LogAttrs(ctx, slog.LevelDebug, "meld",
			slog.Int("round", ev.Round),
			slog.String("player", ev.Player),
			slog.Int("team", ev.Team),
			slog.Int("score", ev.Score),
			slog.Group("breakdown",
				slog.Int("pinochle", ev.Meld.Pinochle),
				slog.Int("nines", ev.Meld.Nines),
				slog.Int("marriages", ev.Meld.Marriages),
				slog.Int("runs", ev.Meld.Runs),
				slog.Int("four_of_a_kind", ev.Meld.FourOfAKind)))
	case pinochle.CardPlayed:
		l.log.LogAttrs(ctx, slog.LevelDebug, "card played",
			slog.Int("round", ev.Round),
			slog.Int("trick", ev.TrickNumber),
			slog.String("player", ev.Player),
			slog.String("card", ev.Card.String()))
	case pinochle.TrickWon:
		l.log.LogAttrs(ctx, slog.LevelDebug, "trick won",
			slog.Int("round", ev.Round),
			slog.Int("trick", ev.TrickNumber),
			slog.String("player", ev.Player),
			slog.Int("team", ev.Team),
			slog.Int("points", ev.Points),
			slog.Int("round_score", ev.RoundScore))
	case pinochle.RoundSettled:
		for _, t := range ev.Result.Teams {
			l.log.LogAttrs(ctx, slog.LevelInfo, "team settled",
				slog.Int("round", ev.Result.Round),
				slog.Int("team", t.Team),
				slog.Int("bid", t.Bid),
				slog.Int("round_score", t.RoundScore),
				slog.Bool("made", t.Made),
				slog.Int("delta", t.Delta),
				slog.Int("total", t.Total))
		}
	case pinochle.GameOver:
		l.log.LogAttrs(ctx, slog.LevelInfo, "game over",
			slog.Int("rounds", ev.Result.Rounds),
			slog.Int("winner", ev.Result.Winner),
			slog.Any("totals", ev.Result.Totals))
	default:
		l.log.LogAttrs(ctx, slog.LevelWarn, "unknown event", slog.String("kind", string(e.Kind())))
	}
}
