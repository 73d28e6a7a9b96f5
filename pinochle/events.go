package pinochle

import (
	"pinochle/card"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventBidPlaced    EventKind = "bid_placed"
	EventTrumpCalled  EventKind = "trump_called"
	EventMeldScored   EventKind = "meld_scored"
	EventCardPlayed   EventKind = "card_played"
	EventTrickWon     EventKind = "trick_won"
	EventRoundSettled EventKind = "round_settled"
	EventGameOver     EventKind = "game_over"
)

// Event is emitted by the engine for observability only. Observers must not
// call back into the Game.
type Event interface {
	Kind() EventKind
}

type Observer interface {
	OnEvent(Event)
}

type NopObserver struct{}

func (NopObserver) OnEvent(Event) {}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

// Observers fans an event out to each observer in order.
type Observers []Observer

func (os Observers) OnEvent(e Event) {
	for _, o := range os {
		if o != nil {
			o.OnEvent(e)
		}
	}
}

type RoundStarted struct {
	Round  int
	Dealer int
}

type BidPlaced struct {
	Round    int
	Seat     int
	Player   string
	PlayerID uuid.UUID
	Bid      int
	// Leading is set when the bid made this seat the provisional trump caller.
	Leading bool
}

type TrumpCalled struct {
	Round    int
	Seat     int
	Player   string
	PlayerID uuid.UUID
	Trump    card.Suit
	MeetBid  int
}

type MeldScored struct {
	Round    int
	Seat     int
	Player   string
	PlayerID uuid.UUID
	Team     int
	Meld     MeldBreakdown
	Score    int
}

type CardPlayed struct {
	Round       int
	TrickNumber int
	Seat        int
	Player      string
	PlayerID    uuid.UUID
	Card        card.Card
}

type TrickWon struct {
	Round       int
	TrickNumber int
	Seat        int
	Player      string
	PlayerID    uuid.UUID
	Team        int
	Cards       []card.Card
	Points      int
	RoundScore  int
}

type RoundSettled struct {
	Result RoundResult
}

type GameOver struct {
	Result MatchResult
}

func (RoundStarted) Kind() EventKind { return EventRoundStarted }
func (BidPlaced) Kind() EventKind    { return EventBidPlaced }
func (TrumpCalled) Kind() EventKind  { return EventTrumpCalled }
func (MeldScored) Kind() EventKind   { return EventMeldScored }
func (CardPlayed) Kind() EventKind   { return EventCardPlayed }
func (TrickWon) Kind() EventKind     { return EventTrickWon }
func (RoundSettled) Kind() EventKind { return EventRoundSettled }
func (GameOver) Kind() EventKind     { return EventGameOver }
