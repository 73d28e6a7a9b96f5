package replay

import (
	"encoding/json"
	"testing"

	"pinochle/card"
	"pinochle/pinochle"
	"pinochle/pinochle/brain"

	"github.com/google/uuid"
)

func TestGenerateTape_IsDeterministic(t *testing.T) {
	spec := TapeSpec{Seed: 42, Rounds: 3}

	tapeA, err := GenerateTape(spec)
	if err != nil {
		t.Fatalf("GenerateTape A failed: %v", err)
	}
	tapeB, err := GenerateTape(spec)
	if err != nil {
		t.Fatalf("GenerateTape B failed: %v", err)
	}

	if tapeA.GameID != tapeB.GameID {
		t.Fatalf("game id differs: %s vs %s", tapeA.GameID, tapeB.GameID)
	}
	if len(tapeA.Events) != len(tapeB.Events) {
		t.Fatalf("event count differs: %d vs %d", len(tapeA.Events), len(tapeB.Events))
	}
	for i := range tapeA.Events {
		a, b := tapeA.Events[i], tapeB.Events[i]
		if a.Type != b.Type || a.Seq != b.Seq || a.EnvelopeB64 != b.EnvelopeB64 {
			t.Fatalf("event %d differs: %+v vs %+v", i, a, b)
		}
	}

	other, err := GenerateTape(TapeSpec{Seed: 43, Rounds: 3})
	if err != nil {
		t.Fatalf("GenerateTape seed 43 failed: %v", err)
	}
	if other.GameID == tapeA.GameID {
		t.Fatalf("different specs must get different game ids")
	}
}

func TestGenerateTape_EventCounts(t *testing.T) {
	tape, err := GenerateTape(TapeSpec{Seed: 7, Rounds: 2})
	if err != nil {
		t.Fatalf("GenerateTape failed: %v", err)
	}
	counts := map[string]int{}
	for i, e := range tape.Events {
		if e.Seq != uint64(i+1) {
			t.Fatalf("event %d has seq %d", i, e.Seq)
		}
		counts[e.Type]++
	}
	want := map[string]int{
		"roundStart": 2,
		"bid":        8,
		"trump":      2,
		"meld":       8,
		"card":       96,
		"trick":      24,
		"roundEnd":   2,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Fatalf("expected %d %s events, got %d (all %v)", n, typ, counts[typ], counts)
		}
	}
	if counts["gameOver"] != 0 {
		t.Fatalf("PlayRound must not emit gameOver")
	}
}

func TestGenerateTape_PlayerIDsDerivedFromGameID(t *testing.T) {
	tape, err := GenerateTape(TapeSpec{Seed: 8, Rounds: 1})
	if err != nil {
		t.Fatalf("GenerateTape failed: %v", err)
	}
	gameID := uuid.MustParse(tape.GameID)
	checked := 0
	for i, e := range tape.Events {
		if e.Type != "bid" && e.Type != "card" {
			continue
		}
		value, err := tape.Decode(i)
		if err != nil {
			t.Fatalf("decode %d: %v", i, err)
		}
		fields := value.GetFields()
		name := fields["player"].GetStringValue()
		want := uuid.NewSHA1(gameID, []byte(name)).String()
		if got := fields["player_id"].GetStringValue(); got != want {
			t.Fatalf("event %d (%s by %s): player_id %s, want %s", i, e.Type, name, got, want)
		}
		checked++
	}
	if checked != 4+48 {
		t.Fatalf("checked %d events, want 52", checked)
	}
}

func TestGenerateTape_PlaysToTarget(t *testing.T) {
	// 24 trick points go to some team every round, so a target of 1 ends
	// the game after the first round.
	tape, err := GenerateTape(TapeSpec{Seed: 3, TargetScore: 1})
	if err != nil {
		t.Fatalf("GenerateTape failed: %v", err)
	}
	last := tape.Events[len(tape.Events)-1]
	if last.Type != "gameOver" {
		t.Fatalf("expected tape to end with gameOver, got %s", last.Type)
	}
	value, err := tape.Decode(len(tape.Events) - 1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rounds := value.GetFields()["rounds"].GetNumberValue(); rounds != 1 {
		t.Fatalf("expected a one-round game, got %v", rounds)
	}
}

func TestGenerateTape_FixedDeckAndDealer(t *testing.T) {
	dealer := 2
	deck := card.NewDeck()
	names := make([]string, 0, len(deck))
	for _, c := range deck {
		names = append(names, c.String())
	}
	tape, err := GenerateTape(TapeSpec{Seed: 5, Rounds: 1, Dealer: &dealer, Deck: names})
	if err != nil {
		t.Fatalf("GenerateTape failed: %v", err)
	}
	first, err := tape.Decode(0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := first.GetFields()["dealer"].GetNumberValue(); got != 2 {
		t.Fatalf("expected dealer 2, got %v", got)
	}
	// the first bid comes from the dealer's seat
	bid, err := tape.Decode(1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := bid.GetFields()["seat"].GetNumberValue(); got != 2 {
		t.Fatalf("expected first bidder at seat 2, got %v", got)
	}
}

func TestGenerateTape_RejectsBadSpecs(t *testing.T) {
	human := brain.DefaultRoster(1)
	cases := []struct {
		name   string
		spec   TapeSpec
		reason string
	}{
		{"negative rounds", TapeSpec{Rounds: -1}, "invalid_rounds"},
		{"meld policy", TapeSpec{MeldPolicy: "most"}, "invalid_meld_policy"},
		{"pass policy", TapeSpec{ComputerPass: "never"}, "invalid_pass_policy"},
		{"short deck", TapeSpec{Deck: []string{"9H", "9H"}}, "invalid_deck"},
		{"human seat", TapeSpec{Roster: &human}, "invalid_roster"},
	}
	for _, tc := range cases {
		_, err := GenerateTape(tc.spec)
		tapeErr, ok := err.(*TapeError)
		if !ok {
			t.Fatalf("%s: expected TapeError, got %T (%v)", tc.name, err, err)
		}
		if tapeErr.Reason != tc.reason {
			t.Fatalf("%s: unexpected reason %s", tc.name, tapeErr.Reason)
		}
	}
}

func TestRecorderAndJSON(t *testing.T) {
	id := uuid.MustParse("6f1c2f57-4d8e-4b7a-9a55-0d4c55a1e001")
	rec := NewRecorder(id)
	rec.OnEvent(pinochle.CardPlayed{Round: 1, TrickNumber: 2, Seat: 3, Player: "Sue", Card: card.MustParse("10H")})
	rec.OnEvent(pinochle.TrickWon{Round: 1, TrickNumber: 2, Seat: 3, Player: "Sue", Team: 2,
		Cards: []card.Card{card.MustParse("9H"), card.MustParse("10H")}, Points: 1, RoundScore: 5})
	if err := rec.Err(); err != nil {
		t.Fatalf("recorder error: %v", err)
	}

	tape := rec.Tape()
	if tape.GameID != id.String() || len(tape.Events) != 2 {
		t.Fatalf("unexpected tape %+v", tape)
	}
	played, err := tape.Decode(0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := played.GetFields()["card"].GetStringValue(); got != "10♥" {
		t.Fatalf("expected card 10♥, got %q", got)
	}

	data, err := tape.JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var wire WireTape
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("tape JSON does not parse: %v", err)
	}
	var trick map[string]any
	if err := json.Unmarshal(wire.Events[1].Value, &trick); err != nil {
		t.Fatalf("event JSON does not parse: %v", err)
	}
	if cards, ok := trick["cards"].([]any); !ok || len(cards) != 2 {
		t.Fatalf("unexpected cards in %v", trick)
	}

	if w := ToWireTape(tape); len(w.Events) != 2 || w.Events[0].EnvelopeB64 == "" {
		t.Fatalf("wire tape lost envelopes: %+v", w)
	}
}
