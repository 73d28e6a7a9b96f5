package replay

import (
	"fmt"

	"pinochle/card"
	"pinochle/pinochle"
	"pinochle/pinochle/brain"
)

type normalizedSpec struct {
	cfg    pinochle.Config
	roster brain.Roster
	rounds int
}

func normalizeSpec(spec TapeSpec) (normalizedSpec, error) {
	var out normalizedSpec
	if spec.Rounds < 0 {
		return out, &TapeError{Round: -1, Reason: "invalid_rounds", Message: "rounds must be >= 0"}
	}
	out.rounds = spec.Rounds

	out.cfg = pinochle.Config{
		TargetScore: spec.TargetScore,
		MaxRounds:   spec.MaxRounds,
		FloorAtZero: spec.FloorAtZero,
		Seed:        seedFromSpec(spec.Seed),
	}
	if spec.MeldPolicy != "" {
		if err := out.cfg.MeldPolicy.UnmarshalText([]byte(spec.MeldPolicy)); err != nil {
			return out, &TapeError{Round: -1, Reason: "invalid_meld_policy", Message: err.Error()}
		}
	}
	if spec.ComputerPass != "" {
		if err := out.cfg.ComputerPass.UnmarshalText([]byte(spec.ComputerPass)); err != nil {
			return out, &TapeError{Round: -1, Reason: "invalid_pass_policy", Message: err.Error()}
		}
	}
	if spec.Dealer != nil {
		dealer := *spec.Dealer
		out.cfg.ForcedDealer = &dealer
	}

	if len(spec.Deck) > 0 {
		deck, err := parseDeck(spec.Deck)
		if err != nil {
			return out, &TapeError{Round: -1, Reason: "invalid_deck", Message: err.Error()}
		}
		out.cfg.DeckOverride = deck
	}

	out.roster = brain.DefaultRoster(0)
	if spec.Roster != nil {
		out.roster = *spec.Roster
	}
	if err := out.roster.Validate(); err != nil {
		return out, &TapeError{Round: -1, Reason: "invalid_roster", Message: err.Error()}
	}
	if out.roster.Humans() > 0 {
		return out, &TapeError{Round: -1, Reason: "invalid_roster", Message: "tapes are recorded with computer seats only"}
	}
	return out, nil
}

func parseDeck(cards []string) ([]card.Card, error) {
	out := make([]card.Card, 0, len(cards))
	for i, s := range cards {
		c, err := card.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("deck[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	if err := card.ValidateDeck(out); err != nil {
		return nil, err
	}
	return out, nil
}

// seedFromSpec maps 0 to a fixed seed so an empty spec still records the
// same tape every time.
func seedFromSpec(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}
