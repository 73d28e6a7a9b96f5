package pinochle

import (
	"fmt"

	"pinochle/card"
)

// MeldPolicy selects how the meld components are combined into one score.
type MeldPolicy byte

const (
	// MeldSumAll adds every component.
	MeldSumAll MeldPolicy = iota
	// MeldFourKindOverwrites keeps only the four-of-a-kind points, dropping
	// pinochle, nines, marriages and runs.
	MeldFourKindOverwrites
)

var meldPolicyNames = map[MeldPolicy]string{
	MeldSumAll:             "sum",
	MeldFourKindOverwrites: "four-kind",
}

func (p MeldPolicy) String() string {
	if s, ok := meldPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("MeldPolicy(%d)", byte(p))
}

func (p MeldPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *MeldPolicy) UnmarshalText(b []byte) error {
	for k, v := range meldPolicyNames {
		if v == string(b) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown meld policy %q", string(b))
}

// PassPolicy decides whether a computer bidder can ever pass.
type PassPolicy byte

const (
	// PassReachable lets a computer pass when its meld is far below the
	// highest bid so far.
	PassReachable PassPolicy = iota
	// PassUnreachable always opens at 20 or more, the guard never fires.
	PassUnreachable
)

var passPolicyNames = map[PassPolicy]string{
	PassReachable:   "reachable",
	PassUnreachable: "unreachable",
}

func (p PassPolicy) String() string {
	if s, ok := passPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("PassPolicy(%d)", byte(p))
}

func (p PassPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PassPolicy) UnmarshalText(b []byte) error {
	for k, v := range passPolicyNames {
		if v == string(b) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown pass policy %q", string(b))
}

type Config struct {
	// Match ends once a team total reaches TargetScore (0 => DefaultTargetScore).
	TargetScore int `json:"target_score"`
	// MaxRounds aborts Play with ErrRoundLimit (0 => DefaultMaxRounds, <0 disables).
	MaxRounds int `json:"max_rounds"`

	MeldPolicy   MeldPolicy `json:"meld_policy"`
	ComputerPass PassPolicy `json:"computer_pass"`
	// FloorAtZero clamps a team total to 0 after a missed-bid penalty.
	FloorAtZero bool `json:"floor_at_zero"`

	// RNG seed (0 => time-based)
	Seed int64 `json:"seed"`

	// Deterministic scenarios: dealer of round 0 and a fixed deck used every round.
	ForcedDealer *int       `json:"forced_dealer,omitempty"`
	DeckOverride []card.Card `json:"-"`

	Observer Observer `json:"-"`
}

func (c Config) withDefaults() Config {
	if c.TargetScore == 0 {
		c.TargetScore = DefaultTargetScore
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	if c.Observer == nil {
		c.Observer = NopObserver{}
	}
	return c
}

func (c Config) validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("TargetScore must be > 0")
	}
	if _, ok := meldPolicyNames[c.MeldPolicy]; !ok {
		return fmt.Errorf("invalid meld policy: %d", c.MeldPolicy)
	}
	if _, ok := passPolicyNames[c.ComputerPass]; !ok {
		return fmt.Errorf("invalid pass policy: %d", c.ComputerPass)
	}
	if c.ForcedDealer != nil && *c.ForcedDealer < 0 {
		return fmt.Errorf("ForcedDealer must be >= 0")
	}
	if c.DeckOverride != nil {
		if err := card.ValidateDeck(c.DeckOverride); err != nil {
			return fmt.Errorf("invalid deck override: %w", err)
		}
	}
	return nil
}
