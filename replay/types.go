package replay

import (
	"pinochle/pinochle/brain"

	"google.golang.org/protobuf/types/known/structpb"
)

const TapeVersion = 1

// TapeSpec describes a computer-only game to record.
type TapeSpec struct {
	// Seed fixes the shuffles and every computer's choices.
	Seed int64 `json:"seed"`
	// Rounds to play; 0 plays until a team reaches the target score.
	Rounds int `json:"rounds"`

	TargetScore  int    `json:"target_score,omitempty"`
	MaxRounds    int    `json:"max_rounds,omitempty"`
	MeldPolicy   string `json:"meld_policy,omitempty"`
	ComputerPass string `json:"computer_pass,omitempty"`
	FloorAtZero  bool   `json:"floor_at_zero,omitempty"`

	Dealer *int `json:"dealer,omitempty"`
	// Deck, when set, is dealt unshuffled every round.
	Deck []string `json:"deck,omitempty"`

	Roster *brain.Roster `json:"roster,omitempty"`
}

type Tape struct {
	TapeVersion int         `json:"tape_version"`
	GameID      string      `json:"game_id"`
	Events      []TapeEvent `json:"events"`
}

type TapeEvent struct {
	Type        string           `json:"type"`
	Seq         uint64           `json:"seq"`
	Value       *structpb.Struct `json:"-"`
	EnvelopeB64 string           `json:"envelope_b64"`
}
