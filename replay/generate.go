package replay

import (
	"encoding/json"
	"errors"
	"fmt"

	"pinochle/pinochle"
	"pinochle/pinochle/brain"

	"github.com/google/uuid"
)

// tapeNamespace scopes generated game ids.
var tapeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pinochle/replay"))

// GenerateTape plays the game a spec describes and records it. Identical
// specs yield identical tapes, game and player ids included.
func GenerateTape(spec TapeSpec) (*Tape, error) {
	ns, err := normalizeSpec(spec)
	if err != nil {
		return nil, err
	}

	gameID := specID(spec)
	teams, err := brain.NewFactory(ns.cfg.Seed, nil, ns.cfg.ComputerPass).WithGameID(gameID).Teams(ns.roster)
	if err != nil {
		return nil, &TapeError{Round: -1, Reason: "seat_init_failed", Message: err.Error()}
	}

	rec := NewRecorder(gameID)
	cfg := ns.cfg
	cfg.Observer = rec
	game, err := pinochle.NewGame(cfg, teams...)
	if err != nil {
		return nil, &TapeError{Round: -1, Reason: "engine_init_failed", Message: err.Error()}
	}

	if ns.rounds == 0 {
		if _, err := game.Play(); err != nil {
			reason := "round_failed"
			if errors.Is(err, pinochle.ErrRoundLimit) {
				reason = "round_limit"
			}
			return nil, &TapeError{Round: game.Snapshot().Round + 1, Reason: reason, Message: err.Error()}
		}
	} else {
		for i := 1; i <= ns.rounds; i++ {
			if _, err := game.PlayRound(); err != nil {
				if errors.Is(err, pinochle.ErrGameOver) {
					break
				}
				return nil, &TapeError{Round: i, Reason: "round_failed", Message: err.Error()}
			}
		}
	}

	if err := rec.Err(); err != nil {
		return nil, &TapeError{Round: -1, Reason: "encode_failed", Message: err.Error()}
	}
	return rec.Tape(), nil
}

func specID(spec TapeSpec) uuid.UUID {
	data, err := json.Marshal(spec)
	if err != nil {
		data = []byte(fmt.Sprintf("%+v", spec))
	}
	return uuid.NewSHA1(tapeNamespace, data)
}
