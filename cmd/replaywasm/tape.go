package main

import (
	"encoding/json"
	"errors"

	"pinochle/replay"
)

type tapeRequest struct {
	Spec replay.TapeSpec `json:"spec"`
}

type tapeResponse struct {
	OK    bool              `json:"ok"`
	Tape  json.RawMessage   `json:"tape,omitempty"`
	Error *replay.TapeError `json:"error,omitempty"`
}

func handleTape(raw string) tapeResponse {
	var req tapeRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return tapeResponse{
			OK:    false,
			Error: &replay.TapeError{Round: -1, Reason: "invalid_json", Message: err.Error()},
		}
	}

	tape, err := replay.GenerateTape(req.Spec)
	if err != nil {
		var tapeErr *replay.TapeError
		if errors.As(err, &tapeErr) {
			return tapeResponse{OK: false, Error: tapeErr}
		}
		return tapeResponse{
			OK:    false,
			Error: &replay.TapeError{Round: -1, Reason: "tape_generation_failed", Message: err.Error()},
		}
	}
	data, err := tape.JSON()
	if err != nil {
		return tapeResponse{
			OK:    false,
			Error: &replay.TapeError{Round: -1, Reason: "render_failed", Message: err.Error()},
		}
	}
	return tapeResponse{OK: true, Tape: data}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		fallback := tapeResponse{
			OK:    false,
			Error: &replay.TapeError{Round: -1, Reason: "marshal_failed", Message: err.Error()},
		}
		b2, _ := json.Marshal(fallback)
		return string(b2)
	}
	return string(b)
}
