package replay

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type WireTape struct {
	TapeVersion int         `json:"tapeVersion"`
	GameID      string      `json:"gameId"`
	Events      []WireEvent `json:"events"`
}

type WireEvent struct {
	Type        string          `json:"type"`
	Seq         uint64          `json:"seq"`
	EnvelopeB64 string          `json:"envelopeB64,omitempty"`
	Value       json.RawMessage `json:"value,omitempty"`
}

// ToWireTape keeps only the encoded envelopes.
func ToWireTape(tape *Tape) *WireTape {
	if tape == nil {
		return nil
	}
	out := &WireTape{
		TapeVersion: tape.TapeVersion,
		GameID:      tape.GameID,
		Events:      make([]WireEvent, 0, len(tape.Events)),
	}
	for _, e := range tape.Events {
		out.Events = append(out.Events, WireEvent{
			Type:        e.Type,
			Seq:         e.Seq,
			EnvelopeB64: e.EnvelopeB64,
		})
	}
	return out
}

// Decode returns the payload of event i read back from its envelope.
func (t *Tape) Decode(i int) (*structpb.Struct, error) {
	if i < 0 || i >= len(t.Events) {
		return nil, fmt.Errorf("event %d out of range (%d events)", i, len(t.Events))
	}
	bin, err := base64.StdEncoding.DecodeString(t.Events[i].EnvelopeB64)
	if err != nil {
		return nil, fmt.Errorf("decode event %d: %w", i, err)
	}
	var out structpb.Struct
	if err := proto.Unmarshal(bin, &out); err != nil {
		return nil, fmt.Errorf("unmarshal event %d: %w", i, err)
	}
	return &out, nil
}

// JSON renders the tape with every payload spelled out through protojson.
func (t *Tape) JSON() ([]byte, error) {
	out := WireTape{
		TapeVersion: t.TapeVersion,
		GameID:      t.GameID,
		Events:      make([]WireEvent, 0, len(t.Events)),
	}
	for i, e := range t.Events {
		value, err := t.Decode(i)
		if err != nil {
			return nil, err
		}
		raw, err := protojson.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("render event %d: %w", i, err)
		}
		out.Events = append(out.Events, WireEvent{Type: e.Type, Seq: e.Seq, Value: raw})
	}
	return json.MarshalIndent(out, "", "  ")
}
