package replay

import (
	"encoding/base64"
	"sync"

	"pinochle/pinochle"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

// Recorder is a pinochle.Observer that keeps every event as a tape entry.
type Recorder struct {
	mu     sync.Mutex
	gameID uuid.UUID
	seq    uint64
	events []TapeEvent
	err    error
}

// NewRecorder starts an empty tape. A nil id gets a random one.
func NewRecorder(gameID uuid.UUID) *Recorder {
	if gameID == uuid.Nil {
		gameID = uuid.New()
	}
	return &Recorder{
		gameID: gameID,
		events: make([]TapeEvent, 0, 256),
	}
}

func (r *Recorder) OnEvent(e pinochle.Event) {
	value, err := eventToStruct(e)
	var bin []byte
	if err == nil {
		bin, err = proto.MarshalOptions{Deterministic: true}.Marshal(value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return
	}
	r.seq++
	r.events = append(r.events, TapeEvent{
		Type:        eventType(e),
		Seq:         r.seq,
		Value:       value,
		EnvelopeB64: base64.StdEncoding.EncodeToString(bin),
	})
}

// Err returns the first encoding failure, if any.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Tape returns what has been recorded so far.
func (r *Recorder) Tape() *Tape {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Tape{
		TapeVersion: TapeVersion,
		GameID:      r.gameID.String(),
		Events:      append([]TapeEvent(nil), r.events...),
	}
}
