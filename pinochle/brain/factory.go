package brain

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pinochle/pinochle"

	"github.com/google/uuid"
)

// Factory builds strategies for roster seats. Each computer gets its own
// generator seeded from the factory's master generator, so one seed fixes the
// whole table.
type Factory struct {
	mu     sync.Mutex
	rng    *rand.Rand
	input  Input
	pass   pinochle.PassPolicy
	gameID uuid.UUID
}

// NewFactory creates a factory. seed 0 picks a time-based seed; input may be
// nil when the roster has no humans.
func NewFactory(seed int64, input Input, pass pinochle.PassPolicy) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		rng:   rand.New(rand.NewSource(seed)),
		input: input,
		pass:  pass,
	}
}

// WithGameID makes Teams derive each player's ID from gameID and the
// player's name, so a replayed game keeps its player IDs.
func (f *Factory) WithGameID(gameID uuid.UUID) *Factory {
	f.gameID = gameID
	return f
}

// Strategy returns a fresh strategy for the given seat kind.
func (f *Factory) Strategy(kind SeatKind) (pinochle.Strategy, error) {
	switch kind {
	case KindComputer:
		f.mu.Lock()
		seed := f.rng.Int63()
		f.mu.Unlock()
		return NewComputer(seed, f.pass), nil
	case KindHuman:
		if f.input == nil {
			return nil, fmt.Errorf("human seat needs an input")
		}
		return NewHuman(f.input), nil
	default:
		return nil, fmt.Errorf("unknown seat kind %q", kind)
	}
}

// Teams builds the players of a roster grouped into teams, ordered by team
// number, ready for pinochle.NewGame.
func (f *Factory) Teams(r Roster) ([]*pinochle.Team, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	numbers := r.TeamNumbers()
	teams := make([]*pinochle.Team, len(numbers))
	index := make(map[int]int, len(numbers))
	for i, n := range numbers {
		teams[i] = pinochle.NewTeam(n)
		index[n] = i
	}
	for _, s := range r.Seats {
		strategy, err := f.Strategy(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", s.Name, err)
		}
		p := pinochle.NewPlayer(s.Name, strategy)
		if f.gameID != uuid.Nil {
			p = pinochle.NewPlayerWithID(uuid.NewSHA1(f.gameID, []byte(s.Name)), s.Name, strategy)
		}
		teams[index[s.Team]].AddPlayer(p)
	}
	return teams, nil
}
