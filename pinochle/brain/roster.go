package brain

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// SeatKind selects the strategy behind a seat.
type SeatKind string

const (
	KindComputer SeatKind = "computer"
	KindHuman    SeatKind = "human"
)

// SeatSpec describes one player at the table.
type SeatSpec struct {
	Name string   `json:"name"`
	Team int      `json:"team"`
	Kind SeatKind `json:"kind"`
}

// Roster lists the table's players. Order within a team is kept when the
// engine seats them.
type Roster struct {
	Seats []SeatSpec `json:"seats"`
}

// DefaultRoster is the classic table: Joe and Katie against George and Sue.
// The first humans entries become interactive.
func DefaultRoster(humans int) Roster {
	r := Roster{Seats: []SeatSpec{
		{Name: "Joe", Team: 1, Kind: KindComputer},
		{Name: "Katie", Team: 1, Kind: KindComputer},
		{Name: "George", Team: 2, Kind: KindComputer},
		{Name: "Sue", Team: 2, Kind: KindComputer},
	}}
	for i := 0; i < humans && i < len(r.Seats); i++ {
		r.Seats[i].Kind = KindHuman
	}
	return r
}

// LoadRoster reads a roster from a JSON file.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster file: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes and validates a roster from raw JSON bytes.
func ParseRoster(data []byte) (Roster, error) {
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parse roster JSON: %w", err)
	}
	for i := range r.Seats {
		if r.Seats[i].Kind == "" {
			r.Seats[i].Kind = KindComputer
		}
	}
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

func (r Roster) Validate() error {
	if len(r.Seats) == 0 {
		return fmt.Errorf("roster has no seats")
	}
	names := make(map[string]bool, len(r.Seats))
	for _, s := range r.Seats {
		if s.Name == "" {
			return fmt.Errorf("roster seat without a name")
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate roster name %q", s.Name)
		}
		names[s.Name] = true
		switch s.Kind {
		case KindComputer, KindHuman:
		default:
			return fmt.Errorf("seat %q has unknown kind %q", s.Name, s.Kind)
		}
	}
	return nil
}

// TeamNumbers returns the distinct team numbers in ascending order.
func (r Roster) TeamNumbers() []int {
	seen := make(map[int]bool)
	var out []int
	for _, s := range r.Seats {
		if !seen[s.Team] {
			seen[s.Team] = true
			out = append(out, s.Team)
		}
	}
	sort.Ints(out)
	return out
}

// Humans counts interactive seats.
func (r Roster) Humans() int {
	n := 0
	for _, s := range r.Seats {
		if s.Kind == KindHuman {
			n++
		}
	}
	return n
}
