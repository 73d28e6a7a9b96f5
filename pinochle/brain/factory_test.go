package brain

import (
	"testing"

	"pinochle/pinochle"

	"github.com/google/uuid"
)

func TestParseRoster(t *testing.T) {
	r, err := ParseRoster([]byte(`{"seats":[
		{"name":"Ann","team":2},
		{"name":"Bob","team":1,"kind":"human"},
		{"name":"Cy","team":2},
		{"name":"Di","team":1}
	]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Seats[0].Kind != KindComputer {
		t.Fatalf("missing kind should default to computer, got %q", r.Seats[0].Kind)
	}
	if r.Humans() != 1 {
		t.Fatalf("expected 1 human, got %d", r.Humans())
	}
	if got := r.TeamNumbers(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected team numbers %v", got)
	}
}

func TestParseRosterRejectsBadInput(t *testing.T) {
	bad := []string{
		`{"seats":[]}`,
		`{"seats":[{"name":"A","team":1},{"name":"A","team":2}]}`,
		`{"seats":[{"name":"A","team":1,"kind":"robot"}]}`,
		`{"seats":[{"team":1}]}`,
		`not json`,
	}
	for _, data := range bad {
		if _, err := ParseRoster([]byte(data)); err == nil {
			t.Fatalf("expected error for %s", data)
		}
	}
}

func TestFactoryTeamsFromDefaultRoster(t *testing.T) {
	f := NewFactory(5, nil, pinochle.PassReachable)
	teams, err := f.Teams(DefaultRoster(0))
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(teams) != 2 || teams[0].Number != 1 || teams[1].Number != 2 {
		t.Fatalf("unexpected teams %v", teams)
	}
	one := teams[0].Players()
	if one[0].Name != "Joe" || one[1].Name != "Katie" {
		t.Fatalf("team 1 should be Joe and Katie, got %v", one)
	}

	g, err := pinochle.NewGame(pinochle.Config{Seed: 9, TargetScore: 100000}, teams...)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	seats := g.Players()
	order := []string{"Joe", "George", "Katie", "Sue"}
	for i, name := range order {
		if seats[i].Name != name {
			t.Fatalf("seat %d: got %s want %s", i, seats[i].Name, name)
		}
	}
	for i := 0; i < 5; i++ {
		if _, err := g.PlayRound(); err != nil {
			t.Fatalf("round %d: %v", i+1, err)
		}
	}
}

func TestFactoryHumanNeedsInput(t *testing.T) {
	f := NewFactory(5, nil, pinochle.PassReachable)
	if _, err := f.Teams(DefaultRoster(1)); err == nil {
		t.Fatalf("expected error for a human seat without input")
	}
	f = NewFactory(5, &queueInput{}, pinochle.PassReachable)
	teams, err := f.Teams(DefaultRoster(1))
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if _, ok := teams[0].Players()[0].Strategy().(*Human); !ok {
		t.Fatalf("Joe should be human")
	}
}

func TestFactorySeedFixesTable(t *testing.T) {
	play := func() []int {
		teams, err := NewFactory(77, nil, pinochle.PassReachable).Teams(DefaultRoster(0))
		if err != nil {
			t.Fatalf("teams: %v", err)
		}
		g, err := pinochle.NewGame(pinochle.Config{Seed: 77, TargetScore: 100000}, teams...)
		if err != nil {
			t.Fatalf("new game: %v", err)
		}
		var totals []int
		for i := 0; i < 4; i++ {
			res, err := g.PlayRound()
			if err != nil {
				t.Fatalf("round: %v", err)
			}
			for _, s := range res.Teams {
				totals = append(totals, s.Total, s.RoundScore)
			}
		}
		return totals
	}
	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seeds diverged at %d: %v vs %v", i, a, b)
		}
	}
}

func TestFactoryGameIDFixesPlayerIDs(t *testing.T) {
	gameID := uuid.MustParse("1b4e28ba-2fa1-41d2-883f-0016d3cca427")
	build := func() []*pinochle.Player {
		teams, err := NewFactory(5, nil, pinochle.PassReachable).WithGameID(gameID).Teams(DefaultRoster(0))
		if err != nil {
			t.Fatalf("teams: %v", err)
		}
		return append(teams[0].Players(), teams[1].Players()...)
	}
	a, b := build(), build()
	seen := map[uuid.UUID]bool{}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("%s got different ids: %s vs %s", a[i].Name, a[i].ID, b[i].ID)
		}
		if want := uuid.NewSHA1(gameID, []byte(a[i].Name)); a[i].ID != want {
			t.Fatalf("%s id %s, want %s", a[i].Name, a[i].ID, want)
		}
		seen[a[i].ID] = true
	}
	if len(seen) != len(a) {
		t.Fatalf("player ids must be distinct, got %d for %d players", len(seen), len(a))
	}

	teams, err := NewFactory(5, nil, pinochle.PassReachable).Teams(DefaultRoster(0))
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if teams[0].Players()[0].ID == uuid.Nil {
		t.Fatalf("players without a game id still need an id")
	}
}
