package pinochle

import "fmt"

// Team is a partnership. Only the trump caller's team carries a bid.
type Team struct {
	Number  int
	players []*Player

	bid         int
	roundScore  int
	meld        int
	trickPoints int
	totalScore  int
}

func NewTeam(number int, players ...*Player) *Team {
	t := &Team{Number: number}
	for _, p := range players {
		t.AddPlayer(p)
	}
	return t
}

func (t *Team) AddPlayer(p *Player) {
	p.team = t
	t.players = append(t.players, p)
}

func (t *Team) Players() []*Player {
	return append([]*Player(nil), t.players...)
}

func (t *Team) Bid() int        { return t.bid }
func (t *Team) RoundScore() int { return t.roundScore }
func (t *Team) TotalScore() int { return t.totalScore }

// OnTeam reports whether p (by name) plays for this team.
func (t *Team) OnTeam(p *Player) bool {
	for _, tp := range t.players {
		if tp.SameAs(p) {
			return true
		}
	}
	return false
}

// SetBid sets the target the team must reach this round.
func (t *Team) SetBid(bid int) { t.bid = bid }

// AddScore adds meld or trick points to the round score.
func (t *Team) AddScore(score int) { t.roundScore += score }

func (t *Team) addMeld(score int) {
	t.meld += score
	t.AddScore(score)
}

func (t *Team) addTrickPoints(score int) {
	t.trickPoints += score
	t.AddScore(score)
}

// TeamSettlement is one team's outcome for a round.
type TeamSettlement struct {
	Team        int  `json:"team"`
	Bid         int  `json:"bid"`
	Meld        int  `json:"meld"`
	TrickPoints int  `json:"trick_points"`
	RoundScore  int  `json:"round_score"`
	Made        bool `json:"made"`
	Delta       int  `json:"delta"`
	Total       int  `json:"total"`
}

// Settle applies the round to the total: a team short of its bid loses the
// bid, otherwise it banks its round score. With floor set a penalty never
// takes the total below zero. Round score and bid are reset afterwards.
func (t *Team) Settle(floor bool) TeamSettlement {
	s := TeamSettlement{
		Team:        t.Number,
		Bid:         t.bid,
		Meld:        t.meld,
		TrickPoints: t.trickPoints,
		RoundScore:  t.roundScore,
		Made:        t.roundScore >= t.bid,
	}
	before := t.totalScore
	if s.Made {
		t.totalScore += t.roundScore
	} else {
		t.totalScore -= t.bid
		if floor && t.totalScore < 0 {
			t.totalScore = 0
		}
	}
	s.Delta = t.totalScore - before
	s.Total = t.totalScore
	t.ResetRound()
	return s
}

// ResetRound clears the bid and the round tallies; the total is kept.
func (t *Team) ResetRound() {
	t.bid = 0
	t.roundScore = 0
	t.meld = 0
	t.trickPoints = 0
}

func (t *Team) String() string {
	names := make([]string, len(t.players))
	for i, p := range t.players {
		names[i] = p.Name
	}
	return fmt.Sprintf("Team %d %v", t.Number, names)
}
