package pinochle

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pinochle/card"
)

// Game is the round engine for a partnered pinochle table. Seats are fixed at
// construction; every exported method runs to completion before returning.
type Game struct {
	cfg Config
	rng *rand.Rand
	obs Observer

	mu sync.Mutex

	teams   []*Team
	players []*Player // seat order

	// round state
	round     int
	phase     Phase
	deck      card.Deck
	dealer    int
	bids      []int
	trumpSeat int
	trump     card.Suit
	trumpSet  bool
	meetBid   int
	used      []card.Card

	maxScore int
	over     bool
}

// NewGame seats the teams' players alternately: first player of each team,
// then the second of each team, and so on, so partners never sit together.
func NewGame(cfg Config, teams ...*Team) (*Game, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(teams) < 2 {
		return nil, fmt.Errorf("need at least 2 teams, got %d", len(teams))
	}
	size := len(teams[0].players)
	if size == 0 {
		return nil, fmt.Errorf("team %d has no players", teams[0].Number)
	}
	names := make(map[string]bool)
	numbers := make(map[int]bool)
	for _, t := range teams {
		if len(t.players) != size {
			return nil, fmt.Errorf("team %d has %d players, want %d", t.Number, len(t.players), size)
		}
		if numbers[t.Number] {
			return nil, fmt.Errorf("duplicate team number %d", t.Number)
		}
		numbers[t.Number] = true
		for _, p := range t.players {
			if names[p.Name] {
				return nil, fmt.Errorf("duplicate player name %q", p.Name)
			}
			names[p.Name] = true
			if p.strategy == nil {
				return nil, fmt.Errorf("player %q has no strategy", p.Name)
			}
		}
	}
	n := size * len(teams)
	if card.DeckSize%n != 0 {
		return nil, fmt.Errorf("%d players cannot split a %d card deck evenly", n, card.DeckSize)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		obs:   cfg.Observer,
		teams: teams,
		phase: PhaseIdle,
	}
	for i := 0; i < size; i++ {
		for _, t := range teams {
			p := t.players[i]
			p.seat = len(g.players)
			g.players = append(g.players, p)
		}
	}
	return g, nil
}

func (g *Game) Config() Config { return g.cfg }

// Players returns the players in seat order.
func (g *Game) Players() []*Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Player(nil), g.players...)
}

func (g *Game) Teams() []*Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Team(nil), g.teams...)
}

// Over reports whether a team has reached the target score.
func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over
}

// PlayRound runs shuffle, deal, bidding, meld, every trick and settlement.
// If a strategy fails the round is abandoned: hands, bids and round scores
// are cleared and totals stay as they were.
func (g *Game) PlayRound() (*RoundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return nil, ErrGameOver
	}
	res, err := g.playRoundLocked()
	if err != nil {
		g.abortRoundLocked()
		return nil, err
	}
	return res, nil
}

// Play keeps playing rounds until a team total reaches the target score.
func (g *Game) Play() (*MatchResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return nil, ErrGameOver
	}
	for !g.over {
		if g.cfg.MaxRounds > 0 && g.round >= g.cfg.MaxRounds {
			return nil, fmt.Errorf("%w: %d rounds played", ErrRoundLimit, g.round)
		}
		if _, err := g.playRoundLocked(); err != nil {
			g.abortRoundLocked()
			return nil, err
		}
	}
	res := g.matchResultLocked()
	g.obs.OnEvent(GameOver{Result: res})
	return &res, nil
}

func (g *Game) playRoundLocked() (*RoundResult, error) {
	g.round++
	g.dealer = g.dealerForRound()
	g.obs.OnEvent(RoundStarted{Round: g.round, Dealer: g.dealer})

	if err := g.shuffle(); err != nil {
		return nil, err
	}
	if err := g.deal(); err != nil {
		return nil, err
	}
	if err := g.bidRound(); err != nil {
		return nil, err
	}
	g.scoreHands()
	if err := g.playTricks(); err != nil {
		return nil, err
	}

	res := g.settleRoundLocked()
	g.obs.OnEvent(RoundSettled{Result: res})
	g.cleanupRound()
	if g.maxScore >= g.cfg.TargetScore {
		g.over = true
		g.phase = PhaseOver
	}
	return &res, nil
}

func (g *Game) dealerForRound() int {
	offset := 0
	if g.cfg.ForcedDealer != nil {
		offset = *g.cfg.ForcedDealer
	}
	return (offset + g.round - 1) % len(g.players)
}

func (g *Game) shuffle() error {
	g.phase = PhaseDeal
	if g.cfg.DeckOverride != nil {
		g.deck = append(card.Deck(nil), g.cfg.DeckOverride...)
	} else {
		g.deck = card.NewDeck()
		g.deck.Shuffle(g.rng)
	}
	if g.deck.Count() != card.DeckSize {
		return ErrInvalidState(fmt.Sprintf("deck has %d cards", g.deck.Count()))
	}
	return nil
}

func (g *Game) deal() error {
	hands, err := g.deck.Deal(len(g.players))
	if err != nil {
		return ErrInvalidState(err.Error())
	}
	for i, p := range g.players {
		if p.hand.Len() != 0 {
			return ErrInvalidState(fmt.Sprintf("player %s holds cards before the deal", p.Name))
		}
		p.AddCard(hands[i]...)
	}
	return nil
}

// bidRound asks every seat once, starting at the dealer. A bid strictly
// above every earlier bid (or the first bid) takes the trump call.
func (g *Game) bidRound() error {
	g.phase = PhaseBid
	n := len(g.players)
	g.bids = make([]int, 0, n)
	g.trumpSeat = (g.dealer + n - 1) % n
	high := 0
	for i := 0; i < n; i++ {
		seat := (g.dealer + i) % n
		p := g.players[seat]
		bid, err := p.strategy.Bid(BidView{
			Round: g.round,
			Seat:  seat,
			Name:  p.Name,
			Hand:  p.hand.Clone(),
			Meld:  ScoreHand(p.hand, nil, g.cfg.MeldPolicy),
			Bids:  append([]int(nil), g.bids...),
		})
		if err != nil {
			return fmt.Errorf("bid from %s: %w", p.Name, err)
		}
		if bid < 0 {
			return ErrInvalidState(fmt.Sprintf("negative bid %d from %s", bid, p.Name))
		}
		leading := len(g.bids) == 0 || bid > high
		if leading {
			g.trumpSeat = seat
			high = bid
		}
		p.bid = bid
		g.bids = append(g.bids, bid)
		g.obs.OnEvent(BidPlaced{Round: g.round, Seat: seat, Player: p.Name, PlayerID: p.ID, Bid: bid, Leading: leading})
	}
	g.meetBid = high

	if g.trumpSeat < 0 || g.trumpSeat >= n {
		return ErrInvalidState(fmt.Sprintf("trump seat %d out of range", g.trumpSeat))
	}
	caller := g.players[g.trumpSeat]
	trump, err := caller.strategy.CallTrump(TrumpView{
		Round:   g.round,
		Seat:    g.trumpSeat,
		Name:    caller.Name,
		Hand:    caller.hand.Clone(),
		Meld:    ScoreHand(caller.hand, nil, g.cfg.MeldPolicy),
		MeetBid: g.meetBid,
	})
	if err != nil {
		return fmt.Errorf("trump call from %s: %w", caller.Name, err)
	}
	if !trump.Valid() {
		return ErrInvalidState(fmt.Sprintf("invalid trump suit %d from %s", trump, caller.Name))
	}
	g.trump = trump
	g.trumpSet = true
	g.obs.OnEvent(TrumpCalled{Round: g.round, Seat: g.trumpSeat, Player: caller.Name, PlayerID: caller.ID, Trump: trump, MeetBid: g.meetBid})
	return nil
}

// scoreHands credits each player's meld to their team before any card is
// played, then gives the trump caller's team the meet bid as its target.
func (g *Game) scoreHands() {
	g.phase = PhaseMeld
	trump := g.trump
	for _, p := range g.players {
		m := Meld(p.hand, &trump)
		score := m.Total(g.cfg.MeldPolicy)
		p.team.addMeld(score)
		g.obs.OnEvent(MeldScored{Round: g.round, Seat: p.seat, Player: p.Name, PlayerID: p.ID, Team: p.team.Number, Meld: m, Score: score})
	}
	g.players[g.trumpSeat].team.SetBid(g.meetBid)
}

// playTricks plays deck/players tricks. The trump caller leads the first,
// each trick winner leads the next.
func (g *Game) playTricks() error {
	g.phase = PhasePlay
	n := len(g.players)
	tricks := card.DeckSize / n
	leader := g.trumpSeat
	for t := 0; t < tricks; t++ {
		trick := make([]card.Card, 0, n)
		for i := 0; i < n; i++ {
			seat := (leader + i) % n
			p := g.players[seat]
			c, err := p.strategy.PlayCard(PlayView{
				Round:       g.round,
				TrickNumber: t + 1,
				Seat:        seat,
				Leader:      leader,
				Name:        p.Name,
				Hand:        p.hand.Clone(),
				Trick:       append([]card.Card(nil), trick...),
				Used:        append([]card.Card(nil), g.used...),
				Trump:       g.trump,
			})
			if err != nil {
				return fmt.Errorf("card from %s: %w", p.Name, err)
			}
			if !p.hand.Contains(c) {
				return &IllegalMoveError{Player: p.Name, Card: c, Trick: trick, Reason: "card not in hand"}
			}
			if !AllowedMove(trick, p.hand, c, g.trump) {
				return &IllegalMoveError{Player: p.Name, Card: c, Trick: trick, Reason: "must follow lead suit or trump"}
			}
			p.RemoveCard(c)
			trick = append(trick, c)
			g.obs.OnEvent(CardPlayed{Round: g.round, TrickNumber: t + 1, Seat: seat, Player: p.Name, PlayerID: p.ID, Card: c})
		}

		winner := TrickWinner(trick, leader, n, g.trump)
		points := TrickPoints(trick)
		wp := g.players[winner]
		wp.team.addTrickPoints(points)
		g.used = append(g.used, trick...)
		g.obs.OnEvent(TrickWon{
			Round:       g.round,
			TrickNumber: t + 1,
			Seat:        winner,
			Player:      wp.Name,
			PlayerID:    wp.ID,
			Team:        wp.team.Number,
			Cards:       trick,
			Points:      points,
			RoundScore:  wp.team.roundScore,
		})

		if err := g.checkConservation(t + 1); err != nil {
			return err
		}
		leader = winner
	}
	return nil
}

// checkConservation verifies that after played tricks every hand shrank by
// one card per trick and the used pile grew by one card per seat.
func (g *Game) checkConservation(played int) error {
	n := len(g.players)
	want := card.DeckSize/n - played
	for _, p := range g.players {
		if p.hand.Len() != want {
			return ErrInvalidState(fmt.Sprintf("player %s holds %d cards after %d tricks, want %d", p.Name, p.hand.Len(), played, want))
		}
	}
	if len(g.used) != played*n {
		return ErrInvalidState(fmt.Sprintf("%d used cards after %d tricks", len(g.used), played))
	}
	return nil
}

func (g *Game) cleanupRound() {
	for _, p := range g.players {
		p.ResetForNewRound()
	}
	g.deck = nil
	g.bids = nil
	g.trumpSeat = 0
	g.trump = 0
	g.trumpSet = false
	g.meetBid = 0
	g.used = nil
	g.phase = PhaseIdle
}

func (g *Game) abortRoundLocked() {
	for _, t := range g.teams {
		t.ResetRound()
	}
	g.cleanupRound()
	g.round--
}
