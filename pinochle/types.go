package pinochle

const (
	DefaultTargetScore = 120
	DefaultMaxRounds   = 1000

	// OpeningBid is the lowest non-pass bid a computer makes.
	OpeningBid = 20
)

// Phase 回合阶段
type Phase byte

const (
	PhaseIdle   Phase = 0
	PhaseDeal   Phase = 1
	PhaseBid    Phase = 2
	PhaseMeld   Phase = 3
	PhasePlay   Phase = 4
	PhaseSettle Phase = 5
	PhaseOver   Phase = 6
)

var PhaseDictionary = map[Phase]string{
	PhaseIdle:   "idle",
	PhaseDeal:   "deal",
	PhaseBid:    "bid",
	PhaseMeld:   "meld",
	PhasePlay:   "play",
	PhaseSettle: "settle",
	PhaseOver:   "over",
}

func (p Phase) String() string {
	if s, ok := PhaseDictionary[p]; ok {
		return s
	}
	return "unknown"
}
