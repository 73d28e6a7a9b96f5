package card

// Suit 花色. Declaration order is the enumeration order used for tie-breaks.
type Suit byte

const (
	Heart   Suit = iota // ♥
	Spade               // ♠
	Club                // ♣
	Diamond             // ♦
)

var allSuits = [...]Suit{Heart, Spade, Club, Diamond}

// Suits returns the four real suits in enumeration order.
func Suits() []Suit {
	out := make([]Suit, len(allSuits))
	copy(out, allSuits[:])
	return out
}

func (s Suit) Valid() bool { return s <= Diamond }

func (s Suit) String() string {
	switch s {
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	}
	return "?"
}

// Red reports whether the suit prints red.
func (s Suit) Red() bool { return s == Heart || s == Diamond }

// ParseSuit accepts a suit symbol, its initial letter, or its English name.
func ParseSuit(str string) (Suit, error) {
	switch str {
	case "♥", "h", "H", "heart", "hearts", "Heart", "Hearts":
		return Heart, nil
	case "♠", "s", "S", "spade", "spades", "Spade", "Spades":
		return Spade, nil
	case "♣", "c", "C", "club", "clubs", "Club", "Clubs":
		return Club, nil
	case "♦", "d", "D", "diamond", "diamonds", "Diamond", "Diamonds":
		return Diamond, nil
	}
	return 0, &ParseError{Input: str, What: "suit"}
}
