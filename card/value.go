package card

// Value 点数, declared worst to best. Ten ranks between King and Ace.
type Value byte

const (
	Nine Value = iota
	Jack
	Queen
	King
	Ten
	Ace
)

var allValues = [...]Value{Nine, Jack, Queen, King, Ten, Ace}

// Values returns the six values from worst to best.
func Values() []Value {
	out := make([]Value, len(allValues))
	copy(out, allValues[:])
	return out
}

func (v Value) Valid() bool { return v <= Ace }

// Counter reports whether a card of this value is worth a trick point.
func (v Value) Counter() bool { return v == Ace || v == Ten || v == King }

func (v Value) String() string {
	switch v {
	case Nine:
		return "9"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "10"
	case Ace:
		return "A"
	}
	return "?"
}

func parseValue(str string) (Value, error) {
	switch str {
	case "9":
		return Nine, nil
	case "J", "j":
		return Jack, nil
	case "Q", "q":
		return Queen, nil
	case "K", "k":
		return King, nil
	case "10", "T", "t":
		return Ten, nil
	case "A", "a":
		return Ace, nil
	}
	return 0, &ParseError{Input: str, What: "value"}
}
