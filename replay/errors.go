package replay

import "fmt"

// TapeError explains why a tape could not be produced. Round is -1 when the
// failure happened before the first round.
type TapeError struct {
	Round   int    `json:"round"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *TapeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tape error(round=%d reason=%s): %s", e.Round, e.Reason, e.Message)
}
