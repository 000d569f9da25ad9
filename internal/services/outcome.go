package services

// How a play session ended.
type Outcome int

const (
	// The player quit from the menu or closed the input stream.
	OutcomeAborted Outcome = iota
	// The fraudulent package went overboard.
	OutcomeVictory
	// An honest customer's package went overboard.
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "aborted"
	}
}
