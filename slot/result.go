package slot

import "github.com/google/uuid"

// State is the controller's lifecycle phase
type State int32

const (
	StateIdle State = iota
	StateSpinning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome classifies how a spin attempt ended
type Outcome int

const (
	// OutcomeWon is a completed spin with a committed winner
	OutcomeWon Outcome = iota
	// OutcomeNoEligibleWinner is reported when every pooled name is excluded
	// Nothing is rendered; it still counts as success
	OutcomeNoEligibleWinner
	// OutcomeEmptyPool is reported when there are no names to draw from
	OutcomeEmptyPool
	// OutcomeExcluded is reported when the shuffled winner was excluded
	OutcomeExcluded
	// OutcomeBusy is reported when another spin is still running
	OutcomeBusy
)

// Success reports whether the outcome counts as a successful spin
func (o Outcome) Success() bool {
	return o == OutcomeWon || o == OutcomeNoEligibleWinner
}

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeNoEligibleWinner:
		return "no_eligible_winner"
	case OutcomeEmptyPool:
		return "empty_pool"
	case OutcomeExcluded:
		return "excluded"
	case OutcomeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Result describes one spin attempt
type Result struct {
	ID      uuid.UUID
	Outcome Outcome
	// Sequence is the shuffled reel; empty when nothing was built
	Sequence []string
	// Winner is the committed winner for OutcomeWon, the rejected candidate for OutcomeExcluded
	Winner string
}
