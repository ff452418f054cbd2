package status

import (
	"sync/atomic"

	"github.com/ncc-erp/ncc-lucky-draw/slot"
)

// Registry holds the draw counters shown in the status bar
// The spin goroutine writes, the frame loop reads; all fields are atomics
type Registry struct {
	Spins      atomic.Int64
	Won        atomic.Int64
	Rejected   atomic.Int64
	NoEligible atomic.Int64
	Failed     atomic.Int64
	LastWinner AtomicString
}

// Snapshot is a point-in-time copy of the Registry
type Snapshot struct {
	Spins      int64
	Won        int64
	Rejected   int64
	NoEligible int64
	Failed     int64
	LastWinner string
}

// NewRegistry creates a zeroed Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Record counts one spin attempt by outcome
// Busy attempts never started and are not counted
func (r *Registry) Record(res slot.Result) {
	switch res.Outcome {
	case slot.OutcomeBusy:
		return
	case slot.OutcomeWon:
		r.Won.Add(1)
		r.LastWinner.Store(res.Winner)
	case slot.OutcomeExcluded:
		r.Rejected.Add(1)
	case slot.OutcomeNoEligibleWinner:
		r.NoEligible.Add(1)
	case slot.OutcomeEmptyPool:
		r.Failed.Add(1)
	}
	r.Spins.Add(1)
}

// Snapshot returns the current counter values
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Spins:      r.Spins.Load(),
		Won:        r.Won.Load(),
		Rejected:   r.Rejected.Load(),
		NoEligible: r.NoEligible.Load(),
		Failed:     r.Failed.Load(),
		LastWinner: r.LastWinner.Load(),
	}
}
