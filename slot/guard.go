package slot

// Verdict is the guard's decision on a candidate sequence
type Verdict int

const (
	// VerdictAccept means the candidate winner may be committed
	VerdictAccept Verdict = iota
	// VerdictReject means the candidate winner is excluded; a fresh shuffle may succeed
	VerdictReject
	// VerdictUnspinnable means every pooled name is excluded; no shuffle can succeed
	VerdictUnspinnable
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccept:
		return "accept"
	case VerdictReject:
		return "reject"
	case VerdictUnspinnable:
		return "unspinnable"
	default:
		return "unknown"
	}
}

// Guard decides whether a sequence's last item may win
type Guard struct {
	pool *NamePool
}

// NewGuard creates a guard reading the exclusion set and names of pool
func NewGuard(pool *NamePool) *Guard {
	return &Guard{pool: pool}
}

// Evaluate checks the candidate winner, the last item of sequence
// Unspinnable takes precedence over an ordinary rejection
func (g *Guard) Evaluate(sequence []string) Verdict {
	if g.pool.Covered() {
		return VerdictUnspinnable
	}
	if len(sequence) == 0 {
		return VerdictReject
	}
	if g.pool.IsExcluded(sequence[len(sequence)-1]) {
		return VerdictReject
	}
	return VerdictAccept
}
