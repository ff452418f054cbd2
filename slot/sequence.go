package slot

import (
	"math/rand/v2"
	"time"
)

// SequenceBuilder produces the shuffled, length-normalised reel for one spin
type SequenceBuilder struct {
	rng *rand.Rand
}

// NewSequenceBuilder creates a builder drawing from rng
// A nil rng is replaced by a time-seeded PCG source
func NewSequenceBuilder(rng *rand.Rand) *SequenceBuilder {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &SequenceBuilder{rng: rng}
}

// Shuffle returns a new slice holding a uniformly random permutation of names
// Each step picks one of the n remaining keys and swaps it past the end of the window
func (b *SequenceBuilder) Shuffle(names []string) []string {
	keys := make([]int, len(names))
	for i := range keys {
		keys[i] = i
	}

	result := make([]string, 0, len(names))
	for n := len(keys); n > 0; n-- {
		i := b.rng.IntN(n)
		key := keys[i]
		result = append(result, names[key])
		keys[i], keys[n-1] = keys[n-1], key
	}
	return result
}

// Build shuffles names, pads the result by repeating it until it reaches maxLength,
// then truncates it to maxLength-reservedSlots items
// The target never drops below one so a candidate winner always exists
// Returns nil for an empty name list
func (b *SequenceBuilder) Build(names []string, maxLength, reservedSlots int) []string {
	seq := b.Shuffle(names)
	if len(seq) == 0 {
		return nil
	}

	for len(seq) < maxLength {
		seq = append(seq, seq...)
	}

	target := max(maxLength-reservedSlots, 1)
	if target > len(seq) {
		target = len(seq)
	}
	return seq[:target:target]
}
