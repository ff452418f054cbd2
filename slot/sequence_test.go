package slot

import (
	"math"
	"slices"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	b := NewSequenceBuilder(seededRand(1))
	names := []string{"A", "B", "C", "D", "E", "A"}

	for i := 0; i < 50; i++ {
		got := b.Shuffle(names)
		if len(got) != len(names) {
			t.Fatalf("Expected %d items, got %d", len(names), len(got))
		}
		sortedGot := slices.Sorted(slices.Values(got))
		sortedWant := slices.Sorted(slices.Values(names))
		if !slices.Equal(sortedGot, sortedWant) {
			t.Fatalf("Shuffle %v is not a permutation of %v", got, names)
		}
	}

	if !slices.Equal(names, []string{"A", "B", "C", "D", "E", "A"}) {
		t.Error("Shuffle must not modify its input")
	}
}

func TestBuildLengths(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		maxLength int
		reserved  int
		wantLen   int
	}{
		{"exact fit", []string{"A", "B", "C"}, 3, 0, 3},
		{"padded", []string{"A", "B", "C"}, 30, 0, 30},
		{"padded with reserved slot", []string{"A", "B", "C"}, 30, 1, 29},
		{"truncated", []string{"A", "B", "C", "D", "E"}, 2, 0, 2},
		{"single name", []string{"A"}, 7, 0, 7},
		{"reserved slot clamps to one", []string{"A", "B"}, 1, 1, 1},
		{"zero length clamps to one", []string{"A", "B"}, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSequenceBuilder(seededRand(7))
			got := b.Build(tt.names, tt.maxLength, tt.reserved)
			if len(got) != tt.wantLen {
				t.Fatalf("Expected length %d, got %d (%v)", tt.wantLen, len(got), got)
			}
			for _, v := range got {
				if !slices.Contains(tt.names, v) {
					t.Errorf("Sequence item %q not in name list", v)
				}
			}
		})
	}
}

func TestBuildPadsByRepetition(t *testing.T) {
	b := NewSequenceBuilder(seededRand(3))
	names := []string{"A", "B", "C"}

	got := b.Build(names, 10, 0)

	// Padding concatenates the shuffled prefix with itself, never reshuffles
	for i := len(names); i < len(got); i++ {
		if got[i] != got[i%len(names)] {
			t.Fatalf("Item %d = %q, want repeat of item %d = %q (%v)", i, got[i], i%len(names), got[i%len(names)], got)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	b := NewSequenceBuilder(seededRand(1))
	if got := b.Build(nil, 30, 0); got != nil {
		t.Errorf("Expected nil sequence for empty pool, got %v", got)
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	a := NewSequenceBuilder(seededRand(42)).Build(names, 12, 0)
	b := NewSequenceBuilder(seededRand(42)).Build(names, 12, 0)
	if !slices.Equal(a, b) {
		t.Errorf("Same seed produced different sequences: %v vs %v", a, b)
	}
}

// TestBuildLastPositionUniform checks that each name lands in the winning slot about 1/N of the time
func TestBuildLastPositionUniform(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	const trials = 50000
	b := NewSequenceBuilder(seededRand(2024))

	counts := make(map[string]int, len(names))
	for i := 0; i < trials; i++ {
		seq := b.Build(names, 30, 1)
		counts[seq[len(seq)-1]]++
	}

	expected := float64(trials) / float64(len(names))
	chi2 := 0.0
	for _, name := range names {
		d := float64(counts[name]) - expected
		chi2 += d * d / expected
	}

	// 4 degrees of freedom, p = 0.001 critical value is 18.47
	if chi2 > 18.47 {
		t.Errorf("Winning slot distribution looks biased: chi2=%.2f counts=%v", chi2, counts)
	}

	for _, name := range names {
		freq := float64(counts[name]) / trials
		if math.Abs(freq-0.2) > 0.02 {
			t.Errorf("Name %s won with frequency %.3f, want ~0.200", name, freq)
		}
	}
}
