package slot

import "testing"

func TestGuardEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		exclude  []string
		sequence []string
		want     Verdict
	}{
		{"no exclusions", []string{"A", "B"}, nil, []string{"B", "A"}, VerdictAccept},
		{"winner excluded", []string{"A", "B"}, []string{"A"}, []string{"B", "A"}, VerdictReject},
		{"excluded name earlier in reel", []string{"A", "B"}, []string{"A"}, []string{"A", "B"}, VerdictAccept},
		{"whole pool excluded", []string{"A"}, []string{"A"}, []string{"A"}, VerdictUnspinnable},
		{"whole pool excluded with duplicates", []string{"A", "A", "B"}, []string{"B", "A"}, []string{"B"}, VerdictUnspinnable},
		{"empty sequence", []string{"A"}, nil, nil, VerdictReject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(NewNamePool(tt.names, tt.exclude))
			if got := g.Evaluate(tt.sequence); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.sequence, got, tt.want)
			}
		})
	}
}
