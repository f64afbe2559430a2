// ABOUTME: Tests for the coarse 3-way intensity classifier.
// ABOUTME: Verifies boundary behavior around the target RPE.
package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		actual float64
		target float64
		want   IntensityStatus
	}{
		{"under", 6, 8, IntensityUnder},
		{"on target", 8, 8, IntensityOnTarget},
		{"over", 9, 8, IntensityOver},
		{"just under", 7.5, 8, IntensityUnder},
		{"just over", 8.5, 8, IntensityOver},
		{"zero actual", 0, 8, IntensityUnder},
		{"max effort", 10, 9, IntensityOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.actual, tt.target)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %s, want %s", tt.actual, tt.target, got, tt.want)
			}
		})
	}
}
