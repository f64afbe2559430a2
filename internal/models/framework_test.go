// ABOUTME: Tests for TrainingFramework parsing and rules tables.
// ABOUTME: Every framework needs complete, sane progression rules.
package models

import "testing"

func TestParseFramework(t *testing.T) {
	tests := []struct {
		input   string
		want    TrainingFramework
		wantErr bool
	}{
		{"POWERLIFTING", FrameworkPowerlifting, false},
		{"HYPERTROPHY", FrameworkHypertrophy, false},
		{"STRENGTH_LINEAR", FrameworkStrengthLinear, false},
		{"STRENGTH_CONDITIONING", FrameworkStrengthConditioning, false},
		{"powerlifting", "", true},
		{"", "", true},
		{"CROSSFIT", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFramework(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFramework(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFramework(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFramework(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFrameworkRulesComplete(t *testing.T) {
	for _, f := range AllFrameworks {
		rules, ok := FrameworkConfigs[f]
		if !ok {
			t.Errorf("framework %s has no rules", f)
			continue
		}
		if rules.TargetRPE <= 0 || rules.TargetRPE > 10 {
			t.Errorf("%s: target RPE %v out of range", f, rules.TargetRPE)
		}
		if rules.LoadIncrementKg <= 0 {
			t.Errorf("%s: load increment %v must be positive", f, rules.LoadIncrementKg)
		}
		if rules.RepRange.Min < 1 || rules.RepRange.Max < rules.RepRange.Min {
			t.Errorf("%s: rep range %+v invalid", f, rules.RepRange)
		}
		if len(rules.DefaultMovements) == 0 {
			t.Errorf("%s: no default movements", f)
		}
		for _, mv := range rules.DefaultMovements {
			if !IsValidMovementPattern(string(mv.Pattern)) {
				t.Errorf("%s: movement %q has invalid pattern %q", f, mv.Name, mv.Pattern)
			}
		}
	}
}

func TestFrameworkTargets(t *testing.T) {
	tests := []struct {
		framework TrainingFramework
		targetRPE float64
		repMin    int
		repMax    int
	}{
		{FrameworkStrengthLinear, 8, 5, 5},
		{FrameworkPowerlifting, 9, 1, 3},
		{FrameworkHypertrophy, 8, 8, 12},
		{FrameworkStrengthConditioning, 7, 10, 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			rules := tt.framework.Rules()
			if rules.TargetRPE != tt.targetRPE {
				t.Errorf("TargetRPE = %v, want %v", rules.TargetRPE, tt.targetRPE)
			}
			if rules.RepRange.Min != tt.repMin || rules.RepRange.Max != tt.repMax {
				t.Errorf("RepRange = %+v, want %d-%d", rules.RepRange, tt.repMin, tt.repMax)
			}
		})
	}
}
