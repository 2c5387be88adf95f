package craving

import "testing"

func TestRiskScoreV1(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		trigger string
		want    int
	}{
		{"low level neutral trigger", 3, "Boredom", 0},
		{"mid level neutral trigger", 6, "Boredom", 0},
		{"high level neutral trigger", 8, "Boredom", 2},
		{"level threshold exclusive", 7, "Boredom", 0},
		{"stress adds two", 5, "Stress", 2},
		{"sleep deprivation adds two", 5, "Lack of Sleep", 2},
		{"habit adds one", 5, "Habit", 1},
		{"high level and stress stack", 9, "Stress", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RiskScoreV1(tt.level, tt.trigger); got != tt.want {
				t.Errorf("RiskScoreV1(%d, %q) = %d, want %d", tt.level, tt.trigger, got, tt.want)
			}
		})
	}
}

func TestRiskScoreV2(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		trigger string
		want    int
	}{
		{"low level neutral trigger", 3, "Boredom", 0},
		{"mid tier adds two", 6, "Boredom", 2},
		{"high tier adds three", 8, "Boredom", 3},
		{"mid tier threshold exclusive", 5, "Boredom", 0},
		{"high tier boundary is mid tier", 7, "Boredom", 2},
		{"high level and stress stack", 9, "Stress", 5},
		{"habit mid tier", 6, "Habit", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RiskScoreV2(tt.level, tt.trigger); got != tt.want {
				t.Errorf("RiskScoreV2(%d, %q) = %d, want %d", tt.level, tt.trigger, got, tt.want)
			}
		})
	}
}

// The two scorers agree except in the mid band, where only V2 penalizes.
func TestScorerVariantsDiverge(t *testing.T) {
	for level := 1; level <= 10; level++ {
		v1 := RiskScoreV1(level, "Boredom")
		v2 := RiskScoreV2(level, "Boredom")
		switch {
		case level > 7:
			if v1 != 2 || v2 != 3 {
				t.Errorf("level %d: v1=%d v2=%d, want 2 and 3", level, v1, v2)
			}
		case level > 5:
			if v1 != 0 || v2 != 2 {
				t.Errorf("level %d: v1=%d v2=%d, want 0 and 2", level, v1, v2)
			}
		default:
			if v1 != 0 || v2 != 0 {
				t.Errorf("level %d: v1=%d v2=%d, want both 0", level, v1, v2)
			}
		}
	}
}

func TestRiskScoreDispatch(t *testing.T) {
	if got := RiskScore(ScorerV1, 6, "Boredom"); got != 0 {
		t.Errorf("v1 dispatch = %d, want 0", got)
	}
	if got := RiskScore(ScorerV2, 6, "Boredom"); got != 2 {
		t.Errorf("v2 dispatch = %d, want 2", got)
	}
	// Unknown scorer names run the tiered variant.
	if got := RiskScore("", 6, "Boredom"); got != 2 {
		t.Errorf("default dispatch = %d, want 2", got)
	}
}

func TestRiskBucket(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, RiskLow},
		{2, RiskLow},
		{3, RiskModerate},
		{4, RiskModerate},
		{5, RiskHigh},
	}
	for _, tt := range tests {
		if got := RiskBucket(tt.score); got != tt.want {
			t.Errorf("RiskBucket(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestIsValidTrigger(t *testing.T) {
	for _, trigger := range ValidTriggers {
		if !IsValidTrigger(trigger) {
			t.Errorf("IsValidTrigger(%q) = false, want true", trigger)
		}
	}
	for _, trigger := range []string{"", "stress", "Anger"} {
		if IsValidTrigger(trigger) {
			t.Errorf("IsValidTrigger(%q) = true, want false", trigger)
		}
	}
}
