package insight

import "testing"

func TestConfidenceScore(t *testing.T) {
	t.Run("full week steady intake is 100", func(t *testing.T) {
		got := ConfidenceScore(7, []float64{2000, 2000, 2000, 2000, 2000, 2000, 2000})
		if !almostEqual(got.Score, 100) {
			t.Errorf("Score = %v, want 100", got.Score)
		}
		if !almostEqual(got.LoggingConsistency, 100) {
			t.Errorf("LoggingConsistency = %v, want 100", got.LoggingConsistency)
		}
		if !almostEqual(got.IntakeStability, 100) {
			t.Errorf("IntakeStability = %v, want 100", got.IntakeStability)
		}
	})

	t.Run("fewer days lowers consistency", func(t *testing.T) {
		got := ConfidenceScore(3, []float64{2000, 2000, 2000})
		wantConsistency := 3.0 / 7 * 100
		if !almostEqual(got.LoggingConsistency, wantConsistency) {
			t.Errorf("LoggingConsistency = %v, want %v", got.LoggingConsistency, wantConsistency)
		}
		if want := 0.6*wantConsistency + 0.4*100; !almostEqual(got.Score, want) {
			t.Errorf("Score = %v, want %v", got.Score, want)
		}
	})

	t.Run("unstable intake lowers stability", func(t *testing.T) {
		// stddev of {1500, 2500} is 500, so stability is 100-50 = 50.
		got := ConfidenceScore(2, []float64{1500, 2500})
		if !almostEqual(got.IntakeStability, 50) {
			t.Errorf("IntakeStability = %v, want 50", got.IntakeStability)
		}
	})

	t.Run("single day has zero spread", func(t *testing.T) {
		got := ConfidenceScore(1, []float64{1800})
		if !almostEqual(got.IntakeStability, 100) {
			t.Errorf("IntakeStability = %v, want 100", got.IntakeStability)
		}
	})

	t.Run("wild intake cannot push stability negative", func(t *testing.T) {
		got := ConfidenceScore(2, []float64{0, 5000})
		if got.IntakeStability != 0 {
			t.Errorf("IntakeStability = %v, want 0", got.IntakeStability)
		}
	})
}

func TestDisciplineScore(t *testing.T) {
	tests := []struct {
		name      string
		avgIntake float64
		want      float64
	}{
		{"within 100", 2050, 90},
		{"within 250", 2150, 70},
		{"within 400", 2300, 50},
		{"beyond 400", 2500, 30},
		{"exact target", 2000, 90},
		{"band boundary 100", 2100, 70},
		{"band boundary 250", 2250, 50},
		{"band boundary 400", 2400, 30},
		{"under target symmetric", 1700, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisciplineScore(tt.avgIntake, 2000); !almostEqual(got, tt.want) {
				t.Errorf("DisciplineScore(%v, 2000) = %v, want %v", tt.avgIntake, got, tt.want)
			}
		})
	}
}

func TestExerciseConsistency(t *testing.T) {
	tests := []struct {
		activeDays int
		wantLabel  string
	}{
		{7, "excellent"},
		{5, "excellent"},
		{3, "good"},
		{2, "low"},
		{0, "low"},
	}

	for _, tt := range tests {
		score, label := ExerciseConsistency(tt.activeDays)
		if want := float64(tt.activeDays) / 7 * 100; !almostEqual(score, want) {
			t.Errorf("ExerciseConsistency(%d) score = %v, want %v", tt.activeDays, score, want)
		}
		if label != tt.wantLabel {
			t.Errorf("ExerciseConsistency(%d) label = %q, want %q", tt.activeDays, label, tt.wantLabel)
		}
	}
}
