package tracker

import "testing"

func TestCaloriesBurned(t *testing.T) {
	tests := []struct {
		name    string
		met     float64
		weight  float64
		minutes float64
		want    float64
	}{
		{"walking an hour", 3.5, 70, 60, 245},
		{"running half hour", 11, 70, 30, 385},
		{"jump rope ten minutes", 12, 80, 10, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaloriesBurned(tt.met, tt.weight, tt.minutes); !almostEqual(got, tt.want) {
				t.Errorf("CaloriesBurned(%v, %v, %v) = %v, want %v", tt.met, tt.weight, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestLookupMET(t *testing.T) {
	tests := []struct {
		exercise string
		met      float64
		ok       bool
	}{
		{"Walking", 3.5, true},
		{"Jogging", 7, true},
		{"Running", 11, true},
		{"Cycling", 8, true},
		{"Skipping", 12, true},
		{"Yoga", 3, true},
		{"Swimming", 0, false},
		{"walking", 0, false},
	}

	for _, tt := range tests {
		met, ok := LookupMET(tt.exercise)
		if ok != tt.ok || met != tt.met {
			t.Errorf("LookupMET(%q) = (%v, %v), want (%v, %v)", tt.exercise, met, ok, tt.met, tt.ok)
		}
	}
}

func TestSuggestExercises(t *testing.T) {
	got := SuggestExercises(300, 70)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// Highest MET first means fewest minutes first.
	if got[0].ExerciseName != "Skipping" {
		t.Errorf("first suggestion = %q, want Skipping", got[0].ExerciseName)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Minutes < got[i-1].Minutes {
			t.Errorf("suggestions not sorted by minutes: %+v", got)
		}
	}

	// Skipping: 300 / (12*70) * 60 = 21.43 -> rounds to 21.
	if got[0].Minutes != 21 {
		t.Errorf("Skipping minutes = %d, want 21", got[0].Minutes)
	}
}

func TestSuggestBurnPlan(t *testing.T) {
	got := SuggestBurnPlan(400, 80)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Stair Sprint has the highest MET in the burn table.
	if got[0].ExerciseName != "Stair Sprint" {
		t.Errorf("first suggestion = %q, want Stair Sprint", got[0].ExerciseName)
	}
}

func TestSuggestExercisesInvalidInput(t *testing.T) {
	if got := SuggestExercises(0, 70); got != nil {
		t.Errorf("zero calories: got %v, want nil", got)
	}
	if got := SuggestExercises(300, 0); got != nil {
		t.Errorf("zero weight: got %v, want nil", got)
	}
}
