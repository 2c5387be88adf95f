package craving

import (
	"strings"
	"testing"
)

func TestInterventionBaseTiers(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Drink water and wait 10 minutes."},
		{3, "Drink water and wait 10 minutes."},
		{4, "Eat protein snack (nuts / yogurt / eggs)."},
		{6, "Eat protein snack (nuts / yogurt / eggs)."},
		{7, "Take a 10-minute walk + deep breathing + protein snack."},
		{10, "Take a 10-minute walk + deep breathing + protein snack."},
	}

	for _, tt := range tests {
		got := Intervention(tt.level, "Boredom")
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("Intervention(%d) = %q, want prefix %q", tt.level, got, tt.want)
		}
	}
}

func TestInterventionTriggerAdvice(t *testing.T) {
	tests := []struct {
		trigger string
		suffix  string
	}{
		{"Stress", "Also try 5-minute breathing exercise."},
		{"Boredom", "Do a quick task or short activity."},
		{"Hunger", "You likely need a proper meal, not sugar."},
		{"Lack of Sleep", "Prioritize sleep tonight."},
		{"After Meals", "Brush your teeth to reset taste."},
		{"Social Event", "Choose fruit or small dark chocolate portion."},
		{"Habit", "Replace with herbal tea."},
	}

	for _, tt := range tests {
		got := Intervention(5, tt.trigger)
		if !strings.HasSuffix(got, tt.suffix) {
			t.Errorf("Intervention(5, %q) = %q, want suffix %q", tt.trigger, got, tt.suffix)
		}
	}
}

func TestInterventionConcatenation(t *testing.T) {
	got := Intervention(8, "Stress")
	want := "Take a 10-minute walk + deep breathing + protein snack. Also try 5-minute breathing exercise."
	if got != want {
		t.Errorf("Intervention(8, Stress) = %q, want %q", got, want)
	}
}
