package nutrition

import (
	"testing"

	"NutriSense-Backend/entities"
)

func TestScoreFoodNeutralFood(t *testing.T) {
	// Nothing triggers: plain rice for a user with no goal or conditions.
	food := &entities.FoodNutrition{
		Name: "rice", CaloriesPer100G: 130, ProteinG: 2.4, FatG: 0.3,
		CarbsG: 28, SugarG: 0.1, SodiumMG: 1, FiberG: 0.4, GlycemicIndex: 73,
	}
	got := ScoreFood(food, HealthFlags{})
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if got.Bucket != BucketGood {
		t.Errorf("Bucket = %q, want %q", got.Bucket, BucketGood)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", got.Warnings)
	}
}

func TestScoreFoodPenalties(t *testing.T) {
	fried := &entities.FoodNutrition{
		Name: "fried_food", CaloriesPer100G: 450, ProteinG: 6.5, FatG: 28,
		CarbsG: 42, SugarG: 3.5, SodiumMG: 720, FiberG: 2.0, GlycemicIndex: 75,
	}

	// 100 - 30 (density>400) - 20 (fat>20) - 20 (sodium>600) = 30.
	got := ScoreFood(fried, HealthFlags{})
	if got.Score != 30 {
		t.Errorf("Score = %d, want 30", got.Score)
	}
	if got.Bucket != BucketNotIdeal {
		t.Errorf("Bucket = %q, want %q", got.Bucket, BucketNotIdeal)
	}
}

func TestScoreFoodModerateTiers(t *testing.T) {
	// 100 - 20 (density>300) - 15 (sugar>10) - 10 (sodium>300, no warning) = 55.
	food := &entities.FoodNutrition{
		Name: "sweet_bread", CaloriesPer100G: 320, ProteinG: 6, FatG: 8,
		SugarG: 14, SodiumMG: 400, FiberG: 1, GlycemicIndex: 60,
	}
	got := ScoreFood(food, HealthFlags{})
	if got.Score != 55 {
		t.Errorf("Score = %d, want 55", got.Score)
	}
	if got.Bucket != BucketModerate {
		t.Errorf("Bucket = %q, want %q", got.Bucket, BucketModerate)
	}
}

func TestScoreFoodBonuses(t *testing.T) {
	// Oats: 100 - 20 (density in the 300-400 tier) + 10 (fiber) + 10 (protein) = 100.
	oats := &entities.FoodNutrition{
		Name: "oats", CaloriesPer100G: 389, ProteinG: 16.9, FatG: 6.9,
		SugarG: 0.9, SodiumMG: 2, FiberG: 10.6, GlycemicIndex: 55,
	}
	got := ScoreFood(oats, HealthFlags{})
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if len(got.Positives) != 2 {
		t.Errorf("Positives = %v, want fiber and protein entries", got.Positives)
	}
}

func TestScoreFoodGoalAdjustments(t *testing.T) {
	dense := &entities.FoodNutrition{
		Name: "paneer", CaloriesPer100G: 296, ProteinG: 18.3, FatG: 22.8,
		SugarG: 2.6, SodiumMG: 18, GlycemicIndex: 27,
	}

	// Base: 100 - 20 (fat>20) + 10 (protein) = 90.
	base := ScoreFood(dense, HealthFlags{})
	if base.Score != 90 {
		t.Fatalf("base Score = %d, want 90", base.Score)
	}

	// Weight Loss: density 296 is not > 300, no extra penalty.
	loss := ScoreFood(dense, HealthFlags{Goal: "Weight Loss"})
	if loss.Score != 90 {
		t.Errorf("loss Score = %d, want 90", loss.Score)
	}

	// Weight Gain: density 296 is not >= 300, no bonus either.
	gain := ScoreFood(dense, HealthFlags{Goal: "Weight Gain"})
	if gain.Score != 90 {
		t.Errorf("gain Score = %d, want 90", gain.Score)
	}
}

func TestScoreFoodDiabetes(t *testing.T) {
	chai := &entities.FoodNutrition{
		Name: "chai", CaloriesPer100G: 68, ProteinG: 1.6, FatG: 2.2,
		SugarG: 9.8, SodiumMG: 18, GlycemicIndex: 55,
	}

	// Sugar 9.8 is under the diabetic threshold; no penalty.
	got := ScoreFood(chai, HealthFlags{Diabetes: true})
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}

	sweet := &entities.FoodNutrition{
		Name: "jalebi", CaloriesPer100G: 150, SugarG: 30, GlycemicIndex: 80, FiberG: 0,
	}
	// 100 - 25 (sugar>25) - 25 (diabetic sugar) - 20 (GI>70) = 30.
	got = ScoreFood(sweet, HealthFlags{Diabetes: true})
	if got.Score != 30 {
		t.Errorf("diabetic sweet Score = %d, want 30", got.Score)
	}
}

func TestScoreFoodAcidityTriggers(t *testing.T) {
	tomato := &entities.FoodNutrition{
		Name: "tomato", CaloriesPer100G: 18, ProteinG: 0.9, FatG: 0.2,
		SugarG: 2.6, SodiumMG: 5, FiberG: 1.2, GlycemicIndex: 30,
	}

	without := ScoreFood(tomato, HealthFlags{})
	with := ScoreFood(tomato, HealthFlags{Acidity: true})
	if with.Score != without.Score-10 {
		t.Errorf("acidity Score = %d, want %d", with.Score, without.Score-10)
	}

	// The trigger list is by name; a non-trigger food is unaffected.
	banana := &entities.FoodNutrition{
		Name: "banana", CaloriesPer100G: 89, SugarG: 12.2, FiberG: 2.6, GlycemicIndex: 51,
	}
	if a, b := ScoreFood(banana, HealthFlags{Acidity: true}), ScoreFood(banana, HealthFlags{}); a.Score != b.Score {
		t.Errorf("non-trigger food penalized: %d vs %d", a.Score, b.Score)
	}
}

func TestScoreFoodConstipation(t *testing.T) {
	lowFiber := &entities.FoodNutrition{Name: "chai", CaloriesPer100G: 68, SugarG: 9.8, FiberG: 0}
	got := ScoreFood(lowFiber, HealthFlags{Constipation: true})
	if got.Score != 90 {
		t.Errorf("low fiber Score = %d, want 90", got.Score)
	}

	highFiber := &entities.FoodNutrition{Name: "dal", CaloriesPer100G: 116, ProteinG: 7.6, FiberG: 4.3, SodiumMG: 360}
	// 100 - 10 (sodium>300, silent) + 5 (fiber>=3 with constipation) = 95.
	got = ScoreFood(highFiber, HealthFlags{Constipation: true})
	if got.Score != 95 {
		t.Errorf("high fiber Score = %d, want 95", got.Score)
	}
}

func TestScoreFoodClamped(t *testing.T) {
	awful := &entities.FoodNutrition{
		Name: "fried_food", CaloriesPer100G: 500, FatG: 35, SugarG: 40,
		SodiumMG: 900, GlycemicIndex: 90, FiberG: 0,
	}
	got := ScoreFood(awful, HealthFlags{Goal: "Weight Loss", Diabetes: true, Obesity: true, Constipation: true, Acidity: true})
	if got.Score != 0 {
		t.Errorf("Score = %d, want clamped to 0", got.Score)
	}
	if got.Bucket != BucketNotIdeal {
		t.Errorf("Bucket = %q, want %q", got.Bucket, BucketNotIdeal)
	}
}

func TestScoreBucketEdges(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, BucketGood},
		{76, BucketGood},
		{75, BucketModerate},
		{51, BucketModerate},
		{50, BucketNotIdeal},
		{0, BucketNotIdeal},
	}
	for _, tt := range tests {
		if got := scoreBucket(tt.score); got != tt.want {
			t.Errorf("scoreBucket(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
