package nutrition

import (
	"NutriSense-Backend/entities"
)

// acidityTriggerFoods is the fixed set that penalizes users with acidity.
var acidityTriggerFoods = map[string]bool{
	"tomato":     true,
	"fried_food": true,
	"chai":       true,
}

const (
	BucketGood     = "good"
	BucketModerate = "moderate"
	BucketNotIdeal = "not ideal"
)

type HealthFlags struct {
	Goal         string
	Diabetes     bool
	Obesity      bool
	Constipation bool
	Acidity      bool
}

type HealthScore struct {
	Score     int
	Bucket    string
	Warnings  []string
	Positives []string
}

// ScoreFood rates a food's suitability for a user as 0-100. The rules are
// additive and independent, starting from 100: density, sugar, fat and
// sodium penalties apply to everyone; fiber and protein earn bonuses; the
// remaining rules key off the user's goal and health conditions. Each rule
// contributes its own message so callers can show exactly why a food
// scored the way it did.
func ScoreFood(food *entities.FoodNutrition, flags HealthFlags) HealthScore {
	score := 100
	var warnings, positives []string

	if food.CaloriesPer100G > 400 {
		score -= 30
		warnings = append(warnings, "Very high calorie density.")
	} else if food.CaloriesPer100G > 300 {
		score -= 20
		warnings = append(warnings, "High calorie density.")
	}

	if food.SugarG > 25 {
		score -= 25
		warnings = append(warnings, "Very high sugar content.")
	} else if food.SugarG > 10 {
		score -= 15
		warnings = append(warnings, "Moderate sugar content.")
	}

	if food.FatG > 20 {
		score -= 20
		warnings = append(warnings, "High fat content.")
	}

	if food.SodiumMG > 600 {
		score -= 20
		warnings = append(warnings, "High sodium level.")
	} else if food.SodiumMG > 300 {
		score -= 10
	}

	if food.FiberG >= 5 {
		score += 10
		positives = append(positives, "High fiber supports digestion.")
	}

	if food.ProteinG >= 15 {
		score += 10
		positives = append(positives, "High protein content.")
	}

	switch flags.Goal {
	case "Weight Loss":
		if food.CaloriesPer100G > 300 {
			score -= 15
		}
		if food.FiberG >= 5 {
			score += 5
		}
	case "Weight Gain":
		if food.CaloriesPer100G >= 300 {
			score += 5
		}
	}

	if flags.Diabetes {
		if food.SugarG > 10 {
			score -= 25
			warnings = append(warnings, "Not ideal for diabetes.")
		}
		if food.GlycemicIndex > 70 {
			score -= 20
			warnings = append(warnings, "High glycemic index.")
		}
	}

	if flags.Obesity && food.FatG > 15 {
		score -= 15
	}

	if flags.Constipation {
		if food.FiberG < 3 {
			score -= 10
			warnings = append(warnings, "Low fiber for digestion.")
		} else {
			score += 5
		}
	}

	if flags.Acidity && acidityTriggerFoods[food.Name] {
		score -= 10
		warnings = append(warnings, "May trigger acidity.")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return HealthScore{
		Score:     score,
		Bucket:    scoreBucket(score),
		Warnings:  warnings,
		Positives: positives,
	}
}

func scoreBucket(score int) string {
	switch {
	case score > 75:
		return BucketGood
	case score > 50:
		return BucketModerate
	default:
		return BucketNotIdeal
	}
}
