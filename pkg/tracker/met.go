package tracker

import (
	"NutriSense-Backend/domain"
	"sort"
)

// exerciseMET maps the loggable exercise types to their MET values.
var exerciseMET = map[string]float64{
	"Walking":  3.5,
	"Jogging":  7,
	"Running":  11,
	"Cycling":  8,
	"Skipping": 12,
	"Yoga":     3,
}

// burnPlanMET is the high-intensity set offered when the user is in surplus
// and wants to burn it off quickly.
var burnPlanMET = map[string]float64{
	"Jump Rope":    12,
	"Running":      11,
	"Stair Sprint": 13,
	"Burpees":      10,
}

// CaloriesBurned estimates energy expenditure for an exercise bout:
// MET x weight(kg) x hours.
func CaloriesBurned(met, weightKG, minutes float64) float64 {
	return met * weightKG * (minutes / 60)
}

// LookupMET returns the MET value for a known exercise type.
func LookupMET(exerciseName string) (float64, bool) {
	met, ok := exerciseMET[exerciseName]
	return met, ok
}

// SuggestExercises converts a calorie amount into the three quickest
// exercise options for the given body weight, sorted by minutes needed.
func SuggestExercises(calories, weightKG float64) []domain.ExerciseSuggestion {
	return suggestFromTable(exerciseMET, calories, weightKG)
}

// SuggestBurnPlan is SuggestExercises over the high-intensity table.
func SuggestBurnPlan(calories, weightKG float64) []domain.ExerciseSuggestion {
	return suggestFromTable(burnPlanMET, calories, weightKG)
}

func suggestFromTable(table map[string]float64, calories, weightKG float64) []domain.ExerciseSuggestion {
	if calories <= 0 || weightKG <= 0 {
		return nil
	}

	suggestions := make([]domain.ExerciseSuggestion, 0, len(table))
	for name, met := range table {
		caloriesPerHour := met * weightKG
		minutes := calories / caloriesPerHour * 60
		suggestions = append(suggestions, domain.ExerciseSuggestion{
			ExerciseName: name,
			MET:          met,
			Minutes:      int(minutes + 0.5),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Minutes != suggestions[j].Minutes {
			return suggestions[i].Minutes < suggestions[j].Minutes
		}
		return suggestions[i].ExerciseName < suggestions[j].ExerciseName
	})

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
