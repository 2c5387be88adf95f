package domain

import "errors"

var (
	MessageSuccessLookupFood    = "food nutrition retrieved successfully"
	MessageSuccessListFoods     = "food list retrieved successfully"
	MessageSuccessScoreFood     = "food health score retrieved successfully"

	MessageFailedLookupFood = "failed to retrieve food nutrition"
	MessageFailedListFoods  = "failed to retrieve food list"
	MessageFailedScoreFood  = "failed to score food"

	ErrFoodNotFound = errors.New("food not found in reference table")
)

type (
	FoodNutritionResponse struct {
		Name            string  `json:"name"`
		CaloriesPer100G float64 `json:"calories_per_100g"`
		ProteinG        float64 `json:"protein_g"`
		FatG            float64 `json:"fat_g"`
		CarbsG          float64 `json:"carbs_g"`
		SugarG          float64 `json:"sugar_g"`
		SodiumMG        float64 `json:"sodium_mg"`
		FiberG          float64 `json:"fiber_g"`
		GlycemicIndex   float64 `json:"glycemic_index"`
	}

	FoodScoreResponse struct {
		Name      string   `json:"name"`
		Score     int      `json:"score"`
		Bucket    string   `json:"bucket"` // "good", "moderate", "not ideal"
		Warnings  []string `json:"warnings,omitempty"`
		Positives []string `json:"positives,omitempty"`
	}
)
