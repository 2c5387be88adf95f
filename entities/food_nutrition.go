package entities

import (
	"github.com/google/uuid"
)

// FoodNutrition is the static reference table: per-100g macro/micro profile
// for the foods the classifier can emit and the lookup endpoint serves.
// Seeded at migration time, read-only afterwards.
type FoodNutrition struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `gorm:"uniqueIndex" json:"name"`
	CaloriesPer100G  float64   `json:"calories_per_100g"`
	ProteinG         float64   `json:"protein_g"`
	FatG             float64   `json:"fat_g"`
	CarbsG           float64   `json:"carbs_g"`
	SugarG           float64   `json:"sugar_g"`
	SodiumMG         float64   `json:"sodium_mg"`
	FiberG           float64   `json:"fiber_g"`
	GlycemicIndex    float64   `json:"glycemic_index"`

	Timestamp
}
