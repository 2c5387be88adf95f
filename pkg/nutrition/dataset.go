package nutrition

import (
	"NutriSense-Backend/entities"
)

// SeedFoods is the static reference dataset loaded at migration time. The
// labels match what the food classifier emits, so a classified meal photo
// can resolve its calories from this table directly.
func SeedFoods() []entities.FoodNutrition {
	return []entities.FoodNutrition{
		{Name: "idli", CaloriesPer100G: 132, ProteinG: 3.4, FatG: 0.4, CarbsG: 28, SugarG: 0.3, SodiumMG: 205, FiberG: 1.1, GlycemicIndex: 68},
		{Name: "dosa", CaloriesPer100G: 168, ProteinG: 3.9, FatG: 3.7, CarbsG: 29, SugarG: 0.5, SodiumMG: 235, FiberG: 1.4, GlycemicIndex: 66},
		{Name: "poori", CaloriesPer100G: 296, ProteinG: 6.7, FatG: 13.5, CarbsG: 38, SugarG: 0.8, SodiumMG: 340, FiberG: 2.1, GlycemicIndex: 72},
		{Name: "biryani", CaloriesPer100G: 185, ProteinG: 7.5, FatG: 6.9, CarbsG: 23, SugarG: 1.2, SodiumMG: 480, FiberG: 1.6, GlycemicIndex: 64},
		{Name: "rice", CaloriesPer100G: 130, ProteinG: 2.4, FatG: 0.3, CarbsG: 28, SugarG: 0.1, SodiumMG: 1, FiberG: 0.4, GlycemicIndex: 73},
		{Name: "curd_rice", CaloriesPer100G: 120, ProteinG: 3.8, FatG: 3.2, CarbsG: 19, SugarG: 2.5, SodiumMG: 210, FiberG: 0.5, GlycemicIndex: 59},
		{Name: "chapati", CaloriesPer100G: 240, ProteinG: 7.8, FatG: 4.2, CarbsG: 43, SugarG: 1.8, SodiumMG: 190, FiberG: 4.9, GlycemicIndex: 52},
		{Name: "upma", CaloriesPer100G: 155, ProteinG: 3.6, FatG: 5.1, CarbsG: 24, SugarG: 1.1, SodiumMG: 320, FiberG: 1.8, GlycemicIndex: 67},
		{Name: "vada", CaloriesPer100G: 320, ProteinG: 8.9, FatG: 18.2, CarbsG: 31, SugarG: 1.0, SodiumMG: 410, FiberG: 3.2, GlycemicIndex: 70},
		{Name: "sambar", CaloriesPer100G: 65, ProteinG: 3.1, FatG: 2.0, CarbsG: 9, SugarG: 2.2, SodiumMG: 390, FiberG: 2.4, GlycemicIndex: 43},
		{Name: "south_indian_thali", CaloriesPer100G: 175, ProteinG: 5.2, FatG: 6.3, CarbsG: 25, SugarG: 2.8, SodiumMG: 450, FiberG: 2.6, GlycemicIndex: 61},
		{Name: "tomato", CaloriesPer100G: 18, ProteinG: 0.9, FatG: 0.2, CarbsG: 3.9, SugarG: 2.6, SodiumMG: 5, FiberG: 1.2, GlycemicIndex: 30},
		{Name: "fried_food", CaloriesPer100G: 450, ProteinG: 6.5, FatG: 28, CarbsG: 42, SugarG: 3.5, SodiumMG: 720, FiberG: 2.0, GlycemicIndex: 75},
		{Name: "chai", CaloriesPer100G: 68, ProteinG: 1.6, FatG: 2.2, CarbsG: 11, SugarG: 9.8, SodiumMG: 18, FiberG: 0, GlycemicIndex: 55},
		{Name: "paneer", CaloriesPer100G: 296, ProteinG: 18.3, FatG: 22.8, CarbsG: 3.6, SugarG: 2.6, SodiumMG: 18, FiberG: 0, GlycemicIndex: 27},
		{Name: "dal", CaloriesPer100G: 116, ProteinG: 7.6, FatG: 2.9, CarbsG: 16, SugarG: 1.3, SodiumMG: 360, FiberG: 4.3, GlycemicIndex: 29},
		{Name: "oats", CaloriesPer100G: 389, ProteinG: 16.9, FatG: 6.9, CarbsG: 66, SugarG: 0.9, SodiumMG: 2, FiberG: 10.6, GlycemicIndex: 55},
		{Name: "banana", CaloriesPer100G: 89, ProteinG: 1.1, FatG: 0.3, CarbsG: 23, SugarG: 12.2, SodiumMG: 1, FiberG: 2.6, GlycemicIndex: 51},
	}
}
