package nutrition

import (
	"NutriSense-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NutritionRepository interface {
		LookupFood(ctx context.Context, name string) (*entities.FoodNutrition, error)
		ListFoods(ctx context.Context) ([]*entities.FoodNutrition, error)
	}

	nutritionRepository struct {
		db *gorm.DB
	}
)

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) LookupFood(ctx context.Context, name string) (*entities.FoodNutrition, error) {
	var food entities.FoodNutrition
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *nutritionRepository) ListFoods(ctx context.Context) ([]*entities.FoodNutrition, error) {
	var foods []*entities.FoodNutrition
	if err := r.db.WithContext(ctx).Order("name asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
