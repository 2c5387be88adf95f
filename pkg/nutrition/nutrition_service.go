package nutrition

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/entities"
	"NutriSense-Backend/pkg/user"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	NutritionService interface {
		GetFood(ctx context.Context, name string) (domain.FoodNutritionResponse, error)
		ListFoods(ctx context.Context) ([]domain.FoodNutritionResponse, error)
		ScoreFoodForUser(ctx context.Context, name string, userID string) (domain.FoodScoreResponse, error)
	}

	nutritionService struct {
		nutritionRepository NutritionRepository
		userRepository      user.UserRepository
	}
)

func NewNutritionService(nutritionRepository NutritionRepository, userRepository user.UserRepository) NutritionService {
	return &nutritionService{
		nutritionRepository: nutritionRepository,
		userRepository:      userRepository,
	}
}

func (s *nutritionService) GetFood(ctx context.Context, name string) (domain.FoodNutritionResponse, error) {
	food, err := s.nutritionRepository.LookupFood(ctx, normalizeFoodName(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodNutritionResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodNutritionResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *nutritionService) ListFoods(ctx context.Context) ([]domain.FoodNutritionResponse, error) {
	foods, err := s.nutritionRepository.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.FoodNutritionResponse, 0, len(foods))
	for _, food := range foods {
		res = append(res, toFoodResponse(food))
	}
	return res, nil
}

func (s *nutritionService) ScoreFoodForUser(ctx context.Context, name string, userID string) (domain.FoodScoreResponse, error) {
	food, err := s.nutritionRepository.LookupFood(ctx, normalizeFoodName(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodScoreResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodScoreResponse{}, err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodScoreResponse{}, domain.ErrUserNotFound
		}
		return domain.FoodScoreResponse{}, err
	}

	result := ScoreFood(food, HealthFlags{
		Goal:         u.Goal,
		Diabetes:     u.Diabetes,
		Obesity:      u.Obesity,
		Constipation: u.Constipation,
		Acidity:      u.Acidity,
	})

	return domain.FoodScoreResponse{
		Name:      food.Name,
		Score:     result.Score,
		Bucket:    result.Bucket,
		Warnings:  result.Warnings,
		Positives: result.Positives,
	}, nil
}

func toFoodResponse(food *entities.FoodNutrition) domain.FoodNutritionResponse {
	return domain.FoodNutritionResponse{
		Name:            food.Name,
		CaloriesPer100G: food.CaloriesPer100G,
		ProteinG:        food.ProteinG,
		FatG:            food.FatG,
		CarbsG:          food.CarbsG,
		SugarG:          food.SugarG,
		SodiumMG:        food.SodiumMG,
		FiberG:          food.FiberG,
		GlycemicIndex:   food.GlycemicIndex,
	}
}

// normalizeFoodName maps free-form input onto the dataset's snake_case keys.
func normalizeFoodName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
