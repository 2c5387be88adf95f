package handlers

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/internal/api/presenters"
	"NutriSense-Backend/pkg/nutrition"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		GetFood(c *fiber.Ctx) error
		ListFoods(c *fiber.Ctx) error
		ScoreFood(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService) NutritionHandler {
	return &nutritionHandler{nutritionService: nutritionService}
}

func (h *nutritionHandler) GetFood(c *fiber.Ctx) error {
	name := c.Params("name")

	res, err := h.nutritionService.GetFood(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLookupFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLookupFood)
}

func (h *nutritionHandler) ListFoods(c *fiber.Ctx) error {
	res, err := h.nutritionService.ListFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListFoods)
}

func (h *nutritionHandler) ScoreFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	name := c.Params("name")

	res, err := h.nutritionService.ScoreFoodForUser(c.Context(), name, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedScoreFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScoreFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScoreFood)
}
