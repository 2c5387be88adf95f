package handlers

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/internal/api/presenters"
	"NutriSense-Backend/pkg/insight"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InsightHandler interface {
		GetCalorieTargets(c *fiber.Ctx) error
		GetPrediction(c *fiber.Ctx) error
		GetAdaptiveTarget(c *fiber.Ctx) error
		GetWeightLossPlan(c *fiber.Ctx) error
	}

	insightHandler struct {
		insightService insight.InsightService
		validator      *validator.Validate
	}
)

func NewInsightHandler(insightService insight.InsightService, validator *validator.Validate) InsightHandler {
	return &insightHandler{
		insightService: insightService,
		validator:      validator,
	}
}

func (h *insightHandler) GetCalorieTargets(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.insightService.GetCalorieTargets(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileIncomplete) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetCalorieTargets, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalorieTargets, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCalorieTargets)
}

func (h *insightHandler) GetPrediction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.insightService.GetPrediction(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetPrediction, err)
		}
		if errors.Is(err, domain.ErrProfileIncomplete) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetPrediction, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPrediction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrediction)
}

func (h *insightHandler) GetAdaptiveTarget(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.insightService.GetAdaptiveTarget(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileIncomplete) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetAdaptiveTarget, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAdaptiveTarget, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdaptiveTarget)
}

func (h *insightHandler) GetWeightLossPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WeightLossPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeightLossPlan, err)
	}

	res, err := h.insightService.GetWeightLossPlan(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileIncomplete) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetWeightLossPlan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeightLossPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeightLossPlan)
}
