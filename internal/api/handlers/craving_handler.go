package handlers

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/internal/api/presenters"
	"NutriSense-Backend/pkg/craving"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CravingHandler interface {
		Assess(c *fiber.Ctx) error
		Log(c *fiber.Ctx) error
		History(c *fiber.Ctx) error
	}

	cravingHandler struct {
		cravingService craving.CravingService
		validator      *validator.Validate
	}
)

func NewCravingHandler(cravingService craving.CravingService, validator *validator.Validate) CravingHandler {
	return &cravingHandler{
		cravingService: cravingService,
		validator:      validator,
	}
}

func (h *cravingHandler) Assess(c *fiber.Ctx) error {
	req := new(domain.AssessCravingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssessCraving, err)
	}

	res, err := h.cravingService.Assess(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTrigger) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedAssessCraving, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssessCraving, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAssessCraving)
}

func (h *cravingHandler) Log(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogCravingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogCraving, err)
	}

	res, err := h.cravingService.Log(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTrigger) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedLogCraving, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogCraving, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogCraving)
}

func (h *cravingHandler) History(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -6)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCravings, domain.ErrInvalidDate)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCravings, domain.ErrInvalidDate)
		}
		to = parsed
	}

	res, err := h.cravingService.History(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCravings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCravings)
}
