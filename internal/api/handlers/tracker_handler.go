package handlers

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/internal/api/presenters"
	"NutriSense-Backend/pkg/tracker"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TrackerHandler interface {
		LogFood(c *fiber.Ctx) error
		LogExercise(c *fiber.Ctx) error
		LogWeight(c *fiber.Ctx) error
		GetFoodHistory(c *fiber.Ctx) error
		GetExerciseHistory(c *fiber.Ctx) error
		GetWeightHistory(c *fiber.Ctx) error
		GetDailyBalance(c *fiber.Ctx) error
		GetWeeklyReport(c *fiber.Ctx) error
		UploadMealPhoto(c *fiber.Ctx) error
		GetBurnPlan(c *fiber.Ctx) error
		GetSuggestions(c *fiber.Ctx) error
		GetStreak(c *fiber.Ctx) error
	}

	trackerHandler struct {
		trackerService tracker.TrackerService
		validator      *validator.Validate
	}
)

func NewTrackerHandler(trackerService tracker.TrackerService, validator *validator.Validate) TrackerHandler {
	return &trackerHandler{
		trackerService: trackerService,
		validator:      validator,
	}
}

func (h *trackerHandler) LogFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	res, err := h.trackerService.LogFood(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLogFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogFood)
}

func (h *trackerHandler) LogExercise(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogExerciseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogExercise, err)
	}

	res, err := h.trackerService.LogExercise(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogExercise, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogExercise)
}

func (h *trackerHandler) LogWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogWeightRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogWeight, err)
	}

	res, err := h.trackerService.LogWeight(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogWeight, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogWeight)
}

func (h *trackerHandler) GetFoodHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	from, to, err := historyRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	res, err := h.trackerService.FoodHistory(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogs)
}

func (h *trackerHandler) GetExerciseHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	from, to, err := historyRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	res, err := h.trackerService.ExerciseHistory(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogs)
}

func (h *trackerHandler) GetWeightHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	from, to, err := historyRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	res, err := h.trackerService.WeightHistory(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogs)
}

func (h *trackerHandler) GetDailyBalance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailyBalance, domain.ErrInvalidDate)
		}
		date = parsed
	}

	res, err := h.trackerService.GetDailyBalance(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailyBalance, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailyBalance)
}

func (h *trackerHandler) GetWeeklyReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetWeeklyReport(c.Context(), userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeeklyReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeeklyReport)
}

func (h *trackerHandler) UploadMealPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadMealPhotoRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file
	req.Date = c.FormValue("date")

	if raw := c.FormValue("grams"); raw != "" {
		grams, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		req.Grams = grams
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMealPhoto, err)
	}

	res, err := h.trackerService.UploadMealPhoto(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrClassifierUnavailable) {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedUploadMealPhoto, err)
		}
		if errors.Is(err, domain.ErrNoPrediction) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedUploadMealPhoto, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMealPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadMealPhoto)
}

func (h *trackerHandler) GetBurnPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetBurnPlan(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *trackerHandler) GetSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	calories, err := strconv.ParseFloat(c.Query("calories"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, domain.ErrInvalidCalories)
	}

	res, err := h.trackerService.GetSuggestions(c.Context(), userID, calories)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *trackerHandler) GetStreak(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetStreak(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStreak, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStreak)
}

// historyRange parses the from/to query pair, defaulting to the last 7 days.
func historyRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -6)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidDate
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidDate
		}
		to = parsed
	}
	return from, to, nil
}
