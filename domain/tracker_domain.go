package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessLogFood         = "food logged successfully"
	MessageSuccessLogExercise     = "exercise logged successfully"
	MessageSuccessLogWeight       = "weight logged successfully"
	MessageSuccessGetLogs         = "logs retrieved successfully"
	MessageSuccessGetDailyBalance = "daily energy balance retrieved successfully"
	MessageSuccessGetWeeklyReport = "weekly energy report retrieved successfully"
	MessageSuccessUploadMealPhoto = "meal photo classified successfully"
	MessageSuccessGetSuggestions  = "exercise suggestions retrieved successfully"
	MessageSuccessGetStreak       = "activity streak retrieved successfully"

	MessageFailedLogFood         = "failed to log food"
	MessageFailedLogExercise     = "failed to log exercise"
	MessageFailedLogWeight       = "failed to log weight"
	MessageFailedGetLogs         = "failed to retrieve logs"
	MessageFailedGetDailyBalance = "failed to retrieve daily energy balance"
	MessageFailedGetWeeklyReport = "failed to retrieve weekly energy report"
	MessageFailedUploadMealPhoto = "failed to classify meal photo"
	MessageFailedGetSuggestions  = "failed to retrieve exercise suggestions"
	MessageFailedGetStreak       = "failed to retrieve activity streak"

	ErrInvalidCalories       = errors.New("calories must not be negative")
	ErrInvalidMinutes        = errors.New("minutes must be greater than zero")
	ErrInvalidCravingLevel   = errors.New("craving level must be between 1 and 10")
	ErrUnknownExercise       = errors.New("unknown exercise type")
	ErrClassifierUnavailable = errors.New("food classifier unavailable, log the meal manually")
	ErrNoPrediction          = errors.New("classifier returned no usable prediction")
)

type (
	LogFoodRequest struct {
		FoodName string  `json:"food_name" validate:"required"`
		Calories float64 `json:"calories" validate:"omitempty,gte=0"`
		// Grams is used with the reference table when Calories is not given.
		Grams float64 `json:"grams" validate:"omitempty,gt=0"`
		Date  string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	LogFoodResponse struct {
		ID       string    `json:"id"`
		FoodName string    `json:"food_name"`
		Calories float64   `json:"calories"`
		Date     time.Time `json:"date"`
	}

	LogExerciseRequest struct {
		ExerciseName string  `json:"exercise_name" validate:"required"`
		Minutes      float64 `json:"minutes" validate:"required,gt=0"`
		Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	LogExerciseResponse struct {
		ID             string    `json:"id"`
		ExerciseName   string    `json:"exercise_name"`
		Minutes        float64   `json:"minutes"`
		CaloriesBurned float64   `json:"calories_burned"`
		Date           time.Time `json:"date"`
	}

	LogWeightRequest struct {
		WeightKG float64 `json:"weight_kg" validate:"required,gt=0"`
		Date     string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	FoodLogResponse struct {
		ID       string    `json:"id"`
		FoodName string    `json:"food_name"`
		Calories float64   `json:"calories"`
		Date     time.Time `json:"date"`
	}

	ExerciseLogResponse struct {
		ID             string    `json:"id"`
		ExerciseName   string    `json:"exercise_name"`
		Minutes        float64   `json:"minutes"`
		CaloriesBurned float64   `json:"calories_burned"`
		Date           time.Time `json:"date"`
	}

	WeightLogResponse struct {
		ID       string    `json:"id"`
		WeightKG float64   `json:"weight_kg"`
		Date     time.Time `json:"date"`
	}

	DailyBalanceResponse struct {
		Date      string  `json:"date"`
		Consumed  float64 `json:"consumed"`
		Burned    float64 `json:"burned"`
		Net       float64 `json:"net"`
		Target    float64 `json:"target"`
		Remaining float64 `json:"remaining"`
	}

	DayBalance struct {
		Date     string  `json:"date"`
		Consumed float64 `json:"consumed"`
		Burned   float64 `json:"burned"`
		Net      float64 `json:"net"`
	}

	WeeklyReportResponse struct {
		Days       []DayBalance `json:"days"`
		DaysLogged int          `json:"days_logged"`
		AvgNet     float64      `json:"avg_net"`
	}

	UploadMealPhotoRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
		Grams float64               `json:"grams" form:"grams" validate:"omitempty,gt=0"`
		Date  string                `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	MealPrediction struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
		Calories   float64 `json:"calories,omitempty"`
	}

	UploadMealPhotoResponse struct {
		ScanID      string           `json:"scan_id"`
		ImageURL    string           `json:"image_url"`
		Status      string           `json:"status"`
		Predictions []MealPrediction `json:"predictions,omitempty"`
		LoggedFood  *LogFoodResponse `json:"logged_food,omitempty"`
	}

	ExerciseSuggestion struct {
		ExerciseName string  `json:"exercise_name"`
		MET          float64 `json:"met"`
		Minutes      int     `json:"minutes"`
	}

	BurnPlanResponse struct {
		NetToday    float64              `json:"net_today"`
		BurnTarget  float64              `json:"burn_target"`
		Balanced    bool                 `json:"balanced"`
		Suggestions []ExerciseSuggestion `json:"suggestions,omitempty"`
	}

	StreakResponse struct {
		StreakDays       int     `json:"streak_days"`
		ActiveDaysInWeek int     `json:"active_days_in_week"`
		ConsistencyScore float64 `json:"consistency_score"`
		ConsistencyLabel string  `json:"consistency_label"`
	}
)
