package domain

import "errors"

var (
	MessageSuccessGetCalorieTargets = "calorie targets retrieved successfully"
	MessageSuccessGetPrediction     = "weight prediction retrieved successfully"
	MessageSuccessGetAdaptiveTarget = "adaptive target retrieved successfully"
	MessageSuccessGetScores         = "weekly scores retrieved successfully"
	MessageSuccessGetWeightLossPlan = "weight loss plan retrieved successfully"

	MessageFailedGetCalorieTargets = "failed to retrieve calorie targets"
	MessageFailedGetPrediction     = "failed to retrieve weight prediction"
	MessageFailedGetAdaptiveTarget = "failed to retrieve adaptive target"
	MessageFailedGetScores         = "failed to retrieve weekly scores"
	MessageFailedGetWeightLossPlan = "failed to retrieve weight loss plan"

	ErrProfileIncomplete = errors.New("profile incomplete, set age, gender, height and weight first")
)

type (
	CalorieTargetsResponse struct {
		BMI         float64 `json:"bmi"`
		BMR         float64 `json:"bmr"`
		Maintenance float64 `json:"maintenance"`
		Target      float64 `json:"target"`
		Goal        string  `json:"goal"`
	}

	PredictionResponse struct {
		AvgDailyNet         float64 `json:"avg_daily_net"`
		WeeklyCalorieDiff   float64 `json:"weekly_calorie_diff"`
		PredictedChangeKG   float64 `json:"predicted_change_kg"`
		PredictedWeightKG   float64 `json:"predicted_weight_kg"`
		Outlook             string  `json:"outlook"` // "gain warning", "loss expected", "stable"
		ConfidenceScore     float64 `json:"confidence_score"`
		DisciplineScore     float64 `json:"discipline_score"`
		DaysLogged          int     `json:"days_logged"`
		LoggingConsistency  float64 `json:"logging_consistency"`
		IntakeStability     float64 `json:"intake_stability"`
	}

	AdaptiveTargetResponse struct {
		StaticTarget   float64 `json:"static_target"`
		AdaptiveTarget float64 `json:"adaptive_target"`
		AvgNet         float64 `json:"avg_net"`
		Strategy       string  `json:"strategy"`
		Reason         string  `json:"reason"`
	}

	WeightLossPlanResponse struct {
		BMI                float64 `json:"bmi"`
		BMICategory        string  `json:"bmi_category"`
		Maintenance        float64 `json:"maintenance"`
		Target             float64 `json:"target"`
		DeficitPerDay      float64 `json:"deficit_per_day"`
		ExpectedWeeklyLoss float64 `json:"expected_weekly_loss_kg"`
		ProteinTargetG     float64 `json:"protein_target_g"`
		FatTargetG         float64 `json:"fat_target_g"`
		CarbsTargetG       float64 `json:"carbs_target_g"`
	}

	WeightLossPlanRequest struct {
		ActivityLevel string `json:"activity_level" validate:"required,oneof=Sedentary Light Moderate Active 'Very Active'"`
	}
)
