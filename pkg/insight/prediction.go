package insight

import (
	"NutriSense-Backend/domain"
)

// MinPredictionDays is a hard precondition: with fewer logged days the
// engine reports insufficient data rather than a misleading number.
const MinPredictionDays = 3

const (
	OutlookGain   = "gain warning"
	OutlookLoss   = "loss expected"
	OutlookStable = "stable"
)

type Prediction struct {
	WeeklyCalorieDiff float64
	ChangeKG          float64
	PredictedWeightKG float64
	Outlook           string
}

// PredictWeeklyChange projects next week's weight change from the average
// daily intake against maintenance, at 7700 kcal per kg. Changes inside the
// ±0.2 kg band are classified stable; the band edge itself is stable.
func PredictWeeklyChange(avgDailyIntake, maintenance, currentWeightKG float64, daysLogged int) (Prediction, error) {
	if daysLogged < MinPredictionDays {
		return Prediction{}, domain.ErrInsufficientData
	}

	weeklyDiff := (avgDailyIntake - maintenance) * 7
	change := weeklyDiff / KcalPerKG

	outlook := OutlookStable
	if change > 0.2 {
		outlook = OutlookGain
	} else if change < -0.2 {
		outlook = OutlookLoss
	}

	return Prediction{
		WeeklyCalorieDiff: weeklyDiff,
		ChangeKG:          change,
		PredictedWeightKG: currentWeightKG + change,
		Outlook:           outlook,
	}, nil
}
