package insight

import (
	"NutriSense-Backend/domain"
)

// activityFactors is the multiplier table used by the daily tracker.
// The safe weight-loss engine uses its own, slightly different table
// below; clients depend on both, so the two stay separate.
var activityFactors = map[string]float64{
	"Sedentary":         1.2,
	"Lightly Active":    1.375,
	"Moderately Active": 1.55,
	"Very Active":       1.725,
}

// safeLossActivityFactors backs ComputeWeightLossPlan. Note the different
// level names and the extra 1.9 tier.
var safeLossActivityFactors = map[string]float64{
	"Sedentary":   1.2,
	"Light":       1.375,
	"Moderate":    1.55,
	"Active":      1.725,
	"Very Active": 1.9,
}

const (
	goalDeficit = 300 // kcal/day offset applied by the tracker target
	safeDeficit = 500 // kcal/day deficit used by the safe weight-loss plan

	// KcalPerKG is the empirical energy density of body fat used for all
	// weight-change projections.
	KcalPerKG = 7700.0
)

type Profile struct {
	Age      int
	Gender   string
	HeightCM float64
	WeightKG float64
	Activity string
	Goal     string
}

func (p Profile) validate() error {
	if p.Age <= 0 {
		return domain.ErrInvalidAge
	}
	if p.HeightCM <= 0 {
		return domain.ErrInvalidHeight
	}
	if p.WeightKG <= 0 {
		return domain.ErrInvalidWeight
	}
	return nil
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor variant:
// females get the -161 constant, everyone else +5.
func BMR(p Profile) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Gender == "Female" {
		bmr -= 161
	} else {
		bmr += 5
	}
	return bmr, nil
}

// Maintenance is BMR scaled by the activity factor. Unknown activity
// strings fall back to sedentary (1.2), matching the tracker behavior.
func Maintenance(p Profile) (float64, error) {
	bmr, err := BMR(p)
	if err != nil {
		return 0, err
	}
	factor, ok := activityFactors[p.Activity]
	if !ok {
		factor = 1.2
	}
	return bmr * factor, nil
}

// TargetCalories derives the daily target from maintenance and goal:
// -300 for loss, +300 for gain, unchanged otherwise.
func TargetCalories(maintenance float64, goal string) float64 {
	switch goal {
	case "Weight Loss":
		return maintenance - goalDeficit
	case "Weight Gain":
		return maintenance + goalDeficit
	default:
		return maintenance
	}
}

// BMI from weight in kg and height in cm.
func BMI(weightKG, heightCM float64) (float64, error) {
	if heightCM <= 0 {
		return 0, domain.ErrInvalidHeight
	}
	if weightKG <= 0 {
		return 0, domain.ErrInvalidWeight
	}
	h := heightCM / 100
	return weightKG / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "healthy"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

type WeightLossPlan struct {
	BMI                float64
	BMICategory        string
	Maintenance        float64
	Target             float64
	DeficitPerDay      float64
	ExpectedWeeklyLoss float64
	ProteinTargetG     float64
	FatTargetG         float64
	CarbsTargetG       float64
}

// ComputeWeightLossPlan is the dedicated safe weight-loss calculator. It
// does NOT share the tracker's multiplier table or 300 kcal offset: this
// flow uses its own five-level table and a fixed 500 kcal deficit.
func ComputeWeightLossPlan(p Profile) (WeightLossPlan, error) {
	bmr, err := BMR(p)
	if err != nil {
		return WeightLossPlan{}, err
	}

	factor, ok := safeLossActivityFactors[p.Activity]
	if !ok {
		factor = 1.2
	}
	maintenance := bmr * factor
	target := maintenance - safeDeficit

	bmi, err := BMI(p.WeightKG, p.HeightCM)
	if err != nil {
		return WeightLossPlan{}, err
	}

	protein := p.WeightKG * 1.6
	fat := target * 0.25 / 9
	carbs := (target - (protein*4 + fat*9)) / 4

	return WeightLossPlan{
		BMI:                bmi,
		BMICategory:        BMICategory(bmi),
		Maintenance:        maintenance,
		Target:             target,
		DeficitPerDay:      safeDeficit,
		ExpectedWeeklyLoss: safeDeficit * 7 / KcalPerKG,
		ProteinTargetG:     protein,
		FatTargetG:         fat,
		CarbsTargetG:       carbs,
	}, nil
}
