package insight

import (
	"errors"
	"math"
	"testing"

	"NutriSense-Backend/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    float64
	}{
		{
			name:    "male",
			profile: Profile{Age: 25, Gender: "Male", HeightCM: 180, WeightKG: 80},
			want:    10*80 + 6.25*180 - 5*25 + 5, // 1805
		},
		{
			name:    "female",
			profile: Profile{Age: 30, Gender: "Female", HeightCM: 165, WeightKG: 60},
			want:    10*60 + 6.25*165 - 5*30 - 161, // 1320.25
		},
		{
			name:    "unspecified gender uses male constant",
			profile: Profile{Age: 25, Gender: "Other", HeightCM: 180, WeightKG: 80},
			want:    1805,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMR(tt.profile)
			if err != nil {
				t.Fatalf("BMR() error = %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBMRValidation(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr error
	}{
		{"zero age", Profile{Age: 0, HeightCM: 180, WeightKG: 80}, domain.ErrInvalidAge},
		{"zero height", Profile{Age: 25, HeightCM: 0, WeightKG: 80}, domain.ErrInvalidHeight},
		{"zero weight", Profile{Age: 25, HeightCM: 180, WeightKG: 0}, domain.ErrInvalidWeight},
		{"negative age", Profile{Age: -1, HeightCM: 180, WeightKG: 80}, domain.ErrInvalidAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BMR(tt.profile); !errors.Is(err, tt.wantErr) {
				t.Errorf("BMR() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaintenance(t *testing.T) {
	base := Profile{Age: 25, Gender: "Male", HeightCM: 180, WeightKG: 80} // BMR 1805

	tests := []struct {
		activity string
		factor   float64
	}{
		{"Sedentary", 1.2},
		{"Lightly Active", 1.375},
		{"Moderately Active", 1.55},
		{"Very Active", 1.725},
		{"unknown", 1.2},
		{"", 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.activity, func(t *testing.T) {
			p := base
			p.Activity = tt.activity
			got, err := Maintenance(p)
			if err != nil {
				t.Fatalf("Maintenance() error = %v", err)
			}
			if want := 1805 * tt.factor; !almostEqual(got, want) {
				t.Errorf("Maintenance() = %v, want %v", got, want)
			}
		})
	}
}

func TestTargetCalories(t *testing.T) {
	tests := []struct {
		goal string
		want float64
	}{
		{"Weight Loss", 1700},
		{"Weight Gain", 2300},
		{"Maintain", 2000},
		{"", 2000},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			if got := TargetCalories(2000, tt.goal); !almostEqual(got, tt.want) {
				t.Errorf("TargetCalories(2000, %q) = %v, want %v", tt.goal, got, tt.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17, "underweight"},
		{18.5, "healthy"},
		{24.9, "healthy"},
		{25, "overweight"},
		{29.9, "overweight"},
		{30, "obese"},
	}

	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestComputeWeightLossPlan(t *testing.T) {
	p := Profile{Age: 25, Gender: "Male", HeightCM: 180, WeightKG: 80, Activity: "Moderate"}

	plan, err := ComputeWeightLossPlan(p)
	if err != nil {
		t.Fatalf("ComputeWeightLossPlan() error = %v", err)
	}

	// The weight-loss calculator keeps its own table: Moderate is 1.55.
	wantMaintenance := 1805 * 1.55
	if !almostEqual(plan.Maintenance, wantMaintenance) {
		t.Errorf("Maintenance = %v, want %v", plan.Maintenance, wantMaintenance)
	}
	if !almostEqual(plan.Target, wantMaintenance-500) {
		t.Errorf("Target = %v, want %v", plan.Target, wantMaintenance-500)
	}
	if !almostEqual(plan.DeficitPerDay, 500) {
		t.Errorf("DeficitPerDay = %v, want 500", plan.DeficitPerDay)
	}
	if want := 500 * 7 / 7700.0; !almostEqual(plan.ExpectedWeeklyLoss, want) {
		t.Errorf("ExpectedWeeklyLoss = %v, want %v", plan.ExpectedWeeklyLoss, want)
	}
	if want := 80 * 1.6; !almostEqual(plan.ProteinTargetG, want) {
		t.Errorf("ProteinTargetG = %v, want %v", plan.ProteinTargetG, want)
	}
	if want := plan.Target * 0.25 / 9; !almostEqual(plan.FatTargetG, want) {
		t.Errorf("FatTargetG = %v, want %v", plan.FatTargetG, want)
	}
	wantCarbs := (plan.Target - (plan.ProteinTargetG*4 + plan.FatTargetG*9)) / 4
	if !almostEqual(plan.CarbsTargetG, wantCarbs) {
		t.Errorf("CarbsTargetG = %v, want %v", plan.CarbsTargetG, wantCarbs)
	}
	if plan.BMICategory != "healthy" {
		t.Errorf("BMICategory = %q, want healthy", plan.BMICategory)
	}
}

func TestComputeWeightLossPlanVeryActive(t *testing.T) {
	p := Profile{Age: 25, Gender: "Male", HeightCM: 180, WeightKG: 80, Activity: "Very Active"}

	plan, err := ComputeWeightLossPlan(p)
	if err != nil {
		t.Fatalf("ComputeWeightLossPlan() error = %v", err)
	}
	if want := 1805 * 1.9; !almostEqual(plan.Maintenance, want) {
		t.Errorf("Maintenance = %v, want %v", plan.Maintenance, want)
	}
}
