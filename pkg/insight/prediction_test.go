package insight

import (
	"errors"
	"testing"

	"NutriSense-Backend/domain"
)

func TestPredictWeeklyChange(t *testing.T) {
	tests := []struct {
		name        string
		avgIntake   float64
		maintenance float64
		wantChange  float64
		wantOutlook string
	}{
		{"surplus", 2300, 2000, 2100 / 7700.0, OutlookGain},
		{"deficit", 1600, 2000, -2800 / 7700.0, OutlookLoss},
		{"small surplus stays stable", 2200, 2000, 1400 / 7700.0, OutlookStable},
		{"exactly maintenance", 2000, 2000, 0, OutlookStable},
		// 220 kcal/day is exactly 0.2 kg/week; the band edge itself is stable.
		{"band edge stable", 2220, 2000, 0.2, OutlookStable},
		{"just past band edge", 2231, 2000, 1617 / 7700.0, OutlookGain},
		{"lower band edge stable", 1780, 2000, -0.2, OutlookStable},
		{"just past lower edge", 1769, 2000, -1617 / 7700.0, OutlookLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PredictWeeklyChange(tt.avgIntake, tt.maintenance, 70, 5)
			if err != nil {
				t.Fatalf("PredictWeeklyChange() error = %v", err)
			}
			if !almostEqual(got.ChangeKG, tt.wantChange) {
				t.Errorf("ChangeKG = %v, want %v", got.ChangeKG, tt.wantChange)
			}
			if got.Outlook != tt.wantOutlook {
				t.Errorf("Outlook = %q, want %q", got.Outlook, tt.wantOutlook)
			}
			if !almostEqual(got.PredictedWeightKG, 70+tt.wantChange) {
				t.Errorf("PredictedWeightKG = %v, want %v", got.PredictedWeightKG, 70+tt.wantChange)
			}
		})
	}
}

func TestPredictWeeklyChangeInsufficientData(t *testing.T) {
	for _, days := range []int{0, 1, 2} {
		if _, err := PredictWeeklyChange(2300, 2000, 70, days); !errors.Is(err, domain.ErrInsufficientData) {
			t.Errorf("days=%d: error = %v, want ErrInsufficientData", days, err)
		}
	}

	if _, err := PredictWeeklyChange(2300, 2000, 70, 3); err != nil {
		t.Errorf("days=3: unexpected error %v", err)
	}
}
