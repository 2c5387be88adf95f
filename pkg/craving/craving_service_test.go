package craving

import (
	"context"
	"errors"
	"testing"

	"NutriSense-Backend/domain"
)

// Assess never touches storage, so the repository can be nil here.

func TestAssess(t *testing.T) {
	svc := NewCravingService(nil, ScorerV2)

	res, err := svc.Assess(context.Background(), domain.AssessCravingRequest{
		CravingLevel: 8,
		Trigger:      "Stress",
	})
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if res.RiskScore != 5 {
		t.Errorf("RiskScore = %d, want 5", res.RiskScore)
	}
	if res.RiskBucket != RiskHigh {
		t.Errorf("RiskBucket = %q, want %q", res.RiskBucket, RiskHigh)
	}
	if res.Scorer != ScorerV2 {
		t.Errorf("Scorer = %q, want %q", res.Scorer, ScorerV2)
	}
	want := "Take a 10-minute walk + deep breathing + protein snack. Also try 5-minute breathing exercise."
	if res.Intervention != want {
		t.Errorf("Intervention = %q, want %q", res.Intervention, want)
	}
}

func TestAssessScorerSelection(t *testing.T) {
	v1 := NewCravingService(nil, ScorerV1)
	res, err := v1.Assess(context.Background(), domain.AssessCravingRequest{CravingLevel: 6, Trigger: "Boredom"})
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	if res.RiskScore != 0 || res.Scorer != ScorerV1 {
		t.Errorf("v1: score %d scorer %q, want 0 and v1", res.RiskScore, res.Scorer)
	}

	// Unconfigured scorer falls through to the tiered variant.
	def := NewCravingService(nil, "")
	res, err = def.Assess(context.Background(), domain.AssessCravingRequest{CravingLevel: 6, Trigger: "Boredom"})
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	if res.RiskScore != 2 || res.Scorer != ScorerV2 {
		t.Errorf("default: score %d scorer %q, want 2 and v2", res.RiskScore, res.Scorer)
	}
}

func TestAssessValidation(t *testing.T) {
	svc := NewCravingService(nil, ScorerV2)

	if _, err := svc.Assess(context.Background(), domain.AssessCravingRequest{CravingLevel: 0, Trigger: "Stress"}); !errors.Is(err, domain.ErrInvalidCravingLevel) {
		t.Errorf("level 0: error = %v, want ErrInvalidCravingLevel", err)
	}
	if _, err := svc.Assess(context.Background(), domain.AssessCravingRequest{CravingLevel: 11, Trigger: "Stress"}); !errors.Is(err, domain.ErrInvalidCravingLevel) {
		t.Errorf("level 11: error = %v, want ErrInvalidCravingLevel", err)
	}
	if _, err := svc.Assess(context.Background(), domain.AssessCravingRequest{CravingLevel: 5, Trigger: "Anger"}); !errors.Is(err, domain.ErrUnknownTrigger) {
		t.Errorf("unknown trigger: error = %v, want ErrUnknownTrigger", err)
	}
}
