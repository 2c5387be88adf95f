package domain

import "errors"

var (
	MessageSuccessAssessCraving = "craving assessed successfully"
	MessageSuccessLogCraving    = "craving logged successfully"
	MessageSuccessGetCravings   = "craving history retrieved successfully"

	MessageFailedAssessCraving = "failed to assess craving"
	MessageFailedLogCraving    = "failed to log craving"
	MessageFailedGetCravings   = "failed to retrieve craving history"

	ErrUnknownTrigger = errors.New("unknown craving trigger")
)

type (
	AssessCravingRequest struct {
		CravingLevel int    `json:"craving_level" validate:"required,min=1,max=10"`
		Trigger      string `json:"trigger" validate:"required"`
	}

	AssessCravingResponse struct {
		CravingLevel int    `json:"craving_level"`
		Trigger      string `json:"trigger"`
		Intervention string `json:"intervention"`
		RiskScore    int    `json:"risk_score"`
		RiskBucket   string `json:"risk_bucket"` // "low", "moderate", "high"
		Scorer       string `json:"scorer"`
	}

	LogCravingRequest struct {
		CravingLevel int    `json:"craving_level" validate:"required,min=1,max=10"`
		Trigger      string `json:"trigger" validate:"required"`
		Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	CravingLogResponse struct {
		ID           string `json:"id"`
		CravingLevel int    `json:"craving_level"`
		Trigger      string `json:"trigger"`
		Date         string `json:"date"`
	}
)
