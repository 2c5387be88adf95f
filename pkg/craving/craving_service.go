package craving

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/entities"
	"NutriSense-Backend/pkg/tracker"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	CravingService interface {
		// Assess scores a craving and returns an intervention without
		// persisting anything; the client logs it separately if the user
		// confirms.
		Assess(ctx context.Context, req domain.AssessCravingRequest) (domain.AssessCravingResponse, error)
		Log(ctx context.Context, req domain.LogCravingRequest, userID string) (domain.CravingLogResponse, error)
		History(ctx context.Context, userID string, from, to time.Time) ([]domain.CravingLogResponse, error)
	}

	cravingService struct {
		trackerRepository tracker.TrackerRepository
		scorer            string
	}
)

func NewCravingService(trackerRepository tracker.TrackerRepository, scorer string) CravingService {
	return &cravingService{
		trackerRepository: trackerRepository,
		scorer:            scorer,
	}
}

func (s *cravingService) Assess(ctx context.Context, req domain.AssessCravingRequest) (domain.AssessCravingResponse, error) {
	if req.CravingLevel < 1 || req.CravingLevel > 10 {
		return domain.AssessCravingResponse{}, domain.ErrInvalidCravingLevel
	}
	if !IsValidTrigger(req.Trigger) {
		return domain.AssessCravingResponse{}, domain.ErrUnknownTrigger
	}

	score := RiskScore(s.scorer, req.CravingLevel, req.Trigger)
	scorer := s.scorer
	if scorer != ScorerV1 {
		scorer = ScorerV2
	}

	return domain.AssessCravingResponse{
		CravingLevel: req.CravingLevel,
		Trigger:      req.Trigger,
		Intervention: Intervention(req.CravingLevel, req.Trigger),
		RiskScore:    score,
		RiskBucket:   RiskBucket(score),
		Scorer:       scorer,
	}, nil
}

func (s *cravingService) Log(ctx context.Context, req domain.LogCravingRequest, userID string) (domain.CravingLogResponse, error) {
	if req.CravingLevel < 1 || req.CravingLevel > 10 {
		return domain.CravingLogResponse{}, domain.ErrInvalidCravingLevel
	}
	if !IsValidTrigger(req.Trigger) {
		return domain.CravingLogResponse{}, domain.ErrUnknownTrigger
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.CravingLogResponse{}, domain.ErrParseUUID
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.CravingLogResponse{}, domain.ErrInvalidDate
		}
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	entry := &entities.CravingLog{
		UserID:       uid,
		CravingLevel: req.CravingLevel,
		Trigger:      req.Trigger,
		Date:         date,
	}
	if err := s.trackerRepository.AddCravingLog(ctx, entry); err != nil {
		return domain.CravingLogResponse{}, err
	}

	return toCravingResponse(entry), nil
}

func (s *cravingService) History(ctx context.Context, userID string, from, to time.Time) ([]domain.CravingLogResponse, error) {
	logs, err := s.trackerRepository.GetCravingLogs(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]domain.CravingLogResponse, 0, len(logs))
	for _, entry := range logs {
		res = append(res, toCravingResponse(entry))
	}
	return res, nil
}

func toCravingResponse(entry *entities.CravingLog) domain.CravingLogResponse {
	return domain.CravingLogResponse{
		ID:           entry.ID.String(),
		CravingLevel: entry.CravingLevel,
		Trigger:      entry.Trigger,
		Date:         entry.Date.Format("2006-01-02"),
	}
}
