package insight

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/entities"
	"NutriSense-Backend/pkg/user"
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
)

type (
	// LogStore is the slice of the tracker repository the insight engine
	// reads from. Declared here so the engine depends on data access, not
	// on the tracker package.
	LogStore interface {
		GetFoodLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.FoodLog, error)
		GetExerciseLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.ExerciseLog, error)
		GetLatestWeight(ctx context.Context, userID string) (float64, bool, error)
	}

	InsightService interface {
		GetCalorieTargets(ctx context.Context, userID string) (domain.CalorieTargetsResponse, error)
		GetPrediction(ctx context.Context, userID string) (domain.PredictionResponse, error)
		GetAdaptiveTarget(ctx context.Context, userID string) (domain.AdaptiveTargetResponse, error)
		GetWeightLossPlan(ctx context.Context, req domain.WeightLossPlanRequest, userID string) (domain.WeightLossPlanResponse, error)
	}

	insightService struct {
		userRepository user.UserRepository
		logStore       LogStore
		strategy       string
	}
)

func NewInsightService(userRepository user.UserRepository, logStore LogStore, strategy string) InsightService {
	return &insightService{
		userRepository: userRepository,
		logStore:       logStore,
		strategy:       strategy,
	}
}

func (s *insightService) GetCalorieTargets(ctx context.Context, userID string) (domain.CalorieTargetsResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.CalorieTargetsResponse{}, err
	}

	bmr, err := BMR(profile)
	if err != nil {
		return domain.CalorieTargetsResponse{}, domain.ErrProfileIncomplete
	}
	maintenance, err := Maintenance(profile)
	if err != nil {
		return domain.CalorieTargetsResponse{}, domain.ErrProfileIncomplete
	}
	bmi, err := BMI(profile.WeightKG, profile.HeightCM)
	if err != nil {
		return domain.CalorieTargetsResponse{}, domain.ErrProfileIncomplete
	}

	return domain.CalorieTargetsResponse{
		BMI:         bmi,
		BMR:         bmr,
		Maintenance: maintenance,
		Target:      TargetCalories(maintenance, profile.Goal),
		Goal:        profile.Goal,
	}, nil
}

func (s *insightService) GetPrediction(ctx context.Context, userID string) (domain.PredictionResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.PredictionResponse{}, err
	}

	maintenance, err := Maintenance(profile)
	if err != nil {
		return domain.PredictionResponse{}, domain.ErrProfileIncomplete
	}

	to := truncateToDay(time.Now())
	from := to.AddDate(0, 0, -6)
	food, err := s.logStore.GetFoodLogs(ctx, userID, from, to)
	if err != nil {
		return domain.PredictionResponse{}, err
	}

	dailyIntake := dailySums(food)
	daysLogged := len(dailyIntake)
	avgIntake := average(dailyIntake)

	prediction, err := PredictWeeklyChange(avgIntake, maintenance, profile.WeightKG, daysLogged)
	if err != nil {
		return domain.PredictionResponse{}, err
	}

	confidence := ConfidenceScore(daysLogged, dailyIntake)
	target := TargetCalories(maintenance, profile.Goal)

	return domain.PredictionResponse{
		AvgDailyNet:        avgIntake,
		WeeklyCalorieDiff:  prediction.WeeklyCalorieDiff,
		PredictedChangeKG:  prediction.ChangeKG,
		PredictedWeightKG:  prediction.PredictedWeightKG,
		Outlook:            prediction.Outlook,
		ConfidenceScore:    confidence.Score,
		DisciplineScore:    DisciplineScore(avgIntake, target),
		DaysLogged:         daysLogged,
		LoggingConsistency: confidence.LoggingConsistency,
		IntakeStability:    confidence.IntakeStability,
	}, nil
}

func (s *insightService) GetAdaptiveTarget(ctx context.Context, userID string) (domain.AdaptiveTargetResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.AdaptiveTargetResponse{}, err
	}

	maintenance, err := Maintenance(profile)
	if err != nil {
		return domain.AdaptiveTargetResponse{}, domain.ErrProfileIncomplete
	}
	target := TargetCalories(maintenance, profile.Goal)

	to := truncateToDay(time.Now())
	from := to.AddDate(0, 0, -6)
	food, err := s.logStore.GetFoodLogs(ctx, userID, from, to)
	if err != nil {
		return domain.AdaptiveTargetResponse{}, err
	}
	exercise, err := s.logStore.GetExerciseLogs(ctx, userID, from, to)
	if err != nil {
		return domain.AdaptiveTargetResponse{}, err
	}

	avgNet, daysLogged := weeklyAvgNet(food, exercise)
	result := AdaptiveTarget(s.strategy, avgNet, target, profile.Goal, daysLogged)

	strategy := s.strategy
	if strategy != StrategyV1 {
		strategy = StrategyV2
	}

	return domain.AdaptiveTargetResponse{
		StaticTarget:   target,
		AdaptiveTarget: result.Target,
		AvgNet:         avgNet,
		Strategy:       strategy,
		Reason:         result.Reason,
	}, nil
}

func (s *insightService) GetWeightLossPlan(ctx context.Context, req domain.WeightLossPlanRequest, userID string) (domain.WeightLossPlanResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.WeightLossPlanResponse{}, err
	}
	profile.Activity = req.ActivityLevel

	plan, err := ComputeWeightLossPlan(profile)
	if err != nil {
		return domain.WeightLossPlanResponse{}, domain.ErrProfileIncomplete
	}

	return domain.WeightLossPlanResponse{
		BMI:                plan.BMI,
		BMICategory:        plan.BMICategory,
		Maintenance:        plan.Maintenance,
		Target:             plan.Target,
		DeficitPerDay:      plan.DeficitPerDay,
		ExpectedWeeklyLoss: plan.ExpectedWeeklyLoss,
		ProteinTargetG:     plan.ProteinTargetG,
		FatTargetG:         plan.FatTargetG,
		CarbsTargetG:       plan.CarbsTargetG,
	}, nil
}

// loadProfile assembles the calculation profile, resolving weight through
// the latest-log-wins rule.
func (s *insightService) loadProfile(ctx context.Context, userID string) (Profile, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Profile{}, domain.ErrUserNotFound
		}
		return Profile{}, err
	}

	weight := u.WeightKG
	if latest, found, err := s.logStore.GetLatestWeight(ctx, userID); err != nil {
		return Profile{}, err
	} else if found {
		weight = latest
	}

	if u.Age <= 0 || u.HeightCM <= 0 || weight <= 0 {
		return Profile{}, domain.ErrProfileIncomplete
	}

	return Profile{
		Age:      u.Age,
		Gender:   u.Gender,
		HeightCM: u.HeightCM,
		WeightKG: weight,
		Activity: u.ActivityLevel,
		Goal:     u.Goal,
	}, nil
}

// dailySums collapses food logs to one consumed total per calendar day,
// ordered by date.
func dailySums(food []*entities.FoodLog) []float64 {
	byDate := map[string]float64{}
	for _, f := range food {
		byDate[f.Date.Format("2006-01-02")] += f.Calories
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	sums := make([]float64, 0, len(dates))
	for _, d := range dates {
		sums = append(sums, byDate[d])
	}
	return sums
}

// weeklyAvgNet averages consumed-minus-burned over the days that have any
// log at all.
func weeklyAvgNet(food []*entities.FoodLog, exercise []*entities.ExerciseLog) (float64, int) {
	byDate := map[string]float64{}
	for _, f := range food {
		byDate[f.Date.Format("2006-01-02")] += f.Calories
	}
	for _, e := range exercise {
		byDate[e.Date.Format("2006-01-02")] -= e.CaloriesBurned
	}

	if len(byDate) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, net := range byDate {
		sum += net
	}
	return sum / float64(len(byDate)), len(byDate)
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
