package tracker

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/entities"
	"NutriSense-Backend/internal/utils/storage"
	"NutriSense-Backend/pkg/classifier"
	"NutriSense-Backend/pkg/insight"
	"NutriSense-Backend/pkg/nutrition"
	"NutriSense-Backend/pkg/user"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// surplusTolerance is the net-calorie overshoot the burn plan leaves alone:
// only the excess above it gets converted into an exercise target.
const surplusTolerance = 200

// autoLogConfidence is the minimum classifier confidence (0-100) for a
// prediction to be turned into a food log without user confirmation.
const autoLogConfidence = 50

type (
	TrackerService interface {
		LogFood(ctx context.Context, req domain.LogFoodRequest, userID string) (domain.LogFoodResponse, error)
		LogExercise(ctx context.Context, req domain.LogExerciseRequest, userID string) (domain.LogExerciseResponse, error)
		LogWeight(ctx context.Context, req domain.LogWeightRequest, userID string) (domain.WeightLogResponse, error)

		FoodHistory(ctx context.Context, userID string, from, to time.Time) ([]domain.FoodLogResponse, error)
		ExerciseHistory(ctx context.Context, userID string, from, to time.Time) ([]domain.ExerciseLogResponse, error)
		WeightHistory(ctx context.Context, userID string, from, to time.Time) ([]domain.WeightLogResponse, error)

		GetDailyBalance(ctx context.Context, userID string, date time.Time) (domain.DailyBalanceResponse, error)
		GetWeeklyReport(ctx context.Context, userID string, end time.Time) (domain.WeeklyReportResponse, error)

		UploadMealPhoto(ctx context.Context, req domain.UploadMealPhotoRequest, userID string) (domain.UploadMealPhotoResponse, error)

		GetBurnPlan(ctx context.Context, userID string) (domain.BurnPlanResponse, error)
		GetSuggestions(ctx context.Context, userID string, calories float64) ([]domain.ExerciseSuggestion, error)
		GetStreak(ctx context.Context, userID string) (domain.StreakResponse, error)
	}

	trackerService struct {
		trackerRepository   TrackerRepository
		userRepository      user.UserRepository
		nutritionRepository nutrition.NutritionRepository
		foodClassifier      classifier.Classifier
		s3                  storage.AwsS3
	}
)

func NewTrackerService(
	trackerRepository TrackerRepository,
	userRepository user.UserRepository,
	nutritionRepository nutrition.NutritionRepository,
	foodClassifier classifier.Classifier,
	s3 storage.AwsS3,
) TrackerService {
	return &trackerService{
		trackerRepository:   trackerRepository,
		userRepository:      userRepository,
		nutritionRepository: nutritionRepository,
		foodClassifier:      foodClassifier,
		s3:                  s3,
	}
}

func (s *trackerService) LogFood(ctx context.Context, req domain.LogFoodRequest, userID string) (domain.LogFoodResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogFoodResponse{}, domain.ErrParseUUID
	}
	if req.Calories < 0 {
		return domain.LogFoodResponse{}, domain.ErrInvalidCalories
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return domain.LogFoodResponse{}, err
	}

	calories := req.Calories
	manual := calories > 0
	if !manual {
		// No explicit calories: price the portion off the reference table.
		grams := req.Grams
		if grams <= 0 {
			grams = 100
		}
		food, err := s.nutritionRepository.LookupFood(ctx, req.FoodName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.LogFoodResponse{}, domain.ErrFoodNotFound
			}
			return domain.LogFoodResponse{}, err
		}
		calories = food.CaloriesPer100G * grams / 100
	}

	entry := &entities.FoodLog{
		UserID:        uid,
		FoodName:      req.FoodName,
		Calories:      calories,
		Date:          date,
		AddedManually: manual,
	}
	if err := s.trackerRepository.AddFoodLog(ctx, entry); err != nil {
		return domain.LogFoodResponse{}, err
	}

	return domain.LogFoodResponse{
		ID:       entry.ID.String(),
		FoodName: entry.FoodName,
		Calories: entry.Calories,
		Date:     entry.Date,
	}, nil
}

func (s *trackerService) LogExercise(ctx context.Context, req domain.LogExerciseRequest, userID string) (domain.LogExerciseResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogExerciseResponse{}, domain.ErrParseUUID
	}
	if req.Minutes <= 0 {
		return domain.LogExerciseResponse{}, domain.ErrInvalidMinutes
	}

	met, ok := LookupMET(req.ExerciseName)
	if !ok {
		return domain.LogExerciseResponse{}, domain.ErrUnknownExercise
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return domain.LogExerciseResponse{}, err
	}

	weight, err := s.resolveWeight(ctx, userID)
	if err != nil {
		return domain.LogExerciseResponse{}, err
	}

	entry := &entities.ExerciseLog{
		UserID:         uid,
		ExerciseName:   req.ExerciseName,
		Minutes:        req.Minutes,
		CaloriesBurned: CaloriesBurned(met, weight, req.Minutes),
		Date:           date,
	}
	if err := s.trackerRepository.AddExerciseLog(ctx, entry); err != nil {
		return domain.LogExerciseResponse{}, err
	}

	return domain.LogExerciseResponse{
		ID:             entry.ID.String(),
		ExerciseName:   entry.ExerciseName,
		Minutes:        entry.Minutes,
		CaloriesBurned: entry.CaloriesBurned,
		Date:           entry.Date,
	}, nil
}

func (s *trackerService) LogWeight(ctx context.Context, req domain.LogWeightRequest, userID string) (domain.WeightLogResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.WeightLogResponse{}, domain.ErrParseUUID
	}
	if req.WeightKG <= 0 {
		return domain.WeightLogResponse{}, domain.ErrInvalidWeight
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return domain.WeightLogResponse{}, err
	}

	entry := &entities.WeightLog{
		UserID:   uid,
		WeightKG: req.WeightKG,
		Date:     date,
	}
	if err := s.trackerRepository.AddWeightLog(ctx, entry); err != nil {
		return domain.WeightLogResponse{}, err
	}

	return domain.WeightLogResponse{
		ID:       entry.ID.String(),
		WeightKG: entry.WeightKG,
		Date:     entry.Date,
	}, nil
}

func (s *trackerService) FoodHistory(ctx context.Context, userID string, from, to time.Time) ([]domain.FoodLogResponse, error) {
	logs, err := s.trackerRepository.GetFoodLogs(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]domain.FoodLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, domain.FoodLogResponse{
			ID:       l.ID.String(),
			FoodName: l.FoodName,
			Calories: l.Calories,
			Date:     l.Date,
		})
	}
	return res, nil
}

func (s *trackerService) ExerciseHistory(ctx context.Context, userID string, from, to time.Time) ([]domain.ExerciseLogResponse, error) {
	logs, err := s.trackerRepository.GetExerciseLogs(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ExerciseLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, domain.ExerciseLogResponse{
			ID:             l.ID.String(),
			ExerciseName:   l.ExerciseName,
			Minutes:        l.Minutes,
			CaloriesBurned: l.CaloriesBurned,
			Date:           l.Date,
		})
	}
	return res, nil
}

func (s *trackerService) WeightHistory(ctx context.Context, userID string, from, to time.Time) ([]domain.WeightLogResponse, error) {
	logs, err := s.trackerRepository.GetWeightLogs(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]domain.WeightLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, domain.WeightLogResponse{
			ID:       l.ID.String(),
			WeightKG: l.WeightKG,
			Date:     l.Date,
		})
	}
	return res, nil
}

func (s *trackerService) GetDailyBalance(ctx context.Context, userID string, date time.Time) (domain.DailyBalanceResponse, error) {
	day := truncateToDay(date)
	food, err := s.trackerRepository.GetFoodLogs(ctx, userID, day, day)
	if err != nil {
		return domain.DailyBalanceResponse{}, err
	}
	exercise, err := s.trackerRepository.GetExerciseLogs(ctx, userID, day, day)
	if err != nil {
		return domain.DailyBalanceResponse{}, err
	}

	consumed, burned, net := DailyBalance(food, exercise)

	res := domain.DailyBalanceResponse{
		Date:     day.Format(dateLayout),
		Consumed: consumed,
		Burned:   burned,
		Net:      net,
	}

	// Target is best-effort: an incomplete profile hides it instead of
	// failing the whole balance view.
	if target, err := s.targetCalories(ctx, userID); err == nil {
		res.Target = target
		res.Remaining = target - net
	}
	return res, nil
}

func (s *trackerService) GetWeeklyReport(ctx context.Context, userID string, end time.Time) (domain.WeeklyReportResponse, error) {
	to := truncateToDay(end)
	from := to.AddDate(0, 0, -6)

	food, err := s.trackerRepository.GetFoodLogs(ctx, userID, from, to)
	if err != nil {
		return domain.WeeklyReportResponse{}, err
	}
	exercise, err := s.trackerRepository.GetExerciseLogs(ctx, userID, from, to)
	if err != nil {
		return domain.WeeklyReportResponse{}, err
	}

	days, avgNet := WeeklySeries(food, exercise)
	return domain.WeeklyReportResponse{
		Days:       days,
		DaysLogged: len(days),
		AvgNet:     avgNet,
	}, nil
}

func (s *trackerService) UploadMealPhoto(ctx context.Context, req domain.UploadMealPhotoRequest, userID string) (domain.UploadMealPhotoResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadMealPhotoResponse{}, domain.ErrParseUUID
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return domain.UploadMealPhotoResponse{}, err
	}

	fileName := fmt.Sprintf("meal-%s", uuid.NewString())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
	if err != nil {
		return domain.UploadMealPhotoResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.MealScan{
		UserID:   uid,
		ImageURL: imageURL,
		Status:   "Pending",
	}
	if err := s.trackerRepository.CreateMealScan(ctx, scan); err != nil {
		return domain.UploadMealPhotoResponse{}, err
	}

	image, err := readMultipartFile(req.Image)
	if err != nil {
		return domain.UploadMealPhotoResponse{}, err
	}

	predictions, err := s.foodClassifier.Classify(ctx, image, req.Image.Filename)
	if err != nil {
		// The scan record survives a classifier outage so the user can
		// attach a manual log to it later.
		scan.Status = "Failed"
		_ = s.trackerRepository.UpdateMealScan(ctx, scan)
		if errors.Is(err, domain.ErrClassifierUnavailable) || errors.Is(err, domain.ErrNoPrediction) {
			return domain.UploadMealPhotoResponse{
				ScanID:   scan.ID.String(),
				ImageURL: imageURL,
				Status:   scan.Status,
			}, err
		}
		return domain.UploadMealPhotoResponse{}, err
	}

	res := domain.UploadMealPhotoResponse{
		ScanID:   scan.ID.String(),
		ImageURL: imageURL,
		Status:   "Classified",
	}
	for _, p := range predictions {
		res.Predictions = append(res.Predictions, domain.MealPrediction{
			Label:      p.Label,
			Confidence: p.Confidence,
		})
	}

	// Attach reference calories to every prediction the table knows about.
	grams := req.Grams
	if grams <= 0 {
		grams = 100
	}
	for i := range res.Predictions {
		food, err := s.nutritionRepository.LookupFood(ctx, res.Predictions[i].Label)
		if err != nil {
			continue
		}
		res.Predictions[i].Calories = food.CaloriesPer100G * grams / 100
	}

	scan.Status = "Classified"
	if raw, err := json.Marshal(res.Predictions); err == nil {
		scan.Predictions = string(raw)
	}
	if err := s.trackerRepository.UpdateMealScan(ctx, scan); err != nil {
		return domain.UploadMealPhotoResponse{}, err
	}

	// Auto-log the top prediction when the model is confident enough and
	// the reference table can price it.
	top := res.Predictions[0]
	if top.Confidence >= autoLogConfidence && top.Calories > 0 {
		scanID := scan.ID.String()
		entry := &entities.FoodLog{
			UserID:        uid,
			FoodName:      top.Label,
			Calories:      top.Calories,
			Date:          date,
			AddedManually: false,
			MealScanID:    &scanID,
		}
		if err := s.trackerRepository.AddFoodLog(ctx, entry); err != nil {
			return domain.UploadMealPhotoResponse{}, err
		}
		res.LoggedFood = &domain.LogFoodResponse{
			ID:       entry.ID.String(),
			FoodName: entry.FoodName,
			Calories: entry.Calories,
			Date:     entry.Date,
		}
	}

	return res, nil
}

func (s *trackerService) GetBurnPlan(ctx context.Context, userID string) (domain.BurnPlanResponse, error) {
	balance, err := s.GetDailyBalance(ctx, userID, time.Now())
	if err != nil {
		return domain.BurnPlanResponse{}, err
	}

	res := domain.BurnPlanResponse{NetToday: balance.Net}
	if balance.Net <= surplusTolerance {
		res.Balanced = true
		return res, nil
	}

	weight, err := s.resolveWeight(ctx, userID)
	if err != nil {
		return domain.BurnPlanResponse{}, err
	}

	res.BurnTarget = balance.Net - surplusTolerance
	res.Suggestions = SuggestBurnPlan(res.BurnTarget, weight)
	return res, nil
}

func (s *trackerService) GetSuggestions(ctx context.Context, userID string, calories float64) ([]domain.ExerciseSuggestion, error) {
	if calories <= 0 {
		return nil, domain.ErrInvalidCalories
	}
	weight, err := s.resolveWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SuggestExercises(calories, weight), nil
}

func (s *trackerService) GetStreak(ctx context.Context, userID string) (domain.StreakResponse, error) {
	dates, err := s.trackerRepository.GetExerciseDates(ctx, userID)
	if err != nil {
		return domain.StreakResponse{}, err
	}

	today := time.Now()
	weekStart := truncateToDay(today).AddDate(0, 0, -6)
	activeDays := 0
	for _, d := range dates {
		if !truncateToDay(d).Before(weekStart) {
			activeDays++
		}
	}

	score, label := insight.ExerciseConsistency(activeDays)
	return domain.StreakResponse{
		StreakDays:       Streak(dates, today),
		ActiveDaysInWeek: activeDays,
		ConsistencyScore: score,
		ConsistencyLabel: label,
	}, nil
}

// resolveWeight returns the user's current weight: the newest weight log
// when one exists, otherwise the profile weight.
func (s *trackerService) resolveWeight(ctx context.Context, userID string) (float64, error) {
	latest, found, err := s.trackerRepository.GetLatestWeight(ctx, userID)
	if err != nil {
		return 0, err
	}
	if found {
		return latest, nil
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}
	if u.WeightKG <= 0 {
		return 0, domain.ErrInvalidWeight
	}
	return u.WeightKG, nil
}

func (s *trackerService) targetCalories(ctx context.Context, userID string) (float64, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	weight, err := s.resolveWeight(ctx, userID)
	if err != nil {
		return 0, err
	}

	maintenance, err := insight.Maintenance(insight.Profile{
		Age:      u.Age,
		Gender:   u.Gender,
		HeightCM: u.HeightCM,
		WeightKG: weight,
		Activity: u.ActivityLevel,
		Goal:     u.Goal,
	})
	if err != nil {
		return 0, err
	}
	return insight.TargetCalories(maintenance, u.Goal), nil
}

func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return truncateToDay(time.Now()), nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return date, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
