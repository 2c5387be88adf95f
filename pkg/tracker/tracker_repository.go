package tracker

import (
	"NutriSense-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	TrackerRepository interface {
		AddFoodLog(ctx context.Context, entry *entities.FoodLog) error
		AddExerciseLog(ctx context.Context, entry *entities.ExerciseLog) error
		AddWeightLog(ctx context.Context, entry *entities.WeightLog) error
		AddCravingLog(ctx context.Context, entry *entities.CravingLog) error

		GetFoodLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.FoodLog, error)
		GetExerciseLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.ExerciseLog, error)
		GetWeightLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.WeightLog, error)
		GetCravingLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.CravingLog, error)

		// GetLatestWeight returns the newest weight log for the user; found is
		// false when the user never logged a weight.
		GetLatestWeight(ctx context.Context, userID string) (float64, bool, error)

		// GetExerciseDates returns the distinct dates the user exercised,
		// newest first, for streak counting.
		GetExerciseDates(ctx context.Context, userID string) ([]time.Time, error)

		CreateMealScan(ctx context.Context, scan *entities.MealScan) error
		UpdateMealScan(ctx context.Context, scan *entities.MealScan) error

		CountFoodLogsSince(ctx context.Context, since time.Time) (int64, error)
		CountExerciseLogsSince(ctx context.Context, since time.Time) (int64, error)
		CountFoodLogs(ctx context.Context) (int64, error)
		CountExerciseLogs(ctx context.Context) (int64, error)
	}

	trackerRepository struct {
		db *gorm.DB
	}
)

func NewTrackerRepository(db *gorm.DB) TrackerRepository {
	return &trackerRepository{db: db}
}

func (r *trackerRepository) AddFoodLog(ctx context.Context, entry *entities.FoodLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackerRepository) AddExerciseLog(ctx context.Context, entry *entities.ExerciseLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackerRepository) AddWeightLog(ctx context.Context, entry *entities.WeightLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackerRepository) AddCravingLog(ctx context.Context, entry *entities.CravingLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackerRepository) GetFoodLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.FoodLog, error) {
	var logs []*entities.FoodLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *trackerRepository) GetExerciseLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.ExerciseLog, error) {
	var logs []*entities.ExerciseLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *trackerRepository) GetWeightLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.WeightLog, error) {
	var logs []*entities.WeightLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *trackerRepository) GetCravingLogs(ctx context.Context, userID string, from, to time.Time) ([]*entities.CravingLog, error) {
	var logs []*entities.CravingLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *trackerRepository) GetLatestWeight(ctx context.Context, userID string) (float64, bool, error) {
	var log entities.WeightLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return log.WeightKG, true, nil
}

func (r *trackerRepository) GetExerciseDates(ctx context.Context, userID string) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).Model(&entities.ExerciseLog{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Order("date desc").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *trackerRepository) CreateMealScan(ctx context.Context, scan *entities.MealScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *trackerRepository) UpdateMealScan(ctx context.Context, scan *entities.MealScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *trackerRepository) CountFoodLogsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodLog{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *trackerRepository) CountExerciseLogsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ExerciseLog{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *trackerRepository) CountFoodLogs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodLog{}).Count(&count).Error
	return count, err
}

func (r *trackerRepository) CountExerciseLogs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ExerciseLog{}).Count(&count).Error
	return count, err
}
