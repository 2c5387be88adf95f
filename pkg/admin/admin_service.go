package admin

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/pkg/tracker"
	"NutriSense-Backend/pkg/user"
	"context"
	"time"
)

type (
	AdminService interface {
		GetStats(ctx context.Context) (domain.AdminStatsResponse, error)
	}

	adminService struct {
		userRepository    user.UserRepository
		trackerRepository tracker.TrackerRepository
	}
)

func NewAdminService(userRepository user.UserRepository, trackerRepository tracker.TrackerRepository) AdminService {
	return &adminService{
		userRepository:    userRepository,
		trackerRepository: trackerRepository,
	}
}

func (s *adminService) GetStats(ctx context.Context) (domain.AdminStatsResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		stats domain.AdminStatsResponse
		err   error
	)

	if stats.TotalUsers, err = s.userRepository.CountUsers(ctx); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.VerifiedUsers, err = s.userRepository.CountVerifiedUsers(ctx); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.SignupsToday, err = s.userRepository.CountSignupsSince(ctx, startOfDay); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.NewsletterSubs, err = s.userRepository.CountNewsletterSubscribers(ctx); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.FoodLogsToday, err = s.trackerRepository.CountFoodLogsSince(ctx, startOfDay); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.ExerciseLogsToday, err = s.trackerRepository.CountExerciseLogsSince(ctx, startOfDay); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.TotalFoodLogs, err = s.trackerRepository.CountFoodLogs(ctx); err != nil {
		return domain.AdminStatsResponse{}, err
	}
	if stats.TotalExerciseLogs, err = s.trackerRepository.CountExerciseLogs(ctx); err != nil {
		return domain.AdminStatsResponse{}, err
	}

	return stats, nil
}
