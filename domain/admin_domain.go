package domain

var (
	MessageSuccessGetAdminStats = "admin statistics retrieved successfully"
	MessageFailedGetAdminStats  = "failed to retrieve admin statistics"
)

type AdminStatsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	VerifiedUsers     int64 `json:"verified_users"`
	SignupsToday      int64 `json:"signups_today"`
	FoodLogsToday     int64 `json:"food_logs_today"`
	ExerciseLogsToday int64 `json:"exercise_logs_today"`
	TotalFoodLogs     int64 `json:"total_food_logs"`
	TotalExerciseLogs int64 `json:"total_exercise_logs"`
	NewsletterSubs    int64 `json:"newsletter_subscribers"`
}
