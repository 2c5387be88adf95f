package routes

import (
	"NutriSense-Backend/internal/api/handlers"
	"NutriSense-Backend/internal/middleware"
	"NutriSense-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	TrackerHandler   handlers.TrackerHandler
	InsightHandler   handlers.InsightHandler
	NutritionHandler handlers.NutritionHandler
	CravingHandler   handlers.CravingHandler
	AdminHandler     handlers.AdminHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Tracker()
	c.Insights()
	c.Nutrition()
	c.Cravings()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/newsletter", c.UserHandler.SubscribeNewsletter)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Delete("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteAccount)
	}
}

func (c *Config) Tracker() {
	tracker := c.App.Group("/api/v1/tracker", c.Middleware.AuthMiddleware(c.JWTService))
	{
		tracker.Post("/food", c.TrackerHandler.LogFood)
		tracker.Get("/food", c.TrackerHandler.GetFoodHistory)
		tracker.Post("/exercise", c.TrackerHandler.LogExercise)
		tracker.Get("/exercise", c.TrackerHandler.GetExerciseHistory)
		tracker.Post("/weight", c.TrackerHandler.LogWeight)
		tracker.Get("/weight", c.TrackerHandler.GetWeightHistory)
		tracker.Post("/meal-photo", c.TrackerHandler.UploadMealPhoto)
		tracker.Get("/balance", c.TrackerHandler.GetDailyBalance)
		tracker.Get("/weekly-report", c.TrackerHandler.GetWeeklyReport)
		tracker.Get("/burn-plan", c.TrackerHandler.GetBurnPlan)
		tracker.Get("/suggestions", c.TrackerHandler.GetSuggestions)
		tracker.Get("/streak", c.TrackerHandler.GetStreak)
	}
}

func (c *Config) Insights() {
	insights := c.App.Group("/api/v1/insights", c.Middleware.AuthMiddleware(c.JWTService))
	{
		insights.Get("/calorie-targets", c.InsightHandler.GetCalorieTargets)
		insights.Get("/prediction", c.InsightHandler.GetPrediction)
		insights.Get("/adaptive-target", c.InsightHandler.GetAdaptiveTarget)
		insights.Post("/weight-loss-plan", c.InsightHandler.GetWeightLossPlan)
	}
}

func (c *Config) Nutrition() {
	nutrition := c.App.Group("/api/v1/nutrition")
	{
		nutrition.Get("/foods", c.NutritionHandler.ListFoods)
		nutrition.Get("/foods/:name", c.NutritionHandler.GetFood)
		nutrition.Get("/foods/:name/score", c.Middleware.AuthMiddleware(c.JWTService), c.NutritionHandler.ScoreFood)
	}
}

func (c *Config) Cravings() {
	cravings := c.App.Group("/api/v1/cravings", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cravings.Post("/assess", c.CravingHandler.Assess)
		cravings.Post("", c.CravingHandler.Log)
		cravings.Get("", c.CravingHandler.History)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		admin.Get("/stats", c.AdminHandler.GetStats)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
