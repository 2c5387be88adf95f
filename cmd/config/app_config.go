package config

import (
	"NutriSense-Backend/internal/api/handlers"
	"NutriSense-Backend/internal/api/routes"
	"NutriSense-Backend/internal/middleware"
	"NutriSense-Backend/internal/utils"
	"NutriSense-Backend/internal/utils/storage"
	"NutriSense-Backend/pkg/admin"
	"NutriSense-Backend/pkg/classifier"
	"NutriSense-Backend/pkg/craving"
	"NutriSense-Backend/pkg/insight"
	"NutriSense-Backend/pkg/jwt"
	"NutriSense-Backend/pkg/nutrition"
	"NutriSense-Backend/pkg/tracker"
	"NutriSense-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	foodClassifier := classifier.NewHTTPClassifier()

	// Repository
	userRepository := user.NewUserRepository(db)
	trackerRepository := tracker.NewTrackerRepository(db)
	nutritionRepository := nutrition.NewNutritionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	trackerService := tracker.NewTrackerService(
		trackerRepository,
		userRepository,
		nutritionRepository,
		foodClassifier,
		s3,
	)
	insightService := insight.NewInsightService(
		userRepository,
		trackerRepository,
		utils.GetConfig("ADAPTIVE_TARGET_STRATEGY"),
	)
	nutritionService := nutrition.NewNutritionService(nutritionRepository, userRepository)
	cravingService := craving.NewCravingService(
		trackerRepository,
		utils.GetConfig("CRAVING_RISK_SCORER"),
	)
	adminService := admin.NewAdminService(userRepository, trackerRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	trackerHandler := handlers.NewTrackerHandler(trackerService, validator)
	insightHandler := handlers.NewInsightHandler(insightService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	cravingHandler := handlers.NewCravingHandler(cravingService, validator)
	adminHandler := handlers.NewAdminHandler(adminService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		TrackerHandler:   trackerHandler,
		InsightHandler:   insightHandler,
		NutritionHandler: nutritionHandler,
		CravingHandler:   cravingHandler,
		AdminHandler:     adminHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
