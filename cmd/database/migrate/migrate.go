package migration

import (
	"NutriSense-Backend/entities"
	"NutriSense-Backend/pkg/nutrition"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.NewsletterSubscriber{},
		&entities.FoodLog{},
		&entities.ExerciseLog{},
		&entities.WeightLog{},
		&entities.CravingLog{},
		&entities.MealScan{},
		&entities.FoodNutrition{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	if err := seedFoodNutrition(db); err != nil {
		log.Fatalf("Error seeding food nutrition table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedFoodNutrition loads the reference dataset, inserting only names not
// already present so re-running migration never duplicates rows.
func seedFoodNutrition(db *gorm.DB) error {
	for _, food := range nutrition.SeedFoods() {
		var count int64
		if err := db.Model(&entities.FoodNutrition{}).
			Where("name = ?", food.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&food).Error; err != nil {
			return err
		}
	}
	return nil
}
