package entities

import (
	"time"

	"github.com/google/uuid"
)

// Log rows are append-only: inserted once, never updated, bulk-deleted
// only when the owning account is removed.

type FoodLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	FoodName string    `json:"food_name"`
	Calories float64   `json:"calories"`
	Date     time.Time `gorm:"type:date;index" json:"date"`

	AddedManually bool    `json:"added_manually"`
	MealScanID    *string `json:"meal_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type ExerciseLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	ExerciseName   string    `json:"exercise_name"`
	Minutes        float64   `json:"minutes"`
	CaloriesBurned float64   `json:"calories_burned"`
	Date           time.Time `gorm:"type:date;index" json:"date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type WeightLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	WeightKG float64   `json:"weight_kg"`
	Date     time.Time `gorm:"type:date;index" json:"date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type CravingLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	CravingLevel int       `json:"craving_level"` // 1-10
	Trigger      string    `json:"trigger"`
	Date         time.Time `gorm:"type:date;index" json:"date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
