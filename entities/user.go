package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // "user", "admin"
	Verified bool      `json:"verified"`

	// Profile attributes used by the calorie calculators
	Age           int     `json:"age"`
	Gender        string  `json:"gender"` // "Female", "Male"
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"` // "Sedentary", "Lightly Active", "Moderately Active", "Very Active"
	Goal          string  `json:"goal"`           // "Weight Loss", "Maintain", "Weight Gain"

	// Health condition flags feeding the food scoring engine
	Diabetes     bool `json:"diabetes"`
	Acidity      bool `json:"acidity"`
	Constipation bool `json:"constipation"`
	Obesity      bool `json:"obesity"`

	AvatarURL string `json:"avatar_url,omitempty"`

	Timestamp
}

type NewsletterSubscriber struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email string    `gorm:"uniqueIndex" json:"email"`

	Timestamp
}
