package entities

import (
	"github.com/google/uuid"
)

type MealScan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status"` // "Pending", "Classified", "Failed"
	Predictions string    `json:"predictions,omitempty" gorm:"type:text"`

	User     *User      `gorm:"foreignKey:UserID"`
	FoodLogs []*FoodLog `gorm:"foreignKey:MealScanID"`
	Timestamp
}
