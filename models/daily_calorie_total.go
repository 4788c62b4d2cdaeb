package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyCalorieTotal holds the running calorie total for one user and one
// calendar day. The composite unique index backs the ON CONFLICT upsert in
// the workout service, so concurrent submissions cannot lose an increment.
type DailyCalorieTotal struct {
	gorm.Model
	UserID        uint      `gorm:"uniqueIndex:idx_total_calories_user_day;not null"`
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
	TotalCalories float64   `gorm:"not null"`
	Timestamp     time.Time `gorm:"uniqueIndex:idx_total_calories_user_day;not null"` // truncated to local midnight
}

func (DailyCalorieTotal) TableName() string {
	return "total_calories"
}
