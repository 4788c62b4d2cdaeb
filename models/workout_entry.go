package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutEntry is one submitted workout. Rows are written once and never
// updated; the monthly export reads them back by user and date range.
type WorkoutEntry struct {
	gorm.Model
	UserID           uint      `gorm:"index;not null"`
	User             User      `gorm:"constraint:OnDelete:CASCADE"`
	ExerciseCategory string    `gorm:"size:50;not null"`
	Hours            int       `gorm:"not null"`
	Minutes          int       `gorm:"not null"`
	Seconds          int       `gorm:"not null"`
	Timestamp        time.Time `gorm:"index;not null"` // truncated to local midnight
}

func (WorkoutEntry) TableName() string {
	return "monthly_report"
}
