package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sngrmvj/WorkoutWatcher/apperrors"
	"github.com/sngrmvj/WorkoutWatcher/models"
)

// Calories burned per minute for each exercise category.
var calorieRates = map[string]float64{
	"Light exercises":    5,
	"Moderate exercises": 8,
	"Heavy exercises":    10,
}

// CaloriesFor computes the calories for one workout. Seconds are recorded on
// the entry but deliberately left out of the formula; only hours and minutes
// count.
func CaloriesFor(category string, hours, minutes int) (float64, error) {
	rate, ok := calorieRates[category]
	if !ok {
		return 0, apperrors.ErrUnknownCategory
	}
	return float64(minutes+hours*60) * rate, nil
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// Submit records one workout and folds its calories into the day's running
// total. Both writes run in a single transaction, and the daily total is an
// atomic insert-or-increment guarded by the unique (user_id, timestamp)
// index, so concurrent submissions for the same user and day cannot lose an
// increment. Returns the calories credited for this entry.
func (s *WorkoutService) Submit(userID uint, category string, hours, minutes, seconds int) (float64, error) {
	calories, err := CaloriesFor(category, hours, minutes)
	if err != nil {
		return 0, err
	}

	day := dayStartLocal(time.Now())

	err = s.db.Transaction(func(tx *gorm.DB) error {
		entry := models.WorkoutEntry{
			UserID:           userID,
			ExerciseCategory: category,
			Hours:            hours,
			Minutes:          minutes,
			Seconds:          seconds,
			Timestamp:        day,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		total := models.DailyCalorieTotal{
			UserID:        userID,
			TotalCalories: calories,
			Timestamp:     day,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "timestamp"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_calories": gorm.Expr("total_calories.total_calories + EXCLUDED.total_calories"),
				"updated_at":     time.Now(),
			}),
		}).Create(&total).Error
	})
	if err != nil {
		return 0, err
	}
	return calories, nil
}
