package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/sngrmvj/WorkoutWatcher/models"
)

const reportDateLayout = "2006-01-02"

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// WeeklySummary is the analytics payload for the trailing seven days: the
// (date, calories) pairs plus the dates and values as parallel sequences,
// all derived from the same ordered query result.
type WeeklySummary struct {
	Total  [][]interface{} `json:"total"`
	Times  []string        `json:"times"`
	Values []float64       `json:"values"`
}

// Weekly returns the daily calorie totals of the past 7 days in ascending
// date order. A user with no records gets empty sequences, not an error.
func (s *ReportService) Weekly(userID uint) (*WeeklySummary, error) {
	since := time.Now().AddDate(0, 0, -7)

	var rows []models.DailyCalorieTotal
	err := s.db.
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &WeeklySummary{
		Total:  make([][]interface{}, 0, len(rows)),
		Times:  make([]string, 0, len(rows)),
		Values: make([]float64, 0, len(rows)),
	}
	for _, row := range rows {
		date := row.Timestamp.Format(reportDateLayout)
		summary.Total = append(summary.Total, []interface{}{date, row.TotalCalories})
		summary.Times = append(summary.Times, date)
		summary.Values = append(summary.Values, row.TotalCalories)
	}
	return summary, nil
}

// MonthlyEntries returns the workout entries of the past 30 days in ascending
// date order, ready to be rendered into the export workbook.
func (s *ReportService) MonthlyEntries(userID uint) ([]models.WorkoutEntry, error) {
	now := time.Now()
	from := dayStartLocal(now.AddDate(0, 0, -30))

	var entries []models.WorkoutEntry
	err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, from, now).
		Order("timestamp ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
