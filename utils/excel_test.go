package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sngrmvj/WorkoutWatcher/models"
)

func entry(category string, hours, minutes, seconds int, day time.Time) models.WorkoutEntry {
	return models.WorkoutEntry{
		UserID:           7,
		ExerciseCategory: category,
		Hours:            hours,
		Minutes:          minutes,
		Seconds:          seconds,
		Timestamp:        day,
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	day1 := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 8, 12, 0, 0, 0, 0, time.Local)

	payload, err := BuildMonthlyReport([]models.WorkoutEntry{
		entry("Light exercises", 1, 30, 0, day1),
		entry("Heavy exercises", 0, 45, 30, day2),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(MonthlyReportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Exercise Category", "Hours", "Minutes", "Seconds", "Timestamp"}, rows[0])
	assert.Equal(t, []string{"Light exercises", "1", "30", "0", "2026-08-10"}, rows[1])
	assert.Equal(t, []string{"Heavy exercises", "0", "45", "30", "2026-08-12"}, rows[2])

	width, err := f.GetColWidth(MonthlyReportSheet, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(30), width)
}

func TestBuildMonthlyReportEmpty(t *testing.T) {
	payload, err := BuildMonthlyReport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(MonthlyReportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Exercise Category", "Hours", "Minutes", "Seconds", "Timestamp"}, rows[0])
}
