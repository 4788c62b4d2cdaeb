package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sngrmvj/WorkoutWatcher/services"
	"github.com/sngrmvj/WorkoutWatcher/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// newTestRouter wires every controller on top of the mocked database, the
// same way routes.SetupRouter does for the real one.
func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	users := services.NewUserService(db)
	workouts := services.NewWorkoutService(db)
	reports := services.NewReportService(db)

	health := NewHealthController(db)
	auth := NewAuthController(users, log)
	workout := NewWorkoutController(users, workouts, log)
	report := NewReportController(users, reports, log)

	r := gin.New()
	r.GET("/", health.Ping)
	r.POST("/user", auth.Register)
	r.PUT("/user", auth.Login)
	r.POST("/submit", workout.Submit)
	r.GET("/monthly-reports", report.Monthly)
	r.GET("/weekly_report", report.Weekly)
	return r
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func userRows(t *testing.T, id int, username, email, password string) *sqlmock.Rows {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	return sqlmock.
		NewRows([]string{"id", "created_at", "updated_at", "deleted_at", "username", "email", "password"}).
		AddRow(id, now, now, nil, username, email, hashed)
}
