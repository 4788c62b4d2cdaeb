package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sngrmvj/WorkoutWatcher/apperrors"
	"github.com/sngrmvj/WorkoutWatcher/models"
	"github.com/sngrmvj/WorkoutWatcher/services"
	"github.com/sngrmvj/WorkoutWatcher/utils"
)

type ReportController struct {
	users   *services.UserService
	reports *services.ReportService
	log     *zap.Logger
}

func NewReportController(users *services.UserService, reports *services.ReportService, log *zap.Logger) *ReportController {
	return &ReportController{users: users, reports: reports, log: log}
}

// Monthly handles GET /monthly-reports: the past 30 days of workout entries
// as a downloadable spreadsheet. An empty window produces a header-only
// sheet.
func (ctrl *ReportController) Monthly(c *gin.Context) {
	user, ok := ctrl.resolveUser(c)
	if !ok {
		return
	}

	entries, err := ctrl.reports.MonthlyEntries(user.ID)
	if err != nil {
		ctrl.log.Error("monthly report query failed", zap.String("email", user.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching the monthly report"})
		return
	}

	payload, err := utils.BuildMonthlyReport(entries)
	if err != nil {
		ctrl.log.Error("monthly report rendering failed", zap.String("email", user.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching the monthly report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="Monthly Report.xlsx"`)
	c.Data(http.StatusOK, utils.XLSXContentType, payload)
}

// Weekly handles GET /weekly_report: the past 7 days of calorie totals as
// (date, calories) pairs plus parallel date and value sequences.
func (ctrl *ReportController) Weekly(c *gin.Context) {
	user, ok := ctrl.resolveUser(c)
	if !ok {
		return
	}

	summary, err := ctrl.reports.Weekly(user.ID)
	if err != nil {
		ctrl.log.Error("weekly report query failed", zap.String("email", user.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching the weekly data for analytics"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// resolveUser validates the email query parameter and resolves it to a user,
// writing the error response itself when that fails.
func (ctrl *ReportController) resolveUser(c *gin.Context) (*models.User, bool) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return nil, false
	}

	user, err := ctrl.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrUserNotFound.Error()})
			return nil, false
		}
		ctrl.log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while resolving the user"})
		return nil, false
	}

	return user, true
}
