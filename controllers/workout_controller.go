package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sngrmvj/WorkoutWatcher/apperrors"
	"github.com/sngrmvj/WorkoutWatcher/services"
)

type WorkoutData struct {
	Category string `json:"category" binding:"required"`
	Hours    int    `json:"hours" binding:"gte=0"`
	Minutes  int    `json:"minutes" binding:"gte=0"`
	Seconds  int    `json:"seconds" binding:"gte=0"`
}

type WorkoutInput struct {
	Data *WorkoutData `json:"data" binding:"required"`
}

type WorkoutController struct {
	users    *services.UserService
	workouts *services.WorkoutService
	log      *zap.Logger
}

func NewWorkoutController(users *services.UserService, workouts *services.WorkoutService, log *zap.Logger) *WorkoutController {
	return &WorkoutController{users: users, workouts: workouts, log: log}
}

// Submit handles POST /submit. The email arrives as a query parameter; the
// body carries the workout under a "data" envelope.
func (ctrl *WorkoutController) Submit(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ValidationMessage(err)})
		return
	}

	user, err := ctrl.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrUserNotFound.Error()})
			return
		}
		ctrl.log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while adding the data to database"})
		return
	}

	_, err = ctrl.workouts.Submit(user.ID, input.Data.Category, input.Data.Hours, input.Data.Minutes, input.Data.Seconds)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrUnknownCategory.Error()})
			return
		}
		ctrl.log.Error("workout submission failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while adding the data to database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
