package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sngrmvj/WorkoutWatcher/apperrors"
	"github.com/sngrmvj/WorkoutWatcher/services"
)

type RegisterData struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Data *RegisterData `json:"data" binding:"required"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Data *LoginData `json:"data" binding:"required"`
}

type AuthController struct {
	users *services.UserService
	log   *zap.Logger
}

func NewAuthController(users *services.UserService, log *zap.Logger) *AuthController {
	return &AuthController{users: users, log: log}
}

// Register handles POST /user.
func (ctrl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ValidationMessage(err)})
		return
	}

	err := ctrl.users.Register(input.Data.Username, input.Data.Email, input.Data.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrDuplicate.Error()})
			return
		}
		ctrl.log.Error("user registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Addition of the user failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// Login handles PUT /user. Credentials are verified against the stored hash;
// no token or session is issued, so the caller re-sends the email on every
// subsequent request.
func (ctrl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ValidationMessage(err)})
		return
	}

	user, err := ctrl.users.Authenticate(input.Data.Email, input.Data.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
			return
		}
		ctrl.log.Error("user validation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error in validating the user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"fullname": user.Username,
		"email":    user.Email,
		"valid":    true,
	})
}
