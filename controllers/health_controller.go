package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Ping handles GET / with the connectivity message the frontend expects.
func (ctrl *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Yes you are connected!!"})
}

// Health handles GET /health, reporting whether the database is reachable.
func (ctrl *HealthController) Health(c *gin.Context) {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
