package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sngrmvj/WorkoutWatcher/config"
	"github.com/sngrmvj/WorkoutWatcher/controllers"
	"github.com/sngrmvj/WorkoutWatcher/middlewares"
	"github.com/sngrmvj/WorkoutWatcher/services"
)

// SetupRouter wires services and controllers around the injected database
// handle and registers every route.
func SetupRouter(cfg *config.Config, log *zap.Logger, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg)))

	users := services.NewUserService(db)
	workouts := services.NewWorkoutService(db)
	reports := services.NewReportService(db)

	health := controllers.NewHealthController(db)
	auth := controllers.NewAuthController(users, log)
	workout := controllers.NewWorkoutController(users, workouts, log)
	report := controllers.NewReportController(users, reports, log)

	r.GET("/", health.Ping)
	r.GET("/health", health.Health)

	r.POST("/user", auth.Register)
	r.PUT("/user", auth.Login)

	r.POST("/submit", workout.Submit)

	r.GET("/monthly-reports", report.Monthly)
	r.GET("/weekly_report", report.Weekly)

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	for _, origin := range cfg.CORSAllowOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	return corsCfg
}
