package routes

import (
	"net/http"

	"github.com/sandro1422/workout-api/controllers"
	"github.com/sandro1422/workout-api/middlewares"
	"github.com/sandro1422/workout-api/services"
	"github.com/sandro1422/workout-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers over the given database and
// token issuer. Tests call this with an in-memory store.
func SetupRouter(db *gorm.DB, issuer *utils.TokenIssuer) *gin.Engine {
	authCtl := controllers.NewAuthController(services.NewAuthService(db, issuer))
	exerciseCtl := controllers.NewExerciseController(services.NewExerciseService(db))
	planCtl := controllers.NewWorkoutPlanController(services.NewWorkoutPlanService(db))
	weightCtl := controllers.NewWeightController(services.NewWeightService(db))
	goalCtl := controllers.NewGoalController(services.NewGoalService(db))

	r := gin.Default()

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "<h1>hello there</h1>")
	})
	r.POST("/register", authCtl.Register)
	r.POST("/login", authCtl.Login)
	r.GET("/exercises", exerciseCtl.List)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(issuer))
	{
		protected.GET("/profile", authCtl.Profile)
		protected.POST("/workout_plans", planCtl.Create)
		protected.GET("/workout_plans", planCtl.List)
		protected.POST("/weight", weightCtl.Add)
		protected.GET("/weight", weightCtl.History)
		protected.POST("/goals", goalCtl.Set)
		protected.GET("/goals", goalCtl.List)
	}

	return r
}
