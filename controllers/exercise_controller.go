package controllers

import (
	"net/http"

	"github.com/sandro1422/workout-api/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	svc *services.ExerciseService
}

func NewExerciseController(svc *services.ExerciseService) *ExerciseController {
	return &ExerciseController{svc: svc}
}

func (ctl *ExerciseController) List(c *gin.Context) {
	exercises, err := ctl.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load exercises", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exercises)
}
