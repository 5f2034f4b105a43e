package controllers

import (
	"net/http"

	"github.com/sandro1422/workout-api/services"

	"github.com/gin-gonic/gin"
)

type WorkoutPlanController struct {
	svc *services.WorkoutPlanService
}

func NewWorkoutPlanController(svc *services.WorkoutPlanService) *WorkoutPlanController {
	return &WorkoutPlanController{svc: svc}
}

func (ctl *WorkoutPlanController) Create(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req services.WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create workout plan", "error": err.Error()})
		return
	}

	planID, err := ctl.svc.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create workout plan", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout plan created successfully!", "plan_id": planID})
}

func (ctl *WorkoutPlanController) List(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	plans, err := ctl.svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load workout plans", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}
