package controllers

import (
	"net/http"

	"github.com/sandro1422/workout-api/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{svc: svc}
}

type SetGoalInput struct {
	GoalType    string  `json:"goal_type" binding:"required"`
	TargetValue float64 `json:"target_value" binding:"required"`
}

func (ctl *GoalController) Set(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input SetGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to set goal", "error": err.Error()})
		return
	}

	if err := ctl.svc.Set(userID, input.GoalType, input.TargetValue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to set goal", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Goal set successfully!"})
}

func (ctl *GoalController) List(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goals, err := ctl.svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load goals", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}
