package controllers

import (
	"net/http"

	"github.com/sandro1422/workout-api/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	svc *services.WeightService
}

func NewWeightController(svc *services.WeightService) *WeightController {
	return &WeightController{svc: svc}
}

type AddWeightInput struct {
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
}

func (ctl *WeightController) Add(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input AddWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to add weight entry", "error": err.Error()})
		return
	}

	if err := ctl.svc.Add(userID, input.WeightKg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to add weight entry", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Weight entry added successfully!"})
}

func (ctl *WeightController) History(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	history, err := ctl.svc.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load weight history", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
