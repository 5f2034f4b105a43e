package services

import (
	"github.com/sandro1422/workout-api/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Set(userID uint, goalType string, targetValue float64) error {
	goal := models.Goal{
		GoalType:    goalType,
		TargetValue: targetValue,
		IsAchieved:  false,
		UserID:      userID,
	}
	return s.db.Create(&goal).Error
}

type GoalResponse struct {
	ID          uint    `json:"id"`
	GoalType    string  `json:"goal_type"`
	TargetValue float64 `json:"target_value"`
	IsAchieved  bool    `json:"is_achieved"`
}

func (s *GoalService) List(userID uint) ([]GoalResponse, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, err
	}

	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalResponse{
			ID:          g.ID,
			GoalType:    g.GoalType,
			TargetValue: g.TargetValue,
			IsAchieved:  g.IsAchieved,
		})
	}
	return out, nil
}
