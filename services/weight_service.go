package services

import (
	"time"

	"github.com/sandro1422/workout-api/models"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

func (s *WeightService) Add(userID uint, weightKg float64) error {
	entry := models.WeightEntry{
		WeightKg:     weightKg,
		DateRecorded: time.Now(),
		UserID:       userID,
	}
	return s.db.Create(&entry).Error
}

type WeightEntryResponse struct {
	ID           uint      `json:"id"`
	WeightKg     float64   `json:"weight_kg"`
	DateRecorded time.Time `json:"date_recorded"`
}

// History returns the caller's entries ascending by recording time,
// whatever order they were inserted in.
func (s *WeightService) History(userID uint) ([]WeightEntryResponse, error) {
	var entries []models.WeightEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date_recorded asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	out := make([]WeightEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WeightEntryResponse{
			ID:           e.ID,
			WeightKg:     e.WeightKg,
			DateRecorded: e.DateRecorded,
		})
	}
	return out, nil
}
