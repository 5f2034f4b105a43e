package services

import (
	"github.com/sandro1422/workout-api/models"

	"gorm.io/gorm"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

type ExerciseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Guide       string `json:"guide"`
}

// List returns the full catalog in storage order.
func (s *ExerciseService) List() ([]ExerciseResponse, error) {
	var exercises []models.Exercise
	if err := s.db.Find(&exercises).Error; err != nil {
		return nil, err
	}

	out := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, ExerciseResponse{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Guide:       e.Guide,
		})
	}
	return out, nil
}

// Seed inserts catalog entries that are not present yet, keyed by name.
// The catalog is global and has no creation endpoint, so this runs once at
// startup.
func (s *ExerciseService) Seed(catalog []models.Exercise) error {
	for _, e := range catalog {
		entry := e
		if err := s.db.Where("name = ?", entry.Name).FirstOrCreate(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// DefaultExerciseCatalog is the catalog shipped with a fresh database.
var DefaultExerciseCatalog = []models.Exercise{
	{Name: "Squat", Description: "Barbell back squat", Guide: "Bar on upper back, sit down between the hips, drive up through the whole foot."},
	{Name: "Bench Press", Description: "Barbell bench press", Guide: "Shoulder blades pinned, bar to mid chest, press back over the shoulders."},
	{Name: "Deadlift", Description: "Conventional barbell deadlift", Guide: "Bar over mid-foot, flat back, push the floor away and stand tall."},
	{Name: "Overhead Press", Description: "Standing barbell press", Guide: "Bar at the collarbone, brace, press overhead until elbows lock out."},
	{Name: "Pull Up", Description: "Bodyweight pull up", Guide: "Dead hang, pull the chin over the bar, lower under control."},
	{Name: "Running", Description: "Steady-state run", Guide: "Keep a conversational pace; track distance or duration."},
	{Name: "Plank", Description: "Front plank hold", Guide: "Forearms down, body in one line, brace the trunk for the full duration."},
	{Name: "Rowing", Description: "Rowing machine", Guide: "Legs, then back, then arms on the drive; reverse on the recovery."},
}
