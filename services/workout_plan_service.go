package services

import (
	"errors"
	"time"

	"github.com/sandro1422/workout-api/models"

	"gorm.io/gorm"
)

type WorkoutPlanService struct {
	db *gorm.DB
}

func NewWorkoutPlanService(db *gorm.DB) *WorkoutPlanService {
	return &WorkoutPlanService{db: db}
}

type SessionExerciseRequest struct {
	Sets        int      `json:"sets" binding:"required,gt=0"`
	Reps        *int     `json:"reps"`
	DurationMin *int     `json:"duration_min"`
	DistanceKm  *float64 `json:"distance_km"`
	ExerciseID  uint     `json:"exercise_id" binding:"required"`
}

type DailySessionRequest struct {
	DayOfWeek        string                   `json:"day_of_week" binding:"required"`
	SessionExercises []SessionExerciseRequest `json:"session_exercises" binding:"required,dive"`
}

// WorkoutPlanRequest is the full payload for plan creation. The nested
// lists must be present but may be empty.
type WorkoutPlanRequest struct {
	Title         string                `json:"title" binding:"required"`
	Goal          string                `json:"goal" binding:"required"`
	Frequency     string                `json:"frequency" binding:"required"`
	DurationMin   int                   `json:"duration_min" binding:"required,gt=0"`
	DailySessions []DailySessionRequest `json:"daily_sessions" binding:"required,dive"`
}

// Create writes the whole plan tree as one transaction: the plan row first,
// then per session its row and its exercise rows. Any failure, including a
// session exercise referencing an unknown exercise id, rolls back every row
// written for this request.
func (s *WorkoutPlanService) Create(userID uint, req WorkoutPlanRequest) (uint, error) {
	var planID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		plan := models.WorkoutPlan{
			Title:       req.Title,
			Goal:        req.Goal,
			Frequency:   req.Frequency,
			DurationMin: req.DurationMin,
			UserID:      userID,
		}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		for _, sessionReq := range req.DailySessions {
			session := models.DailySession{
				DayOfWeek:     sessionReq.DayOfWeek,
				WorkoutPlanID: plan.ID,
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}

			for _, exerciseReq := range sessionReq.SessionExercises {
				// Loading the exercise enforces the reference even on
				// stores that don't check the FK themselves.
				var exercise models.Exercise
				if err := tx.First(&exercise, exerciseReq.ExerciseID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrExerciseNotFound
					}
					return err
				}

				sessionExercise := models.SessionExercise{
					Sets:           exerciseReq.Sets,
					Reps:           exerciseReq.Reps,
					DurationMin:    exerciseReq.DurationMin,
					DistanceKm:     exerciseReq.DistanceKm,
					DailySessionID: session.ID,
					ExerciseID:     exercise.ID,
				}
				if err := tx.Create(&sessionExercise).Error; err != nil {
					return err
				}
			}
		}

		planID = plan.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return planID, nil
}

type SessionExerciseResponse struct {
	Sets                int      `json:"sets"`
	Reps                *int     `json:"reps"`
	DurationMin         *int     `json:"duration_min"`
	DistanceKm          *float64 `json:"distance_km"`
	ExerciseName        string   `json:"exercise_name"`
	ExerciseDescription string   `json:"exercise_description"`
	ExerciseGuide       string   `json:"exercise_guide"`
}

type DailySessionResponse struct {
	ID        uint                      `json:"id"`
	DayOfWeek string                    `json:"day_of_week"`
	Exercises []SessionExerciseResponse `json:"exercises"`
}

type WorkoutPlanResponse struct {
	ID            uint                   `json:"id"`
	Title         string                 `json:"title"`
	Goal          string                 `json:"goal"`
	Frequency     string                 `json:"frequency"`
	DurationMin   int                    `json:"duration_min"`
	DateCreated   time.Time              `json:"date_created"`
	DailySessions []DailySessionResponse `json:"daily_sessions"`
}

// List returns the caller's plans with their full trees, each session
// exercise carrying the referenced catalog entry's name, description and
// guide so clients don't need a follow-up lookup.
func (s *WorkoutPlanService) List(userID uint) ([]WorkoutPlanResponse, error) {
	var plans []models.WorkoutPlan
	err := s.db.
		Preload("DailySessions.SessionExercises.Exercise").
		Where("user_id = ?", userID).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	out := make([]WorkoutPlanResponse, 0, len(plans))
	for _, plan := range plans {
		planResp := WorkoutPlanResponse{
			ID:            plan.ID,
			Title:         plan.Title,
			Goal:          plan.Goal,
			Frequency:     plan.Frequency,
			DurationMin:   plan.DurationMin,
			DateCreated:   plan.CreatedAt,
			DailySessions: make([]DailySessionResponse, 0, len(plan.DailySessions)),
		}

		for _, session := range plan.DailySessions {
			sessionResp := DailySessionResponse{
				ID:        session.ID,
				DayOfWeek: session.DayOfWeek,
				Exercises: make([]SessionExerciseResponse, 0, len(session.SessionExercises)),
			}

			for _, se := range session.SessionExercises {
				sessionResp.Exercises = append(sessionResp.Exercises, SessionExerciseResponse{
					Sets:                se.Sets,
					Reps:                se.Reps,
					DurationMin:         se.DurationMin,
					DistanceKm:          se.DistanceKm,
					ExerciseName:        se.Exercise.Name,
					ExerciseDescription: se.Exercise.Description,
					ExerciseGuide:       se.Exercise.Guide,
				})
			}

			planResp.DailySessions = append(planResp.DailySessions, sessionResp)
		}

		out = append(out, planResp)
	}
	return out, nil
}
