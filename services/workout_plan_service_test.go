package services

import (
	"testing"

	"github.com/sandro1422/workout-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCreatePlanWithEmptySessions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(db)
	user := createTestUser(t, db, "alice")

	planID, err := svc.Create(user.ID, WorkoutPlanRequest{
		Title:         "Maintenance",
		Goal:          "stay in shape",
		Frequency:     "2x per week",
		DurationMin:   30,
		DailySessions: []DailySessionRequest{},
	})
	require.NoError(t, err)
	require.NotZero(t, planID)

	plans, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, planID, plans[0].ID)
	assert.Empty(t, plans[0].DailySessions)
}

func TestCreatePlanRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(db)
	user := createTestUser(t, db, "alice")
	exercises := seedTestExercises(t, db)

	req := WorkoutPlanRequest{
		Title:       "Strength Block",
		Goal:        "build strength",
		Frequency:   "2x per week",
		DurationMin: 60,
		DailySessions: []DailySessionRequest{
			{
				DayOfWeek: "Monday",
				SessionExercises: []SessionExerciseRequest{
					{Sets: 5, Reps: intPtr(5), ExerciseID: exercises[0].ID},
					{Sets: 3, DurationMin: intPtr(2), ExerciseID: exercises[2].ID},
				},
			},
			{
				DayOfWeek: "Thursday",
				SessionExercises: []SessionExerciseRequest{
					{Sets: 1, DistanceKm: floatPtr(5), ExerciseID: exercises[1].ID},
					{Sets: 4, Reps: intPtr(8), ExerciseID: exercises[0].ID},
				},
			},
		},
	}

	planID, err := svc.Create(user.ID, req)
	require.NoError(t, err)

	plans, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	plan := plans[0]
	assert.Equal(t, planID, plan.ID)
	assert.Equal(t, "Strength Block", plan.Title)
	assert.Equal(t, "build strength", plan.Goal)
	assert.Equal(t, "2x per week", plan.Frequency)
	assert.Equal(t, 60, plan.DurationMin)
	assert.False(t, plan.DateCreated.IsZero())
	require.Len(t, plan.DailySessions, 2)

	monday := plan.DailySessions[0]
	assert.Equal(t, "Monday", monday.DayOfWeek)
	require.Len(t, monday.Exercises, 2)
	assert.Equal(t, 5, monday.Exercises[0].Sets)
	require.NotNil(t, monday.Exercises[0].Reps)
	assert.Equal(t, 5, *monday.Exercises[0].Reps)
	assert.Nil(t, monday.Exercises[0].DurationMin)
	assert.Nil(t, monday.Exercises[0].DistanceKm)
	assert.Equal(t, exercises[0].Name, monday.Exercises[0].ExerciseName)
	assert.Equal(t, exercises[0].Description, monday.Exercises[0].ExerciseDescription)
	assert.Equal(t, exercises[0].Guide, monday.Exercises[0].ExerciseGuide)

	require.NotNil(t, monday.Exercises[1].DurationMin)
	assert.Equal(t, 2, *monday.Exercises[1].DurationMin)
	assert.Equal(t, exercises[2].Name, monday.Exercises[1].ExerciseName)

	thursday := plan.DailySessions[1]
	assert.Equal(t, "Thursday", thursday.DayOfWeek)
	require.Len(t, thursday.Exercises, 2)
	require.NotNil(t, thursday.Exercises[0].DistanceKm)
	assert.Equal(t, 5.0, *thursday.Exercises[0].DistanceKm)
	assert.Equal(t, exercises[1].Name, thursday.Exercises[0].ExerciseName)
}

func TestCreatePlanUnknownExerciseRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(db)
	user := createTestUser(t, db, "alice")
	exercises := seedTestExercises(t, db)

	_, err := svc.Create(user.ID, WorkoutPlanRequest{
		Title:       "Broken",
		Goal:        "should not persist",
		Frequency:   "daily",
		DurationMin: 45,
		DailySessions: []DailySessionRequest{
			{
				DayOfWeek: "Monday",
				SessionExercises: []SessionExerciseRequest{
					{Sets: 3, Reps: intPtr(10), ExerciseID: exercises[0].ID},
				},
			},
			{
				DayOfWeek: "Tuesday",
				SessionExercises: []SessionExerciseRequest{
					{Sets: 3, Reps: intPtr(10), ExerciseID: 99999},
				},
			},
		},
	})
	require.ErrorIs(t, err, ErrExerciseNotFound)

	// Nothing from the failed request may be visible, including the rows
	// written before the bad reference.
	plans, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, plans)

	var planCount, sessionCount, exerciseCount int64
	require.NoError(t, db.Model(&models.WorkoutPlan{}).Count(&planCount).Error)
	require.NoError(t, db.Model(&models.DailySession{}).Count(&sessionCount).Error)
	require.NoError(t, db.Model(&models.SessionExercise{}).Count(&exerciseCount).Error)
	assert.Zero(t, planCount)
	assert.Zero(t, sessionCount)
	assert.Zero(t, exerciseCount)
}

func TestListFiltersByOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := svc.Create(alice.ID, WorkoutPlanRequest{
		Title: "Alice's plan", Goal: "goal", Frequency: "weekly", DurationMin: 30,
		DailySessions: []DailySessionRequest{},
	})
	require.NoError(t, err)

	bobPlans, err := svc.List(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobPlans)

	alicePlans, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, alicePlans, 1)
	assert.Equal(t, "Alice's plan", alicePlans[0].Title)
}
