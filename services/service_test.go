package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandro1422/workout-api/config"
	"github.com/sandro1422/workout-api/models"
	"github.com/sandro1422/workout-api/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database migrated with the full
// schema. The named DSN keeps the database alive across pooled connections
// while isolating tests from each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword("secret")
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedTestExercises(t *testing.T, db *gorm.DB) []models.Exercise {
	t.Helper()

	exercises := []models.Exercise{
		{Name: "Squat", Description: "Barbell back squat", Guide: "Sit down, stand up."},
		{Name: "Running", Description: "Steady-state run", Guide: "Keep a conversational pace."},
		{Name: "Plank", Description: "Front plank hold", Guide: "Hold a straight line."},
	}
	for i := range exercises {
		require.NoError(t, db.Create(&exercises[i]).Error)
	}
	return exercises
}

const testTokenTTL = time.Hour

func testIssuer() *utils.TokenIssuer {
	return utils.NewTokenIssuer("test-secret", testTokenTTL)
}
