package config

import (
	"fmt"
	"log"
	"os"

	"github.com/sandro1422/workout-api/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB loads the environment, connects to postgres and migrates the
// schema. Startup failures are fatal.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Migrate creates or updates the schema for every model. Tests run it
// against their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.WorkoutPlan{},
		&models.DailySession{},
		&models.SessionExercise{},
		&models.WeightEntry{},
		&models.Goal{},
	)
}
