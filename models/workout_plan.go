package models

import (
    "gorm.io/gorm"
)

// WorkoutPlan is the root of a plan tree: plan → daily sessions → session
// exercises. The tree is written as one unit and never edited afterwards.
type WorkoutPlan struct {
    gorm.Model
    Title         string `gorm:"not null"`
    Goal          string `gorm:"not null"`
    Frequency     string `gorm:"not null"`
    DurationMin   int    `gorm:"not null"`
    UserID        uint   `gorm:"index;not null"`
    DailySessions []DailySession
}

// DailySession is one scheduled workout day within a plan.
type DailySession struct {
    gorm.Model
    DayOfWeek        string `gorm:"not null"`
    WorkoutPlanID    uint   `gorm:"index;not null"`
    SessionExercises []SessionExercise
}

// SessionExercise prescribes one exercise within a session. Sets is always
// set; reps, duration and distance are alternative ways to quantify the
// work, so each is optional.
type SessionExercise struct {
    gorm.Model
    Sets           int `gorm:"not null"`
    Reps           *int
    DurationMin    *int
    DistanceKm     *float64
    DailySessionID uint `gorm:"index;not null"`
    ExerciseID     uint `gorm:"index;not null"`
    Exercise       Exercise
}
