package models

import (
    "gorm.io/gorm"
)

// Goal is a user target (e.g. "weight", "run_distance"). IsAchieved is a
// stored flag only; nothing in the system flips it automatically.
type Goal struct {
    gorm.Model
    GoalType    string  `gorm:"not null"`
    TargetValue float64 `gorm:"not null"`
    IsAchieved  bool    `gorm:"not null;default:false"`
    UserID      uint    `gorm:"index;not null"`
}
