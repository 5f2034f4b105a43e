package models

import (
    "time"

    "gorm.io/gorm"
)

type WeightEntry struct {
    gorm.Model
    WeightKg     float64   `gorm:"not null"`
    DateRecorded time.Time `gorm:"index;not null"`
    UserID       uint      `gorm:"index;not null"`
}
