package models

import (
    "gorm.io/gorm"
)

// Exercise is a shared catalog entry, not owned by any user.
type Exercise struct {
    gorm.Model
    Name        string `gorm:"uniqueIndex;not null"`
    Description string `gorm:"not null"`
    Guide       string `gorm:"not null"`
}
