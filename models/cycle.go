package models

import (
	"time"

	"gorm.io/gorm"
)

// Cycle is a named training block of Weeks weeks holding ordered Plans.
type Cycle struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	StartDate time.Time
	EndDate   *time.Time
	Weeks     int
	Plans     []Plan
}
