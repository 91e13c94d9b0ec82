package models

import (
	"time"

	"gorm.io/gorm"
)

// Metric is one body-weight sample. Goal calculators read these as history;
// nothing in the goal or import engines ever rewrites them.
type Metric struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`
	Weight float64   // kg
	Note   string
}
