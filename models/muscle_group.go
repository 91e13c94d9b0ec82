package models

import "gorm.io/gorm"

type MuscleGroup struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}
