package models

import "gorm.io/gorm"

// Exercise is owned by exactly one user. Names are kept unique per user by the
// resolver in services, not by a DB constraint.
type Exercise struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	Name          string `gorm:"not null"`
	Description   string `gorm:"type:text"`
	MuscleGroupID *uint  `gorm:"index"`
	MuscleGroup   *MuscleGroup
	IsActive      bool `gorm:"default:true"`
}
