package models

import "gorm.io/gorm"

// Plan is a workout template inside a Cycle (CycleID nil = standalone plan).
type Plan struct {
	gorm.Model
	UserID    uint  `gorm:"index;not null"`
	CycleID   *uint `gorm:"index"`
	Name      string `gorm:"not null"`
	Order     int    `gorm:"column:sort_order"`
	IsActive  bool   `gorm:"default:true"`
	Exercises []PlanExercise
}

// PlanExercise links a Plan to one Exercise at a position in the plan.
type PlanExercise struct {
	gorm.Model
	PlanID     uint `gorm:"index;not null"`
	ExerciseID uint `gorm:"index;not null"`
	Exercise   Exercise
	Order      int `gorm:"column:sort_order"`
}
