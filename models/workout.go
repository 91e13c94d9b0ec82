package models

import (
	"time"

	"gorm.io/gorm"
)

// Workout is one logged training session. FinishedAt nil means still in
// progress; goal calculators treat only finished workouts as completed.
type Workout struct {
	gorm.Model
	UserID     uint  `gorm:"index;not null"`
	PlanID     *uint `gorm:"index"`
	StartedAt  time.Time
	FinishedAt *time.Time
	Sets       []WorkoutSet
}

// DurationMinutes is finish − start in minutes, 0 while unfinished.
func (w *Workout) DurationMinutes() float64 {
	if w.FinishedAt == nil {
		return 0
	}
	return w.FinishedAt.Sub(w.StartedAt).Minutes()
}

type WorkoutSet struct {
	gorm.Model
	WorkoutID      uint  `gorm:"index;not null"`
	PlanExerciseID *uint `gorm:"index"`
	ExerciseID     uint  `gorm:"index;not null"`
	Weight         float64
	Reps           int
}
