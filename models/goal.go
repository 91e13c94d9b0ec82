package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal types. Each type maps to one calculator formula in services.
const (
	GoalTypeTotalWorkouts      = "total_workouts"
	GoalTypeCompletedWorkouts  = "completed_workouts"
	GoalTypeTargetWeight       = "target_weight"
	GoalTypeWeightLoss         = "weight_loss"
	GoalTypeWeightGain         = "weight_gain"
	GoalTypeTotalVolume        = "total_volume"
	GoalTypeWeeklyVolume       = "weekly_volume"
	GoalTypeTotalTrainingTime  = "total_training_time"
	GoalTypeWeeklyTrainingTime = "weekly_training_time"
	GoalTypeTrainingFrequency  = "training_frequency"
	GoalTypeExerciseMaxWeight  = "exercise_max_weight"
	GoalTypeExerciseMaxReps    = "exercise_max_reps"
	GoalTypeExerciseTotalReps  = "exercise_total_reps"
	GoalTypeExerciseVolume     = "exercise_volume"
)

// Status transitions are one-directional: active → completed | failed | cancelled.
// Once non-active the engine never touches the row again.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusFailed    = "failed"
	GoalStatusCancelled = "cancelled"
)

type Goal struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Type        string `gorm:"size:32;index;not null"`
	Status      string `gorm:"size:16;index;default:active"`

	TargetValue        float64
	CurrentValue       *float64 // nil until first computed
	ProgressPercentage int      // 0..100

	StartDate  time.Time
	EndDate    *time.Time
	ExerciseID *uint `gorm:"index"` // required for exercise-scoped types

	LastNotifiedMilestone  *int
	LastDeadlineReminderAt *time.Time
	CompletedAt            *time.Time
	AchievedValue          *float64
}

func (g *Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}

// ExerciseScoped reports whether the type requires a linked exercise.
func ExerciseScoped(goalType string) bool {
	switch goalType {
	case GoalTypeExerciseMaxWeight, GoalTypeExerciseMaxReps,
		GoalTypeExerciseTotalReps, GoalTypeExerciseVolume:
		return true
	}
	return false
}

// GoalTypes lists every supported type, in calculator dispatch order.
var GoalTypes = []string{
	GoalTypeTotalWorkouts,
	GoalTypeCompletedWorkouts,
	GoalTypeTargetWeight,
	GoalTypeWeightLoss,
	GoalTypeWeightGain,
	GoalTypeTotalVolume,
	GoalTypeWeeklyVolume,
	GoalTypeTotalTrainingTime,
	GoalTypeWeeklyTrainingTime,
	GoalTypeTrainingFrequency,
	GoalTypeExerciseMaxWeight,
	GoalTypeExerciseMaxReps,
	GoalTypeExerciseTotalReps,
	GoalTypeExerciseVolume,
}

func ValidGoalType(t string) bool {
	for _, g := range GoalTypes {
		if g == t {
			return true
		}
	}
	return false
}
