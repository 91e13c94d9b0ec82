package services

import (
	"fmt"
	"math"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"gorm.io/gorm"
)

// Number of trailing days, and the divisor in weeks, for the training
// frequency formula.
const (
	frequencyWindowDays = 35
	frequencyWeeks      = 5
)

// CalculateCurrentValue is the pure dispatch over goal types: one aggregation
// formula per type, computed over the user's workout/metric history within
// [start_date, end_date ?? now].
func (s *GoalService) CalculateCurrentValue(goal *models.Goal) (float64, error) {
	start := goal.StartDate
	end := time.Now()
	if goal.EndDate != nil {
		end = *goal.EndDate
	}

	switch goal.Type {
	case models.GoalTypeTotalWorkouts:
		return s.countWorkouts(goal.UserID, start, end, false)

	case models.GoalTypeCompletedWorkouts:
		return s.countWorkouts(goal.UserID, start, end, true)

	case models.GoalTypeTargetWeight:
		w, _ := s.latestWeight(goal.UserID)
		return w, nil

	case models.GoalTypeWeightLoss:
		startW, okStart := s.weightAtWindowStart(goal.UserID, start)
		nowW, okNow := s.latestWeight(goal.UserID)
		if !okStart || !okNow {
			return 0, nil
		}
		return math.Max(0, startW-nowW), nil

	case models.GoalTypeWeightGain:
		startW, okStart := s.weightAtWindowStart(goal.UserID, start)
		nowW, okNow := s.latestWeight(goal.UserID)
		if !okStart || !okNow {
			return 0, nil
		}
		return math.Max(0, nowW-startW), nil

	case models.GoalTypeTotalVolume:
		return s.setVolume(goal.UserID, nil, start, end)

	case models.GoalTypeWeeklyVolume:
		total, err := s.setVolume(goal.UserID, nil, start, end)
		if err != nil {
			return 0, err
		}
		return total / windowWeeks(start, end), nil

	case models.GoalTypeTotalTrainingTime:
		return s.trainingMinutes(goal.UserID, start, end)

	case models.GoalTypeWeeklyTrainingTime:
		total, err := s.trainingMinutes(goal.UserID, start, end)
		if err != nil {
			return 0, err
		}
		return total / windowWeeks(start, end), nil

	case models.GoalTypeTrainingFrequency:
		now := time.Now()
		count, err := s.countWorkouts(goal.UserID, now.AddDate(0, 0, -frequencyWindowDays), now, true)
		if err != nil {
			return 0, err
		}
		return count / frequencyWeeks, nil

	case models.GoalTypeExerciseMaxWeight:
		if goal.ExerciseID == nil {
			return 0, nil
		}
		return s.maxSetValue(goal.UserID, *goal.ExerciseID, "weight")

	case models.GoalTypeExerciseMaxReps:
		if goal.ExerciseID == nil {
			return 0, nil
		}
		return s.maxSetValue(goal.UserID, *goal.ExerciseID, "reps")

	case models.GoalTypeExerciseTotalReps:
		if goal.ExerciseID == nil {
			return 0, nil
		}
		return s.sumSetReps(goal.UserID, *goal.ExerciseID, start, end)

	case models.GoalTypeExerciseVolume:
		if goal.ExerciseID == nil {
			return 0, nil
		}
		return s.setVolume(goal.UserID, goal.ExerciseID, start, end)
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownGoalType, goal.Type)
}

// countWorkouts counts workouts started in the window, or, for completed=true,
// workouts with a finish time in the window.
func (s *GoalService) countWorkouts(userID uint, start, end time.Time, completed bool) (float64, error) {
	q := s.db.Model(&models.Workout{}).Where("user_id = ?", userID)
	if completed {
		q = q.Where("finished_at IS NOT NULL AND finished_at >= ? AND finished_at <= ?", start, end)
	} else {
		q = q.Where("started_at >= ? AND started_at <= ?", start, end)
	}
	var count int64
	err := q.Count(&count).Error
	return float64(count), err
}

// latestWeight is the most recent recorded body weight, ok=false when the
// user has no weight history.
func (s *GoalService) latestWeight(userID uint) (float64, bool) {
	var m models.Metric
	err := s.db.Where("user_id = ? AND weight > 0", userID).
		Order("date DESC").First(&m).Error
	if err != nil {
		return 0, false
	}
	return m.Weight, true
}

// weightAtWindowStart is the last sample on or before the window start,
// falling back to the first sample after it.
func (s *GoalService) weightAtWindowStart(userID uint, start time.Time) (float64, bool) {
	var m models.Metric
	err := s.db.Where("user_id = ? AND weight > 0 AND date <= ?", userID, start).
		Order("date DESC").First(&m).Error
	if err == nil {
		return m.Weight, true
	}
	err = s.db.Where("user_id = ? AND weight > 0 AND date > ?", userID, start).
		Order("date ASC").First(&m).Error
	if err != nil {
		return 0, false
	}
	return m.Weight, true
}

// setVolume sums weight × reps over sets of completed workouts started in the
// window, optionally restricted to one exercise.
func (s *GoalService) setVolume(userID uint, exerciseID *uint, start, end time.Time) (float64, error) {
	q := s.completedSetQuery(userID, start, end)
	if exerciseID != nil {
		q = q.Where("workout_sets.exercise_id = ?", *exerciseID)
	}
	var volume float64
	err := q.Select("COALESCE(SUM(workout_sets.weight * workout_sets.reps), 0)").
		Scan(&volume).Error
	return volume, err
}

// sumSetReps sums reps for one exercise over completed workouts in the window.
func (s *GoalService) sumSetReps(userID, exerciseID uint, start, end time.Time) (float64, error) {
	var reps float64
	err := s.completedSetQuery(userID, start, end).
		Where("workout_sets.exercise_id = ?", exerciseID).
		Select("COALESCE(SUM(workout_sets.reps), 0)").
		Scan(&reps).Error
	return reps, err
}

func (s *GoalService) completedSetQuery(userID uint, start, end time.Time) *gorm.DB {
	return s.db.Model(&models.WorkoutSet{}).
		Joins("JOIN workouts ON workouts.id = workout_sets.workout_id").
		Where("workouts.user_id = ? AND workouts.deleted_at IS NULL", userID).
		Where("workouts.finished_at IS NOT NULL").
		Where("workouts.started_at >= ? AND workouts.started_at <= ?", start, end)
}

// trainingMinutes sums finish − start over completed workouts started in the
// window. Durations are computed in Go to stay portable across dialects.
func (s *GoalService) trainingMinutes(userID uint, start, end time.Time) (float64, error) {
	var workouts []models.Workout
	err := s.db.Where("user_id = ? AND finished_at IS NOT NULL", userID).
		Where("started_at >= ? AND started_at <= ?", start, end).
		Find(&workouts).Error
	if err != nil {
		return 0, err
	}
	var minutes float64
	for i := range workouts {
		minutes += workouts[i].DurationMinutes()
	}
	return minutes, nil
}

// maxSetValue is the all-time max single-set weight or reps for one exercise.
// column is a compile-time constant, never user input.
func (s *GoalService) maxSetValue(userID, exerciseID uint, column string) (float64, error) {
	var max float64
	err := s.db.Model(&models.WorkoutSet{}).
		Joins("JOIN workouts ON workouts.id = workout_sets.workout_id").
		Where("workouts.user_id = ? AND workouts.deleted_at IS NULL", userID).
		Where("workout_sets.exercise_id = ?", exerciseID).
		Select("COALESCE(MAX(workout_sets." + column + "), 0)").
		Scan(&max).Error
	return max, err
}

// windowWeeks is ceil(window days / 7), never below 1, so weekly averages
// cannot divide by zero.
func windowWeeks(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / 24
	if days < 1 {
		days = 1
	}
	weeks := math.Ceil(days / 7)
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}
