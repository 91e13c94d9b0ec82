package services

import (
	"errors"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrWorkoutFinished = errors.New("workout is already finished")
)

// WorkoutService logs training sessions. Workouts and sets are the read-only
// history the goal calculators aggregate over.
type WorkoutService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewWorkoutService(db *gorm.DB, goals *GoalService) *WorkoutService {
	return &WorkoutService{db: db, goals: goals}
}

func (s *WorkoutService) Start(userID uint, planID *uint) (*models.Workout, error) {
	if planID != nil {
		var plan models.Plan
		if err := s.db.Where("id = ? AND user_id = ?", *planID, userID).First(&plan).Error; err != nil {
			return nil, ErrPlanNotFound
		}
	}
	workout := &models.Workout{
		UserID:    userID,
		PlanID:    planID,
		StartedAt: time.Now(),
	}
	if err := s.db.Create(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

type SetInput struct {
	PlanExerciseID *uint   `json:"plan_exercise_id"`
	ExerciseID     uint    `json:"exercise_id" binding:"required"`
	Weight         float64 `json:"weight"`
	Reps           int     `json:"reps" binding:"required"`
}

func (s *WorkoutService) AddSet(userID, workoutID uint, input SetInput) (*models.WorkoutSet, error) {
	workout, err := s.Get(userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.FinishedAt != nil {
		return nil, ErrWorkoutFinished
	}
	set := &models.WorkoutSet{
		WorkoutID:      workout.ID,
		PlanExerciseID: input.PlanExerciseID,
		ExerciseID:     input.ExerciseID,
		Weight:         input.Weight,
		Reps:           input.Reps,
	}
	if err := s.db.Create(set).Error; err != nil {
		return nil, err
	}
	return set, nil
}

// Finish closes the workout and triggers a progress pass over the user's
// active goals, since a finished session can move any of them.
func (s *WorkoutService) Finish(userID, workoutID uint) (*models.Workout, error) {
	workout, err := s.Get(userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.FinishedAt != nil {
		return nil, ErrWorkoutFinished
	}
	now := time.Now()
	workout.FinishedAt = &now
	if err := s.db.Save(workout).Error; err != nil {
		return nil, err
	}
	if s.goals != nil {
		s.goals.UpdateAllForUser(userID)
	}
	return workout, nil
}

func (s *WorkoutService) Get(userID, id uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.Preload("Sets").
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if err != nil {
		return nil, ErrWorkoutNotFound
	}
	return &workout, nil
}

func (s *WorkoutService) List(userID uint, page, perPage int) ([]models.Workout, int64, error) {
	q := s.db.Model(&models.Workout{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var workouts []models.Workout
	err := q.Preload("Sets").
		Order("started_at DESC").
		Scopes(utils.Paginate(page, perPage)).
		Find(&workouts).Error
	return workouts, total, err
}

func (s *WorkoutService) Delete(userID, id uint) error {
	workout, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", id).Delete(&models.WorkoutSet{}).Error; err != nil {
			return err
		}
		return tx.Delete(workout).Error
	})
}
