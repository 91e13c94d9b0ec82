package services

import (
	"errors"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

type ExerciseInput struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	MuscleGroupID *uint  `json:"muscle_group_id"`
}

func (s *ExerciseService) Create(userID uint, input ExerciseInput) (*models.Exercise, error) {
	name, err := ResolveUniqueName(s.db, "exercises", input.Name, userID)
	if err != nil {
		return nil, err
	}
	exercise := &models.Exercise{
		UserID:        userID,
		Name:          name,
		Description:   input.Description,
		MuscleGroupID: input.MuscleGroupID,
		IsActive:      true,
	}
	if err := s.db.Create(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *ExerciseService) List(userID uint, muscleGroupID *uint, page, perPage int) ([]models.Exercise, int64, error) {
	q := s.db.Model(&models.Exercise{}).Where("user_id = ? AND is_active = ?", userID, true)
	if muscleGroupID != nil {
		q = q.Where("muscle_group_id = ?", *muscleGroupID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var exercises []models.Exercise
	err := q.Preload("MuscleGroup").
		Order("name").
		Scopes(utils.Paginate(page, perPage)).
		Find(&exercises).Error
	return exercises, total, err
}

func (s *ExerciseService) Get(userID, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := s.db.Preload("MuscleGroup").
		Where("id = ? AND user_id = ?", id, userID).
		First(&exercise).Error
	if err != nil {
		return nil, ErrExerciseNotFound
	}
	return &exercise, nil
}

func (s *ExerciseService) Update(userID, id uint, input ExerciseInput) (*models.Exercise, error) {
	exercise, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" && input.Name != exercise.Name {
		name, err := ResolveUniqueName(s.db, "exercises", input.Name, userID)
		if err != nil {
			return nil, err
		}
		exercise.Name = name
	}
	if input.Description != "" {
		exercise.Description = input.Description
	}
	exercise.MuscleGroupID = input.MuscleGroupID
	if err := s.db.Save(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

// Deactivate hides an exercise from lists while history keeps pointing at it.
func (s *ExerciseService) Deactivate(userID, id uint) error {
	exercise, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	exercise.IsActive = false
	return s.db.Save(exercise).Error
}

func (s *ExerciseService) MuscleGroups() ([]models.MuscleGroup, error) {
	var groups []models.MuscleGroup
	err := s.db.Order("name").Find(&groups).Error
	return groups, err
}
