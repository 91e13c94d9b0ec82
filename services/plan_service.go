package services

import (
	"errors"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

type PlanInput struct {
	Name    string `json:"name" binding:"required"`
	CycleID *uint  `json:"cycle_id"`
	Order   int    `json:"order"`
}

func (s *PlanService) Create(userID uint, input PlanInput) (*models.Plan, error) {
	if input.CycleID != nil {
		var cycle models.Cycle
		if err := s.db.Where("id = ? AND user_id = ?", *input.CycleID, userID).First(&cycle).Error; err != nil {
			return nil, ErrCycleNotFound
		}
	}
	name, err := ResolveUniqueName(s.db, "plans", input.Name, userID)
	if err != nil {
		return nil, err
	}
	plan := &models.Plan{
		UserID:   userID,
		CycleID:  input.CycleID,
		Name:     name,
		Order:    input.Order,
		IsActive: true,
	}
	if err := s.db.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) List(userID uint, cycleID *uint, page, perPage int) ([]models.Plan, int64, error) {
	q := s.db.Model(&models.Plan{}).Where("user_id = ?", userID)
	if cycleID != nil {
		q = q.Where("cycle_id = ?", *cycleID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var plans []models.Plan
	err := q.Order("sort_order").
		Scopes(utils.Paginate(page, perPage)).
		Find(&plans).Error
	return plans, total, err
}

func (s *PlanService) Get(userID, id uint) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Exercises.Exercise").
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return &plan, nil
}

// SetExercises replaces the plan's exercise list with the given ordered ids.
func (s *PlanService) SetExercises(userID, planID uint, exerciseIDs []uint) (*models.Plan, error) {
	plan, err := s.Get(userID, planID)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&models.PlanExercise{}).Error; err != nil {
			return err
		}
		for i, exID := range exerciseIDs {
			var ex models.Exercise
			if err := tx.Where("id = ? AND user_id = ?", exID, userID).First(&ex).Error; err != nil {
				return ErrExerciseNotFound
			}
			link := models.PlanExercise{PlanID: planID, ExerciseID: exID, Order: i + 1}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, plan.ID)
}

func (s *PlanService) Delete(userID, id uint) error {
	plan, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&models.PlanExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(plan).Error
	})
}
