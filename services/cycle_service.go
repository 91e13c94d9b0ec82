package services

import (
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
)

type CycleService struct {
	db *gorm.DB
}

func NewCycleService(db *gorm.DB) *CycleService {
	return &CycleService{db: db}
}

type CycleInput struct {
	Name      string     `json:"name" binding:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Weeks     int        `json:"weeks"`
}

func (s *CycleService) Create(userID uint, input CycleInput) (*models.Cycle, error) {
	name, err := ResolveUniqueName(s.db, "cycles", input.Name, userID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	cycle := &models.Cycle{
		UserID:    userID,
		Name:      name,
		StartDate: start,
		EndDate:   input.EndDate,
		Weeks:     input.Weeks,
	}
	if err := s.db.Create(cycle).Error; err != nil {
		return nil, err
	}
	return cycle, nil
}

func (s *CycleService) List(userID uint, page, perPage int) ([]models.Cycle, int64, error) {
	q := s.db.Model(&models.Cycle{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cycles []models.Cycle
	err := q.Order("start_date DESC").
		Scopes(utils.Paginate(page, perPage)).
		Find(&cycles).Error
	return cycles, total, err
}

func (s *CycleService) Get(userID, id uint) (*models.Cycle, error) {
	var cycle models.Cycle
	err := s.db.
		Preload("Plans", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Plans.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Plans.Exercises.Exercise").
		Where("id = ? AND user_id = ?", id, userID).
		First(&cycle).Error
	if err != nil {
		return nil, ErrCycleNotFound
	}
	return &cycle, nil
}

func (s *CycleService) Update(userID, id uint, input CycleInput) (*models.Cycle, error) {
	var cycle models.Cycle
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&cycle).Error; err != nil {
		return nil, ErrCycleNotFound
	}
	if input.Name != "" && input.Name != cycle.Name {
		name, err := ResolveUniqueName(s.db, "cycles", input.Name, userID)
		if err != nil {
			return nil, err
		}
		cycle.Name = name
	}
	if input.StartDate != nil {
		cycle.StartDate = *input.StartDate
	}
	cycle.EndDate = input.EndDate
	if input.Weeks > 0 {
		cycle.Weeks = input.Weeks
	}
	if err := s.db.Save(&cycle).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (s *CycleService) Delete(userID, id uint) error {
	var cycle models.Cycle
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&cycle).Error; err != nil {
		return ErrCycleNotFound
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var planIDs []uint
		if err := tx.Model(&models.Plan{}).Where("cycle_id = ?", id).Pluck("id", &planIDs).Error; err != nil {
			return err
		}
		if len(planIDs) > 0 {
			if err := tx.Where("plan_id IN ?", planIDs).Delete(&models.PlanExercise{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Plan{}, planIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&cycle).Error
	})
}
