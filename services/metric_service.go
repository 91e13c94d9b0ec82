package services

import (
	"errors"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
)

var ErrMetricNotFound = errors.New("metric not found")

// MetricService records body-weight samples, one per user per day.
type MetricService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewMetricService(db *gorm.DB, goals *GoalService) *MetricService {
	return &MetricService{db: db, goals: goals}
}

type MetricInput struct {
	Date   *time.Time `json:"date"`
	Weight float64    `json:"weight" binding:"required"`
	Note   string     `json:"note"`
}

// Upsert records the sample for the given day, replacing an existing one,
// then refreshes the user's active goals since weight goals depend on it.
func (s *MetricService) Upsert(userID uint, input MetricInput) (*models.Metric, error) {
	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	metric := models.Metric{
		UserID: userID,
		Date:   day,
		Weight: input.Weight,
		Note:   input.Note,
	}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(metric).
		FirstOrCreate(&metric).Error
	if err != nil {
		return nil, err
	}
	if s.goals != nil {
		s.goals.UpdateAllForUser(userID)
	}
	return &metric, nil
}

func (s *MetricService) List(userID uint, page, perPage int) ([]models.Metric, int64, error) {
	q := s.db.Model(&models.Metric{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var metrics []models.Metric
	err := q.Order("date DESC").
		Scopes(utils.Paginate(page, perPage)).
		Find(&metrics).Error
	return metrics, total, err
}

func (s *MetricService) Delete(userID, id uint) error {
	var metric models.Metric
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&metric).Error; err != nil {
		return ErrMetricNotFound
	}
	return s.db.Delete(&metric).Error
}
