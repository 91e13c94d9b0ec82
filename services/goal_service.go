package services

import (
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrUnknownGoalType   = errors.New("unknown goal type")
	ErrExerciseRequired  = errors.New("this goal type requires an exercise")
	ErrGoalNotActive     = errors.New("goal is no longer active")
	ErrTargetNotPositive = errors.New("target value must be positive")
)

// GoalService owns the goal lifecycle: CRUD, progress recomputation, status
// transitions and the daily deadline sweep. Progress and status fields are
// mutated here and nowhere else.
type GoalService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewGoalService(db *gorm.DB, notifications *NotificationService) *GoalService {
	return &GoalService{db: db, notifications: notifications}
}

type GoalInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required"`
	TargetValue float64    `json:"target_value" binding:"required"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ExerciseID  *uint      `json:"exercise_id"`
}

func (s *GoalService) Create(userID uint, input GoalInput) (*models.Goal, error) {
	if !models.ValidGoalType(input.Type) {
		return nil, ErrUnknownGoalType
	}
	if input.TargetValue <= 0 {
		return nil, ErrTargetNotPositive
	}
	if models.ExerciseScoped(input.Type) {
		if input.ExerciseID == nil {
			return nil, ErrExerciseRequired
		}
		var ex models.Exercise
		if err := s.db.Where("id = ? AND user_id = ?", *input.ExerciseID, userID).First(&ex).Error; err != nil {
			return nil, ErrExerciseRequired
		}
	}

	start := time.Now()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	goal := &models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      models.GoalStatusActive,
		TargetValue: input.TargetValue,
		StartDate:   start,
		EndDate:     input.EndDate,
		ExerciseID:  input.ExerciseID,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(userID uint, status string, page, perPage int) ([]models.Goal, int64, error) {
	q := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var goals []models.Goal
	err := q.Order("created_at DESC").
		Scopes(utils.Paginate(page, perPage)).
		Find(&goals).Error
	return goals, total, err
}

func (s *GoalService) Get(userID, id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		return nil, ErrGoalNotFound
	}
	return &goal, nil
}

type GoalUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetValue *float64   `json:"target_value"`
	EndDate     *time.Time `json:"end_date"`
}

// Update edits user-facing fields. Only active goals may change; terminal
// goals are frozen.
func (s *GoalService) Update(userID, id uint, input GoalUpdate) (*models.Goal, error) {
	goal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if !goal.IsActive() {
		return nil, ErrGoalNotActive
	}
	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetValue != nil {
		if *input.TargetValue <= 0 {
			return nil, ErrTargetNotPositive
		}
		goal.TargetValue = *input.TargetValue
	}
	if input.EndDate != nil {
		goal.EndDate = input.EndDate
	}
	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// Cancel is the only user-driven terminal transition.
func (s *GoalService) Cancel(userID, id uint) (*models.Goal, error) {
	goal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if !goal.IsActive() {
		return nil, ErrGoalNotActive
	}
	goal.Status = models.GoalStatusCancelled
	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// Refresh recomputes one goal on demand and returns the updated row.
func (s *GoalService) Refresh(userID, id uint) (*models.Goal, error) {
	goal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.UpdateProgress(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress advances one goal after recomputation:
//  1. no-op unless the goal is active
//  2. recompute current value and progress percentage
//  3. persist both
//  4. completion transition (once) with an achieved notification, or
//  5. the highest newly crossed milestone gets a progress notification
func (s *GoalService) UpdateProgress(goal *models.Goal) error {
	if !goal.IsActive() {
		return nil
	}

	current, err := s.CalculateCurrentValue(goal)
	if err != nil {
		return err
	}
	goal.CurrentValue = &current
	goal.ProgressPercentage = progressPercent(current, goal.TargetValue)

	if current >= goal.TargetValue {
		now := time.Now()
		goal.Status = models.GoalStatusCompleted
		goal.CompletedAt = &now
		goal.AchievedValue = &current
		goal.ProgressPercentage = 100
		if err := s.db.Save(goal).Error; err != nil {
			return err
		}
		s.notifications.NotifyAchieved(goal)
		return nil
	}

	if err := s.db.Save(goal).Error; err != nil {
		return err
	}
	s.checkMilestones(goal)
	return nil
}

// checkMilestones picks the highest configured milestone at or below the
// current percentage and notifies once per milestone, monotonically.
func (s *GoalService) checkMilestones(goal *models.Goal) {
	milestones := s.notifications.Preferences(goal.UserID).MilestoneList()
	sort.Sort(sort.Reverse(sort.IntSlice(milestones)))

	for _, m := range milestones {
		if m > goal.ProgressPercentage {
			continue
		}
		if goal.LastNotifiedMilestone != nil && m <= *goal.LastNotifiedMilestone {
			break
		}
		milestone := m
		if s.notifications.NotifyProgress(goal, milestone) {
			goal.LastNotifiedMilestone = &milestone
			if err := s.db.Model(goal).Update("last_notified_milestone", milestone).Error; err != nil {
				log.Printf("persisting milestone for goal %d failed: %v", goal.ID, err)
			}
		}
		break
	}
}

// UpdateAllForUser recomputes every active goal of one user. A failure on one
// goal is logged and does not abort the rest.
func (s *GoalService) UpdateAllForUser(userID uint) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ? AND status = ?", userID, models.GoalStatusActive).Find(&goals).Error; err != nil {
		log.Printf("loading active goals for user %d failed: %v", userID, err)
		return
	}
	for i := range goals {
		if err := s.UpdateProgress(&goals[i]); err != nil {
			log.Printf("progress update for goal %d failed: %v", goals[i].ID, err)
		}
	}
}

// progressPercent is clamp(round(current/target*100), 0, 100), 0 for a
// non-positive target.
func progressPercent(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(current / target * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
