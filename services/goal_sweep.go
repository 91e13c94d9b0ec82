package services

import (
	"log"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
)

// RunDeadlineSweep is the daily pass over every active goal with a deadline.
// Past-deadline goals fail; upcoming deadlines matching a reminder offset get
// at most one reminder per day. A failure on one goal never aborts the rest.
func (s *GoalService) RunDeadlineSweep() {
	var goals []models.Goal
	err := s.db.Where("status = ? AND end_date IS NOT NULL", models.GoalStatusActive).
		Find(&goals).Error
	if err != nil {
		log.Printf("deadline sweep: loading goals failed: %v", err)
		return
	}

	now := time.Now()
	for i := range goals {
		if err := s.sweepGoal(&goals[i], now); err != nil {
			log.Printf("deadline sweep: goal %d failed: %v", goals[i].ID, err)
		}
	}
}

func (s *GoalService) sweepGoal(goal *models.Goal, now time.Time) error {
	if goal.EndDate.Before(now) {
		goal.Status = models.GoalStatusFailed
		if err := s.db.Save(goal).Error; err != nil {
			return err
		}
		s.notifications.NotifyFailed(goal)
		return nil
	}

	if sameDay(goal.LastDeadlineReminderAt, now) {
		return nil
	}

	days := daysUntil(now, *goal.EndDate)
	for _, offset := range s.notifications.Preferences(goal.UserID).ReminderDayList() {
		if days != offset {
			continue
		}
		// first matching offset only
		if s.notifications.NotifyDeadline(goal, offset) {
			goal.LastDeadlineReminderAt = &now
			if err := s.db.Model(goal).Update("last_deadline_reminder_at", now).Error; err != nil {
				return err
			}
		}
		break
	}
	return nil
}

// daysUntil counts whole calendar days from now's date to the deadline's date.
func daysUntil(now, deadline time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	b := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, now.Location())
	return int(b.Sub(a).Hours() / 24)
}

func sameDay(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
