package services

import (
	"fmt"
	"log"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"gorm.io/gorm"
)

// EmailSender delivers a single plain-text email. utils.Mailer is the SES
// implementation; tests leave it nil.
type EmailSender interface {
	SendGoalEmail(to, subject, body string) error
}

// NotificationService gates goal events on user preferences and the
// GoalNotification ledger, then fans out to email, push and websocket.
// Delivery is fire-and-forget: a transport failure never rolls back the goal
// state that triggered it.
type NotificationService struct {
	db   *gorm.DB
	mail EmailSender
	push *PushService
	hub  *RealtimeHub
}

func NewNotificationService(db *gorm.DB, mail EmailSender, push *PushService, hub *RealtimeHub) *NotificationService {
	return &NotificationService{db: db, mail: mail, push: push, hub: hub}
}

// Preferences returns the user's notification switches, with every channel
// enabled when no row exists yet.
func (n *NotificationService) Preferences(userID uint) *models.NotificationPreference {
	var pref models.NotificationPreference
	if err := n.db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return &models.NotificationPreference{
			UserID:                      userID,
			GoalAchievedEnabled:         true,
			GoalProgressEnabled:         true,
			GoalDeadlineReminderEnabled: true,
			GoalFailedEnabled:           true,
		}
	}
	return &pref
}

// UpdatePreferences upserts the user's notification switches.
func (n *NotificationService) UpdatePreferences(userID uint, pref models.NotificationPreference) (*models.NotificationPreference, error) {
	var existing models.NotificationPreference
	err := n.db.Where("user_id = ?", userID).First(&existing).Error
	if err != nil {
		pref.UserID = userID
		if err := n.db.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}

	existing.GoalAchievedEnabled = pref.GoalAchievedEnabled
	existing.GoalProgressEnabled = pref.GoalProgressEnabled
	existing.GoalDeadlineReminderEnabled = pref.GoalDeadlineReminderEnabled
	existing.GoalFailedEnabled = pref.GoalFailedEnabled
	existing.Milestones = pref.Milestones
	existing.ReminderDays = pref.ReminderDays
	if err := n.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (n *NotificationService) enabled(pref *models.NotificationPreference, typ string) bool {
	switch typ {
	case models.NotificationAchieved:
		return pref.GoalAchievedEnabled
	case models.NotificationProgress:
		return pref.GoalProgressEnabled
	case models.NotificationDeadlineReminder:
		return pref.GoalDeadlineReminderEnabled
	case models.NotificationFailed:
		return pref.GoalFailedEnabled
	}
	return false
}

// AlreadySent checks the ledger for a (goal, type, milestone) row.
func (n *NotificationService) AlreadySent(goalID uint, typ string, milestone *int) bool {
	var count int64
	n.ledgerQuery(goalID, typ, milestone).Count(&count)
	return count > 0
}

// SentWithin is the time-windowed ledger check used for deadline reminders,
// which may legitimately repeat on later days for the same offset.
func (n *NotificationService) SentWithin(goalID uint, typ string, milestone *int, window time.Duration) bool {
	var count int64
	n.ledgerQuery(goalID, typ, milestone).
		Where("sent_at >= ?", time.Now().Add(-window)).
		Count(&count)
	return count > 0
}

func (n *NotificationService) ledgerQuery(goalID uint, typ string, milestone *int) *gorm.DB {
	q := n.db.Model(&models.GoalNotification{}).
		Where("goal_id = ? AND notification_type = ?", goalID, typ)
	if milestone == nil {
		return q.Where("milestone IS NULL")
	}
	return q.Where("milestone = ?", *milestone)
}

// NotifyAchieved sends the one-time completion notification.
func (n *NotificationService) NotifyAchieved(goal *models.Goal) bool {
	title := "Goal achieved"
	body := fmt.Sprintf("You reached your goal %q.", goal.Title)
	return n.send(goal, models.NotificationAchieved, nil, title, body)
}

// NotifyProgress sends the milestone notification, at most once per milestone.
func (n *NotificationService) NotifyProgress(goal *models.Goal, milestone int) bool {
	title := fmt.Sprintf("Goal %d%% reached", milestone)
	body := fmt.Sprintf("Your goal %q passed the %d%% milestone, keep going.", goal.Title, milestone)
	return n.send(goal, models.NotificationProgress, &milestone, title, body)
}

// NotifyDeadline sends a reminder daysLeft days before the goal deadline.
func (n *NotificationService) NotifyDeadline(goal *models.Goal, daysLeft int) bool {
	title := "Goal deadline approaching"
	body := fmt.Sprintf("Your goal %q ends in %d day(s), currently at %d%%.",
		goal.Title, daysLeft, goal.ProgressPercentage)
	return n.send(goal, models.NotificationDeadlineReminder, &daysLeft, title, body)
}

// NotifyFailed sends the one-time past-deadline notification.
func (n *NotificationService) NotifyFailed(goal *models.Goal) bool {
	title := "Goal not reached"
	body := fmt.Sprintf("Your goal %q ended at %d%% of the target.",
		goal.Title, goal.ProgressPercentage)
	return n.send(goal, models.NotificationFailed, nil, title, body)
}

// send applies the preference flag and the idempotency ledger, appends the
// ledger row and only then dispatches. Returns true when something went out.
func (n *NotificationService) send(goal *models.Goal, typ string, milestone *int, title, body string) bool {
	pref := n.Preferences(goal.UserID)
	if !n.enabled(pref, typ) {
		return false
	}
	if typ == models.NotificationDeadlineReminder {
		if n.SentWithin(goal.ID, typ, milestone, 24*time.Hour) {
			return false
		}
	} else if n.AlreadySent(goal.ID, typ, milestone) {
		return false
	}

	rec := models.GoalNotification{
		GoalID:           goal.ID,
		UserID:           goal.UserID,
		NotificationType: typ,
		Milestone:        milestone,
		SentAt:           time.Now(),
	}
	if err := n.db.Create(&rec).Error; err != nil {
		log.Printf("notification ledger write failed for goal %d: %v", goal.ID, err)
		return false
	}

	n.dispatch(goal, typ, title, body)
	return true
}

func (n *NotificationService) dispatch(goal *models.Goal, typ, title, body string) {
	data := map[string]string{
		"type":   typ,
		"goalId": fmt.Sprintf("%d", goal.ID),
	}
	if n.mail != nil {
		var user models.User
		if err := n.db.First(&user, goal.UserID).Error; err == nil {
			_ = n.mail.SendGoalEmail(user.Email, title, body)
		}
	}
	if n.push != nil {
		n.push.PushToUser(goal.UserID, title, body, data)
	}
	if n.hub != nil {
		n.hub.BroadcastEvent(goal.UserID, map[string]any{
			"kind":  "goal." + typ,
			"title": title,
			"body":  body,
			"data":  data,
		})
	}
}
