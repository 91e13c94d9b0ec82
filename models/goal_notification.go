package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationAchieved         = "achieved"
	NotificationProgress         = "progress"
	NotificationDeadlineReminder = "deadline_reminder"
	NotificationFailed           = "failed"
)

// GoalNotification is an append-only idempotency ledger: at most one row per
// (goal_id, notification_type, milestone), checked before every insert.
type GoalNotification struct {
	gorm.Model
	GoalID           uint   `gorm:"index;not null"`
	UserID           uint   `gorm:"index;not null"`
	NotificationType string `gorm:"size:24;not null"`
	Milestone        *int
	SentAt           time.Time
}
