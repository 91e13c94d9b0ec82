package models

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// NotificationPreference holds the per-user switches consulted before any goal
// notification is dispatched. Milestones and ReminderDays are stored as
// comma-joined strings.
type NotificationPreference struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	// No column defaults here: GORM would drop zero-value false flags from
	// the INSERT and the default would win. The all-enabled fallback lives in
	// NotificationService.Preferences for users without a row.
	GoalAchievedEnabled         bool
	GoalProgressEnabled         bool
	GoalDeadlineReminderEnabled bool
	GoalFailedEnabled           bool

	Milestones   string `gorm:"size:64"` // e.g. "25,50,75,90"
	ReminderDays string `gorm:"size:64"` // e.g. "7,3,1"
}

var (
	DefaultMilestones   = []int{25, 50, 75, 90}
	DefaultReminderDays = []int{7, 3, 1}
)

// MilestoneList parses Milestones, falling back to the defaults when unset.
func (p *NotificationPreference) MilestoneList() []int {
	return parseIntList(p.Milestones, DefaultMilestones)
}

// ReminderDayList parses ReminderDays, falling back to the defaults when unset.
func (p *NotificationPreference) ReminderDayList() []int {
	return parseIntList(p.ReminderDays, DefaultReminderDays)
}

func parseIntList(s string, fallback []int) []int {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
