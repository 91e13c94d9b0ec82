package services

import (
	"testing"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepFailsOverdueGoals(t *testing.T) {
	svc, mail, db := newTestGoalService(t)
	user := createTestUser(t, db, "s1@test.dev")

	goal, err := svc.Create(user.ID, GoalInput{
		Title:       "too late",
		Type:        models.GoalTypeTotalWorkouts,
		TargetValue: 10,
		EndDate:     timePtr(time.Now().AddDate(0, 0, -1)),
	})
	require.NoError(t, err)

	svc.RunDeadlineSweep()

	reloaded, err := svc.Get(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusFailed, reloaded.Status)
	assert.Len(t, mail.sent, 1)

	// failed goals are out of scope for later sweeps
	svc.RunDeadlineSweep()
	assert.Len(t, mail.sent, 1)
}

func TestSweepRemindsAtConfiguredOffsets(t *testing.T) {
	svc, mail, db := newTestGoalService(t)
	user := createTestUser(t, db, "s2@test.dev")

	// deadline 3 calendar days out, matching the default 7/3/1 offsets
	deadline := noonToday().AddDate(0, 0, 3)
	goal, err := svc.Create(user.ID, GoalInput{
		Title:       "soon",
		Type:        models.GoalTypeTotalWorkouts,
		TargetValue: 10,
		EndDate:     &deadline,
	})
	require.NoError(t, err)

	svc.RunDeadlineSweep()
	assert.Len(t, mail.sent, 1)

	reloaded, err := svc.Get(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusActive, reloaded.Status)
	require.NotNil(t, reloaded.LastDeadlineReminderAt)

	// second sweep the same day stays quiet
	svc.RunDeadlineSweep()
	assert.Len(t, mail.sent, 1)
}

func TestSweepSkipsNonMatchingOffsets(t *testing.T) {
	svc, mail, db := newTestGoalService(t)
	user := createTestUser(t, db, "s3@test.dev")

	deadline := noonToday().AddDate(0, 0, 5)
	_, err := svc.Create(user.ID, GoalInput{
		Title:       "later",
		Type:        models.GoalTypeTotalWorkouts,
		TargetValue: 10,
		EndDate:     &deadline,
	})
	require.NoError(t, err)

	svc.RunDeadlineSweep()
	assert.Empty(t, mail.sent)
}

func TestSweepHonorsCustomReminderDays(t *testing.T) {
	svc, mail, db := newTestGoalService(t)
	user := createTestUser(t, db, "s4@test.dev")

	_, err := svc.notifications.UpdatePreferences(user.ID, models.NotificationPreference{
		GoalAchievedEnabled:         true,
		GoalProgressEnabled:         true,
		GoalDeadlineReminderEnabled: true,
		GoalFailedEnabled:           true,
		ReminderDays:                "5",
	})
	require.NoError(t, err)

	deadline := noonToday().AddDate(0, 0, 5)
	_, err = svc.Create(user.ID, GoalInput{
		Title:       "custom offsets",
		Type:        models.GoalTypeTotalWorkouts,
		TargetValue: 10,
		EndDate:     &deadline,
	})
	require.NoError(t, err)

	svc.RunDeadlineSweep()
	assert.Len(t, mail.sent, 1)
}

func TestSweepIgnoresGoalsWithoutDeadline(t *testing.T) {
	svc, mail, db := newTestGoalService(t)
	user := createTestUser(t, db, "s5@test.dev")

	_, err := svc.Create(user.ID, GoalInput{
		Title:       "open ended",
		Type:        models.GoalTypeTotalWorkouts,
		TargetValue: 10,
	})
	require.NoError(t, err)

	svc.RunDeadlineSweep()
	assert.Empty(t, mail.sent)
}

func TestDaysUntilCountsCalendarDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, daysUntil(now, time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)))
	assert.Equal(t, 1, daysUntil(now, time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, daysUntil(now, time.Date(2026, 3, 17, 8, 0, 0, 0, time.UTC)))
}
