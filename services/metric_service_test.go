package services

import (
	"testing"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricUpsertReplacesSameDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricService(db, nil)
	user := createTestUser(t, db, "m1@test.dev")

	day := noonToday()
	first, err := svc.Upsert(user.ID, MetricInput{Date: &day, Weight: 90})
	require.NoError(t, err)

	second, err := svc.Upsert(user.ID, MetricInput{Date: &day, Weight: 89.5, Note: "morning"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 89.5, second.Weight)

	var count int64
	db.Model(&models.Metric{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestMetricUpsertKeepsSeparateDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricService(db, nil)
	user := createTestUser(t, db, "m2@test.dev")

	today := noonToday()
	yesterday := today.AddDate(0, 0, -1)
	_, err := svc.Upsert(user.ID, MetricInput{Date: &yesterday, Weight: 90})
	require.NoError(t, err)
	_, err = svc.Upsert(user.ID, MetricInput{Date: &today, Weight: 89})
	require.NoError(t, err)

	metrics, total, err := svc.List(user.ID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, metrics, 2)
	// newest first
	assert.Equal(t, 89.0, metrics[0].Weight)
}

func TestMetricUpsertRefreshesWeightGoals(t *testing.T) {
	goals, mail, db := newTestGoalService(t)
	svc := NewMetricService(db, goals)
	user := createTestUser(t, db, "m3@test.dev")

	start := noonToday().AddDate(0, 0, -30)
	recordWeight(t, db, user.ID, start, 90)

	_, err := goals.Create(user.ID, GoalInput{
		Title:       "drop 5 kg",
		Type:        models.GoalTypeWeightLoss,
		TargetValue: 5,
		StartDate:   &start,
	})
	require.NoError(t, err)

	today := noonToday()
	_, err = svc.Upsert(user.ID, MetricInput{Date: &today, Weight: 85})
	require.NoError(t, err)

	active, _, err := goals.List(user.ID, models.GoalStatusCompleted, 1, 20)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 100, active[0].ProgressPercentage)
	assert.NotEmpty(t, mail.sent)
}

func TestMetricDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricService(db, nil)
	user := createTestUser(t, db, "m4@test.dev")

	day := noonToday()
	metric, err := svc.Upsert(user.ID, MetricInput{Date: &day, Weight: 90})
	require.NoError(t, err)

	other := createTestUser(t, db, "m4-other@test.dev")
	assert.ErrorIs(t, svc.Delete(other.ID, metric.ID), ErrMetricNotFound)
	require.NoError(t, svc.Delete(user.ID, metric.ID))
	assert.ErrorIs(t, svc.Delete(user.ID, metric.ID), ErrMetricNotFound)
}
