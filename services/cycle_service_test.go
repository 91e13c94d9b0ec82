package services

import (
	"testing"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCycleSuffixesDuplicateNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewCycleService(db)
	user := createTestUser(t, db, "c1@test.dev")

	first, err := svc.Create(user.ID, CycleInput{Name: "Base Block", Weeks: 4})
	require.NoError(t, err)
	assert.Equal(t, "Base Block", first.Name)

	second, err := svc.Create(user.ID, CycleInput{Name: "Base Block", Weeks: 4})
	require.NoError(t, err)
	assert.Equal(t, "Base Block 1", second.Name)
}

func TestDeleteCycleCascadesToPlans(t *testing.T) {
	db := newTestDB(t)
	svc := NewCycleService(db)
	user := createTestUser(t, db, "c2@test.dev")
	ex := createTestExercise(t, db, user.ID, "Squat", nil)
	cycle := seedCycleTree(t, db, user.ID, "Doomed", []string{"Day A", "Day B"}, []*models.Exercise{ex})

	require.NoError(t, svc.Delete(user.ID, cycle.ID))

	var plans, links int64
	db.Model(&models.Plan{}).Where("user_id = ?", user.ID).Count(&plans)
	db.Model(&models.PlanExercise{}).Count(&links)
	assert.EqualValues(t, 0, plans)
	assert.EqualValues(t, 0, links)

	// the exercise itself belongs to the catalog, not the cycle
	var reloaded models.Exercise
	assert.NoError(t, db.First(&reloaded, ex.ID).Error)
}

func TestGetCycleLoadsOrderedPlans(t *testing.T) {
	db := newTestDB(t)
	svc := NewCycleService(db)
	user := createTestUser(t, db, "c3@test.dev")
	ex := createTestExercise(t, db, user.ID, "Squat", nil)
	cycle := seedCycleTree(t, db, user.ID, "Ordered", []string{"First", "Second"}, []*models.Exercise{ex})

	loaded, err := svc.Get(user.ID, cycle.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Plans, 2)
	assert.Equal(t, "First", loaded.Plans[0].Name)
	require.Len(t, loaded.Plans[0].Exercises, 1)
	assert.Equal(t, "Squat", loaded.Plans[0].Exercises[0].Exercise.Name)

	other := createTestUser(t, db, "c3-other@test.dev")
	_, err = svc.Get(other.ID, cycle.ID)
	assert.ErrorIs(t, err, ErrCycleNotFound)
}

func TestUpdateCycleRenamesUniquely(t *testing.T) {
	db := newTestDB(t)
	svc := NewCycleService(db)
	user := createTestUser(t, db, "c4@test.dev")

	_, err := svc.Create(user.ID, CycleInput{Name: "Taken"})
	require.NoError(t, err)
	cycle, err := svc.Create(user.ID, CycleInput{Name: "Original"})
	require.NoError(t, err)

	end := time.Now().AddDate(0, 1, 0)
	updated, err := svc.Update(user.ID, cycle.ID, CycleInput{Name: "Taken", EndDate: &end, Weeks: 6})
	require.NoError(t, err)
	assert.Equal(t, "Taken 1", updated.Name)
	assert.Equal(t, 6, updated.Weeks)
	require.NotNil(t, updated.EndDate)
}
