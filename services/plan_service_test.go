package services

import (
	"testing"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetExercisesReplacesLinks(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlanService(db)
	user := createTestUser(t, db, "pl1@test.dev")
	squat := createTestExercise(t, db, user.ID, "Squat", nil)
	bench := createTestExercise(t, db, user.ID, "Bench Press", nil)
	row := createTestExercise(t, db, user.ID, "Barbell Row", nil)

	plan, err := svc.Create(user.ID, PlanInput{Name: "Day A"})
	require.NoError(t, err)

	withTwo, err := svc.SetExercises(user.ID, plan.ID, []uint{squat.ID, bench.ID})
	require.NoError(t, err)
	require.Len(t, withTwo.Exercises, 2)
	assert.Equal(t, squat.ID, withTwo.Exercises[0].ExerciseID)
	assert.Equal(t, 1, withTwo.Exercises[0].Order)

	reordered, err := svc.SetExercises(user.ID, plan.ID, []uint{row.ID, squat.ID})
	require.NoError(t, err)
	require.Len(t, reordered.Exercises, 2)
	assert.Equal(t, row.ID, reordered.Exercises[0].ExerciseID)

	var links int64
	db.Model(&models.PlanExercise{}).Where("plan_id = ?", plan.ID).Count(&links)
	assert.EqualValues(t, 2, links)
}

func TestSetExercisesRejectsForeignExercise(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlanService(db)
	user := createTestUser(t, db, "pl2@test.dev")
	other := createTestUser(t, db, "pl2-other@test.dev")
	foreign := createTestExercise(t, db, other.ID, "Squat", nil)
	own := createTestExercise(t, db, user.ID, "Bench Press", nil)

	plan, err := svc.Create(user.ID, PlanInput{Name: "Day A"})
	require.NoError(t, err)
	_, err = svc.SetExercises(user.ID, plan.ID, []uint{own.ID})
	require.NoError(t, err)

	_, err = svc.SetExercises(user.ID, plan.ID, []uint{own.ID, foreign.ID})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	// the failed replacement rolled back, the old list survives
	reloaded, err := svc.Get(user.ID, plan.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Exercises, 1)
	assert.Equal(t, own.ID, reloaded.Exercises[0].ExerciseID)
}

func TestListPlansFiltersByCycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlanService(db)
	user := createTestUser(t, db, "pl3@test.dev")
	cycle := seedCycleTree(t, db, user.ID, "Block", nil, nil)

	_, err := svc.Create(user.ID, PlanInput{Name: "In Cycle", CycleID: &cycle.ID})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, PlanInput{Name: "Standalone"})
	require.NoError(t, err)

	inCycle, total, err := svc.List(user.ID, &cycle.ID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, inCycle, 1)
	assert.Equal(t, "In Cycle", inCycle[0].Name)

	all, total, err := svc.List(user.ID, nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestDeactivatedExerciseLeavesLists(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	user := createTestUser(t, db, "pl4@test.dev")

	ex, err := svc.Create(user.ID, ExerciseInput{Name: "Leg Press"})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(user.ID, ex.ID))

	listed, total, err := svc.List(user.ID, nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, listed)

	// still reachable directly: history keeps pointing at it
	reloaded, err := svc.Get(user.ID, ex.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}
