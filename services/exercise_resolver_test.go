package services

import (
	"testing"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExerciseReusesExactMatch(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "e1@test.dev")
	legs := createTestGroup(t, db, "Legs")
	existing := createTestExercise(t, db, user.ID, "Squat", &legs.ID)

	ex, created, err := ResolveOrCreateExercise(db, ExerciseImport{
		Name:        "Squat",
		MuscleGroup: &MuscleGroupRef{ID: legs.ID, Name: legs.Name},
	}, user.ID, nil, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, ex.ID)

	var count int64
	db.Model(&models.Exercise{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveExerciseRenamesOnGroupCollision(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "e2@test.dev")
	legs := createTestGroup(t, db, "Legs")
	glutes := createTestGroup(t, db, "Glutes")
	existing := createTestExercise(t, db, user.ID, "Squat", &legs.ID)

	ex, created, err := ResolveOrCreateExercise(db, ExerciseImport{
		Name:        "Squat",
		MuscleGroup: &MuscleGroupRef{ID: glutes.ID, Name: glutes.Name},
	}, user.ID, nil, nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Squat (Glutes)", ex.Name)

	// the existing exercise is untouched
	var reloaded models.Exercise
	require.NoError(t, db.First(&reloaded, existing.ID).Error)
	assert.Equal(t, "Squat", reloaded.Name)
}

func TestResolveExerciseCreatesMissingGroupByName(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "e3@test.dev")

	ex, created, err := ResolveOrCreateExercise(db, ExerciseImport{
		Name:        "Face Pull",
		MuscleGroup: &MuscleGroupRef{Name: "Rear Delts"},
	}, user.ID, nil, nil)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, ex.MuscleGroupID)

	var group models.MuscleGroup
	require.NoError(t, db.First(&group, *ex.MuscleGroupID).Error)
	assert.Equal(t, "Rear Delts", group.Name)

	// same reference again resolves to the same group and exercise
	again, created, err := ResolveOrCreateExercise(db, ExerciseImport{
		Name:        "Face Pull",
		MuscleGroup: &MuscleGroupRef{Name: "Rear Delts"},
	}, user.ID, nil, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, ex.ID, again.ID)
}

func TestResolveExerciseAcceptsFlatGroupID(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "e4@test.dev")
	back := createTestGroup(t, db, "Back")

	ex, created, err := ResolveOrCreateExercise(db, ExerciseImport{
		Name:          "Barbell Row",
		MuscleGroupID: &back.ID,
	}, user.ID, nil, nil)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, ex.MuscleGroupID)
	assert.Equal(t, back.ID, *ex.MuscleGroupID)
}

func TestResolveExercisePreloadedPathMatchesQueries(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "e5@test.dev")
	legs := createTestGroup(t, db, "Legs")
	existing := createTestExercise(t, db, user.ID, "Squat", &legs.ID)

	var exercises []models.Exercise
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&exercises).Error)
	var groups []models.MuscleGroup
	require.NoError(t, db.Find(&groups).Error)

	ex, created, err := ResolveOrCreateExercise(db, ExerciseImport{
		Name:        "Squat",
		MuscleGroup: &MuscleGroupRef{ID: legs.ID},
	}, user.ID, exercises, groups)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, ex.ID)
}
