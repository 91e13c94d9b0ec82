package services

import (
	"testing"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeGoal(userID uint, goalType string, target float64, start time.Time, end *time.Time) *models.Goal {
	return &models.Goal{
		UserID:      userID,
		Title:       "t",
		Type:        goalType,
		Status:      models.GoalStatusActive,
		TargetValue: target,
		StartDate:   start,
		EndDate:     end,
	}
}

func TestCalculateTotalWorkoutsCountsStartsInWindow(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc1@test.dev")
	start := time.Now().AddDate(0, 0, -10)

	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -5), nil)
	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -3), timePtr(time.Now().AddDate(0, 0, -3).Add(time.Hour)))
	// before the window
	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -20), nil)

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeTotalWorkouts, 10, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestCalculateCompletedWorkoutsIgnoresOpenSessions(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc2@test.dev")
	start := time.Now().AddDate(0, 0, -10)

	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -5), nil)
	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -4), timePtr(time.Now().AddDate(0, 0, -4).Add(time.Hour)))
	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -2), timePtr(time.Now().AddDate(0, 0, -2).Add(time.Hour)))

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeCompletedWorkouts, 10, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestCalculateTargetWeightUsesLatestSample(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc3@test.dev")

	recordWeight(t, db, user.ID, time.Now().AddDate(0, 0, -30), 92)
	recordWeight(t, db, user.ID, time.Now().AddDate(0, 0, -1), 88.5)

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeTargetWeight, 85, time.Now().AddDate(0, 0, -60), nil))
	require.NoError(t, err)
	assert.Equal(t, 88.5, got)
}

func TestCalculateWeightLossFromWindowStart(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc4@test.dev")
	start := time.Now().AddDate(0, 0, -30)

	recordWeight(t, db, user.ID, start.AddDate(0, 0, -2), 90)
	recordWeight(t, db, user.ID, time.Now().AddDate(0, 0, -1), 85)

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeWeightLoss, 10, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestCalculateWeightLossNeverNegative(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc5@test.dev")
	start := time.Now().AddDate(0, 0, -30)

	recordWeight(t, db, user.ID, start.AddDate(0, 0, -2), 80)
	recordWeight(t, db, user.ID, time.Now().AddDate(0, 0, -1), 84)

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeWeightLoss, 5, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	gain, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeWeightGain, 5, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 4.0, gain)
}

func TestCalculateWeightLossWithoutHistoryIsZero(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc6@test.dev")

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeWeightLoss, 5, time.Now().AddDate(0, 0, -30), nil))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCalculateTotalVolumeSumsCompletedSets(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc7@test.dev")
	ex := createTestExercise(t, db, user.ID, "Squat", nil)
	start := time.Now().AddDate(0, 0, -10)

	done := time.Now().AddDate(0, 0, -2)
	logWorkout(t, db, user.ID, done, timePtr(done.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: ex.ID, Weight: 100, Reps: 5},
		models.WorkoutSet{ExerciseID: ex.ID, Weight: 80, Reps: 10},
	)
	// open workout: its sets never count
	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -1), nil,
		models.WorkoutSet{ExerciseID: ex.ID, Weight: 200, Reps: 5},
	)

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeTotalVolume, 5000, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 1300.0, got)
}

func TestCalculateWeeklyVolumeDividesByWindowWeeks(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc8@test.dev")
	ex := createTestExercise(t, db, user.ID, "Bench Press", nil)

	start := time.Now().Add(-14 * 24 * time.Hour)
	done := time.Now().AddDate(0, 0, -3)
	logWorkout(t, db, user.ID, done, timePtr(done.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: ex.ID, Weight: 100, Reps: 10},
		models.WorkoutSet{ExerciseID: ex.ID, Weight: 100, Reps: 10},
	)

	// 14-day window is 2 weeks; 2000 volume over it averages 1000.
	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeWeeklyVolume, 3000, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)
}

func TestCalculateTrainingTimeSumsDurations(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc9@test.dev")
	start := time.Now().AddDate(0, 0, -10)

	a := time.Now().AddDate(0, 0, -4)
	logWorkout(t, db, user.ID, a, timePtr(a.Add(45*time.Minute)))
	b := time.Now().AddDate(0, 0, -2)
	logWorkout(t, db, user.ID, b, timePtr(b.Add(30*time.Minute)))
	logWorkout(t, db, user.ID, time.Now().AddDate(0, 0, -1), nil)

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeTotalTrainingTime, 600, start, nil))
	require.NoError(t, err)
	assert.InDelta(t, 75.0, got, 0.01)
}

func TestCalculateTrainingFrequencyAveragesTrailingWeeks(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc10@test.dev")

	// 10 completed workouts inside the trailing 35 days → 2 per week.
	for i := 0; i < 10; i++ {
		started := time.Now().AddDate(0, 0, -(i*3 + 1))
		logWorkout(t, db, user.ID, started, timePtr(started.Add(time.Hour)))
	}
	// outside the trailing window
	old := time.Now().AddDate(0, 0, -40)
	logWorkout(t, db, user.ID, old, timePtr(old.Add(time.Hour)))

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeTrainingFrequency, 3, time.Now().AddDate(0, -6, 0), nil))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestCalculateExerciseMaxWeightIsAllTime(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc11@test.dev")
	squat := createTestExercise(t, db, user.ID, "Squat", nil)
	bench := createTestExercise(t, db, user.ID, "Bench Press", nil)

	old := time.Now().AddDate(-1, 0, 0)
	logWorkout(t, db, user.ID, old, timePtr(old.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: squat.ID, Weight: 150, Reps: 1},
	)
	recent := time.Now().AddDate(0, 0, -2)
	logWorkout(t, db, user.ID, recent, timePtr(recent.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: squat.ID, Weight: 120, Reps: 5},
		models.WorkoutSet{ExerciseID: bench.ID, Weight: 180, Reps: 1},
	)

	goal := activeGoal(user.ID, models.GoalTypeExerciseMaxWeight, 160, time.Now().AddDate(0, 0, -7), nil)
	goal.ExerciseID = &squat.ID
	got, err := svc.CalculateCurrentValue(goal)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got)
}

func TestCalculateExerciseTotalRepsInWindow(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc12@test.dev")
	pullup := createTestExercise(t, db, user.ID, "Pull Up", nil)
	start := time.Now().AddDate(0, 0, -10)

	in := time.Now().AddDate(0, 0, -3)
	logWorkout(t, db, user.ID, in, timePtr(in.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: pullup.ID, Weight: 0, Reps: 12},
		models.WorkoutSet{ExerciseID: pullup.ID, Weight: 0, Reps: 8},
	)
	out := time.Now().AddDate(0, 0, -20)
	logWorkout(t, db, user.ID, out, timePtr(out.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: pullup.ID, Weight: 0, Reps: 10},
	)

	goal := activeGoal(user.ID, models.GoalTypeExerciseTotalReps, 100, start, nil)
	goal.ExerciseID = &pullup.ID
	got, err := svc.CalculateCurrentValue(goal)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)
}

func TestCalculateExerciseVolumeRestrictsToExercise(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc13@test.dev")
	squat := createTestExercise(t, db, user.ID, "Squat", nil)
	bench := createTestExercise(t, db, user.ID, "Bench Press", nil)
	start := time.Now().AddDate(0, 0, -10)

	done := time.Now().AddDate(0, 0, -2)
	logWorkout(t, db, user.ID, done, timePtr(done.Add(time.Hour)),
		models.WorkoutSet{ExerciseID: squat.ID, Weight: 100, Reps: 5},
		models.WorkoutSet{ExerciseID: bench.ID, Weight: 80, Reps: 5},
	)

	goal := activeGoal(user.ID, models.GoalTypeExerciseVolume, 2000, start, nil)
	goal.ExerciseID = &squat.ID
	got, err := svc.CalculateCurrentValue(goal)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got)
}

func TestCalculateIgnoresOtherUsersHistory(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc14@test.dev")
	other := createTestUser(t, db, "calc14-other@test.dev")
	start := time.Now().AddDate(0, 0, -10)

	done := time.Now().AddDate(0, 0, -2)
	logWorkout(t, db, other.ID, done, timePtr(done.Add(time.Hour)))

	got, err := svc.CalculateCurrentValue(activeGoal(user.ID, models.GoalTypeCompletedWorkouts, 5, start, nil))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCalculateUnknownTypeErrors(t *testing.T) {
	svc, _, db := newTestGoalService(t)
	user := createTestUser(t, db, "calc15@test.dev")

	_, err := svc.CalculateCurrentValue(activeGoal(user.ID, "marathon", 1, time.Now(), nil))
	assert.ErrorIs(t, err, ErrUnknownGoalType)
}

func TestWindowWeeksNeverBelowOne(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 1.0, windowWeeks(now, now.Add(2*time.Hour)))
	assert.Equal(t, 2.0, windowWeeks(now.Add(-14*24*time.Hour), now))
	assert.Equal(t, 3.0, windowWeeks(now.Add(-15*24*time.Hour), now))
}
