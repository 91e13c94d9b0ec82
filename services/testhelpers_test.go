package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database per test. The DSN is
// named after the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Metric{},
		&models.MuscleGroup{},
		&models.Exercise{},
		&models.Cycle{},
		&models.Plan{},
		&models.PlanExercise{},
		&models.Workout{},
		&models.WorkoutSet{},
		&models.Goal{},
		&models.GoalNotification{},
		&models.NotificationPreference{},
		&models.SharedCycle{},
		&models.ProgramInstall{},
		&models.ProgramInstallItem{},
		&models.UserDevice{},
	)
	require.NoError(t, err)
	return db
}

// mailRecorder implements EmailSender and remembers every subject it was
// asked to deliver.
type mailRecorder struct {
	sent []string
}

func (m *mailRecorder) SendGoalEmail(to, subject, body string) error {
	m.sent = append(m.sent, subject)
	return nil
}

func newTestGoalService(t *testing.T) (*GoalService, *mailRecorder, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	mail := &mailRecorder{}
	notifications := NewNotificationService(db, mail, nil, nil)
	return NewGoalService(db, notifications), mail, db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "x", Name: "Test"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestExercise(t *testing.T, db *gorm.DB, userID uint, name string, groupID *uint) *models.Exercise {
	t.Helper()
	ex := &models.Exercise{UserID: userID, Name: name, MuscleGroupID: groupID, IsActive: true}
	require.NoError(t, db.Create(ex).Error)
	return ex
}

func createTestGroup(t *testing.T, db *gorm.DB, name string) *models.MuscleGroup {
	t.Helper()
	g := &models.MuscleGroup{Name: name}
	require.NoError(t, db.Create(g).Error)
	return g
}

// logWorkout writes one workout with its sets. finished nil leaves the
// session open.
func logWorkout(t *testing.T, db *gorm.DB, userID uint, started time.Time, finished *time.Time, sets ...models.WorkoutSet) *models.Workout {
	t.Helper()
	w := &models.Workout{UserID: userID, StartedAt: started, FinishedAt: finished}
	require.NoError(t, db.Create(w).Error)
	for i := range sets {
		sets[i].WorkoutID = w.ID
		require.NoError(t, db.Create(&sets[i]).Error)
	}
	return w
}

func recordWeight(t *testing.T, db *gorm.DB, userID uint, date time.Time, weight float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Metric{UserID: userID, Date: date, Weight: weight}).Error)
}

func timePtr(ts time.Time) *time.Time { return &ts }

// noonToday keeps calendar-day math in tests away from midnight boundaries.
func noonToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
}

// seedCycleTree builds cycle → plans → plan exercises for share and import
// tests. Each plan gets the given exercises in order.
func seedCycleTree(t *testing.T, db *gorm.DB, userID uint, cycleName string, planNames []string, exercises []*models.Exercise) *models.Cycle {
	t.Helper()
	cycle := &models.Cycle{UserID: userID, Name: cycleName, StartDate: time.Now(), Weeks: 4}
	require.NoError(t, db.Create(cycle).Error)
	for i, planName := range planNames {
		plan := &models.Plan{UserID: userID, CycleID: &cycle.ID, Name: planName, Order: i + 1, IsActive: true}
		require.NoError(t, db.Create(plan).Error)
		for j, ex := range exercises {
			link := &models.PlanExercise{PlanID: plan.ID, ExerciseID: ex.ID, Order: j + 1}
			require.NoError(t, db.Create(link).Error)
		}
	}
	return cycle
}
