package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"gorm.io/gorm"
)

const (
	maxImportPlans     = 100
	maxImportExercises = 500
)

var (
	ErrSelfImport       = errors.New("cannot import your own cycle")
	ErrEmptyTemplate    = errors.New("shared cycle has no plans to import")
	ErrTooManyPlans     = fmt.Errorf("shared cycle exceeds the limit of %d plans", maxImportPlans)
	ErrTooManyExercises = fmt.Errorf("shared cycle exceeds the limit of %d exercises", maxImportExercises)
)

// ImportResult is the entity graph an import created (or, for exercises,
// reused) for the destination user.
type ImportResult struct {
	Cycle     *models.Cycle     `json:"cycle"`
	Plans     []models.Plan     `json:"plans"`
	Exercises []models.Exercise `json:"exercises"`
}

// ImportService copies a shared cycle tree into a destination user's account
// as new, independently owned rows, all inside one transaction.
type ImportService struct {
	db     *gorm.DB
	shares *ShareService
}

func NewImportService(db *gorm.DB, shares *ShareService) *ImportService {
	return &ImportService{db: db, shares: shares}
}

// ImportFromShare checks preconditions in order, each a distinct failure,
// then copies the whole tree atomically. On success the share's import
// counter is bumped outside the transaction.
func (s *ImportService) ImportFromShare(token string, destUserID uint) (*ImportResult, error) {
	snap, err := s.shares.Resolve(token)
	if err != nil {
		return nil, err
	}
	if snap.OwnerID == destUserID {
		return nil, ErrSelfImport
	}
	if len(snap.Plans) == 0 {
		return nil, ErrEmptyTemplate
	}
	if len(snap.Plans) > maxImportPlans {
		return nil, ErrTooManyPlans
	}
	totalExercises := 0
	for i := range snap.Plans {
		totalExercises += len(snap.Plans[i].Exercises)
	}
	if totalExercises > maxImportExercises {
		return nil, ErrTooManyExercises
	}

	result := &ImportResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return copyCycleTree(tx, snap, destUserID, result, nil)
	})
	if err != nil {
		log.Printf("import of share %s for user %d rolled back: %v", token, destUserID, err)
		return nil, err
	}

	s.shares.IncrementImports(token)
	return result, nil
}

// copyCycleTree writes one cycle with its plans and exercises for userID.
// The caller supplies the transaction; everything persists or rolls back with
// it. When created is non-nil it is invoked once per newly created row.
func copyCycleTree(tx *gorm.DB, snap *ShareSnapshot, userID uint, result *ImportResult, created func(itemType string, id uint) error) error {
	record := func(itemType string, id uint) error {
		if created == nil {
			return nil
		}
		return created(itemType, id)
	}

	cycleName, err := ResolveUniqueName(tx, "cycles", snap.Cycle.Name, userID)
	if err != nil {
		return err
	}
	now := time.Now()
	cycle := &models.Cycle{
		UserID:    userID,
		Name:      cycleName,
		StartDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		EndDate:   nil, // imported cycles always reopen as active
		Weeks:     snap.Cycle.Weeks,
	}
	if err := tx.Create(cycle).Error; err != nil {
		return err
	}
	if err := record(models.InstallItemCycle, cycle.ID); err != nil {
		return err
	}
	result.Cycle = cycle

	seenExercises := map[uint]bool{}
	for planIdx := range snap.Plans {
		src := &snap.Plans[planIdx]
		planName, err := ResolveUniqueName(tx, "plans", src.Name, userID)
		if err != nil {
			return err
		}
		plan := &models.Plan{
			UserID:   userID,
			CycleID:  &cycle.ID,
			Name:     planName,
			Order:    planIdx + 1,
			IsActive: true,
		}
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if err := record(models.InstallItemPlan, plan.ID); err != nil {
			return err
		}

		for exIdx := range src.Exercises {
			exercise, wasCreated, err := ResolveOrCreateExercise(tx, src.Exercises[exIdx], userID, nil, nil)
			if err != nil {
				return err
			}
			if wasCreated {
				if err := record(models.InstallItemExercise, exercise.ID); err != nil {
					return err
				}
			}
			if !seenExercises[exercise.ID] {
				seenExercises[exercise.ID] = true
				result.Exercises = append(result.Exercises, *exercise)
			}

			link := &models.PlanExercise{
				PlanID:     plan.ID,
				ExerciseID: exercise.ID,
				Order:      exIdx + 1,
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		result.Plans = append(result.Plans, *plan)
	}
	return nil
}
