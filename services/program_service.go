package services

import (
	"errors"
	"log"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound  = errors.New("training program not found")
	ErrInstallNotFound  = errors.New("program installation not found")
	ErrCycleHasWorkouts = errors.New("cannot uninstall: a cycle from this program has logged workouts")
	ErrAlreadyInstalled = errors.New("this program is already installed")
)

// ProgramService installs canned training programs into a user's account and
// reverses installations via the per-install item ledger.
type ProgramService struct {
	db *gorm.DB
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db}
}

// Install copies every cycle of the template into the user's account inside
// one transaction, recording each created row so the install can be undone.
// Exercises the user already owns are reused and stay off the ledger.
func (s *ProgramService) Install(key string, userID uint) (*models.ProgramInstall, *ImportResult, error) {
	tpl, ok := ProgramByKey(key)
	if !ok {
		return nil, nil, ErrProgramNotFound
	}

	var count int64
	s.db.Model(&models.ProgramInstall{}).
		Where("user_id = ? AND program_key = ?", userID, key).
		Count(&count)
	if count > 0 {
		return nil, nil, ErrAlreadyInstalled
	}

	install := &models.ProgramInstall{UserID: userID, ProgramKey: key}
	result := &ImportResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(install).Error; err != nil {
			return err
		}
		recorder := func(itemType string, id uint) error {
			item := models.ProgramInstallItem{
				ProgramInstallID: install.ID,
				ItemType:         itemType,
				ItemID:           id,
			}
			return tx.Create(&item).Error
		}
		for i := range tpl.Cycles {
			snap, err := snapshotFromTemplate(tx, &tpl.Cycles[i])
			if err != nil {
				return err
			}
			cycleResult := &ImportResult{}
			if err := copyCycleTree(tx, snap, userID, cycleResult, recorder); err != nil {
				return err
			}
			result.Cycle = cycleResult.Cycle
			result.Plans = append(result.Plans, cycleResult.Plans...)
			result.Exercises = append(result.Exercises, cycleResult.Exercises...)
		}
		return nil
	})
	if err != nil {
		log.Printf("install of program %s for user %d rolled back: %v", key, userID, err)
		return nil, nil, err
	}
	return install, result, nil
}

// Uninstall deletes everything an install created, in reverse creation order:
// plan-exercise links and plans first, then cycles, then exercises. It
// refuses to touch a cycle that has logged workouts.
func (s *ProgramService) Uninstall(installID, userID uint) error {
	var install models.ProgramInstall
	err := s.db.Preload("Items").
		Where("id = ? AND user_id = ?", installID, userID).
		First(&install).Error
	if err != nil {
		return ErrInstallNotFound
	}

	var planIDs, cycleIDs, exerciseIDs []uint
	for _, item := range install.Items {
		switch item.ItemType {
		case models.InstallItemPlan:
			planIDs = append(planIDs, item.ItemID)
		case models.InstallItemCycle:
			cycleIDs = append(cycleIDs, item.ItemID)
		case models.InstallItemExercise:
			exerciseIDs = append(exerciseIDs, item.ItemID)
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, cycleID := range cycleIDs {
			var workouts int64
			err := tx.Model(&models.Workout{}).
				Joins("JOIN plans ON plans.id = workouts.plan_id").
				Where("plans.cycle_id = ?", cycleID).
				Count(&workouts).Error
			if err != nil {
				return err
			}
			if workouts > 0 {
				return ErrCycleHasWorkouts
			}
		}

		if len(planIDs) > 0 {
			if err := tx.Where("plan_id IN ?", planIDs).Delete(&models.PlanExercise{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Plan{}, planIDs).Error; err != nil {
				return err
			}
		}
		if len(cycleIDs) > 0 {
			if err := tx.Delete(&models.Cycle{}, cycleIDs).Error; err != nil {
				return err
			}
		}
		if len(exerciseIDs) > 0 {
			if err := tx.Delete(&models.Exercise{}, exerciseIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("program_install_id = ?", install.ID).Delete(&models.ProgramInstallItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&install).Error
	})
}

// ListInstalls returns the user's installations, newest first.
func (s *ProgramService) ListInstalls(userID uint) ([]models.ProgramInstall, error) {
	var installs []models.ProgramInstall
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&installs).Error
	return installs, err
}

// snapshotFromTemplate turns one template cycle into a snapshot, resolving
// muscle groups by name against the catalog (creating missing ones).
func snapshotFromTemplate(tx *gorm.DB, pc *ProgramCycle) (*ShareSnapshot, error) {
	snap := &ShareSnapshot{Cycle: ShareCycle{Name: pc.Name, Weeks: pc.Weeks}}
	for i := range pc.Plans {
		src := &pc.Plans[i]
		plan := SharePlan{Name: src.Name}
		for _, ex := range src.Exercises {
			item := ExerciseImport{Name: ex.Name, Description: ex.Description}
			if ex.MuscleGroup != "" {
				var group models.MuscleGroup
				err := tx.Where("name = ?", ex.MuscleGroup).
					FirstOrCreate(&group, models.MuscleGroup{Name: ex.MuscleGroup}).Error
				if err != nil {
					return nil, err
				}
				item.MuscleGroup = &MuscleGroupRef{ID: group.ID, Name: group.Name}
			}
			plan.Exercises = append(plan.Exercises, item)
		}
		snap.Plans = append(snap.Plans, plan)
	}
	return snap, nil
}
