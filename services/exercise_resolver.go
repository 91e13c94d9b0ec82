package services

import (
	"fmt"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"gorm.io/gorm"
)

// MuscleGroupRef is the nested muscle-group shape. Templates may carry either
// this object or a flat muscle_group_id; both are accepted.
type MuscleGroupRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ExerciseImport is one incoming exercise description from a share snapshot
// or a program template.
type ExerciseImport struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	MuscleGroupID *uint           `json:"muscle_group_id"`
	MuscleGroup   *MuscleGroupRef `json:"muscle_group"`
}

// ResolveOrCreateExercise maps an incoming exercise onto the destination
// user's catalog:
//
//  1. normalize the muscle-group reference (flat id or {id,name} object)
//  2. exact (user, name, group) match is reused, no write
//  3. a same-name exercise under a different group forces the incoming name
//     to "Name (Group)"; the existing exercise is left untouched
//  4. otherwise a new exercise is created, active
//
// The preloaded slices are a batch optimization only: given the same data
// they must produce the same outcome as the per-query path. Returns
// created=true when a new row was written.
func ResolveOrCreateExercise(tx *gorm.DB, data ExerciseImport, userID uint, preloadedExercises []models.Exercise, preloadedGroups []models.MuscleGroup) (*models.Exercise, bool, error) {
	groupID, groupName, err := normalizeGroup(tx, data, preloadedGroups)
	if err != nil {
		return nil, false, err
	}

	if existing := findExercise(tx, userID, data.Name, groupID, preloadedExercises); existing != nil {
		return existing, false, nil
	}

	name := data.Name
	if groupID != nil && groupName != "" {
		if collision := findExerciseByName(tx, userID, data.Name, preloadedExercises); collision != nil {
			name = fmt.Sprintf("%s (%s)", data.Name, groupName)
		}
	}

	exercise := &models.Exercise{
		UserID:        userID,
		Name:          name,
		Description:   data.Description,
		MuscleGroupID: groupID,
		IsActive:      true,
	}
	if err := tx.Create(exercise).Error; err != nil {
		return nil, false, err
	}
	return exercise, true, nil
}

// normalizeGroup resolves the two accepted reference shapes to (id, name).
// A name-only reference is matched against the catalog, creating the group
// when it does not exist yet.
func normalizeGroup(tx *gorm.DB, data ExerciseImport, preloaded []models.MuscleGroup) (*uint, string, error) {
	ref := data.MuscleGroup
	if ref == nil && data.MuscleGroupID != nil {
		ref = &MuscleGroupRef{ID: *data.MuscleGroupID}
	}
	if ref == nil {
		return nil, "", nil
	}

	if ref.ID != 0 {
		name := ref.Name
		if name == "" {
			name = lookupGroupName(tx, ref.ID, preloaded)
		}
		id := ref.ID
		return &id, name, nil
	}
	if ref.Name == "" {
		return nil, "", nil
	}

	var group models.MuscleGroup
	err := tx.Where("name = ?", ref.Name).
		FirstOrCreate(&group, models.MuscleGroup{Name: ref.Name}).Error
	if err != nil {
		return nil, "", err
	}
	return &group.ID, group.Name, nil
}

func lookupGroupName(tx *gorm.DB, id uint, preloaded []models.MuscleGroup) string {
	if preloaded != nil {
		for i := range preloaded {
			if preloaded[i].ID == id {
				return preloaded[i].Name
			}
		}
		return ""
	}
	var group models.MuscleGroup
	if err := tx.First(&group, id).Error; err != nil {
		return ""
	}
	return group.Name
}

func findExercise(tx *gorm.DB, userID uint, name string, groupID *uint, preloaded []models.Exercise) *models.Exercise {
	if preloaded != nil {
		for i := range preloaded {
			e := &preloaded[i]
			if e.UserID == userID && e.Name == name && uintPtrEqual(e.MuscleGroupID, groupID) {
				return e
			}
		}
		return nil
	}
	q := tx.Where("user_id = ? AND name = ?", userID, name)
	if groupID == nil {
		q = q.Where("muscle_group_id IS NULL")
	} else {
		q = q.Where("muscle_group_id = ?", *groupID)
	}
	var exercise models.Exercise
	if err := q.First(&exercise).Error; err != nil {
		return nil
	}
	return &exercise
}

func findExerciseByName(tx *gorm.DB, userID uint, name string, preloaded []models.Exercise) *models.Exercise {
	if preloaded != nil {
		for i := range preloaded {
			e := &preloaded[i]
			if e.UserID == userID && e.Name == name {
				return e
			}
		}
		return nil
	}
	var exercise models.Exercise
	if err := tx.Where("user_id = ? AND name = ?", userID, name).First(&exercise).Error; err != nil {
		return nil
	}
	return &exercise
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
