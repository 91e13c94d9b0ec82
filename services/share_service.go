package services

import (
	"errors"
	"sync"
	"time"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrShareNotFound = errors.New("share link not found, inactive or expired")
	ErrCycleNotFound = errors.New("cycle not found")
)

const shareCacheTTL = 30 * time.Second

// ShareSnapshot is the resolved cycle→plans→exercises structure a share token
// grants access to. It is also the JSON export format for cycles.
type ShareSnapshot struct {
	OwnerID uint        `json:"-"`
	CycleID uint        `json:"-"`
	Cycle   ShareCycle  `json:"cycle"`
	Plans   []SharePlan `json:"plans"`
}

type ShareCycle struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
}

type SharePlan struct {
	Name      string           `json:"name"`
	Exercises []ExerciseImport `json:"exercises"`
}

type shareCacheEntry struct {
	snapshot *ShareSnapshot
	expires  time.Time
}

// ShareService creates and resolves share links. Resolution goes through a
// small read-through cache keyed by token; the cache never affects what a
// token resolves to, only how often the tree is reloaded.
type ShareService struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]shareCacheEntry
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db, cache: make(map[string]shareCacheEntry)}
}

// GetOrCreateLink returns the share row for a cycle, creating it on first
// call. Concurrent callers for the same cycle are serialized by a row lock on
// the cycle, so the second caller observes the first caller's token.
func (s *ShareService) GetOrCreateLink(cycleID, userID uint) (*models.SharedCycle, error) {
	var share models.SharedCycle
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("id = ? AND user_id = ?", cycleID, userID)
		if tx.Dialector.Name() == "postgres" {
			// sqlite serializes writers on its own and rejects FOR UPDATE
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var cycle models.Cycle
		if err := q.First(&cycle).Error; err != nil {
			return ErrCycleNotFound
		}

		if err := tx.Where("cycle_id = ?", cycleID).First(&share).Error; err == nil {
			if share.IsActive {
				return nil
			}
			// a revoked link is brought back rather than recreated, so the
			// token and counters survive the revoke/share round trip
			share.IsActive = true
			return tx.Save(&share).Error
		}
		share = models.SharedCycle{
			CycleID:  cycleID,
			Token:    utils.NewShareToken(),
			IsActive: true,
		}
		return tx.Create(&share).Error
	})
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// Revoke deactivates a cycle's share link. The row stays for its counters.
func (s *ShareService) Revoke(cycleID, userID uint) error {
	var cycle models.Cycle
	if err := s.db.Where("id = ? AND user_id = ?", cycleID, userID).First(&cycle).Error; err != nil {
		return ErrCycleNotFound
	}
	var share models.SharedCycle
	if err := s.db.Where("cycle_id = ?", cycleID).First(&share).Error; err != nil {
		return ErrShareNotFound
	}
	if err := s.db.Model(&share).Update("is_active", false).Error; err != nil {
		return err
	}
	// drop the cached snapshot so the token stops resolving immediately
	s.evict(share.Token)
	return nil
}

// Resolve loads the shared structure behind a token and counts the view.
func (s *ShareService) Resolve(token string) (*ShareSnapshot, error) {
	if snap := s.cached(token); snap != nil {
		s.bumpViews(token)
		return snap, nil
	}

	var share models.SharedCycle
	if err := s.db.Where("token = ?", token).First(&share).Error; err != nil {
		return nil, ErrShareNotFound
	}
	if !share.Accessible(time.Now()) {
		return nil, ErrShareNotFound
	}

	var cycle models.Cycle
	err := s.db.
		Preload("Plans", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Plans.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Plans.Exercises.Exercise.MuscleGroup").
		First(&cycle, share.CycleID).Error
	if err != nil {
		return nil, ErrCycleNotFound
	}

	snap := snapshotFromCycle(&cycle)
	s.store(token, snap)
	s.bumpViews(token)
	return snap, nil
}

// IncrementImports bumps the monotonic import counter. Called after an import
// transaction commits; not part of the import's atomicity.
func (s *ShareService) IncrementImports(token string) {
	s.db.Model(&models.SharedCycle{}).
		Where("token = ?", token).
		UpdateColumn("import_count", gorm.Expr("import_count + 1"))
}

func (s *ShareService) bumpViews(token string) {
	s.db.Model(&models.SharedCycle{}).
		Where("token = ?", token).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
}

func (s *ShareService) cached(token string) *ShareSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[token]
	if !ok || time.Now().After(entry.expires) {
		delete(s.cache, token)
		return nil
	}
	return entry.snapshot
}

func (s *ShareService) evict(token string) {
	s.mu.Lock()
	delete(s.cache, token)
	s.mu.Unlock()
}

func (s *ShareService) store(token string, snap *ShareSnapshot) {
	s.mu.Lock()
	s.cache[token] = shareCacheEntry{snapshot: snap, expires: time.Now().Add(shareCacheTTL)}
	s.mu.Unlock()
}

func snapshotFromCycle(cycle *models.Cycle) *ShareSnapshot {
	snap := &ShareSnapshot{
		OwnerID: cycle.UserID,
		CycleID: cycle.ID,
		Cycle:   ShareCycle{Name: cycle.Name, Weeks: cycle.Weeks},
	}
	for i := range cycle.Plans {
		plan := &cycle.Plans[i]
		sp := SharePlan{Name: plan.Name}
		for j := range plan.Exercises {
			ex := &plan.Exercises[j].Exercise
			item := ExerciseImport{
				Name:        ex.Name,
				Description: ex.Description,
			}
			if ex.MuscleGroup != nil {
				item.MuscleGroup = &MuscleGroupRef{ID: ex.MuscleGroup.ID, Name: ex.MuscleGroup.Name}
			} else if ex.MuscleGroupID != nil {
				item.MuscleGroupID = ex.MuscleGroupID
			}
			sp.Exercises = append(sp.Exercises, item)
		}
		snap.Plans = append(snap.Plans, sp)
	}
	return snap
}
