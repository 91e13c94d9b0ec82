package models

import (
	"time"

	"gorm.io/gorm"
)

// SharedCycle exposes one cycle through an opaque token. Counters only ever
// increment; the row is deactivated rather than deleted.
type SharedCycle struct {
	gorm.Model
	CycleID     uint   `gorm:"uniqueIndex;not null"`
	Token       string `gorm:"size:64;uniqueIndex;not null"`
	ViewCount   int
	ImportCount int
	IsActive    bool `gorm:"default:true"`
	ExpiresAt   *time.Time
}

// Accessible reports whether the share can still be resolved.
func (s *SharedCycle) Accessible(now time.Time) bool {
	if !s.IsActive {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}
