package models

import "gorm.io/gorm"

// Install item kinds. Uninstall processes them in reverse creation order:
// plans first, then cycles, then exercises.
const (
	InstallItemCycle    = "cycle"
	InstallItemPlan     = "plan"
	InstallItemExercise = "exercise"
)

// ProgramInstall records one installation of a canned training program so it
// can be reversed later.
type ProgramInstall struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	ProgramKey string `gorm:"size:64;index;not null"`
	Items      []ProgramInstallItem
}

// ProgramInstallItem points at one row the install created. Only rows created
// by the install are recorded; reused exercises are not.
type ProgramInstallItem struct {
	gorm.Model
	ProgramInstallID uint   `gorm:"index;not null"`
	ItemType         string `gorm:"size:16;not null"`
	ItemID           uint   `gorm:"not null"`
}
