package services

import (
	"fmt"

	"gorm.io/gorm"
)

// ResolveUniqueName returns base, or "base N" with the lowest N, such that no
// live row in table carries that name for the user. One existence query per
// candidate; the strictly increasing suffix guarantees termination.
func ResolveUniqueName(db *gorm.DB, table, base string, userID uint) (string, error) {
	name := base
	for n := 1; ; n++ {
		var count int64
		err := db.Table(table).
			Where("user_id = ? AND name = ? AND deleted_at IS NULL", userID, name).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return name, nil
		}
		name = fmt.Sprintf("%s %d", base, n)
	}
}

// ResolveUniqueNameIn is the preloaded variant: membership probing against an
// in-memory name set. Produces the same result as ResolveUniqueName given the
// same existing names.
func ResolveUniqueNameIn(base string, existing map[string]struct{}) string {
	if _, taken := existing[base]; !taken {
		return base
	}
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s %d", base, n)
		if _, taken := existing[name]; !taken {
			return name
		}
	}
}
