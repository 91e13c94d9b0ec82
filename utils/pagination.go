package utils

import "gorm.io/gorm"

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// PerPage bounds a raw per-page value to 1..100, defaulting when unset.
func PerPage(raw int) int {
	if raw < 1 {
		return defaultPerPage
	}
	if raw > maxPerPage {
		return maxPerPage
	}
	return raw
}

// Paginate is a gorm scope applying offset/limit for a 1-based page number.
func Paginate(page, perPage int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	perPage = PerPage(perPage)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}
