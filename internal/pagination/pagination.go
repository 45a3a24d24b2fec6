// Package pagination implements the fixed-size, 1-based page window shared by
// every listing endpoint.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

const PageSize = 10

// MaxPage is the largest page whose offset fits in an int.
const MaxPage = (math.MaxInt-PageSize)/PageSize + 1

// Bounds returns the offset and limit for a 1-based page. ok is false when
// page is below 1 or above MaxPage, neither of which can hold items.
func Bounds(page int) (offset, limit int, ok bool) {
	if page < 1 || page > MaxPage {
		return 0, 0, false
	}
	return (page - 1) * PageSize, PageSize, true
}

// Scope applies the page window to a gorm query. Pages outside Bounds select nothing.
func Scope(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset, limit, ok := Bounds(page)
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Offset(offset).Limit(limit)
	}
}
