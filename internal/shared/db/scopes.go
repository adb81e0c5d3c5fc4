package db

import (
	"gorm.io/gorm"
)

// NewestFirst orders by updated_at descending with id as the tie breaker, so
// pages stay stable when several rows share a timestamp.
//
//	db.Model(&Model{}).Scopes(db.NewestFirst()).Find(&results)
func NewestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("updated_at DESC").Order("id DESC")
	}
}

// Paginate applies limit and offset. Non-positive values leave the query unbounded.
func Paginate(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}
