package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormTransactor runs transactions on a gorm connection
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise, including
// when ctx is cancelled before commit.
func (t *GormTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
