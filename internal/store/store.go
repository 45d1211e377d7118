package store

import "github.com/jinzhu/gorm"

// Store wraps the shared database handle. It owns all reads and writes
// of customers and orders; the menu is read-only. The handle is passed
// in at construction so tests can supply their own database.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
