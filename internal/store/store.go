package store

import "github.com/jmoiron/sqlx"

// Store bundles the write and read sides of the blog database.
type Store struct {
	DB     *sqlx.DB
	Reader *Reader
}

// New creates a Store over db.
func New(db *sqlx.DB) *Store {
	return &Store{
		DB:     db,
		Reader: NewReader(db),
	}
}

// UnitOfWork returns a fresh unit of work bound to the store's database.
func (s *Store) UnitOfWork() *UnitOfWork {
	return NewUnitOfWork(s.DB)
}
