package database

import (
	"log/slog"
)

// Store owns the notes and widgets tables of one database
type Store struct {
	db     *DB
	logger *slog.Logger
}

// NewStore wraps an opened and migrated DB
func NewStore(db *DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}
