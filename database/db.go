package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql
const (
	DriverCGO    = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPureGo = "sqlite"  // modernc.org/sqlite
)

type DB struct {
	*sql.DB
	driver string
}

// New opens the database at dbPath with the cgo driver
func New(dbPath string) (*DB, error) {
	return Open(DriverCGO, dbPath)
}

// Open opens the database at dbPath with the given driver
func Open(driver, dbPath string) (*DB, error) {
	if driver != DriverCGO && driver != DriverPureGo {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(driver, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection owned by the store; SQLite serializes writers anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// Driver returns the database/sql driver name the connection was opened with
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) Close() error {
	return db.DB.Close()
}
