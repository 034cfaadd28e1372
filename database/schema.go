package database

import (
	"database/sql"
	"errors"
	"fmt"

	"legacy-notes/models"
)

// SchemaVersion is stored in PRAGMA user_version
const SchemaVersion = 4

var ErrSchemaTooNew = errors.New("database schema is newer than supported")

// Migrate creates the notes and widgets tables if they are missing and seeds
// a fresh notes table with one default note titled defaultNoteTitle.
// Upgrades from an older version only bump user_version.
func (db *DB) Migrate(defaultNoteTitle string) error {
	version, err := db.SchemaVersion()
	if err != nil {
		return err
	}

	if version == SchemaVersion {
		return nil
	}
	if version > SchemaVersion {
		return fmt.Errorf("%w: have %d, support %d", ErrSchemaTooNew, version, SchemaVersion)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	notesExisted, err := tableExists(tx, "notes")
	if err != nil {
		return err
	}

	if err := createTables(tx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if !notesExisted {
		if err := insertFirstNote(tx, defaultNoteTitle); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return tx.Commit()
}

// SchemaVersion reads PRAGMA user_version
func (db *DB) SchemaVersion() (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

func createTables(tx *sql.Tx) error {
	queries := []string{
		// Titles are unique ignoring case; inserts use OR IGNORE on this constraint
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT UNIQUE COLLATE NOCASE,
			value TEXT,
			type INTEGER DEFAULT 0,
			path TEXT
		)`,

		// note_id is not a foreign key; DeleteNote removes widget rows itself
		`CREATE TABLE IF NOT EXISTS widgets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			widget_id INTEGER DEFAULT 0,
			note_id INTEGER DEFAULT 0
		)`,

		`CREATE INDEX IF NOT EXISTS idx_widgets_note ON widgets(note_id)`,
	}

	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %q: %w", query, err)
		}
	}

	return nil
}

func tableExists(tx *sql.Tx, name string) (bool, error) {
	var count int
	err := tx.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return count > 0, nil
}

func insertFirstNote(tx *sql.Tx, title string) error {
	_, err := tx.Exec(`
		INSERT INTO notes (id, title, value, type, path)
		VALUES (1, ?, '', ?, '')
	`, title, models.NoteTypePlain)
	if err != nil {
		return fmt.Errorf("failed to insert first note: %w", err)
	}
	return nil
}
