package database

import (
	"database/sql"
	"fmt"
	"strings"

	"legacy-notes/models"
)

// ==================== NOTE OPERATIONS ====================

// InsertNote stores a new plain note. The title is trimmed first; a title
// that already exists (ignoring case) leaves the table unchanged and yields
// InsertStatusIgnoredDuplicate. On success note.ID and note.Type are filled in.
//
// Databases created by older versions declare title as case-sensitive
// UNIQUE, so the case-insensitive check lives in the statement.
func (s *Store) InsertNote(note *models.Note) (models.InsertResult, error) {
	note.Title = strings.TrimSpace(note.Title)

	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO notes (title, value, type, path)
		SELECT ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM notes WHERE title = ? COLLATE NOCASE)
	`, note.Title, note.Value, models.NoteTypePlain, note.Path, note.Title)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("inserting note: %w", err)
	}

	return insertResult(res, func(id int64) {
		note.ID = id
		note.Type = models.NoteTypePlain
	})
}

// GetNote retrieves a note by id, nil if there is none
func (s *Store) GetNote(id int64) (*models.Note, error) {
	var note models.Note
	var value, path sql.NullString

	err := s.db.QueryRow(`
		SELECT id, title, value, type, path
		FROM notes
		WHERE id = ?
	`, id).Scan(&note.ID, &note.Title, &value, &note.Type, &path)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %d: %w", id, err)
	}

	note.Value = value.String
	note.Path = path.String
	return &note, nil
}

// ListNotes returns every note ordered by id
func (s *Store) ListNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, title, value, type, path
		FROM notes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		var value, path sql.NullString
		if err := rows.Scan(&note.ID, &note.Title, &value, &note.Type, &path); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		note.Value = value.String
		note.Path = path.String
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// UpdateNote overwrites title, value and path of the note with note.ID and
// resets its type to a plain note. A title used by another note, ignoring
// case, leaves the row unchanged.
func (s *Store) UpdateNote(note *models.Note) (models.UpdateStatus, error) {
	note.Title = strings.TrimSpace(note.Title)
	note.Type = models.NoteTypePlain

	res, err := s.db.Exec(`
		UPDATE OR IGNORE notes SET
			title = ?,
			value = ?,
			path = ?,
			type = ?
		WHERE id = ?
			AND NOT EXISTS (
				SELECT 1 FROM notes other
				WHERE other.title = ? COLLATE NOCASE AND other.id <> ?
			)
	`, note.Title, note.Value, note.Path, note.Type, note.ID, note.Title, note.ID)
	if err != nil {
		return "", fmt.Errorf("updating note %d: %w", note.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("updating note %d: %w", note.ID, err)
	}
	if n > 0 {
		return models.UpdateStatusUpdated, nil
	}

	// Nothing changed: either the id is unknown or the new title collided
	existing, err := s.GetNote(note.ID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return models.UpdateStatusNotFound, nil
	}
	return models.UpdateStatusIgnoredDuplicate, nil
}

// DeleteNote removes the note and every widget bound to it in one
// transaction. It reports whether a note row was removed.
func (s *Store) DeleteNote(id int64) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting note %d: %w", id, err)
	}
	notesDeleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting note %d: %w", id, err)
	}

	res, err = tx.Exec(`DELETE FROM widgets WHERE note_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting widgets of note %d: %w", id, err)
	}
	widgetsDeleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting widgets of note %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing delete of note %d: %w", id, err)
	}

	s.logger.Debug("note deleted", "note_id", id, "found", notesDeleted > 0, "widgets_deleted", widgetsDeleted)
	return notesDeleted > 0, nil
}

// DoesNoteTitleExist reports whether exactly one note has this title, ignoring
// case and surrounding whitespace
func (s *Store) DoesNoteTitleExist(title string) (bool, error) {
	title = strings.TrimSpace(title)
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM notes WHERE title = ? COLLATE NOCASE
	`, title).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking note title: %w", err)
	}
	return count == 1, nil
}

// GetNoteIDByPath returns the id of the note backed by path. When several
// notes share a path the lowest id wins.
func (s *Store) GetNoteIDByPath(path string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow(`
		SELECT id FROM notes WHERE path = ? ORDER BY id ASC LIMIT 1
	`, path).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("getting note by path: %w", err)
	}
	return id, true, nil
}

func insertResult(res sql.Result, onInsert func(id int64)) (models.InsertResult, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return models.InsertResult{Status: models.InsertStatusIgnoredDuplicate}, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("reading insert id: %w", err)
	}
	if onInsert != nil {
		onInsert(id)
	}
	return models.InsertResult{ID: id, Status: models.InsertStatusInserted}, nil
}
