package database

import (
	"fmt"

	"legacy-notes/models"
)

// ==================== WIDGET OPERATIONS ====================

// InsertWidget binds a platform widget id to a note
func (s *Store) InsertWidget(widget *models.Widget) (models.InsertResult, error) {
	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO widgets (widget_id, note_id)
		VALUES (?, ?)
	`, widget.WidgetID, widget.NoteID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("inserting widget: %w", err)
	}

	return insertResult(res, func(id int64) {
		widget.ID = id
	})
}

// ListWidgets returns every widget binding. The row id is not loaded.
func (s *Store) ListWidgets() ([]models.Widget, error) {
	return s.queryWidgets(`SELECT widget_id, note_id FROM widgets ORDER BY id ASC`)
}

// GetWidgetsByNote returns the widgets bound to one note
func (s *Store) GetWidgetsByNote(noteID int64) ([]models.Widget, error) {
	return s.queryWidgets(`SELECT widget_id, note_id FROM widgets WHERE note_id = ? ORDER BY id ASC`, noteID)
}

func (s *Store) queryWidgets(query string, args ...any) ([]models.Widget, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing widgets: %w", err)
	}
	defer rows.Close()

	widgets := make([]models.Widget, 0)
	for rows.Next() {
		var w models.Widget
		if err := rows.Scan(&w.WidgetID, &w.NoteID); err != nil {
			return nil, fmt.Errorf("scanning widget: %w", err)
		}
		widgets = append(widgets, w)
	}

	return widgets, rows.Err()
}
