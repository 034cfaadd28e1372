package services

import "legacy-notes/models"

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	InsertNote(note *models.Note) (models.InsertResult, error)
	GetNote(id int64) (*models.Note, error)
	ListNotes() ([]models.Note, error)
	UpdateNote(note *models.Note) (models.UpdateStatus, error)
	DeleteNote(id int64) (bool, error)
	DoesNoteTitleExist(title string) (bool, error)
	GetNoteIDByPath(path string) (int64, bool, error)
}

// WidgetRepository defines the interface for widget data access
type WidgetRepository interface {
	InsertWidget(widget *models.Widget) (models.InsertResult, error)
	ListWidgets() ([]models.Widget, error)
	GetWidgetsByNote(noteID int64) ([]models.Widget, error)
	GetNote(id int64) (*models.Note, error)
}
