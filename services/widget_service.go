package services

import (
	"legacy-notes/models"
)

// WidgetService handles home-screen widget bindings
type WidgetService struct {
	repo WidgetRepository
}

// NewWidgetService creates a new widget service
func NewWidgetService(repo WidgetRepository) *WidgetService {
	return &WidgetService{repo: repo}
}

// List retrieves every widget binding
func (ws *WidgetService) List() ([]models.Widget, error) {
	return ws.repo.ListWidgets()
}

// ListByNote retrieves the widgets showing one note
func (ws *WidgetService) ListByNote(noteID int64) ([]models.Widget, error) {
	note, err := ws.repo.GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return ws.repo.GetWidgetsByNote(noteID)
}

// Create binds a platform widget to an existing note
func (ws *WidgetService) Create(widgetID, noteID int64) (*models.Widget, error) {
	note, err := ws.repo.GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	widget := &models.Widget{
		WidgetID: widgetID,
		NoteID:   noteID,
	}

	result, err := ws.repo.InsertWidget(widget)
	if err != nil {
		return nil, err
	}
	if !result.Inserted() {
		return nil, ErrDuplicateWidget
	}

	return widget, nil
}
