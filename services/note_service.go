package services

import (
	"fmt"
	"log/slog"

	"legacy-notes/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo   NoteRepository
	logger *slog.Logger
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{
		repo:   repo,
		logger: logger,
	}
}

// Get retrieves a note by id
func (ns *NoteService) Get(id int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// List retrieves every note
func (ns *NoteService) List() ([]models.Note, error) {
	return ns.repo.ListNotes()
}

// Create stores a new plain note. A title already used by another note,
// in any letter case, yields ErrDuplicateTitle and leaves the store untouched.
func (ns *NoteService) Create(title, value, path string) (*models.Note, models.InsertResult, error) {
	note := &models.Note{
		Title: title,
		Value: value,
		Type:  models.NoteTypePlain,
		Path:  path,
	}

	result, err := ns.repo.InsertNote(note)
	if err != nil {
		return nil, result, err
	}
	if !result.Inserted() {
		ns.logger.Debug("note insert ignored", "title", note.Title, "status", result.Status)
		return nil, result, ErrDuplicateTitle
	}

	return note, result, nil
}

// Update overwrites title, value and path of an existing note. The store
// resets the note to a plain note.
func (ns *NoteService) Update(id int64, title, value, path string) (*models.Note, error) {
	note := &models.Note{
		ID:    id,
		Title: title,
		Value: value,
		Path:  path,
	}

	status, err := ns.repo.UpdateNote(note)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.UpdateStatusUpdated:
		return note, nil
	case models.UpdateStatusNotFound:
		return nil, ErrNoteNotFound
	case models.UpdateStatusIgnoredDuplicate:
		return nil, ErrDuplicateTitle
	default:
		return nil, fmt.Errorf("unexpected update status %q", status)
	}
}

// Delete removes a note together with the widgets bound to it
func (ns *NoteService) Delete(id int64) error {
	found, err := ns.repo.DeleteNote(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoteNotFound
	}
	return nil
}

// TitleExists reports whether a note uses title, ignoring case
func (ns *NoteService) TitleExists(title string) (bool, error) {
	return ns.repo.DoesNoteTitleExist(title)
}

// IDByPath finds the note backed by the file at path
func (ns *NoteService) IDByPath(path string) (int64, error) {
	id, found, err := ns.repo.GetNoteIDByPath(path)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNoteNotFound
	}
	return id, nil
}
