package models

// NoteType identifies how a note's value is interpreted
type NoteType int

const (
	NoteTypePlain     NoteType = 0
	NoteTypeChecklist NoteType = 1
)

type Note struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Value string   `json:"value"`
	Type  NoteType `json:"type"`
	Path  string   `json:"path"`
}

// IsFileBacked reports whether the note's content lives in a file on disk
func (n Note) IsFileBacked() bool {
	return n.Path != ""
}

// Widget binds a home-screen widget instance to a note.
// ID is never loaded on read; widgets are addressed by WidgetID/NoteID.
type Widget struct {
	ID       int64 `json:"id"`
	WidgetID int64 `json:"widget_id"`
	NoteID   int64 `json:"note_id"`
}

// InsertStatus tells whether an insert wrote a row or hit a unique conflict
type InsertStatus string

const (
	InsertStatusInserted         InsertStatus = "inserted"
	InsertStatusIgnoredDuplicate InsertStatus = "ignored_duplicate"
)

// InsertResult is returned by inserts using the ignore-on-conflict policy.
// ID is only meaningful when Status is InsertStatusInserted.
type InsertResult struct {
	ID     int64        `json:"id,omitempty"`
	Status InsertStatus `json:"status"`
}

func (r InsertResult) Inserted() bool {
	return r.Status == InsertStatusInserted
}

type CreateNoteRequest struct {
	Title string `json:"title" validate:"required,max=255,notetitle"`
	Value string `json:"value"`
	Path  string `json:"path" validate:"omitempty,max=4096,notepath"`
}

// UpdateNoteRequest carries no type: an updated note is always stored plain
type UpdateNoteRequest struct {
	Title string `json:"title" validate:"required,max=255,notetitle"`
	Value string `json:"value"`
	Path  string `json:"path" validate:"omitempty,max=4096,notepath"`
}

type CreateWidgetRequest struct {
	WidgetID int64 `json:"widget_id" validate:"required,gt=0"`
	NoteID   int64 `json:"note_id" validate:"required,gt=0"`
}

// UpdateStatus is the outcome of a full-row note update
type UpdateStatus string

const (
	UpdateStatusUpdated          UpdateStatus = "updated"
	UpdateStatusNotFound         UpdateStatus = "not_found"
	UpdateStatusIgnoredDuplicate UpdateStatus = "ignored_duplicate"
)
