package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound   = errors.New("note not found")
	ErrDuplicateTitle = errors.New("a note with this title already exists")

	// Widget errors
	ErrDuplicateWidget = errors.New("widget already exists")
)
