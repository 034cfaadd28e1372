package app

import (
	"legacy-notes/database"
	"legacy-notes/services"
	"legacy-notes/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Store         *database.Store
	NoteService   *services.NoteService
	WidgetService *services.WidgetService
	Validator     *validator.Validator
	Logger        *slog.Logger
}

// New creates a new App instance with all dependencies
func New(store *database.Store, logger *slog.Logger) *App {
	return &App{
		Store:         store,
		NoteService:   services.NewNoteService(store, logger),
		WidgetService: services.NewWidgetService(store),
		Validator:     validator.New(),
		Logger:        logger,
	}
}
