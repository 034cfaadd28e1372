package setup

import (
	"legacy-notes/app"
	"legacy-notes/database"
	"legacy-notes/locale"
	"log/slog"
)

// InitDatabase opens the SQLite database and creates the schema, seeding the
// default note with a title in the configured locale
func InitDatabase(driver, dbPath, lang string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(driver, dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(locale.DefaultNoteTitle(lang)); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath, "driver", driver, "schema_version", database.SchemaVersion)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	store := database.NewStore(db, logger)

	application := app.New(store, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases the store
func Shutdown(application *app.App, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.Store != nil {
		if err := application.Store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
