package setup

import (
	"legacy-notes/app"
	"legacy-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	// Static note routes must precede /notes/:id
	api.Get("/notes", handlers.ListNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Get("/notes/title-exists", handlers.NoteTitleExists(application))
	api.Get("/notes/by-path", handlers.GetNoteIDByPath(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
	api.Get("/notes/:id/widgets", handlers.GetNoteWidgets(application))

	api.Get("/widgets", handlers.ListWidgets(application))
	api.Post("/widgets", handlers.CreateWidget(application))
}
