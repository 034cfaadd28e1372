package handlers

import (
	"legacy-notes/app"
	"legacy-notes/models"

	"github.com/gofiber/fiber/v2"
)

// ListWidgets retrieves every widget binding
func ListWidgets(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		widgets, err := a.WidgetService.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch widgets", err)
		}

		return success(c, fiber.Map{"widgets": widgets})
	}
}

// GetNoteWidgets retrieves the widgets showing one note
func GetNoteWidgets(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		widgets, err := a.WidgetService.ListByNote(id)
		if err != nil {
			return serviceError(c, "Failed to fetch widgets", err)
		}

		return success(c, fiber.Map{"widgets": widgets})
	}
}

// CreateWidget binds a platform widget to a note
func CreateWidget(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateWidgetRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		widget, err := a.WidgetService.Create(req.WidgetID, req.NoteID)
		if err != nil {
			return serviceError(c, "Failed to create widget", err)
		}

		return created(c, fiber.Map{"widget": widget})
	}
}
