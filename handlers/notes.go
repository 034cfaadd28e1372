package handlers

import (
	"legacy-notes/app"
	"legacy-notes/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotes retrieves every note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.NoteService.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// GetNote retrieves a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		note, err := a.NoteService.Get(id)
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// CreateNote inserts a new note; a title collision is reported as 409
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, result, err := a.NoteService.Create(req.Title, req.Value, req.Path)
		if err != nil {
			return serviceError(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note, "result": result})
	}
}

// UpdateNote overwrites an existing note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Update(id, req.Title, req.Value, req.Path)
		if err != nil {
			return serviceError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteNote removes a note and the widgets bound to it
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		if err := a.NoteService.Delete(id); err != nil {
			return serviceError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{
			"message": "Note deleted successfully",
		})
	}
}

// NoteTitleExists checks a title case-insensitively
func NoteTitleExists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := c.Query("title")
		if title == "" {
			return badRequest(c, "title is required")
		}

		exists, err := a.NoteService.TitleExists(title)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to check note title", err)
		}

		return success(c, fiber.Map{"exists": exists})
	}
}

// GetNoteIDByPath finds the note backed by a file path
func GetNoteIDByPath(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Query("path")
		if path == "" {
			return badRequest(c, "path is required")
		}

		id, err := a.NoteService.IDByPath(path)
		if err != nil {
			return serviceError(c, "Failed to look up note by path", err)
		}

		return success(c, fiber.Map{"id": id})
	}
}
