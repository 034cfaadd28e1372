package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"legacy-notes/services"
	"legacy-notes/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  errs.Error(),
			"fields": errs,
		})
	}
	return badRequest(c, err.Error())
}

// ErrorStatus reports the HTTP status and client message for a service
// error. ok is false for errors the services do not define.
func ErrorStatus(err error) (code int, message string, ok bool) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		return fiber.StatusNotFound, "Note not found", true
	case errors.Is(err, services.ErrDuplicateTitle):
		return fiber.StatusConflict, "A note with this title already exists", true
	case errors.Is(err, services.ErrDuplicateWidget):
		return fiber.StatusConflict, "Widget already exists", true
	default:
		return 0, "", false
	}
}

// serviceError maps service errors to HTTP responses
func serviceError(c *fiber.Ctx, message string, err error) error {
	if code, msg, ok := ErrorStatus(err); ok {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	return serverErrorWithDetails(c, message, err)
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// idParam parses a positive integer route parameter
func idParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
