package setup

import (
	"errors"
	"log/slog"
	"time"

	"legacy-notes/config"
	"legacy-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp builds the API server; errors that escape a handler go
// through CustomErrorHandler
func NewFiberApp(cfg *config.Config, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           30 * time.Second,
		DisableStartupMessage: cfg.Env == "production",
		ErrorHandler:          CustomErrorHandler(logger),
		AppName:               "legacy-notes",
		BodyLimit:             4 * 1024 * 1024,
	})
}

// CustomErrorHandler renders returned errors as {error, request_id}. Fiber
// errors keep their code, service errors use the same statuses the handlers
// answer with, anything else is a 500.
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := fiber.StatusInternalServerError, "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, message = fe.Code, fe.Message
		} else if status, msg, ok := handlers.ErrorStatus(err); ok {
			code, message = status, msg
		}

		requestID, _ := c.Locals("requestID").(string)

		level := slog.LevelWarn
		if code >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Context(), level, "request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
