package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// StructuredLogger tags every request with a request id and logs one line
// per request. A caller-supplied X-Request-ID is kept when it is a UUID.
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Locals("requestID", requestID)
		c.Set(requestIDHeader, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", len(c.Response().Body())),
			slog.String("ip", c.IP()),
		}
		if noteID := c.Params("id"); noteID != "" {
			attrs = append(attrs, slog.String("note_id", noteID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		level, msg := outcome(c.Path(), status, err)
		logger.LogAttrs(c.Context(), level, msg, attrs...)

		return err
	}
}

// outcome picks level and message for a finished request. Health checks
// only show up at debug level.
func outcome(path string, status int, err error) (slog.Level, string) {
	switch {
	case err != nil:
		return slog.LevelError, "request error"
	case status >= fiber.StatusInternalServerError:
		return slog.LevelError, "server error"
	case status >= fiber.StatusBadRequest:
		return slog.LevelWarn, "client error"
	case path == "/health":
		return slog.LevelDebug, "health check"
	default:
		return slog.LevelInfo, "request completed"
	}
}
