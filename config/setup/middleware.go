package setup

import (
	"log/slog"

	"legacy-notes/config"
	"legacy-notes/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ApplyMiddleware installs the global middleware chain. CORS origins and the
// per-IP request budget come from cfg.
func ApplyMiddleware(app *fiber.App, cfg *config.Config, logger *slog.Logger) {
	app.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CorsOrigins,
			AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:  "Origin,Content-Type,Accept,X-Request-ID",
			ExposeHeaders: "X-Request-ID",
			MaxAge:        86400,
		}),
		limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/health"
			},
			LimitReached: func(c *fiber.Ctx) error {
				logger.Warn("rate limit exceeded", "ip", c.IP(), "path", c.Path())
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)
}
