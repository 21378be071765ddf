package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flyon/flyon-api/internal/infrastructure/logger"
)

// Setup registers the middleware chain in order: RequestID first so every
// later log line can carry the ID, then RequestLogger, then Recover
// innermost so panics are logged with full request context.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
