package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/flyon/flyon-api/internal/infrastructure/logger"
)

// Recover converts handler panics into 500 responses. The panic and stack
// trace are logged with the request ID; the server keeps serving.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicMsg := fmt.Sprintf("%v", r)
					if perr, ok := r.(error); ok {
						panicMsg = perr.Error()
					}

					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg).
						Str("stack", string(debug.Stack())).
						Msg("Recovered from panic")

					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
