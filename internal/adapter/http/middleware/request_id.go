// Package middleware provides the HTTP middleware chain: request ID
// propagation, request logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request ID between client and server.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey stores the request ID in the echo context.
	requestIDKey = "request_id"
)

// RequestID propagates the incoming X-Request-ID header, generating a UUID
// when absent. The ID lands in the echo context and the response header so
// log lines and client reports can be correlated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
