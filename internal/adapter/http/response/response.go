// Package response provides the JSON response builders shared by all
// handlers. Every endpoint answers with one of the shapes defined here so
// clients never branch on missing fields.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataEnvelope wraps list payloads: {"data": [...]}.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// ErrorEnvelope is the error payload. Data is included on endpoints whose
// contract promises an empty collection alongside the error.
type ErrorEnvelope struct {
	Error string      `json:"error"`
	Data  interface{} `json:"data,omitempty"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Data writes a 200 OK response with the payload wrapped in a data envelope.
func Data(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &DataEnvelope{Data: data})
}

// OK writes a 200 OK response with the payload as-is, for endpoints with
// their own envelope (raw offers, normalized search).
func OK(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

// BadRequest writes a 400 response with the validation message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorEnvelope{Error: message})
}

// InternalError writes a 500 response. data, when non-nil, preserves the
// endpoint's collection shape so clients degrade instead of breaking.
func InternalError(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusInternalServerError, &ErrorEnvelope{Error: message, Data: data})
}

// BadGateway writes a 502 response with an endpoint-specific payload,
// used when the upstream provider failed.
func BadGateway(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusBadGateway, payload)
}

// Health writes the health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}
