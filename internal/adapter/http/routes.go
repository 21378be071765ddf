package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes attaches the API routes and the swagger UI.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.GET("/airports", h.SearchAirports)
	api.GET("/flights", h.GetFlightOffers)
	api.POST("/flights/search", h.SearchFlights)
	api.GET("/price-calendar", h.GetPriceCalendar)
	api.GET("/price-analysis", h.GetPriceAnalysis)
}
