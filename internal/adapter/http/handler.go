// Package http provides the HTTP handler layer: request parsing, error
// mapping, and response formatting for the flight search API.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/adapter/http/response"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/usecase"
)

// Handler serves the flight search API endpoints.
type Handler struct {
	airports usecase.AirportSearchUseCase
	flights  usecase.FlightSearchUseCase
	calendar usecase.PriceCalendarUseCase
	analysis usecase.PriceAnalysisUseCase
}

// NewHandler creates a Handler over the search use cases.
func NewHandler(
	airports usecase.AirportSearchUseCase,
	flights usecase.FlightSearchUseCase,
	calendar usecase.PriceCalendarUseCase,
	analysis usecase.PriceAnalysisUseCase,
) *Handler {
	return &Handler{
		airports: airports,
		flights:  flights,
		calendar: calendar,
		analysis: analysis,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// SearchAirports handles GET /api/v1/airports
//
// @Summary Search airports and cities
// @Description Resolves a free-text keyword to airports. Country names expand to the country's major airports.
// @Tags airports
// @Produce json
// @Param keyword query string true "Airport, city or country name"
// @Success 200 {object} response.DataEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /api/v1/airports [get]
func (h *Handler) SearchAirports(c echo.Context) error {
	airports, err := h.airports.SearchAirports(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return response.InternalError(c, "airport search failed", []domain.Airport{})
	}
	return response.Data(c, airports)
}

// GetFlightOffers handles GET /api/v1/flights
//
// @Summary Search flight offers (raw)
// @Description Returns the upstream flight offers for the route and date, cached for a short period.
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Adult passengers (default 1)"
// @Param cabinClass query string false "ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST"
// @Param nonStop query bool false "Direct flights only"
// @Success 200 {object} amadeus.FlightOffersResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 502 {object} offersFailure
// @Router /api/v1/flights [get]
func (h *Handler) GetFlightOffers(c echo.Context) error {
	var query FlightOffersQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "failed to parse query parameters")
	}

	offers, _, err := h.flights.SearchOffers(c.Request().Context(), query.ToCriteria())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return response.BadRequest(c, err.Error())
		}
		// Keep the endpoint's shape on upstream failure so clients render
		// an empty result instead of breaking.
		return response.BadGateway(c, &offersFailure{
			Error:        "flight search failed",
			Data:         []amadeus.FlightOffer{},
			Dictionaries: amadeus.Dictionaries{},
		})
	}

	return response.OK(c, offers)
}

// offersFailure is the degraded raw-offers payload.
type offersFailure struct {
	Error        string               `json:"error"`
	Data         []amadeus.FlightOffer `json:"data"`
	Dictionaries amadeus.Dictionaries `json:"dictionaries"`
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search flights (normalized)
// @Description Fetches offers, normalizes them, applies filters, and sorts the result.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria and filters"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 502 {object} response.ErrorEnvelope
// @Router /api/v1/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "failed to parse request body")
	}

	result, err := h.flights.Search(c.Request().Context(), req.ToCriteria(), req.ToFilterState())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return response.BadRequest(c, err.Error())
		}
		return response.BadGateway(c, &response.ErrorEnvelope{
			Error: "flight search failed",
			Data:  []domain.Flight{},
		})
	}

	return response.OK(c, result)
}

// GetPriceCalendar handles GET /api/v1/price-calendar
//
// @Summary Cheapest price per day around a date
// @Description Scans 15 days either side of the given date. Dates with no available price carry null.
// @Tags prices
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param date query string true "Center date (YYYY-MM-DD)"
// @Param adults query int false "Adult passengers (default 1)"
// @Param currency query string false "Currency code (default USD)"
// @Success 200 {object} response.DataEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /api/v1/price-calendar [get]
func (h *Handler) GetPriceCalendar(c echo.Context) error {
	entries, err := h.calendar.PriceCalendar(c.Request().Context(), calendarQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalError(c, "price calendar failed", []domain.CalendarEntry{})
	}
	return response.Data(c, entries)
}

// GetPriceAnalysis handles GET /api/v1/price-analysis
//
// @Summary Historical price positioning for a route
// @Description Returns upstream price metrics, falling back to a live offers sample when the route has no metrics.
// @Tags prices
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Success 200 {object} analysisFallback
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /api/v1/price-analysis [get]
func (h *Handler) GetPriceAnalysis(c echo.Context) error {
	analysis, err := h.analysis.Analyze(c.Request().Context(), analysisQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalError(c, "price analysis failed", []struct{}{})
	}

	if analysis.Fallback {
		return response.OK(c, &analysisFallback{
			Data:         []struct{}{},
			Fallback:     true,
			FlightOffers: analysis.FlightOffers,
		})
	}

	// Metrics pass through verbatim; the upstream body is already the
	// {data: [...]} envelope clients expect.
	return c.JSONBlob(200, analysis.Metrics)
}

// analysisFallback is the degraded price-analysis payload.
type analysisFallback struct {
	Data         []struct{}                    `json:"data"`
	Fallback     bool                          `json:"fallback"`
	FlightOffers *amadeus.FlightOffersResponse `json:"flightOffers"`
}
