package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/usecase"
)

// FlightOffersQuery holds the query parameters of the raw offers endpoint.
type FlightOffersQuery struct {
	Origin        string `query:"origin"`
	Destination   string `query:"destination"`
	DepartureDate string `query:"departureDate"`
	ReturnDate    string `query:"returnDate"`
	Adults        int    `query:"adults"`
	Children      int    `query:"children"`
	Infants       int    `query:"infants"`
	CabinClass    string `query:"cabinClass"`
	Max           int    `query:"max"`
	Currency      string `query:"currency"`
	NonStop       bool   `query:"nonStop"`
}

// ToCriteria converts the query into domain search criteria. Codes are
// uppercased here so cache keys and upstream calls see one canonical form.
func (q *FlightOffersQuery) ToCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        strings.ToUpper(strings.TrimSpace(q.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(q.Destination)),
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		Adults:        q.Adults,
		Children:      q.Children,
		Infants:       q.Infants,
		CabinClass:    strings.ToUpper(q.CabinClass),
		Max:           q.Max,
		Currency:      strings.ToUpper(q.Currency),
		NonStop:       q.NonStop,
	}
}

// SearchFlightsRequest is the body of the normalized search endpoint.
type SearchFlightsRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults,omitempty"`
	Children      int    `json:"children,omitempty"`
	Infants       int    `json:"infants,omitempty"`
	CabinClass    string `json:"cabinClass,omitempty"`
	Max           int    `json:"max,omitempty"`
	Currency      string `json:"currency,omitempty"`
	NonStop       bool   `json:"nonStop,omitempty"`

	// Filters are applied server-side after normalization; absent fields
	// keep their permissive defaults
	Filters *FilterRequest `json:"filters,omitempty"`

	// SortBy is one of best, price, duration, departure (default best)
	SortBy string `json:"sortBy,omitempty"`
}

// FilterRequest mirrors domain.FilterState with every field optional.
type FilterRequest struct {
	Stops              []int             `json:"stops,omitempty"`
	PriceRange         *domain.PriceRange `json:"priceRange,omitempty"`
	Airlines           []string          `json:"airlines,omitempty"`
	DepartureTimeRange *domain.HourRange `json:"departureTimeRange,omitempty"`
	ArrivalTimeRange   *domain.HourRange `json:"arrivalTimeRange,omitempty"`
	MaxDuration        int               `json:"maxDuration,omitempty"`
}

// ToCriteria converts the request body into domain search criteria.
func (r *SearchFlightsRequest) ToCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(r.Destination)),
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Adults:        r.Adults,
		Children:      r.Children,
		Infants:       r.Infants,
		CabinClass:    strings.ToUpper(r.CabinClass),
		Max:           r.Max,
		Currency:      strings.ToUpper(r.Currency),
		NonStop:       r.NonStop,
	}
}

// ToFilterState builds the filter state, overlaying the provided fields on
// the permissive defaults.
func (r *SearchFlightsRequest) ToFilterState() domain.FilterState {
	state := domain.DefaultFilterState()
	state.SortBy = domain.ParseSortOption(r.SortBy)

	if r.Filters == nil {
		return state
	}
	f := r.Filters

	if len(f.Stops) > 0 {
		state.Stops = f.Stops
	}
	if f.PriceRange != nil {
		state.PriceRange = *f.PriceRange
	}
	if len(f.Airlines) > 0 {
		state.Airlines = f.Airlines
	}
	if f.DepartureTimeRange != nil {
		state.DepartureTimeRange = *f.DepartureTimeRange
	}
	if f.ArrivalTimeRange != nil {
		state.ArrivalTimeRange = *f.ArrivalTimeRange
	}
	if f.MaxDuration > 0 {
		state.MaxDuration = f.MaxDuration
	}
	return state
}

// calendarQuery parses the price-calendar query parameters.
func calendarQuery(c echo.Context) usecase.CalendarQuery {
	adults, _ := strconv.Atoi(c.QueryParam("adults"))
	return usecase.CalendarQuery{
		Origin:      strings.ToUpper(strings.TrimSpace(c.QueryParam("origin"))),
		Destination: strings.ToUpper(strings.TrimSpace(c.QueryParam("destination"))),
		CenterDate:  c.QueryParam("date"),
		Adults:      adults,
		Currency:    strings.ToUpper(c.QueryParam("currency")),
	}
}

// analysisQuery parses the price-analysis query parameters.
func analysisQuery(c echo.Context) usecase.AnalysisQuery {
	return usecase.AnalysisQuery{
		Origin:        strings.ToUpper(strings.TrimSpace(c.QueryParam("origin"))),
		Destination:   strings.ToUpper(strings.TrimSpace(c.QueryParam("destination"))),
		DepartureDate: c.QueryParam("departureDate"),
		Currency:      strings.ToUpper(c.QueryParam("currency")),
	}
}
