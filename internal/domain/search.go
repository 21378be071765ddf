package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Valid cabin class values, matching the upstream travelClass parameter.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SearchCriteria defines the parameters for a flight-offer search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate makes the search a round trip when set (YYYY-MM-DD)
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default 1)
	Adults int `json:"adults"`

	// Children and Infants are the additional passenger counts
	Children int `json:"children,omitempty"`
	Infants  int `json:"infants,omitempty"`

	// CabinClass is the fare tier: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST
	CabinClass string `json:"cabinClass,omitempty"`

	// Max caps the number of offers requested upstream (default 50)
	Max int `json:"max,omitempty"`

	// Currency is the ISO 4217 code offers are priced in (default USD)
	Currency string `json:"currency,omitempty"`

	// NonStop restricts the search to direct flights
	NonStop bool `json:"nonStop,omitempty"`
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.Max == 0 {
		s.Max = 50
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" || s.Destination == "" || s.DepartureDate == "" {
		return fmt.Errorf("%w: origin, destination and departureDate are required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}
	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if err := validateDate("departureDate", s.DepartureDate); err != nil {
		return err
	}
	if s.ReturnDate != "" {
		if err := validateDate("returnDate", s.ReturnDate); err != nil {
			return err
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}
	if s.Children < 0 || s.Infants < 0 {
		return fmt.Errorf("%w: passenger counts cannot be negative", ErrInvalidRequest)
	}

	if s.CabinClass != "" && !validCabinClasses[strings.ToUpper(s.CabinClass)] {
		return fmt.Errorf("%w: cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", ErrInvalidRequest, s.CabinClass)
	}

	return nil
}

func validateDate(field, value string) error {
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

// CacheKey builds a deterministic cache key from the full canonicalized
// parameter set, so distinct passenger/cabin/date combinations never collide.
func (s *SearchCriteria) CacheKey() string {
	return fmt.Sprintf("flights:%s:%s:%s:%s:%d:%d:%d:%s:%d:%s:%t",
		strings.ToUpper(s.Origin),
		strings.ToUpper(s.Destination),
		s.DepartureDate,
		s.ReturnDate,
		s.Adults,
		s.Children,
		s.Infants,
		strings.ToUpper(s.CabinClass),
		s.Max,
		strings.ToUpper(s.Currency),
		s.NonStop,
	)
}
