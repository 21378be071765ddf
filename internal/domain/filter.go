package domain

import "strings"

// SortOption defines the available sorting options for flight results.
type SortOption string

// Available sort options.
const (
	// SortByBest sorts by the dataset-relative weighted score (default)
	SortByBest SortOption = "best"

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by outbound duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByBest, SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByBest if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(s))
	if option.IsValid() {
		return option
	}
	return SortByBest
}

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price falls within the range, both ends inclusive.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// HourRange is a half-open window of local hours of day: [Start, End).
// An End of 24 includes the 23:00 hour.
type HourRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the hour lies in [Start, End).
func (r HourRange) Contains(hour int) bool {
	return hour >= r.Start && hour < r.End
}

// FilterState holds the composable filter predicates plus the sort mode
// applied to an already-normalized flight set.
//
// Empty Stops and Airlines mean "no restriction" (match everything), not
// "match nothing".
type FilterState struct {
	// Stops restricts to flights with a stop count in the set
	Stops []int `json:"stops"`

	// PriceRange restricts price, inclusive both ends
	PriceRange PriceRange `json:"priceRange"`

	// Airlines restricts to the given carrier codes
	Airlines []string `json:"airlines"`

	// DepartureTimeRange restricts the local departure hour, half-open
	DepartureTimeRange HourRange `json:"departureTimeRange"`

	// ArrivalTimeRange restricts the local arrival hour, half-open
	ArrivalTimeRange HourRange `json:"arrivalTimeRange"`

	// MaxDuration is the maximum outbound duration in minutes
	MaxDuration int `json:"maxDuration"`

	// SortBy selects the sort mode applied after filtering
	SortBy SortOption `json:"sortBy"`
}

// Default filter bounds.
const (
	DefaultMaxPrice    = 10000
	DefaultMaxDuration = 2880 // 48 hours
)

// DefaultFilterState returns the permissive filter state used when no
// filters are active.
func DefaultFilterState() FilterState {
	return FilterState{
		Stops:              nil,
		PriceRange:         PriceRange{Min: 0, Max: DefaultMaxPrice},
		Airlines:           nil,
		DepartureTimeRange: HourRange{Start: 0, End: 24},
		ArrivalTimeRange:   HourRange{Start: 0, End: 24},
		MaxDuration:        DefaultMaxDuration,
		SortBy:             SortByBest,
	}
}

// Matches checks whether a flight passes every active predicate.
// Predicates are a conjunction: one failure excludes the flight.
func (f FilterState) Matches(flight Flight) bool {
	if len(f.Stops) > 0 && !containsInt(f.Stops, flight.Stops) {
		return false
	}

	if !f.PriceRange.Contains(flight.Price) {
		return false
	}

	if len(f.Airlines) > 0 && !containsAirline(f.Airlines, flight.AirlineCode) {
		return false
	}

	if !f.DepartureTimeRange.Contains(flight.DepartureTime.Hour()) {
		return false
	}

	if !f.ArrivalTimeRange.Contains(flight.ArrivalTime.Hour()) {
		return false
	}

	if flight.Duration > f.MaxDuration {
		return false
	}

	return true
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// containsAirline matches carrier codes case-insensitively.
func containsAirline(codes []string, code string) bool {
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}
