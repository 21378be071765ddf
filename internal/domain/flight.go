// Package domain contains the core business entities and rules for the flight
// search system. These entities are provider-shape agnostic: the amadeus adapter
// normalizes raw offers into them, and everything downstream (filtering, sorting,
// HTTP responses) works on these types only.
package domain

import "time"

// Airport represents a searchable airport or city location.
// Identity is the IATA code.
type Airport struct {
	// IATACode is the 3-letter IATA location code (e.g., "JFK")
	IATACode string `json:"iataCode"`

	// Name is the location name as reported by the provider
	Name string `json:"name"`

	// CityName is the city the airport belongs to
	CityName string `json:"cityName"`

	// CountryCode is the ISO 3166-1 alpha-2 country code
	CountryCode string `json:"countryCode"`

	// CountryName is the full country name, when available
	CountryName string `json:"countryName,omitempty"`

	// SubType distinguishes AIRPORT from CITY results
	SubType string `json:"subType,omitempty"`

	// DetailedName is the extended display name (e.g., "PARIS/FR: CHARLES DE GAULLE")
	DetailedName string `json:"detailedName,omitempty"`

	// Score is the provider's traveler-relevance score
	Score int `json:"score,omitempty"`
}

// SegmentPoint is one end of a flown segment.
type SegmentPoint struct {
	// IATACode is the airport code
	IATACode string `json:"iataCode"`

	// Terminal is the terminal identifier, when known
	Terminal string `json:"terminal,omitempty"`

	// At is the scheduled local time at the airport
	At time.Time `json:"at"`
}

// Segment is one non-stop flown leg between two airports.
// Invariant: Arrival.At is after Departure.At.
type Segment struct {
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`

	// CarrierCode is the operating airline's IATA code (e.g., "UX")
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number within the carrier
	Number string `json:"number"`

	// AircraftCode is the IATA aircraft type code (e.g., "32N")
	AircraftCode string `json:"aircraftCode,omitempty"`

	// Duration is the segment duration in ISO 8601 form (e.g., "PT2H30M")
	Duration string `json:"duration,omitempty"`
}

// Itinerary is one directional journey (outbound or return), an ordered
// non-empty sequence of segments.
type Itinerary struct {
	// Duration is the total itinerary duration in ISO 8601 form
	Duration string `json:"duration"`

	// Segments are the flown legs in travel order
	Segments []Segment `json:"segments"`
}

// Stops returns the number of stops for the itinerary (segments minus one).
func (i Itinerary) Stops() int {
	if len(i.Segments) == 0 {
		return 0
	}
	return len(i.Segments) - 1
}

// Layover is the ground time between two consecutive segments.
type Layover struct {
	// Airport is the IATA code of the connecting airport
	Airport string `json:"airport"`

	// Duration is the layover length in minutes
	Duration int `json:"duration"`
}

// ReturnInfo summarizes the return leg of a round-trip offer.
type ReturnInfo struct {
	Stops         int       `json:"stops"`
	Duration      int       `json:"duration"` // minutes
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Segments      []Segment `json:"segments"`
}

// Flight is the canonical offer built once by the normalizer from one raw
// upstream offer. The itinerary summary fields (Stops, Duration, times,
// Origin, Destination) describe the outbound itinerary only.
type Flight struct {
	// ID is the provider-assigned offer id, unique within one response
	ID string `json:"id"`

	// Price is the grand total for all travelers
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// BasePrice is the fare before taxes and fees
	BasePrice float64 `json:"basePrice"`

	// AirlineCode is the validating carrier code
	AirlineCode string `json:"airlineCode"`

	// AirlineName is the resolved display name for the carrier
	AirlineName string `json:"airlineName"`

	// AircraftNames lists aircraft types across outbound segments,
	// deduplicated in order of first appearance
	AircraftNames []string `json:"aircraftNames"`

	// Stops is the number of stops on the outbound itinerary
	Stops int `json:"stops"`

	// Duration is the outbound itinerary duration in minutes
	Duration int `json:"duration"`

	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`

	// Origin and Destination are the outbound endpoints' IATA codes
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	DepartureTerminal string `json:"departureTerminal,omitempty"`
	ArrivalTerminal   string `json:"arrivalTerminal,omitempty"`

	// Cabin is the fare class tier (ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)
	Cabin string `json:"cabin"`

	// BrandedFare is the marketed fare family label (e.g., "LITE")
	BrandedFare string `json:"brandedFare,omitempty"`

	// CheckedBags and CabinBags are the included allowances (pieces)
	CheckedBags int `json:"checkedBags"`
	CabinBags   int `json:"cabinBags"`

	// BagFee is the cost to add a checked bag; nil when the provider
	// reported no such service (absence, not zero)
	BagFee *float64 `json:"bagFee"`

	// Amenities lists included (non-chargeable) perks
	Amenities []string `json:"amenities"`

	// Layovers are the ground stops within the outbound itinerary
	Layovers []Layover `json:"layovers"`

	// ReturnFlight summarizes itineraries[1] for round trips
	ReturnFlight *ReturnInfo `json:"returnFlight,omitempty"`

	// Itineraries retains the full itinerary list for detail rendering
	Itineraries []Itinerary `json:"itineraries"`
}
