// Package amadeus implements the upstream flight-data provider adapter: an
// authenticated HTTP client with retry/backoff and token refresh, the typed
// response records for every upstream field the application consumes, and the
// normalizer that turns raw offers into domain entities. Upstream fields not
// listed here are deliberately ignored rather than modeled.
package amadeus

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// FlightOffersResponse is the flight-offers-search response envelope.
type FlightOffersResponse struct {
	Meta         Meta          `json:"meta"`
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries,omitempty"`
}

// Meta carries response-level counters.
type Meta struct {
	Count int `json:"count"`
}

// Dictionaries maps carrier and aircraft codes to display names for one
// response.
type Dictionaries struct {
	Carriers map[string]string `json:"carriers,omitempty"`
	Aircraft map[string]string `json:"aircraft,omitempty"`
}

// FlightOffer is one priced itinerary bundle.
type FlightOffer struct {
	ID                     string            `json:"id"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  OfferPrice        `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
}

// Itinerary is one directional journey within an offer.
type Itinerary struct {
	// Duration is in ISO 8601 form, e.g. "PT6H15M"
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one non-stop flown leg.
type Segment struct {
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`

	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Aircraft    Aircraft `json:"aircraft"`
	Duration    string   `json:"duration"`
}

// SegmentPoint is one end of a segment. At is a local datetime without zone,
// e.g. "2026-06-01T09:30:00".
type SegmentPoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// Aircraft carries the IATA aircraft type code.
type Aircraft struct {
	Code string `json:"code"`
}

// OfferPrice is the pricing block of an offer. Amounts are decimal strings.
type OfferPrice struct {
	Currency           string              `json:"currency"`
	Total              string              `json:"total"`
	Base               string              `json:"base"`
	GrandTotal         string              `json:"grandTotal"`
	AdditionalServices []AdditionalService `json:"additionalServices,omitempty"`
}

// AdditionalService is a purchasable extra (e.g. checked bags).
type AdditionalService struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// serviceTypeCheckedBags marks the checked-baggage additional service.
const serviceTypeCheckedBags = "CHECKED_BAGS"

// TravelerPricing holds per-traveler fare details.
type TravelerPricing struct {
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

// FareDetail describes the fare on one segment for one traveler.
type FareDetail struct {
	Cabin               string        `json:"cabin"`
	BrandedFare         string        `json:"brandedFare,omitempty"`
	BrandedFareLabel    string        `json:"brandedFareLabel,omitempty"`
	IncludedCheckedBags *BagAllowance `json:"includedCheckedBags,omitempty"`
	IncludedCabinBags   *BagAllowance `json:"includedCabinBags,omitempty"`
	Amenities           []Amenity     `json:"amenities,omitempty"`
}

// BagAllowance is an included baggage allowance.
type BagAllowance struct {
	Quantity   int    `json:"quantity"`
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// Amenity is a fare perk, chargeable or included.
type Amenity struct {
	Description  string `json:"description"`
	IsChargeable bool   `json:"isChargeable"`
	AmenityType  string `json:"amenityType,omitempty"`
}

// LocationsResponse is the reference-data locations response envelope.
type LocationsResponse struct {
	Data []Location `json:"data"`
}

// Location is one airport or city search result.
type Location struct {
	Type         string     `json:"type"`
	SubType      string     `json:"subType"`
	Name         string     `json:"name"`
	DetailedName string     `json:"detailedName"`
	IATACode     string     `json:"iataCode"`
	Address      Address    `json:"address"`
	Analytics    *Analytics `json:"analytics,omitempty"`
}

// Address holds the location's city and country.
type Address struct {
	CityName    string `json:"cityName"`
	CityCode    string `json:"cityCode"`
	CountryName string `json:"countryName"`
	CountryCode string `json:"countryCode"`
}

// Analytics holds the traveler-relevance score.
type Analytics struct {
	Travelers Travelers `json:"travelers"`
}

// Travelers carries the relevance score.
type Travelers struct {
	Score int `json:"score"`
}
