package domain

// SearchResponse represents the normalized response for a flight search.
type SearchResponse struct {
	// SearchCriteria echoes the search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Flights contains the normalized offers after filtering and sorting
	Flights []Flight `json:"flights"`

	// Carriers maps carrier codes to display names for the result set
	Carriers map[string]string `json:"carriers"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of flights returned after filtering
	TotalResults int `json:"total_results"`

	// OffersFetched is the number of raw offers the provider returned
	OffersFetched int `json:"offers_fetched"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the offers came from the result cache
	CacheHit bool `json:"cache_hit"`
}

// NewSearchResponse creates a SearchResponse, normalizing nil slices so
// consumers never branch on missing fields.
func NewSearchResponse(criteria SearchCriteria, flights []Flight, carriers map[string]string, metadata SearchMetadata) SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	if carriers == nil {
		carriers = map[string]string{}
	}
	metadata.TotalResults = len(flights)

	return SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Flights:        flights,
		Carriers:       carriers,
	}
}

// CalendarEntry is one day of the price calendar. Price is nil when the
// provider returned no offer for that date (a degraded data point, not an
// error).
type CalendarEntry struct {
	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// Price is the cheapest offer found for the date, nil when unknown
	Price *float64 `json:"price"`

	// Currency is the ISO 4217 code the price is quoted in
	Currency string `json:"currency"`
}
