// Package usecase contains the search orchestrators and the filter/sort
// engine. Orchestrators coordinate the upstream gateway, the result caches,
// and the normalizer; they never touch HTTP concerns.
package usecase

import (
	"context"
	"encoding/json"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
)

// UpstreamGateway is the consumer-side view of the upstream flight-data
// client. Satisfied by *amadeus.Client; tests substitute fakes.
type UpstreamGateway interface {
	// SearchLocations queries airports and cities by keyword, optionally
	// restricted to a country.
	SearchLocations(ctx context.Context, keyword, countryCode string, limit int) ([]amadeus.Location, error)

	// SearchFlightOffers queries priced offers for the given criteria.
	SearchFlightOffers(ctx context.Context, criteria domain.SearchCriteria) (*amadeus.FlightOffersResponse, error)

	// PriceMetrics queries historical price quartiles for a route.
	PriceMetrics(ctx context.Context, origin, destination, departureDate, currency string) (json.RawMessage, error)
}

var _ UpstreamGateway = (*amadeus.Client)(nil)
