package usecase

import (
	"context"
	"time"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/cache"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
)

// FlightSearchUseCase runs flight-offer searches against the upstream,
// backed by the result cache.
type FlightSearchUseCase interface {
	// SearchOffers returns the raw offers for the criteria, from the cache
	// when fresh. The bool reports a cache hit.
	SearchOffers(ctx context.Context, criteria domain.SearchCriteria) (*amadeus.FlightOffersResponse, bool, error)

	// Search runs a full normalized search: fetch offers, normalize, filter,
	// sort, and assemble the response envelope.
	Search(ctx context.Context, criteria domain.SearchCriteria, filters domain.FilterState) (*domain.SearchResponse, error)
}

type flightSearchUseCase struct {
	gateway UpstreamGateway
	cache   *cache.Store[*amadeus.FlightOffersResponse]
	ttl     time.Duration
	log     *logger.Logger
}

var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)

// SkipEmptyOffers reports whether an offers response carries no offers.
// Wired as the flight cache's skip-store predicate: an upstream hiccup that
// yields zero offers must not pin an empty result for the full TTL.
func SkipEmptyOffers(resp *amadeus.FlightOffersResponse) bool {
	return resp == nil || len(resp.Data) == 0
}

// NewFlightSearchUseCase creates the flight search orchestrator.
func NewFlightSearchUseCase(gateway UpstreamGateway, store *cache.Store[*amadeus.FlightOffersResponse], ttl time.Duration, log *logger.Logger) FlightSearchUseCase {
	return &flightSearchUseCase{
		gateway: gateway,
		cache:   store,
		ttl:     ttl,
		log:     log,
	}
}

// SearchOffers implements FlightSearchUseCase. Criteria are defaulted and
// validated before any cache or upstream access; validation failures wrap
// domain.ErrInvalidRequest.
func (uc *flightSearchUseCase) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) (*amadeus.FlightOffersResponse, bool, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, false, err
	}

	resp, hit, err := uc.cache.GetOrFetch(ctx, criteria.CacheKey(), uc.ttl, func(ctx context.Context) (*amadeus.FlightOffersResponse, error) {
		return uc.gateway.SearchFlightOffers(ctx, criteria)
	})
	if err != nil {
		return nil, false, err
	}

	uc.log.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("departure_date", criteria.DepartureDate).
		Int("offers", len(resp.Data)).
		Bool("cache_hit", hit).
		Msg("Flight offers search completed")

	return resp, hit, nil
}

// Search implements FlightSearchUseCase.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, filters domain.FilterState) (*domain.SearchResponse, error) {
	start := time.Now()

	resp, hit, err := uc.SearchOffers(ctx, criteria)
	if err != nil {
		return nil, err
	}

	flights, carriers := amadeus.Normalize(resp)
	flights = ApplyFilters(flights, filters)
	flights = SortFlights(flights, filters.SortBy)

	criteria.SetDefaults()
	response := domain.NewSearchResponse(criteria, flights, carriers, domain.SearchMetadata{
		OffersFetched: len(resp.Data),
		SearchTimeMs:  time.Since(start).Milliseconds(),
		CacheHit:      hit,
	})
	return &response, nil
}
