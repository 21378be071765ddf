package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/countries"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/cache"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
)

// Airport search tuning.
const (
	// maxCountryCities bounds the fan-out when a keyword resolves to a country.
	maxCountryCities = 3

	// perCityLimit is the result cap per city sub-search.
	perCityLimit = 3

	// countryResultCap bounds the merged country result set.
	countryResultCap = 10

	// keywordLimit is the result cap for plain keyword searches.
	keywordLimit = 7

	// airportCachePrefix namespaces airport keys in the cache.
	airportCachePrefix = "airports:"
)

// AirportSearchUseCase resolves free-text keywords to airports.
type AirportSearchUseCase interface {
	// SearchAirports returns airports matching the keyword. Country-name
	// keywords expand to that country's major-city airports.
	SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error)
}

type airportSearchUseCase struct {
	gateway UpstreamGateway
	cache   *cache.Store[[]domain.Airport]
	ttl     time.Duration
	log     *logger.Logger
}

var _ AirportSearchUseCase = (*airportSearchUseCase)(nil)

// NewAirportSearchUseCase creates the airport search orchestrator. The store
// should skip empty slices so failed lookups are retried instead of pinned
// for the full TTL.
func NewAirportSearchUseCase(gateway UpstreamGateway, store *cache.Store[[]domain.Airport], ttl time.Duration, log *logger.Logger) AirportSearchUseCase {
	return &airportSearchUseCase{
		gateway: gateway,
		cache:   store,
		ttl:     ttl,
		log:     log,
	}
}

// SearchAirports implements AirportSearchUseCase.
//
// The keyword is first run through the country resolver. A country match fans
// out to up to maxCountryCities concurrent city sub-searches restricted to
// that country; sub-search failures are swallowed so one bad city cannot sink
// the whole lookup. Results merge in city-priority order, deduplicated by
// IATA code, capped at countryResultCap. Without a country match the keyword
// goes upstream as-is with keywordLimit.
func (uc *airportSearchUseCase) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < 1 {
		return []domain.Airport{}, nil
	}

	key := airportCachePrefix + strings.ToUpper(keyword)

	airports, hit, err := uc.cache.GetOrFetch(ctx, key, uc.ttl, func(ctx context.Context) ([]domain.Airport, error) {
		if match, ok := countries.Resolve(keyword); ok {
			return uc.searchByCountry(ctx, match), nil
		}
		return uc.searchByKeyword(ctx, keyword)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("keyword", keyword).
		Int("results", len(airports)).
		Bool("cache_hit", hit).
		Msg("Airport search completed")

	return airports, nil
}

// searchByCountry fans out one sub-search per major city and merges the
// results by city priority. Per-city errors degrade to zero results for that
// city.
func (uc *airportSearchUseCase) searchByCountry(ctx context.Context, match countries.Match) []domain.Airport {
	cities := match.MajorCities
	if len(cities) > maxCountryCities {
		cities = cities[:maxCountryCities]
	}

	// Results land by index so merge order follows city priority, not
	// completion order.
	results := make([][]amadeus.Location, len(cities))

	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func(i int, city string) {
			defer wg.Done()

			locations, err := uc.gateway.SearchLocations(ctx, city, match.Code, perCityLimit)
			if err != nil {
				uc.log.Warn().
					Str("city", city).
					Str("country", match.Code).
					Err(err).
					Msg("City sub-search failed, skipping")
				return
			}
			results[i] = locations
		}(i, city)
	}
	wg.Wait()

	merged := make([]domain.Airport, 0, countryResultCap)
	seen := make(map[string]struct{}, countryResultCap)

	for _, locations := range results {
		for _, airport := range amadeus.NormalizeLocations(locations) {
			if _, dup := seen[airport.IATACode]; dup {
				continue
			}
			seen[airport.IATACode] = struct{}{}
			merged = append(merged, airport)
			if len(merged) == countryResultCap {
				return merged
			}
		}
	}
	return merged
}

func (uc *airportSearchUseCase) searchByKeyword(ctx context.Context, keyword string) ([]domain.Airport, error) {
	locations, err := uc.gateway.SearchLocations(ctx, keyword, "", keywordLimit)
	if err != nil {
		return nil, err
	}
	return amadeus.NormalizeLocations(locations), nil
}
