package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
)

// fallbackOffersMax caps the offers fetched when price metrics are
// unavailable for a route.
const fallbackOffersMax = 5

// AnalysisQuery are the parameters of a route price analysis.
type AnalysisQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Currency      string
}

func (q *AnalysisQuery) setDefaults() {
	if q.Currency == "" {
		q.Currency = "USD"
	}
}

func (q *AnalysisQuery) validate() error {
	if q.Origin == "" || q.Destination == "" || q.DepartureDate == "" {
		return fmt.Errorf("%w: origin, destination and departureDate are required", domain.ErrInvalidRequest)
	}
	return nil
}

// PriceAnalysis is the analysis result. Metrics holds the upstream
// price-metrics body on the primary path; on the fallback path it is empty
// and FlightOffers carries a small live sample instead.
type PriceAnalysis struct {
	Metrics      json.RawMessage
	Fallback     bool
	FlightOffers *amadeus.FlightOffersResponse
}

// PriceAnalysisUseCase reports historical price positioning for a route.
type PriceAnalysisUseCase interface {
	// Analyze fetches price metrics for the route, falling back to a live
	// offers sample when the metrics endpoint has no data.
	Analyze(ctx context.Context, query AnalysisQuery) (*PriceAnalysis, error)
}

type priceAnalysisUseCase struct {
	gateway UpstreamGateway
	log     *logger.Logger
}

var _ PriceAnalysisUseCase = (*priceAnalysisUseCase)(nil)

// NewPriceAnalysisUseCase creates the price analysis orchestrator.
func NewPriceAnalysisUseCase(gateway UpstreamGateway, log *logger.Logger) PriceAnalysisUseCase {
	return &priceAnalysisUseCase{gateway: gateway, log: log}
}

// Analyze implements PriceAnalysisUseCase. The metrics endpoint covers only
// well-trafficked routes; when it fails the result degrades to a fallback
// offers sample rather than an error. Only a double failure surfaces an error.
func (uc *priceAnalysisUseCase) Analyze(ctx context.Context, query AnalysisQuery) (*PriceAnalysis, error) {
	query.setDefaults()
	if err := query.validate(); err != nil {
		return nil, err
	}

	metrics, err := uc.gateway.PriceMetrics(ctx,
		strings.ToUpper(query.Origin),
		strings.ToUpper(query.Destination),
		query.DepartureDate,
		query.Currency,
	)
	if err == nil {
		return &PriceAnalysis{Metrics: metrics}, nil
	}

	uc.log.Warn().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Err(err).
		Msg("Price metrics unavailable, falling back to live offers")

	offers, offersErr := uc.gateway.SearchFlightOffers(ctx, domain.SearchCriteria{
		Origin:        strings.ToUpper(query.Origin),
		Destination:   strings.ToUpper(query.Destination),
		DepartureDate: query.DepartureDate,
		Adults:        1,
		Currency:      query.Currency,
		Max:           fallbackOffersMax,
	})
	if offersErr != nil {
		return nil, fmt.Errorf("price analysis failed: %w", offersErr)
	}

	return &PriceAnalysis{Fallback: true, FlightOffers: offers}, nil
}
