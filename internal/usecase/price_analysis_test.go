package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
)

func analysisQ() AnalysisQuery {
	return AnalysisQuery{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15"}
}

func TestAnalyze_Validation(t *testing.T) {
	uc := NewPriceAnalysisUseCase(&fakeGateway{}, logger.Nop())

	tests := []struct {
		name  string
		query AnalysisQuery
	}{
		{name: "missing origin", query: AnalysisQuery{Destination: "LHR", DepartureDate: "2026-06-15"}},
		{name: "missing destination", query: AnalysisQuery{Origin: "JFK", DepartureDate: "2026-06-15"}},
		{name: "missing date", query: AnalysisQuery{Origin: "JFK", Destination: "LHR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Analyze(context.Background(), tt.query)

			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestAnalyze_MetricsPath(t *testing.T) {
	metricsBody := json.RawMessage(`{"data":[{"priceMetrics":[{"amount":"120.00","quartileRanking":"MINIMUM"}]}]}`)

	gw := &fakeGateway{
		metricsFn: func(origin, destination, departureDate, currency string) (json.RawMessage, error) {
			assert.Equal(t, "JFK", origin)
			assert.Equal(t, "LHR", destination)
			assert.Equal(t, "2026-06-15", departureDate)
			assert.Equal(t, "USD", currency)
			return metricsBody, nil
		},
	}
	uc := NewPriceAnalysisUseCase(gw, logger.Nop())

	analysis, err := uc.Analyze(context.Background(), analysisQ())

	require.NoError(t, err)
	assert.False(t, analysis.Fallback)
	assert.JSONEq(t, string(metricsBody), string(analysis.Metrics))
	assert.Nil(t, analysis.FlightOffers)
	assert.Equal(t, 0, gw.offerCallCount(), "no fallback fetch when metrics succeed")
}

func TestAnalyze_FallbackToLiveOffers(t *testing.T) {
	gw := &fakeGateway{
		// metricsFn nil: the metrics endpoint fails.
		offersFn: func(criteria domain.SearchCriteria) (*amadeus.FlightOffersResponse, error) {
			assert.Equal(t, fallbackOffersMax, criteria.Max)
			return &amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{offer("1", 300, 0, "PT7H")}}, nil
		},
	}
	uc := NewPriceAnalysisUseCase(gw, logger.Nop())

	analysis, err := uc.Analyze(context.Background(), analysisQ())

	require.NoError(t, err)
	assert.True(t, analysis.Fallback)
	require.NotNil(t, analysis.FlightOffers)
	assert.Len(t, analysis.FlightOffers.Data, 1)
}

func TestAnalyze_DoubleFailure(t *testing.T) {
	uc := NewPriceAnalysisUseCase(&fakeGateway{}, logger.Nop())

	_, err := uc.Analyze(context.Background(), analysisQ())

	assert.ErrorIs(t, err, errGatewayDown)
}
