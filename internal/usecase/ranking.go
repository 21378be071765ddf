package usecase

import (
	"sort"

	"github.com/flyon/flyon-api/internal/domain"
)

// Best-score weights. Price dominates, duration and stop count temper it.
const (
	weightPrice    = 0.5
	weightDuration = 0.3
	weightStops    = 0.2
)

// SortFlights returns the flights sorted by the given option using a stable
// sort, so equal keys keep their incoming order. The input slice is never
// mutated.
//
// The "best" option scores each flight relative to the maxima of the set it
// is sorted within:
//
//	score = 0.5*price/maxPrice + 0.3*duration/maxDuration + 0.2*stops/maxStops
//
// Lower is better. Maxima are floored at 1 so all-zero dimensions (e.g. every
// flight direct) contribute zero instead of dividing by zero.
func SortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	if len(result) < 2 {
		return result
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration < result[j].Duration
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime.Before(result[j].DepartureTime)
		})
	default:
		sort.Stable(byBestScore{flights: result, scores: bestScores(result)})
	}

	return result
}

// byBestScore sorts flights and their positional scores in tandem.
type byBestScore struct {
	flights []domain.Flight
	scores  []float64
}

func (s byBestScore) Len() int           { return len(s.flights) }
func (s byBestScore) Less(i, j int) bool { return s.scores[i] < s.scores[j] }
func (s byBestScore) Swap(i, j int) {
	s.flights[i], s.flights[j] = s.flights[j], s.flights[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// bestScores computes the weighted score per flight, positionally aligned
// with the input.
func bestScores(flights []domain.Flight) []float64 {
	maxPrice, maxDuration, maxStops := 1.0, 1.0, 1.0
	for _, f := range flights {
		if f.Price > maxPrice {
			maxPrice = f.Price
		}
		if float64(f.Duration) > maxDuration {
			maxDuration = float64(f.Duration)
		}
		if float64(f.Stops) > maxStops {
			maxStops = float64(f.Stops)
		}
	}

	scores := make([]float64, len(flights))
	for i, f := range flights {
		scores[i] = weightPrice*f.Price/maxPrice +
			weightDuration*float64(f.Duration)/maxDuration +
			weightStops*float64(f.Stops)/maxStops
	}
	return scores
}
