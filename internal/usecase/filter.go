package usecase

import "github.com/flyon/flyon-api/internal/domain"

// ApplyFilters returns the flights passing every active predicate in state.
// Predicates are a conjunction; empty stop and airline sets match everything.
// The input slice is never mutated.
func ApplyFilters(flights []domain.Flight, state domain.FilterState) []domain.Flight {
	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if state.Matches(f) {
			result = append(result, f)
		}
	}
	return result
}
