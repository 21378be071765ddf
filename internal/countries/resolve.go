package countries

import "strings"

// Matching thresholds.
const (
	// minExactLen is the shortest input considered at all. Curated aliases
	// like "uk" and "us" make 2-character exact matches safe.
	minExactLen = 2

	// minPrefixLen is the shortest input allowed to prefix-match. 3-letter
	// inputs are very likely IATA codes (MAD, CDG, JFK) and must fall
	// through to ordinary keyword search.
	minPrefixLen = 4
)

// Resolve finds a country from free-text user input.
//
// Exact matches against the table (full names and curated aliases) win
// immediately. Otherwise inputs of at least minPrefixLen characters
// prefix-match against country names; the first match in table order wins.
// Returns false when the input does not look like a country, so callers fall
// back to treating it as an airport/city keyword.
func Resolve(input string) (Match, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if len(normalized) < minExactLen {
		return Match{}, false
	}

	if e, ok := byName[normalized]; ok {
		return Match{Code: e.code, MajorCities: e.cities}, true
	}

	if len(normalized) < minPrefixLen {
		return Match{}, false
	}
	for i := range table {
		if strings.HasPrefix(table[i].name, normalized) {
			return Match{Code: table[i].code, MajorCities: table[i].cities}, true
		}
	}

	return Match{}, false
}
