package domain

// airlineNames maps IATA carrier codes to display names. Used as a fallback
// when the upstream response dictionaries do not cover a carrier.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"AS": "Alaska Airlines",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"G4": "Allegiant Air",
	"HA": "Hawaiian Airlines",
	"SY": "Sun Country Airlines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"IB": "Iberia",
	"AY": "Finnair",
	"SK": "SAS",
	"LX": "Swiss",
	"OS": "Austrian Airlines",
	"TK": "Turkish Airlines",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"EY": "Etihad Airways",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"JL": "Japan Airlines",
	"NH": "All Nippon Airways",
	"QF": "Qantas",
	"AC": "Air Canada",
	"AM": "Aeromexico",
	"LA": "LATAM Airlines",
	"AV": "Avianca",
	"CM": "Copa Airlines",
	"TP": "TAP Air Portugal",
	"AZ": "ITA Airways",
	"VY": "Vueling",
	"U2": "easyJet",
	"FR": "Ryanair",
	"W6": "Wizz Air",
}

// AirlineName resolves a carrier code to a display name.
// Resolution priority: the dictionary from the upstream response, then the
// static name table, then the raw code itself. Never returns empty for a
// non-empty code.
func AirlineName(code string, carriers map[string]string) string {
	if name, ok := carriers[code]; ok && name != "" {
		return name
	}
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}
