// Package countries maps free-text country names and common aliases to an ISO
// 3166-1 alpha-2 code plus an ordered list of major-city search terms. It is a
// pure lookup used by the airport search orchestrator; no I/O.
package countries

// Match is the result of a successful country lookup.
type Match struct {
	// Code is the ISO 3166-1 alpha-2 country code
	Code string

	// MajorCities are city keywords for finding the country's top airports,
	// in priority order
	MajorCities []string
}

// entry is one row of the country table.
type entry struct {
	name   string
	code   string
	cities []string
}

// table holds country names and aliases in alphabetical order. The slice order
// is the explicit priority for prefix matching: the first entry whose name has
// the input as a prefix wins. Keep new entries in alphabetical position.
var table = []entry{
	{"afghanistan", "AF", []string{"KABUL"}},
	{"albania", "AL", []string{"TIRANA"}},
	{"algeria", "DZ", []string{"ALGIERS", "ORAN"}},
	{"andorra", "AD", []string{"ANDORRA"}},
	{"angola", "AO", []string{"LUANDA"}},
	{"argentina", "AR", []string{"BUENOS AIRES", "CORDOBA"}},
	{"armenia", "AM", []string{"YEREVAN"}},
	{"australia", "AU", []string{"SYDNEY", "MELBOURNE", "BRISBANE"}},
	{"austria", "AT", []string{"VIENNA", "SALZBURG"}},
	{"azerbaijan", "AZ", []string{"BAKU"}},
	{"bahamas", "BS", []string{"NASSAU"}},
	{"bahrain", "BH", []string{"BAHRAIN"}},
	{"bangladesh", "BD", []string{"DHAKA", "CHITTAGONG"}},
	{"barbados", "BB", []string{"BRIDGETOWN"}},
	{"belarus", "BY", []string{"MINSK"}},
	{"belgium", "BE", []string{"BRUSSELS", "ANTWERP"}},
	{"belize", "BZ", []string{"BELIZE"}},
	{"bermuda", "BM", []string{"BERMUDA"}},
	{"bhutan", "BT", []string{"PARO"}},
	{"bolivia", "BO", []string{"LA PAZ", "SANTA CRUZ"}},
	{"bosnia", "BA", []string{"SARAJEVO"}},
	{"botswana", "BW", []string{"GABORONE"}},
	{"brazil", "BR", []string{"SAO PAULO", "RIO DE JANEIRO", "BRASILIA"}},
	{"brunei", "BN", []string{"BANDAR"}},
	{"bulgaria", "BG", []string{"SOFIA", "VARNA"}},
	{"cambodia", "KH", []string{"PHNOM PENH", "SIEM REAP"}},
	{"cameroon", "CM", []string{"DOUALA", "YAOUNDE"}},
	{"canada", "CA", []string{"TORONTO", "VANCOUVER", "MONTREAL"}},
	{"chile", "CL", []string{"SANTIAGO"}},
	{"china", "CN", []string{"BEIJING", "SHANGHAI", "GUANGZHOU"}},
	{"colombia", "CO", []string{"BOGOTA", "MEDELLIN"}},
	{"costa rica", "CR", []string{"SAN JOSE"}},
	{"croatia", "HR", []string{"ZAGREB", "SPLIT", "DUBROVNIK"}},
	{"cuba", "CU", []string{"HAVANA"}},
	{"cyprus", "CY", []string{"LARNACA", "PAPHOS"}},
	{"czech republic", "CZ", []string{"PRAGUE"}},
	{"czechia", "CZ", []string{"PRAGUE"}},
	{"denmark", "DK", []string{"COPENHAGEN"}},
	{"dominican republic", "DO", []string{"SANTO DOMINGO", "PUNTA CANA"}},
	{"ecuador", "EC", []string{"QUITO", "GUAYAQUIL"}},
	{"egypt", "EG", []string{"CAIRO", "HURGHADA", "SHARM"}},
	{"el salvador", "SV", []string{"SAN SALVADOR"}},
	{"england", "GB", []string{"LONDON", "MANCHESTER", "BIRMINGHAM"}},
	{"estonia", "EE", []string{"TALLINN"}},
	{"ethiopia", "ET", []string{"ADDIS ABABA"}},
	{"fiji", "FJ", []string{"NADI", "SUVA"}},
	{"finland", "FI", []string{"HELSINKI"}},
	{"france", "FR", []string{"PARIS", "NICE", "LYON", "MARSEILLE"}},
	{"georgia", "GE", []string{"TBILISI", "BATUMI"}},
	{"germany", "DE", []string{"BERLIN", "MUNICH", "FRANKFURT"}},
	{"ghana", "GH", []string{"ACCRA"}},
	{"greece", "GR", []string{"ATHENS", "THESSALONIKI", "HERAKLION"}},
	{"guatemala", "GT", []string{"GUATEMALA"}},
	{"honduras", "HN", []string{"TEGUCIGALPA", "SAN PEDRO"}},
	{"hong kong", "HK", []string{"HONG KONG"}},
	{"hungary", "HU", []string{"BUDAPEST"}},
	{"iceland", "IS", []string{"REYKJAVIK"}},
	{"india", "IN", []string{"DELHI", "MUMBAI", "BANGALORE"}},
	{"indonesia", "ID", []string{"JAKARTA", "BALI", "SURABAYA"}},
	{"iran", "IR", []string{"TEHRAN"}},
	{"iraq", "IQ", []string{"BAGHDAD", "ERBIL"}},
	{"ireland", "IE", []string{"DUBLIN", "CORK"}},
	{"israel", "IL", []string{"TEL AVIV", "JERUSALEM"}},
	{"italy", "IT", []string{"ROME", "MILAN", "VENICE", "NAPLES"}},
	{"ivory coast", "CI", []string{"ABIDJAN"}},
	{"jamaica", "JM", []string{"KINGSTON", "MONTEGO BAY"}},
	{"japan", "JP", []string{"TOKYO", "OSAKA", "NAGOYA"}},
	{"jordan", "JO", []string{"AMMAN"}},
	{"kazakhstan", "KZ", []string{"ALMATY", "ASTANA"}},
	{"kenya", "KE", []string{"NAIROBI", "MOMBASA"}},
	{"kuwait", "KW", []string{"KUWAIT"}},
	{"laos", "LA", []string{"VIENTIANE"}},
	{"latvia", "LV", []string{"RIGA"}},
	{"lebanon", "LB", []string{"BEIRUT"}},
	{"libya", "LY", []string{"TRIPOLI"}},
	{"lithuania", "LT", []string{"VILNIUS"}},
	{"luxembourg", "LU", []string{"LUXEMBOURG"}},
	{"macau", "MO", []string{"MACAU"}},
	{"madagascar", "MG", []string{"ANTANANARIVO"}},
	{"malaysia", "MY", []string{"KUALA LUMPUR", "PENANG", "KOTA KINABALU"}},
	{"maldives", "MV", []string{"MALE"}},
	{"mali", "ML", []string{"BAMAKO"}},
	{"malta", "MT", []string{"MALTA"}},
	{"mauritius", "MU", []string{"MAURITIUS"}},
	{"mexico", "MX", []string{"MEXICO CITY", "CANCUN", "GUADALAJARA"}},
	{"moldova", "MD", []string{"CHISINAU"}},
	{"monaco", "MC", []string{"NICE"}},
	{"mongolia", "MN", []string{"ULAANBAATAR"}},
	{"montenegro", "ME", []string{"PODGORICA", "TIVAT"}},
	{"morocco", "MA", []string{"CASABLANCA", "MARRAKECH"}},
	{"mozambique", "MZ", []string{"MAPUTO"}},
	{"myanmar", "MM", []string{"YANGON", "MANDALAY"}},
	{"namibia", "NA", []string{"WINDHOEK"}},
	{"nepal", "NP", []string{"KATHMANDU"}},
	{"netherlands", "NL", []string{"AMSTERDAM", "ROTTERDAM"}},
	{"new zealand", "NZ", []string{"AUCKLAND", "WELLINGTON", "CHRISTCHURCH"}},
	{"nicaragua", "NI", []string{"MANAGUA"}},
	{"nigeria", "NG", []string{"LAGOS", "ABUJA"}},
	{"north korea", "KP", []string{"PYONGYANG"}},
	{"north macedonia", "MK", []string{"SKOPJE"}},
	{"norway", "NO", []string{"OSLO", "BERGEN"}},
	{"oman", "OM", []string{"MUSCAT"}},
	{"pakistan", "PK", []string{"KARACHI", "LAHORE", "ISLAMABAD"}},
	{"panama", "PA", []string{"PANAMA"}},
	{"paraguay", "PY", []string{"ASUNCION"}},
	{"peru", "PE", []string{"LIMA", "CUSCO"}},
	{"philippines", "PH", []string{"MANILA", "CEBU"}},
	{"poland", "PL", []string{"WARSAW", "KRAKOW"}},
	{"portugal", "PT", []string{"LISBON", "PORTO", "FARO"}},
	{"qatar", "QA", []string{"DOHA"}},
	{"romania", "RO", []string{"BUCHAREST"}},
	{"russia", "RU", []string{"MOSCOW", "SAINT PETERSBURG"}},
	{"rwanda", "RW", []string{"KIGALI"}},
	{"saudi arabia", "SA", []string{"RIYADH", "JEDDAH"}},
	{"scotland", "GB", []string{"EDINBURGH", "GLASGOW"}},
	{"senegal", "SN", []string{"DAKAR"}},
	{"serbia", "RS", []string{"BELGRADE"}},
	{"singapore", "SG", []string{"SINGAPORE"}},
	{"slovakia", "SK", []string{"BRATISLAVA"}},
	{"slovenia", "SI", []string{"LJUBLJANA"}},
	{"south africa", "ZA", []string{"JOHANNESBURG", "CAPE TOWN"}},
	{"south korea", "KR", []string{"SEOUL", "BUSAN", "JEJU"}},
	{"spain", "ES", []string{"MADRID", "BARCELONA", "MALAGA"}},
	{"sri lanka", "LK", []string{"COLOMBO"}},
	{"sudan", "SD", []string{"KHARTOUM"}},
	{"sweden", "SE", []string{"STOCKHOLM", "GOTHENBURG"}},
	{"switzerland", "CH", []string{"ZURICH", "GENEVA"}},
	{"syria", "SY", []string{"DAMASCUS"}},
	{"taiwan", "TW", []string{"TAIPEI"}},
	{"tanzania", "TZ", []string{"DAR ES SALAAM", "KILIMANJARO"}},
	{"thailand", "TH", []string{"BANGKOK", "PHUKET", "CHIANG MAI"}},
	{"tunisia", "TN", []string{"TUNIS"}},
	{"turkey", "TR", []string{"ISTANBUL", "ANKARA", "ANTALYA"}},
	{"turkiye", "TR", []string{"ISTANBUL", "ANKARA", "ANTALYA"}},
	{"uae", "AE", []string{"DUBAI", "ABU DHABI"}},
	{"uganda", "UG", []string{"ENTEBBE"}},
	{"uk", "GB", []string{"LONDON", "MANCHESTER", "EDINBURGH"}},
	{"ukraine", "UA", []string{"KYIV", "LVIV"}},
	{"united arab emirates", "AE", []string{"DUBAI", "ABU DHABI"}},
	{"united kingdom", "GB", []string{"LONDON", "MANCHESTER", "EDINBURGH"}},
	{"united states", "US", []string{"NEW YORK", "LOS ANGELES", "CHICAGO"}},
	{"uruguay", "UY", []string{"MONTEVIDEO"}},
	{"us", "US", []string{"NEW YORK", "LOS ANGELES", "CHICAGO"}},
	{"usa", "US", []string{"NEW YORK", "LOS ANGELES", "CHICAGO"}},
	{"uzbekistan", "UZ", []string{"TASHKENT"}},
	{"venezuela", "VE", []string{"CARACAS"}},
	{"vietnam", "VN", []string{"HO CHI MINH", "HANOI", "DA NANG"}},
	{"wales", "GB", []string{"CARDIFF"}},
	{"yemen", "YE", []string{"SANAA"}},
	{"zambia", "ZM", []string{"LUSAKA"}},
	{"zimbabwe", "ZW", []string{"HARARE"}},
}

// byName indexes the table for exact lookups (names and curated aliases).
var byName = func() map[string]*entry {
	m := make(map[string]*entry, len(table))
	for i := range table {
		m[table[i].name] = &table[i]
	}
	return m
}()
