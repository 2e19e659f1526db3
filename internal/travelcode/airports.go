package travelcode

// airportCountries maps supported layover airports (IATA codes) to their
// country. Airports outside this table are rejected at parse time.
var airportCountries = map[string]string{
	"LIS": "Portugal",
	"MAD": "Spain",
	"CDG": "France",
	"LHR": "United Kingdom",
	"FRA": "Germany",
	"AMS": "Netherlands",
	"FCO": "Italy",
	"ZUR": "Switzerland",
	"VIE": "Austria",
	"ARN": "Sweden",
	"CPH": "Denmark",
	"OSL": "Norway",
	"HEL": "Finland",
	"WAW": "Poland",
	"PRG": "Czech Republic",
	"BUD": "Hungary",
	"OTP": "Romania",
	"SOF": "Bulgaria",
	"ATH": "Greece",
	"IST": "Turkey",
	"JFK": "United States",
	"LAX": "United States",
	"ORD": "United States",
	"DFW": "United States",
	"ATL": "United States",
	"YYZ": "Canada",
	"YVR": "Canada",
	"GRU": "Brazil",
	"GIG": "Brazil",
	"EZE": "Argentina",
	"SCL": "Chile",
	"LIM": "Peru",
	"BOG": "Colombia",
	"MEX": "Mexico",
	"NRT": "Japan",
	"ICN": "South Korea",
	"PVG": "China",
	"BKK": "Thailand",
	"SIN": "Singapore",
	"DXB": "UAE",
	"DOH": "Qatar",
	"CAI": "Egypt",
	"JNB": "South Africa",
	"SYD": "Australia",
	"AKL": "New Zealand",
}

// AirportCountry returns the country for a supported airport code, or ""
// if the airport is unknown.
func AirportCountry(code string) string {
	return airportCountries[code]
}
