package airports

import "strings"

// cityOrder keeps the vocabulary in declaration order. City-pair fallback
// extraction depends on scanning cities in this exact order, so the plain
// map below is never ranged over directly.
var cityOrder = []string{
	"chennai",
	"mumbai",
	"bangalore",
	"delhi",
	"kolkata",
	"hyderabad",
	"pune",
	"ahmedabad",
	"goa",
	"kochi",
	"jaipur",
	"lucknow",
	"indore",
	"bhubaneswar",
	"coimbatore",
	"madurai",
	"trivandrum",
	"calicut",
	"vijayawada",
	"tirupati",
	"nashik",
	"udaipur",
	"salem",
	"selam", // alternate spelling, same airport
}

var cityCodes = map[string]string{
	"chennai":     "MAA",
	"mumbai":      "BOM",
	"bangalore":   "BLR",
	"delhi":       "DEL",
	"kolkata":     "CCU",
	"hyderabad":   "HYD",
	"pune":        "PNQ",
	"ahmedabad":   "AMD",
	"goa":         "GOI",
	"kochi":       "COK",
	"jaipur":      "JAI",
	"lucknow":     "LKO",
	"indore":      "IDR",
	"bhubaneswar": "BBI",
	"coimbatore":  "CJB",
	"madurai":     "IXM",
	"trivandrum":  "TRV",
	"calicut":     "CCJ",
	"vijayawada":  "VGA",
	"tirupati":    "TIR",
	"nashik":      "ISK",
	"udaipur":     "UDR",
	"salem":       "SXV",
	"selam":       "SXV",
}

// Code resolves a city name to its IATA code. Unknown cities fall back to
// the upper-cased input so URL generation never fails.
func Code(city string) string {
	if code, ok := cityCodes[strings.ToLower(city)]; ok {
		return code
	}
	return strings.ToUpper(city)
}

// IsKnown reports whether the city name is part of the vocabulary.
func IsKnown(city string) bool {
	_, ok := cityCodes[strings.ToLower(city)]
	return ok
}

// Cities returns the vocabulary in declaration order.
func Cities() []string {
	return cityOrder
}
