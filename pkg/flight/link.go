package flight

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeyachandranj/Flight-Bot/pkg/airports"
)

const searchBaseURL = "https://www.codemagen.net/flights/oneway"

// SearchURL builds the one-way search deep link. The query string shape is
// a fixed contract with the booking frontend: parameter order and spelling
// must not change, countries are hard-coded to IN, and the date is encoded
// as YYYY-MM-DD.
func SearchURL(origin, destination string, travelDate time.Time) string {
	return fmt.Sprintf(
		"%s?adult_count=1&child_count=0&class_type=ECONOMY&destination=%s&destinationCountry=IN&host_search=false&infant_count=0&non_stop=false&origin=%s&originCountry=IN&search_type=one_way&travel_date=%s",
		searchBaseURL,
		airports.Code(destination),
		airports.Code(origin),
		travelDate.Format("2006-01-02"),
	)
}

// ShortURL is the human-readable stand-in shown as the link label.
func ShortURL(origin, destination string) string {
	return fmt.Sprintf("codemagen.net/flights → %s to %s", airports.Code(origin), airports.Code(destination))
}

// DisplayDate formats a travel date the way it is shown to the user.
func DisplayDate(travelDate time.Time) string {
	return travelDate.Format("02/01/2006")
}

// DisplayCity capitalizes a lower-cased vocabulary city name.
func DisplayCity(city string) string {
	if city == "" {
		return ""
	}
	return strings.ToUpper(city[:1]) + strings.ToLower(city[1:])
}
