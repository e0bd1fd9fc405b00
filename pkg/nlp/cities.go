package nlp

import (
	"regexp"
	"strings"

	"github.com/jeyachandranj/Flight-Bot/pkg/airports"
)

// Phrase patterns are tried in order against the raw message; the first
// pattern whose first match captures two vocabulary cities wins.
var cityPairPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:from\s+)?(\w+)\s+to\s+(\w+)`),
	regexp.MustCompile(`(?i)(\w+)\s+to\s+(\w+)`),
	regexp.MustCompile(`(?i)(\w+)\s*-\s*(\w+)`),
}

func extractCityPair(text string) (origin, destination string) {
	for _, pattern := range cityPairPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		city1 := strings.ToLower(match[1])
		city2 := strings.ToLower(match[2])
		if airports.IsKnown(city1) && airports.IsKnown(city2) {
			return city1, city2
		}
	}

	// No phrase match: scan the vocabulary in its declaration order and
	// take the first two city names mentioned anywhere in the message.
	// Substring matching, so a city name inside an unrelated word counts.
	lower := strings.ToLower(text)
	var found []string
	for _, city := range airports.Cities() {
		if strings.Contains(lower, city) {
			found = append(found, city)
		}
	}

	if len(found) >= 2 {
		return found[0], found[1]
	}

	return "", ""
}
