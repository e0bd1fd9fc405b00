package nlp

import (
	"strings"
	"time"
)

// Keyword sets are checked in this order. Booking wins over account wins
// over profile, and any account page request wins over a flight search,
// even when the message also names two cities.
var (
	bookingKeywords = []string{"booking", "bookings", "my booking", "my bookings", "booking page"}
	accountKeywords = []string{"account", "accounts", "statement", "account page", "statement page"}
	profileKeywords = []string{"profile", "my profile", "profile page"}

	flightKeywords = []string{"flight", "flights", "fly", "travel", "book", "search", "list"}
)

type processor struct {
	now func() time.Time
}

func NewProcessor() IProcessor {
	return &processor{now: time.Now}
}

func (p *processor) Classify(text string) Classification {
	if page := matchAccountPage(text); page != nil {
		return Classification{Intent: IntentAccountPage, Page: page}
	}

	query := p.Extract(text)
	if containsAny(text, flightKeywords) &&
		query.Origin != "" && query.Destination != "" && query.Origin != query.Destination {
		return Classification{Intent: IntentFlightSearch, Flight: &query}
	}

	return Classification{Intent: IntentGeneralQuery}
}

func (p *processor) Extract(text string) FlightQuery {
	origin, destination := extractCityPair(text)

	return FlightQuery{
		Origin:      origin,
		Destination: destination,
		TravelDate:  extractDate(text, p.now()),
	}
}

func matchAccountPage(text string) *AccountPageRequest {
	if containsAny(text, bookingKeywords) {
		return &AccountPageRequest{
			Kind:        PageBooking,
			URL:         "https://www.codemagen.net/myaccounts/bookings",
			DisplayText: "My Bookings",
		}
	}

	if containsAny(text, accountKeywords) {
		return &AccountPageRequest{
			Kind:        PageAccount,
			URL:         "https://www.codemagen.net/myaccounts/accounts",
			DisplayText: "Account Statement",
		}
	}

	if containsAny(text, profileKeywords) {
		return &AccountPageRequest{
			Kind:        PageProfile,
			URL:         "https://www.codemagen.net/myaccounts/profile",
			DisplayText: "My Profile",
		}
	}

	return nil
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
