package nlp

import "time"

type Intent string

const (
	IntentAccountPage  Intent = "account_page"
	IntentFlightSearch Intent = "flight_search"
	IntentGeneralQuery Intent = "general_query"
)

type PageKind string

const (
	PageBooking PageKind = "booking"
	PageAccount PageKind = "account"
	PageProfile PageKind = "profile"
)

// AccountPageRequest points the user at one of the fixed account pages.
type AccountPageRequest struct {
	Kind        PageKind `json:"kind"`
	URL         string   `json:"url"`
	DisplayText string   `json:"display_text"`
}

// FlightQuery holds the entities extracted from a flight search message.
// Origin and Destination are lower-cased vocabulary city names, or empty
// when no pair could be found. TravelDate is always a concrete date: when
// no date pattern matches, extraction defaults to tomorrow.
type FlightQuery struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	TravelDate  time.Time `json:"travel_date"`
}

// Classification is the result of running a message through the intent
// pipeline. Page is set for an account page intent, Flight for a flight
// search; both are nil for a general query.
type Classification struct {
	Intent Intent              `json:"intent"`
	Page   *AccountPageRequest `json:"page,omitempty"`
	Flight *FlightQuery        `json:"flight,omitempty"`
}

type IProcessor interface {
	Classify(text string) Classification
	Extract(text string) FlightQuery
}
