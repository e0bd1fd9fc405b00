package botService

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeyachandranj/Flight-Bot/pkg/airports"
	"github.com/jeyachandranj/Flight-Bot/pkg/completion"
	contextPkg "github.com/jeyachandranj/Flight-Bot/pkg/context"
	"github.com/jeyachandranj/Flight-Bot/pkg/flight"
	"github.com/jeyachandranj/Flight-Bot/pkg/nlp"
	"github.com/sirupsen/logrus"
)

// composeReply turns a classification into the reply text. The account
// page and flight branches are pure templating and never fail; only the
// general branch calls out, and its failures become an apology reply.
func (s *botService) composeReply(ctx context.Context, classification nlp.Classification, text string) string {
	switch classification.Intent {
	case nlp.IntentAccountPage:
		return composeAccountPageReply(classification.Page)
	case nlp.IntentFlightSearch:
		return composeFlightReply(classification.Flight)
	default:
		return s.composeGeneralReply(ctx, text)
	}
}

func composeAccountPageReply(page *nlp.AccountPageRequest) string {
	emoji := "📋"
	description := ""

	switch page.Kind {
	case nlp.PageBooking:
		emoji = "✈️"
		description = "View and manage all your flight bookings, hotel reservations, and travel itineraries in one place."
	case nlp.PageAccount:
		emoji = "💳"
		description = "Check your account balance, transaction history, and payment statements."
	case nlp.PageProfile:
		emoji = "👤"
		description = "Update your personal information, travel preferences, and account settings."
	}

	return fmt.Sprintf(
		"%s *%s*\n\n%s\n\n🔗 [Go to %s](%s)\n\nClick the link above to access your %s page. You'll need to sign in to your Codemagen account if you haven't already.\n\nNeed help with anything else? I can assist with flight searches, hotel bookings, or answer questions about Codemagen's services!",
		emoji,
		page.DisplayText,
		description,
		page.DisplayText,
		page.URL,
		strings.ToLower(page.DisplayText),
	)
}

func composeFlightReply(query *nlp.FlightQuery) string {
	searchURL := flight.SearchURL(query.Origin, query.Destination, query.TravelDate)
	shortURL := flight.ShortURL(query.Origin, query.Destination)

	return fmt.Sprintf(
		"🛫 *Flight Search Results*\n\n*Route:* %s (%s) → %s (%s)\n*Travel Date:* %s\n*Class:* Economy\n*Passengers:* 1 Adult\n\n✈️ [Search Available Flights: %s](%s)\n\nClick the link above to view all available flights for your selected route and date. You can modify passengers, class type, and other preferences on the search page.\n\nNeed help with return flights, hotels, or have questions about Codemagen's services?",
		flight.DisplayCity(query.Origin),
		airports.Code(query.Origin),
		flight.DisplayCity(query.Destination),
		airports.Code(query.Destination),
		flight.DisplayDate(query.TravelDate),
		shortURL,
		searchURL,
	)
}

func (s *botService) composeGeneralReply(ctx context.Context, text string) string {
	reply, err := s.completion.Complete(ctx, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Completion service call failed")
		return fmt.Sprintf("Sorry, I encountered an error: %s. Please try again later.", completion.FailureDetail(err))
	}

	return reply
}
