package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateMatcher inspects the message for one date pattern. Matchers are tried
// in priority order and the first success wins; when none match, extraction
// falls back to tomorrow so a travel date is always produced.
type dateMatcher func(text string, now time.Time) (time.Time, bool)

var dateMatchers = []dateMatcher{
	matchTomorrow,
	matchNextWeekMonday,
	matchNumericDate,
	matchMonthAbbrevDate,
	matchMonthNameDate,
	matchLooseDate,
}

func extractDate(text string, now time.Time) time.Time {
	for _, matcher := range dateMatchers {
		if date, ok := matcher(text, now); ok {
			return date
		}
	}
	return tomorrow(now)
}

func matchTomorrow(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "tomorrow") || strings.Contains(lower, "tommorow") {
		return tomorrow(now), true
	}
	return time.Time{}, false
}

func matchNextWeekMonday(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "next week") || !strings.Contains(lower, "monday") {
		return time.Time{}, false
	}

	// Offset counted with Monday as day zero. The formula always advances
	// at least one day, so on a Monday it lands a full week ahead.
	weekday := (int(now.Weekday()) + 6) % 7
	return dateOnly(now).AddDate(0, 0, 7-weekday), true
}

var numericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`),
	regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{2,4})`),
}

// matchNumericDate handles D/M/YY, D/M/YYYY and the dash-separated forms,
// parsed as day/month/year. A token that is not a real calendar date
// (31/4/25) is skipped rather than treated as an error.
func matchNumericDate(text string, now time.Time) (time.Time, bool) {
	for _, pattern := range numericDatePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := normalizeYear(mustAtoi(m[3]))

		if date, ok := calendarDate(year, month, day); ok {
			return date, true
		}
	}
	return time.Time{}, false
}

var (
	monthAbbrevDatePattern = regexp.MustCompile(`(?i)(\d{1,2})/(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)/(\d{2,4})`)
	monthNameDatePattern   = regexp.MustCompile(`(?i)(\d{1,2})/(january|february|march|april|may|june|july|august|september|october|november|december)/(\d{2,4})`)
)

func matchMonthAbbrevDate(text string, now time.Time) (time.Time, bool) {
	return matchSlashMonthDate(monthAbbrevDatePattern, text)
}

func matchMonthNameDate(text string, now time.Time) (time.Time, bool) {
	return matchSlashMonthDate(monthNameDatePattern, text)
}

func matchSlashMonthDate(pattern *regexp.Regexp, text string) (time.Time, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month := monthsByName[strings.ToLower(m[2])]
	year := normalizeYear(mustAtoi(m[3]))

	if date, ok := calendarDate(year, int(month), day); ok {
		return date, true
	}
	return time.Time{}, false
}

// Loose forms like "6 jul" and "july 6" carry no year: they take the
// current one, rolling to next year when the date has already passed.
var looseDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`),
	regexp.MustCompile(`(?i)(\d{1,2})\s+(january|february|march|april|may|june|july|august|september|october|november|december)`),
	regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{1,2})`),
	regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})`),
}

func matchLooseDate(text string, now time.Time) (time.Time, bool) {
	for _, pattern := range looseDatePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var day int
		var month time.Month
		if d, err := strconv.Atoi(m[1]); err == nil {
			day = d
			month = monthsByName[strings.ToLower(m[2])]
		} else {
			month = monthsByName[strings.ToLower(m[1])]
			day, _ = strconv.Atoi(m[2])
		}

		if day < 1 || day > 31 {
			continue
		}

		date, ok := calendarDate(now.Year(), int(month), day)
		if !ok {
			continue
		}

		if date.Before(now) {
			next, ok := calendarDate(now.Year()+1, int(month), day)
			if !ok {
				continue
			}
			return next, true
		}
		return date, true
	}
	return time.Time{}, false
}

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// normalizeYear expands two-digit years: 25 becomes 2025, 99 becomes 1999.
func normalizeYear(year int) int {
	if year < 100 {
		if year < 50 {
			return 2000 + year
		}
		return 1900 + year
	}
	return year
}

// calendarDate builds a local-midnight date and reports whether the
// day/month combination is a real calendar date. time.Date normalizes
// overflow (April 31 becomes May 1), so the result is checked against
// the inputs instead.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func tomorrow(now time.Time) time.Time {
	return dateOnly(now).AddDate(0, 0, 1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
