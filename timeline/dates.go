package timeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Normalizer resolves raw date text to a calendar date against a fixed
// reference instant (the run's start time). The boolean result is false
// when the text is ambiguous or unparseable; callers keep the event but
// leave it undated rather than guessing.
type Normalizer interface {
	Parse(raw string, ref time.Time) (time.Time, bool)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// seasonMonths anchors the vague "early/mid/late YYYY" shapes to fixed
// months so normalization stays deterministic.
var seasonMonths = map[string]time.Month{
	"early": time.February,
	"mid":   time.June,
	"late":  time.October,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// DateParser is the default Normalizer: a small relative-expression table
// resolved against the reference instant, then araddon/dateparse for
// absolute forms. Year-less dates prefer the past, matching how news text
// refers to recent events.
type DateParser struct{}

// NewDateParser returns the default date normalizer.
func NewDateParser() *DateParser {
	return &DateParser{}
}

// Parse resolves raw to a calendar date (midnight UTC).
func (p *DateParser) Parse(raw string, ref time.Time) (time.Time, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return time.Time{}, false
	}

	if t, ok := parseRelative(text, ref); ok {
		return dateOnly(t), true
	}

	if t, ok := parseMonthForm(text, ref); ok {
		return dateOnly(t), true
	}

	if t, err := dateparse.ParseAny(raw); err == nil && t.Year() > 0 {
		return dateOnly(t), true
	}

	return time.Time{}, false
}

// parseMonthForm resolves month-name shapes dateparse is unreliable on:
// "December 2024" (first of the month) and year-less "March 3", which
// prefers the past relative to the reference instant.
func parseMonthForm(text string, ref time.Time) (time.Time, bool) {
	fields := strings.Fields(strings.NewReplacer(",", " ", ".", " ").Replace(text))
	if len(fields) != 2 {
		return time.Time{}, false
	}

	month, found := monthNames[fields[0]]
	if !found {
		return time.Time{}, false
	}

	num := strings.TrimRight(fields[1], "stndrh") // 3rd, 21st, 4th
	n, err := strconv.Atoi(num)
	if err != nil {
		return time.Time{}, false
	}

	if n >= 1000 && n <= 9999 {
		return time.Date(n, month, 1, 0, 0, 0, 0, time.UTC), true
	}
	if n >= 1 && n <= 31 {
		t := time.Date(ref.Year(), month, n, 0, 0, 0, 0, time.UTC)
		if t.After(dateOnly(ref)) {
			t = t.AddDate(-1, 0, 0)
		}
		return t, true
	}

	return time.Time{}, false
}

func parseRelative(text string, ref time.Time) (time.Time, bool) {
	switch text {
	case "today":
		return ref, true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	case "last week":
		return ref.AddDate(0, 0, -7), true
	case "next week":
		return ref.AddDate(0, 0, 7), true
	case "last month":
		return ref.AddDate(0, -1, 0), true
	case "next month":
		return ref.AddDate(0, 1, 0), true
	case "last year":
		return ref.AddDate(-1, 0, 0), true
	case "next year":
		return ref.AddDate(1, 0, 0), true
	}

	if day, ok := strings.CutPrefix(text, "last "); ok {
		if wd, found := weekdays[day]; found {
			return previousWeekday(ref, wd), true
		}
	}
	if day, ok := strings.CutPrefix(text, "next "); ok {
		if wd, found := weekdays[day]; found {
			return nextWeekday(ref, wd), true
		}
	}
	if wd, found := weekdays[text]; found {
		return previousWeekday(ref, wd), true
	}

	// early/mid/late YYYY
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '-' })
	if len(fields) == 2 {
		if month, found := seasonMonths[fields[0]]; found {
			if year, err := strconv.Atoi(fields[1]); err == nil && year >= 1000 && year <= 9999 {
				return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
			}
		}
	}

	return time.Time{}, false
}

// previousWeekday returns the latest occurrence of wd strictly before ref.
func previousWeekday(ref time.Time, wd time.Weekday) time.Time {
	delta := int(ref.Weekday() - wd)
	if delta <= 0 {
		delta += 7
	}
	return ref.AddDate(0, 0, -delta)
}

func nextWeekday(ref time.Time, wd time.Weekday) time.Time {
	delta := int(wd - ref.Weekday())
	if delta <= 0 {
		delta += 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
