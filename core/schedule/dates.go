package schedule

import (
	"time"

	"github.com/hallboard/schoolfeed/infra/logger"
)

// isoLayout is the calendar date layout used across all documents.
const isoLayout = "2006-01-02"

// ResolveDate picks the build target date. An explicit YYYY-MM-DD argument
// wins; an unparseable one logs a warning and falls back to now, so a bad
// flag never aborts the run. An empty argument means now.
func ResolveDate(arg string, now time.Time, log logger.Logger) time.Time {
	if arg == "" {
		return now
	}
	d, err := time.ParseInLocation(isoLayout, arg, now.Location())
	if err != nil {
		log.Warnf("invalid date %q, using current date: %v", arg, err)
		return now
	}
	return d
}

// ISODate renders the local calendar day of t as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format(isoLayout)
}

// WeekdayName returns the full English weekday name of t.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// MondayOf returns the Monday beginning the ISO week containing t, at
// midnight in t's location. Sunday walks back six days.
func MondayOf(t time.Time) time.Time {
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	d := t.AddDate(0, 0, -back)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
