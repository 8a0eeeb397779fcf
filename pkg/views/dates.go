package views

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Placeholder is shown instead of labels which cannot be computed.
const Placeholder = "-"

// parseDate reads "YYYY-MM-DD", optionally followed by time part.
func parseDate(s string) (time.Time, bool) {
	if len(s) < len(dateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// dateOf drops time part of t in its location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts days from a to b. Both should be dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// DueDate returns the date daysBefore days before start.
func DueDate(start string, daysBefore int) (time.Time, bool) {
	s, ok := parseDate(start)
	if !ok {
		return time.Time{}, false
	}
	return s.AddDate(0, 0, -daysBefore), true
}

// DueLabel tells how far the due date, daysBefore days before start, is from today.
//
// It is "D-n" when the due date is n days later, "D-Day" when it is today,
// and "D+n" when it passed n days ago. When start is malformed, it is Placeholder.
func DueLabel(start string, daysBefore int, today time.Time) string {
	due, ok := DueDate(start, daysBefore)
	if !ok {
		return Placeholder
	}
	switch n := daysBetween(dateOf(today), due); {
	case 0 < n:
		return fmt.Sprintf("D-%d", n)
	case n == 0:
		return "D-Day"
	default:
		return fmt.Sprintf("D+%d", -n)
	}
}

// TripDays returns the number of days of a trip, counting both ends.
func TripDays(start, end string) (int, bool) {
	s, ok := parseDate(start)
	if !ok {
		return 0, false
	}
	e, ok := parseDate(end)
	if !ok || e.Before(s) {
		return 0, false
	}
	return daysBetween(s, e) + 1, true
}
