package deadline

import (
	"time"

	"github.com/mmhamza1234/procurement/internal/dates"
)

// IsBusinessDay reports whether d falls Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextBusinessDay returns the first business day strictly after d.
func NextBusinessDay(d time.Time) time.Time {
	d = dates.DateOnly(d).AddDate(0, 0, 1)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// PreviousBusinessDay returns the last business day strictly before d.
func PreviousBusinessDay(d time.Time) time.Time {
	d = dates.DateOnly(d).AddDate(0, 0, -1)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// BusinessDaysBetween counts business days from a through b inclusive.
// Argument order does not matter: Friday to the following Monday is 2
// either way round.
func BusinessDaysBetween(a, b time.Time) int {
	a, b = dates.DateOnly(a), dates.DateOnly(b)
	if a.After(b) {
		a, b = b, a
	}
	n := 0
	for d := a; !d.After(b); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			n++
		}
	}
	return n
}
