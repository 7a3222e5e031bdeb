package dates

import (
	"fmt"
	"strings"
	"time"
)

// months covers full names, 3-letter abbreviations, and the stray "sept".
var months = map[string]time.Month{
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

// MonthNumber resolves a month name or abbreviation, case-insensitively.
func MonthNumber(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ExpandYear applies the fixed two-digit century rule: values below 50 fall
// in the 2000s, values 50 and above in the 1900s. Wider years pass through.
func ExpandYear(year int) int {
	if year < 0 || year > 99 {
		return year
	}
	if year < 50 {
		return year + 2000
	}
	return year + 1900
}

// Normalize builds a calendar date from its parts at midnight UTC. Any
// combination that is not a real date (day 31 of April, Feb 29 outside a
// leap year) is rejected, never clamped to a neighbor.
func Normalize(day, month, year int) (time.Time, error) {
	if year < 1 {
		return time.Time{}, fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day %d out of range", day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("%02d.%02d.%d is not a calendar date", day, month, year)
	}
	return t, nil
}

// layouts is the fixed parse order for free-form date strings. Day-first
// numerics precede month-first, so ambiguous strings resolve day-first.
var layouts = []string{
	"2006-01-02",
	"02/01/2006", "01/02/2006",
	"02-01-2006", "01-02-2006",
	"02.01.2006", "01.02.2006",
	"2006/01/02",
	"January 2, 2006", "Jan 2, 2006",
	"2 January 2006", "2 Jan 2006",
	"January 2 2006", "Jan 2 2006",
}

// Parse tries each supported layout in order and returns the first hit as
// midnight UTC.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return DateOnly(t), true
		}
	}
	return time.Time{}, false
}

// DateOnly truncates t to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns b minus a in whole days.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / (24 * time.Hour))
}
