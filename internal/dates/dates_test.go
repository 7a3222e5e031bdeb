package dates

import (
	"testing"
	"time"
)

func TestNormalizeValid(t *testing.T) {
	cases := []struct {
		day, month, year int
	}{
		{15, 12, 2026},
		{1, 1, 2000},
		{29, 2, 2024}, // leap year
		{31, 12, 1999},
		{30, 4, 2025},
	}
	for _, c := range cases {
		got, err := Normalize(c.day, c.month, c.year)
		if err != nil {
			t.Fatalf("Normalize(%d, %d, %d): %v", c.day, c.month, c.year, err)
		}
		want := time.Date(c.year, time.Month(c.month), c.day, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("Normalize(%d, %d, %d) = %v, want %v", c.day, c.month, c.year, got, want)
		}
	}
}

func TestNormalizeRejectsImpossibleDates(t *testing.T) {
	cases := []struct {
		day, month, year int
	}{
		{31, 4, 2024},  // April has 30 days
		{29, 2, 2023},  // not a leap year
		{0, 6, 2024},
		{15, 13, 2024},
		{15, 0, 2024},
		{32, 1, 2024},
		{15, 12, 0},
	}
	for _, c := range cases {
		if _, err := Normalize(c.day, c.month, c.year); err == nil {
			t.Errorf("Normalize(%d, %d, %d) accepted, want rejection", c.day, c.month, c.year)
		}
	}
}

func TestExpandYear(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 2000},
		{26, 2026},
		{49, 2049},
		{50, 1950},
		{75, 1975},
		{99, 1999},
		{1998, 1998}, // already full
		{2026, 2026},
	}
	for _, c := range cases {
		if got := ExpandYear(c.in); got != c.want {
			t.Errorf("ExpandYear(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	cases := []struct {
		in   string
		want time.Month
		ok   bool
	}{
		{"december", time.December, true},
		{"December", time.December, true},
		{"DEC", time.December, true},
		{"sept", time.September, true},
		{"sep", time.September, true},
		{"may", time.May, true},
		{" march ", time.March, true},
		{"smarch", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := MonthNumber(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("MonthNumber(%q) = %v, %v, want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseFormats(t *testing.T) {
	want := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
	inputs := []string{
		"2026-12-15",
		"15/12/2026",
		"15-12-2026",
		"15.12.2026",
		"2026/12/15",
		"December 15, 2026",
		"Dec 15, 2026",
		"15 December 2026",
		"15 Dec 2026",
		"December 15 2026",
		"Dec 15 2026",
		"  2026-12-15  ",
	}
	for _, in := range inputs {
		got, ok := Parse(in)
		if !ok {
			t.Fatalf("Parse(%q) failed", in)
		}
		if !got.Equal(want) {
			t.Fatalf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDayFirstPreference(t *testing.T) {
	// 03/05 is ambiguous; the day-first layout is tried before month-first.
	got, ok := Parse("03/05/2026")
	if !ok {
		t.Fatalf("Parse failed")
	}
	want := time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse(03/05/2026) = %v, want %v", got, want)
	}
	// A day above 12 cannot be a month, so the month-first layout kicks in.
	got, ok = Parse("12/15/2026")
	if !ok {
		t.Fatalf("Parse failed")
	}
	want = time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse(12/15/2026) = %v, want %v", got, want)
	}
}

func TestParseRejectsJunk(t *testing.T) {
	for _, in := range []string{"", "soon", "15/13/2026", "2026-02-30", "next tuesday"} {
		if _, ok := Parse(in); ok {
			t.Errorf("Parse(%q) succeeded, want failure", in)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Day 15 keeps every layout unambiguous under the fixed parse order.
	d := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
	for _, layout := range layouts {
		got, ok := Parse(d.Format(layout))
		if !ok {
			t.Fatalf("Parse(%q) failed for layout %q", d.Format(layout), layout)
		}
		if !got.Equal(d) {
			t.Fatalf("round trip via %q = %v, want %v", layout, got, d)
		}
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, time.August, 25, 17, 45, 12, 999, time.UTC)
	want := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)
	if got := DateOnly(in); !got.Equal(want) {
		t.Fatalf("DateOnly = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, time.August, 25, 8, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.September, 1, 23, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 7 {
		t.Fatalf("DaysBetween = %d, want 7", got)
	}
	if got := DaysBetween(b, a); got != -7 {
		t.Fatalf("DaysBetween reversed = %d, want -7", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("DaysBetween same day = %d, want 0", got)
	}
}
