package extract

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mmhamza1234/procurement/internal/dates"
	"github.com/mmhamza1234/procurement/internal/patterns"
)

// Window around a deadline phrase searched for a nearby date.
const (
	windowBefore = 50
	windowAfter  = 100
)

// Deadline finds the most plausible deadline in the text. Dates sitting
// near a deadline phrase win over dates elsewhere ("established 1998" must
// not become a deadline); when no phrase-anchored date exists the whole
// text is scanned. Either way only calendar-valid dates strictly after
// today qualify.
func (a *Analyzer) Deadline(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	today := dates.DateOnly(a.Now())

	for _, ctx := range a.Lib.DeadlineContexts {
		for _, loc := range ctx.FindAllStringIndex(text, -1) {
			start := loc[0] - windowBefore
			if start < 0 {
				start = 0
			}
			end := loc[1] + windowAfter
			if end > len(text) {
				end = len(text)
			}
			if d, ok := a.findDate(text[start:end], today); ok {
				return d, true
			}
		}
	}
	return a.findDate(text, today)
}

// findDate returns the first valid future date, trying grammars in library
// order and matches in document order within each grammar.
func (a *Analyzer) findDate(text string, today time.Time) (time.Time, bool) {
	for _, g := range a.Lib.DateGrammars {
		for _, m := range g.Re.FindAllStringSubmatch(text, -1) {
			d, err := resolveDate(g.Form, m)
			if err != nil {
				continue
			}
			if d.After(today) {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// resolveDate turns one grammar match into a calendar date, or rejects it.
func resolveDate(form patterns.DateForm, m []string) (time.Time, error) {
	switch form {
	case patterns.FormNumericDMY:
		return dates.Normalize(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	case patterns.FormNumericDMYShort:
		return dates.Normalize(atoi(m[1]), atoi(m[2]), dates.ExpandYear(atoi(m[3])))
	case patterns.FormNumericYMD:
		return dates.Normalize(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	case patterns.FormMonthFirst, patterns.FormMonthFirstOrd:
		month, ok := dates.MonthNumber(m[1])
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month %q", m[1])
		}
		return dates.Normalize(atoi(m[2]), int(month), atoi(m[3]))
	case patterns.FormDayFirst:
		month, ok := dates.MonthNumber(m[2])
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month %q", m[2])
		}
		return dates.Normalize(atoi(m[1]), int(month), atoi(m[3]))
	default:
		return time.Time{}, fmt.Errorf("unhandled date form %d", form)
	}
}

// atoi is safe here: grammar groups only ever capture digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
