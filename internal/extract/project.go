package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Captured project names outside these bounds are label noise, not names.
const (
	minProjectName = 3
	maxProjectName = 100
)

// References this short are usually stray tokens.
const minReference = 2

// ProjectInfo pulls an optional project name and tender reference from
// labeled lines ("Project:", "RFQ:", "Ref No: ..."). A label that matches
// but fails the length bound falls through to the next label. Both results
// come back empty when nothing qualifies; callers treat them as hints.
func (a *Analyzer) ProjectInfo(text string) (name, reference string) {
	for _, re := range a.Lib.ProjectLabels {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > minProjectName && len(candidate) < maxProjectName {
			name = cases.Title(language.English).String(candidate)
			break
		}
	}
	for _, re := range a.Lib.ReferenceLabels {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.ToUpper(strings.TrimSpace(m[1]))
		if len(candidate) > minReference {
			reference = candidate
			break
		}
	}
	return name, reference
}
