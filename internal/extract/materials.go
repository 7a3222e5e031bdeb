package extract

import (
	"strings"

	"github.com/mmhamza1234/procurement/internal/patterns"
)

// Materials reports every material category mentioned anywhere in the text.
// One keyword hit includes the category; there is no frequency or position
// weighting. The result has set semantics, returned in canonical category
// order for determinism.
func (a *Analyzer) Materials(text string) []patterns.Material {
	lower := strings.ToLower(text)
	var found []patterns.Material
	for _, entry := range a.Lib.Materials {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, entry.Category)
				break
			}
		}
	}
	return found
}
