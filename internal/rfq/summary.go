package rfq

import (
	"fmt"
	"sort"
	"strings"
)

// Summary renders a per-country overview of a generated draft batch.
func Summary(drafts []Draft, det Details) string {
	project := det.ProjectName
	if project == "" {
		project = "Unknown Project"
	}

	byCountry := make(map[string]int)
	for _, d := range drafts {
		byCountry[d.Country]++
	}

	parts := []string{
		fmt.Sprintf("**Quotation Request Summary for %s**", project),
		"",
		fmt.Sprintf("• Total drafts generated: %d", len(drafts)),
		fmt.Sprintf("• Quote deadline: %s", formatDeadline(det.QuoteDeadline)),
		fmt.Sprintf("• Countries covered: %d", len(byCountry)),
		"",
	}
	if len(det.ExcludeOrigins) > 0 {
		parts = append(parts,
			fmt.Sprintf("• Excluded origins: %s", strings.Join(det.ExcludeOrigins, ", ")),
			"",
		)
	}

	parts = append(parts, "**Distribution by Country:**")
	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	for _, c := range countries {
		parts = append(parts, fmt.Sprintf("  - %s: %d suppliers", c, byCountry[c]))
	}
	return strings.Join(parts, "\n")
}
