package supplier

import (
	"strings"

	"github.com/mmhamza1234/procurement/internal/patterns"
)

// Supplies reports whether the supplier lists the given material category.
// The check is a case-insensitive substring match so roster entries like
// "Carbon Steel Piping" still count for the piping category.
func (s Supplier) Supplies(m patterns.Material) bool {
	return strings.Contains(s.MaterialsText(), m.Label())
}

// Filter keeps suppliers that cover at least one wanted category and are not
// based in an excluded country. An empty category list keeps every supplier.
func Filter(roster []Supplier, materials []patterns.Material, excludeOrigins []string) []Supplier {
	out := make([]Supplier, 0, len(roster))
	for _, s := range roster {
		if len(materials) > 0 && !suppliesAny(s, materials) {
			continue
		}
		if excludedOrigin(s.Country, excludeOrigins) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func suppliesAny(s Supplier, materials []patterns.Material) bool {
	for _, m := range materials {
		if s.Supplies(m) {
			return true
		}
	}
	return false
}

func excludedOrigin(country string, origins []string) bool {
	for _, o := range origins {
		if strings.EqualFold(strings.TrimSpace(o), strings.TrimSpace(country)) {
			return true
		}
	}
	return false
}

// Search keeps suppliers whose name, country, specialization or material list
// contains the term, case-insensitively. A blank term keeps every supplier.
func Search(roster []Supplier, term string) []Supplier {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return roster
	}
	out := make([]Supplier, 0, len(roster))
	for _, s := range roster {
		if strings.Contains(strings.ToLower(s.Company), term) ||
			strings.Contains(strings.ToLower(s.Country), term) ||
			strings.Contains(strings.ToLower(s.Specialization), term) ||
			strings.Contains(s.MaterialsText(), term) {
			out = append(out, s)
		}
	}
	return out
}

// ByCountry keeps suppliers based in the given country, case-insensitively.
func ByCountry(roster []Supplier, country string) []Supplier {
	out := make([]Supplier, 0, len(roster))
	for _, s := range roster {
		if strings.EqualFold(strings.TrimSpace(s.Country), strings.TrimSpace(country)) {
			out = append(out, s)
		}
	}
	return out
}
