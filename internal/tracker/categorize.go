package tracker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmhamza1234/procurement/internal/rfq"
)

var materialKeywords = []string{
	"piping", "pipes", "valves", "flanges", "fittings", "bolts", "gaskets", "finned tubes",
}

// CategorizeSuppliers folds a draft batch into a one-line breakdown by
// country, listing the material keywords each group covers. Countries keep
// their first-seen order.
func CategorizeSuppliers(drafts []rfq.Draft) string {
	type group struct {
		count     int
		materials map[string]bool
	}
	groups := make(map[string]*group)
	var order []string

	for _, d := range drafts {
		country := d.Country
		if country == "" {
			country = "Unknown"
		}
		g, ok := groups[country]
		if !ok {
			g = &group{materials: make(map[string]bool)}
			groups[country] = g
			order = append(order, country)
		}
		g.count++

		materials := strings.ToLower(d.Materials)
		for _, kw := range materialKeywords {
			if strings.Contains(materials, kw) {
				g.materials[kw] = true
			}
		}
	}

	parts := make([]string, 0, len(order))
	for _, country := range order {
		g := groups[country]
		name := country
		switch strings.ToLower(country) {
		case "china":
			name = "Chinese"
		case "uae":
			name = "Emirati"
		}
		if len(g.materials) > 0 {
			kws := make([]string, 0, len(g.materials))
			for kw := range g.materials {
				kws = append(kws, kw)
			}
			sort.Strings(kws)
			parts = append(parts, fmt.Sprintf("%s: %d suppliers (%s)", name, g.count, strings.Join(kws, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %d suppliers", name, g.count))
		}
	}
	return strings.Join(parts, "; ")
}
