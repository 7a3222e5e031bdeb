package supplier

import "github.com/mmhamza1234/procurement/internal/patterns"

// Suppliers established in or after this year count as recent additions.
const recentSince = 2020

var europeanCountries = map[string]bool{
	"Germany":        true,
	"France":         true,
	"Austria":        true,
	"Denmark":        true,
	"Finland":        true,
	"Italy":          true,
	"Netherlands":    true,
	"Norway":         true,
	"United Kingdom": true,
	"Belgium":        true,
}

// Stats summarizes the makeup of a roster.
type Stats struct {
	Total      int                       `json:"total"`
	Countries  int                       `json:"countries"`
	ByCountry  map[string]int            `json:"by_country"`
	ByMaterial map[patterns.Material]int `json:"by_material"`
	European   int                       `json:"european"`
	Recent     int                       `json:"recent"`
}

// Summarize counts roster entries by country of origin and by the material
// categories they cover.
func Summarize(roster []Supplier) Stats {
	st := Stats{
		ByCountry:  make(map[string]int),
		ByMaterial: make(map[patterns.Material]int),
	}
	for _, s := range roster {
		st.Total++
		if s.Country != "" {
			st.ByCountry[s.Country]++
		}
		for _, m := range patterns.Categories() {
			if s.Supplies(m) {
				st.ByMaterial[m]++
			}
		}
		if europeanCountries[s.Country] {
			st.European++
		}
		if s.Established >= recentSince {
			st.Recent++
		}
	}
	st.Countries = len(st.ByCountry)
	return st
}
