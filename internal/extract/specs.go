package extract

import "strings"

// Lines at or below this length are noise, not specifications.
const minSpecLength = 5

// Specifications collects technical requirement lines: any line carrying a
// cue keyword or matching a structural pattern (sizes, standards codes,
// steel families, valve nouns). Lines are trimmed and deduplicated by exact
// text, first occurrence winning; near-duplicates are not merged.
func (a *Analyzer) Specifications(text string) []string {
	var specs []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" || len(clean) <= minSpecLength {
			continue
		}
		if !a.looksLikeSpec(strings.ToLower(clean)) {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		specs = append(specs, clean)
	}
	return specs
}

func (a *Analyzer) looksLikeSpec(lower string) bool {
	for _, cue := range a.Lib.SpecCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	for _, re := range a.Lib.Technical {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
