package patterns

import (
	"regexp"
	"strings"
)

// Material identifies one procurement commodity class.
type Material string

const (
	Piping      Material = "piping"
	Valves      Material = "valves"
	Flanges     Material = "flanges"
	Fittings    Material = "fittings"
	Bolts       Material = "bolts"
	Gaskets     Material = "gaskets"
	FinnedTubes Material = "finned_tubes"
)

// Categories lists every material category in canonical order.
func Categories() []Material {
	return []Material{Piping, Valves, Flanges, Fittings, Bolts, Gaskets, FinnedTubes}
}

// Label returns the human form of the category name ("finned tubes").
func (m Material) Label() string {
	return strings.ReplaceAll(string(m), "_", " ")
}

// DateForm tags a date grammar with the meaning of its capture groups.
type DateForm int

const (
	FormNumericDMY      DateForm = iota // 15/12/2026, 15-12-2026, 15.12.2026
	FormNumericDMYShort                 // 15/12/26
	FormNumericYMD                      // 2026/12/15
	FormMonthFirst                      // December 15, 2026
	FormDayFirst                        // 15 December 2026
	FormMonthFirstOrd                   // December 15th, 2026
)

// DateGrammar pairs a date regex with the form its groups follow.
type DateGrammar struct {
	Form DateForm
	Re   *regexp.Regexp
}

// MaterialKeywords holds the keyword variants that flag one category.
type MaterialKeywords struct {
	Category Material
	Keywords []string
}

// Library bundles every lexicon and rule set the extractors run on.
// A Library is immutable once built and safe to share across goroutines;
// Extend returns a new Library rather than touching the receiver.
type Library struct {
	Materials        []MaterialKeywords
	DeadlineContexts []*regexp.Regexp // priority order: earlier phrases win
	DateGrammars     []DateGrammar
	SpecCues         []string
	Technical        []*regexp.Regexp
	ProjectLabels    []*regexp.Regexp
	ReferenceLabels  []*regexp.Regexp
}

var defaultLib = build()

// Default returns the shared built-in Library.
func Default() *Library { return defaultLib }

func build() *Library {
	return &Library{
		Materials: []MaterialKeywords{
			{Piping, []string{"pipe", "piping", "pipeline", "tube", "tubing"}},
			{Valves, []string{"valve", "valves", "ball valve", "gate valve", "check valve", "control valve"}},
			{Flanges, []string{"flange", "flanges", "weld neck", "slip on", "blind flange"}},
			{Fittings, []string{"fitting", "fittings", "elbow", "tee", "reducer", "coupling"}},
			{Bolts, []string{"bolt", "bolts", "stud", "fastener", "fasteners", "screw"}},
			{Gaskets, []string{"gasket", "gaskets", "sealing", "seal", "o-ring"}},
			{FinnedTubes, []string{"finned tube", "finned tubes", "fin tube", "heat exchanger tube"}},
		},
		DeadlineContexts: compileAll(
			`(?i)deadline\s*:?\s*`,
			`(?i)due\s*(?:by|on|date)?\s*:?\s*`,
			`(?i)submit\s*(?:by|before|on)?\s*:?\s*`,
			`(?i)closing\s*(?:date|time)?\s*:?\s*`,
			`(?i)no\s*later\s*than\s*:?\s*`,
			`(?i)final\s*(?:date|deadline)\s*:?\s*`,
			`(?i)tender\s*(?:deadline|due)\s*:?\s*`,
			`(?i)proposal\s*(?:deadline|due)\s*:?\s*`,
			`(?i)quotation\s*(?:deadline|due)\s*:?\s*`,
		),
		DateGrammars: []DateGrammar{
			{FormNumericDMY, regexp.MustCompile(`(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})`)},
			{FormNumericDMYShort, regexp.MustCompile(`(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2})`)},
			{FormNumericYMD, regexp.MustCompile(`(\d{4})[/.\-](\d{1,2})[/.\-](\d{1,2})`)},
			{FormMonthFirst, regexp.MustCompile(`(?i)(\w+)\s+(\d{1,2}),?\s+(\d{4})`)},
			{FormDayFirst, regexp.MustCompile(`(?i)(\d{1,2})\s+(\w+)\s+(\d{4})`)},
			{FormMonthFirstOrd, regexp.MustCompile(`(?i)(\w+)\s+(\d{1,2})\w{0,2},?\s+(\d{4})`)},
		},
		SpecCues: []string{
			"specification", "spec", "requirement", "standard", "grade",
			"material", "size", "pressure", "temperature", "api", "astm",
			"asme", "din", "en", "iso", "class", "rating",
		},
		Technical: compileAll(
			`(?i)\d+["']\s*(?:diameter|dia|pipe|tube)`, // 24" diameter
			`(?i)(?:grade|class|schedule|rating)\s*[a-z0-9]+`,
			`(?i)(?:api|ansi|astm|asme|iso)\s*[0-9a-z-]+`,
			`(?i)\d+\s*(?:mm|cm|in|inch|"|')`,
			`(?i)(?:carbon|stainless|alloy)\s*steel`,
			`(?i)(?:ball|gate|check|globe)\s*valve`,
		),
		ProjectLabels: compileAll(
			`(?i)project\s*:?\s*(.+?)(?:\n|$)`,
			`(?i)project\s+name\s*:?\s*(.+?)(?:\n|$)`,
			`(?i)(?:title|name)\s*:?\s*(.+?)(?:\n|$)`,
		),
		ReferenceLabels: compileAll(
			`(?i)(?:tender|ref|reference)\s*(?:no|number|#)?\s*:?\s*([A-Z0-9-]+)`,
			`(?i)(?:rfq|rfp|tender)\s*:?\s*([A-Z0-9-]+)`,
			`(?i)ref\s*:?\s*([A-Z0-9-]+)`,
		),
	}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}
