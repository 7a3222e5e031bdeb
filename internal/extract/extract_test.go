package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/mmhamza1234/procurement/internal/patterns"
)

// All extraction tests pin "today" to a Tuesday in August 2026 so the
// future-date filter behaves the same forever.
func testAnalyzer() *Analyzer {
	a := NewAnalyzer()
	a.Now = func() time.Time {
		return time.Date(2026, time.August, 25, 9, 30, 0, 0, time.UTC)
	}
	return a
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMaterialsMixedCase(t *testing.T) {
	a := testAnalyzer()
	got := a.Materials("Supply of VALVE assemblies and one spare Gasket set.")
	want := []patterns.Material{patterns.Valves, patterns.Gaskets}
	if len(got) != len(want) {
		t.Fatalf("Materials = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Materials = %v, want %v", got, want)
		}
	}
}

func TestMaterialsOneMentionSuffices(t *testing.T) {
	a := testAnalyzer()
	got := a.Materials("heat exchanger tube bundle, quantity 40")
	// "tube" hits piping and "heat exchanger tube" hits finned tubes.
	want := []patterns.Material{patterns.Piping, patterns.FinnedTubes}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Materials = %v, want %v", got, want)
	}
}

func TestMaterialsNone(t *testing.T) {
	a := testAnalyzer()
	if got := a.Materials("General consultancy services only."); len(got) != 0 {
		t.Fatalf("Materials = %v, want none", got)
	}
}

func TestDeadlineMonthName(t *testing.T) {
	a := testAnalyzer()
	got, ok := a.Deadline("Proposals must be submitted by December 15, 2026 at the latest.")
	if !ok {
		t.Fatalf("Deadline not found")
	}
	if want := date(2026, time.December, 15); !got.Equal(want) {
		t.Fatalf("Deadline = %v, want %v", got, want)
	}
}

func TestDeadlineOrdinalSuffix(t *testing.T) {
	a := testAnalyzer()
	got, ok := a.Deadline("Submission deadline: December 15th, 2026")
	if !ok {
		t.Fatalf("Deadline not found")
	}
	if want := date(2026, time.December, 15); !got.Equal(want) {
		t.Fatalf("Deadline = %v, want %v", got, want)
	}
}

func TestDeadlineTwoDigitYear(t *testing.T) {
	a := testAnalyzer()
	got, ok := a.Deadline("Quotation due by: 15/12/26")
	if !ok {
		t.Fatalf("Deadline not found")
	}
	if want := date(2026, time.December, 15); !got.Equal(want) {
		t.Fatalf("Deadline = %v, want %v", got, want)
	}
}

func TestDeadlineContextBeatsEarlierDate(t *testing.T) {
	a := testAnalyzer()
	text := "Mandatory site visit on 10/11/2026 at the terminal gate." +
		strings.Repeat(" Refer to the annex for access and safety instructions.", 3) +
		" Closing date: 15/12/2026."
	got, ok := a.Deadline(text)
	if !ok {
		t.Fatalf("Deadline not found")
	}
	if want := date(2026, time.December, 15); !got.Equal(want) {
		t.Fatalf("Deadline = %v, want %v (context-anchored date must win)", got, want)
	}
}

func TestDeadlineFallbackScan(t *testing.T) {
	a := testAnalyzer()
	got, ok := a.Deadline("Commissioning is planned for 15/12/2026 per the master schedule.")
	if !ok {
		t.Fatalf("Deadline not found")
	}
	if want := date(2026, time.December, 15); !got.Equal(want) {
		t.Fatalf("Deadline = %v, want %v", got, want)
	}
}

func TestDeadlineIgnoresPastDates(t *testing.T) {
	a := testAnalyzer()
	if got, ok := a.Deadline("The contractor was established on 12/03/1998."); ok {
		t.Fatalf("Deadline = %v, want none for a past date", got)
	}
	// Same date phrased as a deadline is still in the past, still ignored.
	if got, ok := a.Deadline("Original deadline: 12/03/2020 (first round, now closed)."); ok {
		t.Fatalf("Deadline = %v, want none for a past deadline", got)
	}
}

func TestDeadlineRejectsImpossibleDates(t *testing.T) {
	a := testAnalyzer()
	if got, ok := a.Deadline("Deadline: 31/04/2027"); ok {
		t.Fatalf("Deadline = %v, want none for April 31", got)
	}
}

func TestDeadlineSkipsInvalidThenFindsValid(t *testing.T) {
	a := testAnalyzer()
	got, ok := a.Deadline("Deadline: 31/04/2027, corrected to 30/04/2027 in addendum 2.")
	if !ok {
		t.Fatalf("Deadline not found")
	}
	if want := date(2027, time.April, 30); !got.Equal(want) {
		t.Fatalf("Deadline = %v, want %v", got, want)
	}
}

func TestDeadlineEmptyText(t *testing.T) {
	a := testAnalyzer()
	if got, ok := a.Deadline(""); ok {
		t.Fatalf("Deadline = %v on empty text, want none", got)
	}
	if got, ok := a.Deadline("No dates are mentioned anywhere in this blurb."); ok {
		t.Fatalf("Deadline = %v, want none", got)
	}
}

func TestSpecificationsCuesAndStructure(t *testing.T) {
	a := testAnalyzer()
	text := strings.Join([]string{
		"To whom it may concern,",
		"Grade B carbon steel pipes",
		`24" diameter pipe, Schedule 40`,
		"Grade B carbon steel pipes", // duplicate, dropped
		"API 5L PSL2",
		"ok",         // below the minimum length
		"Thank you.", // no cue, no structure
		"",
	}, "\n")
	got := a.Specifications(text)
	want := []string{
		"Grade B carbon steel pipes",
		`24" diameter pipe, Schedule 40`,
		"API 5L PSL2",
	}
	if len(got) != len(want) {
		t.Fatalf("Specifications = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Specifications[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSpecificationsMinimumLength(t *testing.T) {
	a := testAnalyzer()
	// "specification" qualifies the line but five characters or fewer is noise.
	if got := a.Specifications("spec\nspecs"); len(got) != 0 {
		t.Fatalf("Specifications = %#v, want none", got)
	}
	got := a.Specifications("spec A1")
	if len(got) != 1 || got[0] != "spec A1" {
		t.Fatalf("Specifications = %#v, want [spec A1]", got)
	}
}

func TestProjectInfoLabels(t *testing.T) {
	a := testAnalyzer()
	name, ref := a.ProjectInfo("Project: gas processing plant expansion\nRef: AED-RFQ-118\n")
	if name != "Gas Processing Plant Expansion" {
		t.Fatalf("project name = %q, want %q", name, "Gas Processing Plant Expansion")
	}
	if ref != "AED-RFQ-118" {
		t.Fatalf("tender reference = %q, want %q", ref, "AED-RFQ-118")
	}
}

func TestProjectInfoReferenceUppercased(t *testing.T) {
	a := testAnalyzer()
	_, ref := a.ProjectInfo("quotation paperwork\nrfq: tnd-2026-001\n")
	if ref != "TND-2026-001" {
		t.Fatalf("tender reference = %q, want %q", ref, "TND-2026-001")
	}
}

func TestProjectInfoLengthBounds(t *testing.T) {
	a := testAnalyzer()
	// A matching label whose capture is too short is spent, not retried:
	// later labels only fire when earlier ones found nothing at all.
	name, _ := a.ProjectInfo("name: ab\ntitle: Offshore Platform Revamp\n")
	if name != "" {
		t.Fatalf("project name = %q, want empty (short capture wins nothing)", name)
	}
	long := strings.Repeat("x", 120)
	name, _ = a.ProjectInfo("project: " + long + "\n")
	if name != "" {
		t.Fatalf("project name = %q, want empty for an overlong capture", name)
	}
}

func TestProjectInfoMissing(t *testing.T) {
	a := testAnalyzer()
	name, ref := a.ProjectInfo("plain body text with no labels at all")
	if name != "" || ref != "" {
		t.Fatalf("ProjectInfo = %q, %q, want empty hints", name, ref)
	}
}

func TestAnalyzeMergesAllFields(t *testing.T) {
	a := testAnalyzer()
	text := strings.Join([]string{
		"Project: desalination intake upgrade",
		"Ref: AED-2026-114",
		"Scope covers carbon steel piping and gate valves.",
		`Line pipe 24" diameter pipe, Schedule 40, Grade B`,
		"Quotation deadline: 15/12/2026",
	}, "\n")
	doc := a.Analyze(text)

	if doc.RawText != text {
		t.Fatalf("RawText not preserved")
	}
	// Keyword matching is substring based, so "steel" also carries "tee".
	wantMaterials := []patterns.Material{patterns.Piping, patterns.Valves, patterns.Fittings}
	if len(doc.Materials) != len(wantMaterials) {
		t.Fatalf("Materials = %v, want %v", doc.Materials, wantMaterials)
	}
	for i := range wantMaterials {
		if doc.Materials[i] != wantMaterials[i] {
			t.Fatalf("Materials = %v, want %v", doc.Materials, wantMaterials)
		}
	}
	if doc.Deadline == nil || !doc.Deadline.Equal(date(2026, time.December, 15)) {
		t.Fatalf("Deadline = %v, want 2026-12-15", doc.Deadline)
	}
	if doc.ProjectName != "Desalination Intake Upgrade" {
		t.Fatalf("ProjectName = %q", doc.ProjectName)
	}
	if doc.TenderReference != "AED-2026-114" {
		t.Fatalf("TenderReference = %q", doc.TenderReference)
	}
	if len(doc.Specifications) == 0 {
		t.Fatalf("Specifications empty, want at least the pipe line")
	}
	if doc.Error != "" {
		t.Fatalf("Error = %q, want empty", doc.Error)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := testAnalyzer()
	doc := a.Analyze("")
	if doc.Deadline != nil {
		t.Fatalf("Deadline = %v, want nil", doc.Deadline)
	}
	if len(doc.Materials) != 0 || len(doc.Specifications) != 0 {
		t.Fatalf("empty input produced fields: %#v", doc)
	}
	if doc.ProjectName != "" || doc.TenderReference != "" {
		t.Fatalf("empty input produced hints: %q, %q", doc.ProjectName, doc.TenderReference)
	}
}

func TestAnalyzeWithExtendedLibrary(t *testing.T) {
	o := &patterns.Overlay{Materials: map[string][]string{"piping": {"riser"}}}
	lib, err := patterns.Default().Extend(o)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	a := testAnalyzer()
	a.Lib = lib
	got := a.Materials("Subsea riser installation scope")
	if len(got) != 1 || got[0] != patterns.Piping {
		t.Fatalf("Materials with overlay = %v, want [piping]", got)
	}
	// The stock analyzer must not see the overlay keyword.
	if got := testAnalyzer().Materials("Subsea riser installation scope"); len(got) != 0 {
		t.Fatalf("default analyzer saw overlay keyword: %v", got)
	}
}
