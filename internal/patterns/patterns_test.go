package patterns

import "testing"

func TestCategoriesCanonicalOrder(t *testing.T) {
	want := []Material{Piping, Valves, Flanges, Fittings, Bolts, Gaskets, FinnedTubes}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMaterialLabel(t *testing.T) {
	if got := FinnedTubes.Label(); got != "finned tubes" {
		t.Fatalf("FinnedTubes.Label() = %q, want %q", got, "finned tubes")
	}
	if got := Valves.Label(); got != "valves" {
		t.Fatalf("Valves.Label() = %q, want %q", got, "valves")
	}
}

func TestDefaultLibraryShape(t *testing.T) {
	lib := Default()
	if len(lib.Materials) != 7 {
		t.Fatalf("material entries = %d, want 7", len(lib.Materials))
	}
	if len(lib.DeadlineContexts) != 9 {
		t.Fatalf("deadline contexts = %d, want 9", len(lib.DeadlineContexts))
	}
	if len(lib.DateGrammars) != 6 {
		t.Fatalf("date grammars = %d, want 6", len(lib.DateGrammars))
	}
	if lib.DateGrammars[0].Form != FormNumericDMY {
		t.Fatalf("first grammar form = %d, want numeric day-month-year", lib.DateGrammars[0].Form)
	}
	cues := map[string]bool{}
	for _, c := range lib.SpecCues {
		cues[c] = true
	}
	for _, want := range []string{"specification", "astm", "rating"} {
		if !cues[want] {
			t.Fatalf("spec cues missing %q", want)
		}
	}
}

func TestDeadlineContextPriority(t *testing.T) {
	lib := Default()
	// The catch-all "deadline" phrase ranks first; quotation-specific last.
	if !lib.DeadlineContexts[0].MatchString("deadline: tomorrow") {
		t.Fatalf("first context should match a bare deadline label")
	}
	if !lib.DeadlineContexts[len(lib.DeadlineContexts)-1].MatchString("Quotation due 5 May") {
		t.Fatalf("last context should match quotation phrasing")
	}
}

func TestContextsMatchCaseInsensitively(t *testing.T) {
	lib := Default()
	for _, s := range []string{"DEADLINE:", "Deadline :", "deadline"} {
		if !lib.DeadlineContexts[0].MatchString(s) {
			t.Errorf("context did not match %q", s)
		}
	}
}
