package patterns

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overlay is a YAML fragment extending the built-in Library: extra keyword
// variants for known material categories, extra deadline-context phrases
// (appended after the built-ins, so they rank lowest), and extra
// specification cues. Changing scan behavior never requires touching
// extractor code.
type Overlay struct {
	Materials        map[string][]string `yaml:"materials"`
	DeadlineContexts []string            `yaml:"deadline_contexts"`
	SpecCues         []string            `yaml:"specification_cues"`
}

// LoadOverlay reads an overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overlay %s: %w", path, err)
	}
	return &o, nil
}

// Extend returns a new Library with the overlay applied; the receiver is
// never modified, so the shared default stays pristine. Unknown material
// categories and invalid context expressions are rejected.
func (l *Library) Extend(o *Overlay) (*Library, error) {
	out := &Library{
		Materials:        make([]MaterialKeywords, len(l.Materials)),
		DeadlineContexts: append([]*regexp.Regexp(nil), l.DeadlineContexts...),
		DateGrammars:     append([]DateGrammar(nil), l.DateGrammars...),
		SpecCues:         append([]string(nil), l.SpecCues...),
		Technical:        append([]*regexp.Regexp(nil), l.Technical...),
		ProjectLabels:    append([]*regexp.Regexp(nil), l.ProjectLabels...),
		ReferenceLabels:  append([]*regexp.Regexp(nil), l.ReferenceLabels...),
	}
	for i, entry := range l.Materials {
		out.Materials[i] = MaterialKeywords{
			Category: entry.Category,
			Keywords: append([]string(nil), entry.Keywords...),
		}
	}

	for cat, kws := range o.Materials {
		idx := -1
		for i, entry := range out.Materials {
			if string(entry.Category) == cat {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown material category %q", cat)
		}
		for _, kw := range kws {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			out.Materials[idx].Keywords = append(out.Materials[idx].Keywords, kw)
		}
	}

	for _, expr := range o.DeadlineContexts {
		re, err := regexp.Compile(`(?i)` + expr)
		if err != nil {
			return nil, fmt.Errorf("deadline context %q: %w", expr, err)
		}
		out.DeadlineContexts = append(out.DeadlineContexts, re)
	}

	for _, cue := range o.SpecCues {
		cue = strings.ToLower(strings.TrimSpace(cue))
		if cue == "" {
			continue
		}
		out.SpecCues = append(out.SpecCues, cue)
	}
	return out, nil
}
