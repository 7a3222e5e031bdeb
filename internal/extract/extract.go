package extract

import (
	"time"

	"github.com/mmhamza1234/procurement/internal/patterns"
)

// Document is the structured record produced by one Analyze call. Missing
// fields stay empty; Error is reserved for upstream text-acquisition
// failures (an unreadable file in a batch, say) and is never set here.
type Document struct {
	RawText         string              `json:"raw_text"`
	Materials       []patterns.Material `json:"materials"`
	Deadline        *time.Time          `json:"deadline,omitempty"`
	Specifications  []string            `json:"specifications"`
	ProjectName     string              `json:"project_name,omitempty"`
	TenderReference string              `json:"tender_reference,omitempty"`
	Error           string              `json:"error,omitempty"`
}

// Analyzer runs the field extractors over tender text. Lib is treated as
// read-only shared data; Now feeds the future-date filter so tests can pin
// the clock. Every method is pure and safe for concurrent use.
type Analyzer struct {
	Lib *patterns.Library
	Now func() time.Time
}

// NewAnalyzer returns an Analyzer on the default pattern Library.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Lib: patterns.Default(), Now: time.Now}
}

// Analyze runs every extractor independently over the same text and merges
// the partial results. Extractors never fail on malformed input; absence of
// a match simply leaves the field empty.
func (a *Analyzer) Analyze(text string) *Document {
	doc := &Document{
		RawText:        text,
		Materials:      a.Materials(text),
		Specifications: a.Specifications(text),
	}
	if d, ok := a.Deadline(text); ok {
		doc.Deadline = &d
	}
	doc.ProjectName, doc.TenderReference = a.ProjectInfo(text)
	return doc
}
