package mdslice

import (
	"regexp"

	"github.com/mdslice/mdslice/scanmd"
)

// Section and SectionType are re-exported from scanmd, where the scanner
// that produces them lives.
type (
	Section     = scanmd.Section
	SectionType = scanmd.SectionType
)

// SectionType constants, re-exported for consumers of this package.
const (
	None      = scanmd.None
	Header    = scanmd.Header
	Info      = scanmd.Info
	Paragraph = scanmd.Paragraph
	List      = scanmd.List
	Code      = scanmd.Code
	Table     = scanmd.Table
	Image     = scanmd.Image
	Quote     = scanmd.Quote
)

// Document is an ordered sequence of parsed sections, plus an optional
// source path kept for provenance only. A Document is immutable once built:
// it is constructed by parsing (or FromDict) and only read afterwards, so
// it may be shared freely across goroutines.
type Document struct {
	path     string
	sections []Section
}

// Path returns the source path the document was parsed from, "" when the
// document came from text.
func (d *Document) Path() string { return d.path }

// Len returns the number of sections.
func (d *Document) Len() int { return len(d.sections) }

// At returns the i-th section in document order.
func (d *Document) At(i int) Section { return d.sections[i] }

// Sections returns a copy of the sections in document order.
func (d *Document) Sections() []Section {
	return append([]Section(nil), d.sections...)
}

// Headers returns all header sections whose depth falls in the inclusive
// [minDepth, maxDepth] range, in document order. A zero bound leaves that
// end unrestricted.
func (d *Document) Headers(minDepth, maxDepth int) []Section {
	if minDepth < 1 {
		minDepth = 1
	}
	if maxDepth < 1 || maxDepth > 6 {
		maxDepth = 6
	}
	var out []Section
	for _, s := range d.sections {
		if s.IsHeader() && minDepth <= s.Depth && s.Depth <= maxDepth {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the first section, in document order, for which pred holds.
// A false second return means no section matched; that is a normal outcome,
// not an error.
func (d *Document) Find(pred func(Section) bool) (Section, bool) {
	for _, s := range d.sections {
		if pred(s) {
			return s, true
		}
	}
	return Section{}, false
}

// OfType returns all sections of the given type, in document order.
func (d *Document) OfType(t SectionType) []Section {
	var out []Section
	for _, s := range d.sections {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// Search returns all sections whose content matches re, in document order.
func (d *Document) Search(re *regexp.Regexp) []Section {
	var out []Section
	for _, s := range d.sections {
		if re.MatchString(s.Content) {
			out = append(out, s)
		}
	}
	return out
}
