package scanmd

import (
	"github.com/shurcooL/sanitized_anchor_name"
)

// SectionType determines the semantic meaning of a Section.
type SectionType int

// SectionType constants. Info and None are reserved: the scanner never emits
// them, but they stay in the set so the serialized enum keeps room for them.
// In particular a "> [!INFO]" tagged quote run still comes out as Quote.
const (
	None SectionType = iota
	Header
	Info
	Paragraph
	List
	Code
	Table
	Image
	Quote
)

// ParseSectionType resolves a serialized type name back to its SectionType.
func ParseSectionType(name string) (SectionType, bool) {
	for t := None; t <= Quote; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return None, false
}

// Section is one classified, contiguous block of a source document.
type Section struct {
	// Type is the classified construct kind.
	Type SectionType

	// Content is the raw text of the construct: source lines joined with
	// newlines, trailing newlines trimmed. Header content is the trimmed
	// remainder after its '#' marker; code content excludes the fence
	// delimiter lines. Inline formatting is kept verbatim, never parsed.
	Content string

	// Depth is the header level, 1 through 6; explicitly 0 for every
	// other section type.
	Depth int

	// Meta carries construct metadata under open string keys. Today only
	// fenced code blocks populate it, with "lang" holding the fence info
	// tag; untagged fences carry no "lang" key at all.
	Meta map[string]string
}

// IsHeader returns true for header sections.
func (s Section) IsHeader() bool { return s.Type == Header }

// Lang returns the code block language tag, "" when absent.
func (s Section) Lang() string { return s.Meta["lang"] }

// Anchor returns a sanitized anchor slug for a header section, the same
// form blackfriday generates for heading IDs. Returns "" for non-headers.
func (s Section) Anchor() string {
	if s.Type != Header {
		return ""
	}
	return sanitized_anchor_name.Create(s.Content)
}
