package scanmd

import (
	"fmt"
	"io"
)

// String returns the section type's serialized enum name.
func (t SectionType) String() string {
	switch t {
	case None:
		return "NONE"
	case Header:
		return "HEADER"
	case Info:
		return "INFO"
	case Paragraph:
		return "PARAGRAPH"
	case List:
		return "LIST"
	case Code:
		return "CODE"
	case Table:
		return "TABLE"
	case Image:
		return "IMAGE"
	case Quote:
		return "QUOTE"
	}
	return fmt.Sprintf("InvalidSectionType%d", int(t))
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Headers render with their level ("HEADER2"); the `+`
// flag adds content and any metadata.
func (s Section) Format(f fmt.State, _ rune) {
	if s.Type == Header {
		fmt.Fprintf(f, "%v%v", s.Type, s.Depth)
	} else {
		io.WriteString(f, s.Type.String())
	}
	if f.Flag('+') {
		fmt.Fprintf(f, " %q", s.Content)
		if lang := s.Lang(); lang != "" {
			fmt.Fprintf(f, " lang=%q", lang)
		}
	}
}

// Format writes a kind string representing the receiver signal.
func (k LineKind) Format(f fmt.State, _ rune) {
	switch k {
	case LineText:
		io.WriteString(f, "Text")
	case LineHeader:
		io.WriteString(f, "Header")
	case LineFence:
		io.WriteString(f, "Fence")
	case LineImage:
		io.WriteString(f, "Image")
	case LineListItem:
		io.WriteString(f, "ListItem")
	case LineTableRow:
		io.WriteString(f, "TableRow")
	case LineQuote:
		io.WriteString(f, "Quote")
	case LineBlank:
		io.WriteString(f, "Blank")
	default:
		fmt.Fprintf(f, "InvalidLineKind%d", int(k))
	}
}
