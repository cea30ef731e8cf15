package mdslice

import (
	"bytes"
	"io"
	"strings"

	"github.com/russross/blackfriday"

	"github.com/mdslice/mdslice/internal/mdio"
)

// Markdown reconstructs a markdown rendition of the document from its
// sections. The round trip is structural, not textual: blank separator
// lines collapse to one, but section count, order, types, depths and
// metadata all survive re-parsing.
func (d *Document) Markdown() string {
	var buf bytes.Buffer
	d.WriteMarkdown(&buf) // in-memory write cannot fail
	return buf.String()
}

// WriteMarkdown writes the reconstructed markdown rendition to w.
func (d *Document) WriteMarkdown(w io.Writer) error {
	i := 0
	return mdio.WriteLines(w, func(to io.Writer, _ func()) bool {
		if i >= len(d.sections) {
			return false
		}
		if i > 0 {
			io.WriteString(to, "\n")
		}
		writeSectionMarkdown(to, d.sections[i])
		i++
		return true
	})
}

// writeSectionMarkdown re-emits the markers the scanner stripped: header
// hashes and code fences. Every other construct kept its markers in
// content and is written back verbatim.
func writeSectionMarkdown(w io.Writer, s Section) {
	switch s.Type {
	case Header:
		io.WriteString(w, strings.Repeat("#", s.Depth))
		io.WriteString(w, " ")
		io.WriteString(w, s.Content)
	case Code:
		fence := codeFence(s.Content)
		io.WriteString(w, fence)
		io.WriteString(w, s.Lang())
		io.WriteString(w, "\n")
		if s.Content != "" {
			io.WriteString(w, s.Content)
			io.WriteString(w, "\n")
		}
		io.WriteString(w, fence)
	default:
		io.WriteString(w, s.Content)
	}
	io.WriteString(w, "\n")
}

// codeFence returns a backtick fence wider than any backtick run inside
// content, so a re-emitted code block cannot be closed early by its own
// content when re-parsed.
func codeFence(content string) string {
	width := 3
	run := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '`' {
			run = 0
			continue
		}
		if run++; run >= width {
			width = run + 1
		}
	}
	return strings.Repeat("`", width)
}

// HTML renders the document through blackfriday, with the extension set
// matching what the model can represent (fenced code, tables, heading IDs).
// The section model itself never parses inline formatting; HTML rendering
// is a read-only export of the reconstructed markdown.
func (d *Document) HTML() []byte {
	return blackfriday.Run([]byte(d.Markdown()), blackfriday.WithExtensions(0|
		blackfriday.NoIntraEmphasis|
		blackfriday.Tables|
		blackfriday.FencedCode|
		blackfriday.Autolink|
		blackfriday.Strikethrough|
		blackfriday.SpaceHeadings|
		blackfriday.HeadingIDs|
		blackfriday.AutoHeadingIDs|
		blackfriday.BackslashLineBreak,
	))
}
