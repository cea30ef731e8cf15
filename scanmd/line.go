package scanmd

import "bytes"

// LineKind identifies what a single source line represents in isolation,
// before the assembler decides how it combines with its neighbors.
type LineKind int

// LineKind constants for each line-level signal.
const (
	LineText LineKind = iota // zero value: candidate paragraph content
	LineHeader
	LineFence
	LineImage
	LineListItem
	LineTableRow
	LineQuote
	LineBlank
)

// Fence records the delimiter of an open fenced code block.
type Fence struct {
	Delim byte // '`' or '~'
	Width int  // delimiter run length, at least 3
}

// Open returns true if the fence has been opened and not yet closed.
func (f Fence) Open() bool { return f.Delim != 0 }

// State is the minimal lookback a line needs to be classified: whether a
// fenced code block is currently open, and whether the previous line was a
// table row. The assembler tracks both and threads them back in; Classify
// itself retains nothing between calls.
type State struct {
	Fence   Fence
	InTable bool
}

// Line is the classification of one raw source line.
type Line struct {
	Kind  LineKind
	Depth int    // header level 1..6, for LineHeader
	Fence Fence  // delimiter details, for LineFence
	Text  string // header remainder or fence info tag, trimmed
}

// Classify maps one raw source line to its line-level signal, given the
// assembler's lookback state. Matching happens against the
// whitespace-trimmed line; callers keep the raw line for content. A line
// that could match several signals resolves by fixed priority:
// header, fence, image, list item, table row, quote, blank, text.
//
// Inside an open fence only a matching close delimiter is recognized; every
// other line, special looking or not, classifies as text.
func Classify(raw []byte, st State) Line {
	line := bytes.TrimSpace(raw)

	if st.Fence.Open() {
		if delim, width, rest := fenceMarker(line); delim == st.Fence.Delim && width >= st.Fence.Width && len(rest) == 0 {
			return Line{Kind: LineFence, Fence: Fence{Delim: delim, Width: width}}
		}
		return Line{Kind: LineText}
	}

	if depth, rest, ok := headerMarker(line); ok {
		return Line{Kind: LineHeader, Depth: depth, Text: string(rest)}
	}
	if delim, width, rest := fenceMarker(line); delim != 0 {
		return Line{Kind: LineFence, Fence: Fence{Delim: delim, Width: width}, Text: infoTag(rest)}
	}
	if imageLine(line) {
		return Line{Kind: LineImage}
	}
	if listMarker(line) {
		return Line{Kind: LineListItem}
	}
	if tableRow(line) || (st.InTable && tableSeparator(line)) {
		return Line{Kind: LineTableRow}
	}
	if len(line) > 0 && line[0] == '>' {
		return Line{Kind: LineQuote}
	}
	if blankLine(line) {
		return Line{Kind: LineBlank}
	}
	return Line{Kind: LineText}
}

// headerMarker recognizes an ATX header: 1 to 6 '#' bytes followed by
// whitespace or end of line. Returns the level and the trimmed remainder.
func headerMarker(line []byte) (depth int, rest []byte, ok bool) {
	for depth < len(line) && line[depth] == '#' {
		depth++
	}
	if depth < 1 || depth > 6 {
		return 0, nil, false
	}
	if depth < len(line) && !isByte(line[depth], ' ', '\t') {
		return 0, nil, false
	}
	return depth, bytes.TrimSpace(line[depth:]), true
}

// fenceMarker recognizes a run of three or more identical fence bytes,
// returning the delimiter, its run width, and the line trailer.
func fenceMarker(line []byte) (delim byte, width int, rest []byte) {
	if len(line) == 0 || !isByte(line[0], '`', '~') {
		return 0, 0, nil
	}
	delim = line[0]
	for width = 1; width < len(line); width++ {
		if line[width] != delim {
			break
		}
	}
	if width < 3 {
		return 0, 0, nil
	}
	return delim, width, line[width:]
}

// infoTag extracts the language tag from an opening fence trailer: its first
// whitespace-separated field, or "" when the fence carries none.
func infoTag(rest []byte) string {
	if fields := bytes.Fields(rest); len(fields) > 0 {
		return string(fields[0])
	}
	return ""
}

// imageLine recognizes an image reference spanning the whole line:
// '!' + bracketed alt text + parenthesized target, nothing else.
func imageLine(line []byte) bool {
	if len(line) < 5 || line[0] != '!' || line[1] != '[' {
		return false
	}
	i := bytes.IndexByte(line[2:], ']')
	if i < 0 {
		return false
	}
	i += 2
	if i+1 >= len(line) || line[i+1] != '(' {
		return false
	}
	j := bytes.IndexByte(line[i+2:], ')')
	if j < 0 {
		return false
	}
	return i+2+j == len(line)-1
}

// listMarker recognizes a bullet ('-', '*', '+') or an ordinal ("1." or
// "1)") followed by whitespace.
func listMarker(line []byte) bool {
	if len(line) == 0 {
		return false
	}
	tail := line
	if isByte(tail[0], '-', '*', '+') {
		tail = tail[1:]
	} else {
		width, rest := ordinal(tail)
		if width == 0 || len(rest) == 0 || !isByte(rest[0], '.', ')') {
			return false
		}
		tail = rest[1:]
	}
	return len(tail) > 0 && isByte(tail[0], ' ', '\t')
}

func ordinal(line []byte) (width int, tail []byte) {
	for tail = line; len(tail) > 0; tail = tail[1:] {
		if c := tail[0]; c < '0' || c > '9' {
			break
		}
		width++
	}
	if width < 1 || width > 9 {
		return 0, nil
	}
	return width, tail
}

// tableRow recognizes a pipe-delimited row: the trimmed line both starts and
// ends with the column separator.
func tableRow(line []byte) bool {
	return len(line) >= 2 && line[0] == '|' && line[len(line)-1] == '|'
}

// tableSeparator recognizes a header/body divider row made of dashes,
// colons, pipes and spaces; only meaningful directly under a table row.
func tableSeparator(line []byte) bool {
	marks := false
	for _, c := range line {
		switch c {
		case '-', ':':
			marks = true
		case '|', ' ', '\t':
		default:
			return false
		}
	}
	return marks
}

// blankLine recognizes separator lines: empty after trimming, or a literal
// non-breaking-space entity, which some exporters emit for vertical space.
func blankLine(line []byte) bool {
	if len(line) == 0 {
		return true
	}
	s := string(line)
	return s == "&nbsp" || s == "&nbsp;"
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}
