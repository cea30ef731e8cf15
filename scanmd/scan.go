package scanmd

import (
	"bufio"
	"io"
	"strings"
)

// assembler states; each names the construct currently accumulating.
type scanState int

const (
	stateNone scanState = iota
	stateCode
	stateList
	stateTable
	stateQuote
	stateParagraph
)

func (st scanState) sectionType() SectionType {
	switch st {
	case stateCode:
		return Code
	case stateList:
		return List
	case stateTable:
		return Table
	case stateQuote:
		return Quote
	case stateParagraph:
		return Paragraph
	}
	return None
}

// Scanner assembles a classified line stream into sections, one contiguous
// construct at a time, in document order. It is a single-pass forward-only
// state machine: every line is classified against the prior construct state
// only, never against future lines.
//
// It is not safe to use a Scanner from parallel goroutines.
//
// Example usage:
// 	sc := scanmd.NewScanner(r)
// 	for sc.Scan() {
// 		fmt.Printf("%+v\n", sc.Section())
// 	}
// 	if err := sc.Err(); err != nil { ...
type Scanner struct {
	sc   *bufio.Scanner
	cur  Section
	err  error
	done bool

	st   scanState
	look State    // classifier lookback, threaded into Classify
	buf  []string // raw lines of the open construct
	meta map[string]string
	out  []Section // finalized but undelivered sections
}

// NewScanner returns a Scanner reading markdown from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024) // allow very long lines
	return &Scanner{sc: sc}
}

// Scan advances to the next section, returning false at end of input. On
// end of input any open construct is finalized as if terminated by a blank
// line; an unterminated fence closes implicitly and still yields its code
// section.
func (s *Scanner) Scan() bool {
	for len(s.out) == 0 {
		if s.done {
			return false
		}
		if !s.sc.Scan() {
			s.err = s.sc.Err()
			s.done = true
			s.flush()
			continue
		}
		s.feed(s.sc.Text())
	}
	s.cur = s.out[0]
	s.out = s.out[1:]
	return true
}

// Section returns the section finalized by the last Scan.
func (s *Scanner) Section() Section { return s.cur }

// Err returns the first error encountered by the underlying line scan.
// Classification itself cannot fail: the grammar is total.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) feed(raw string) {
	s.feedLine(raw)
	s.look.InTable = s.st == stateTable
}

func (s *Scanner) feedLine(raw string) {
	line := Classify([]byte(raw), s.look)

	// an open fence swallows every line verbatim until its close; the
	// delimiter lines themselves stay out of the content
	if s.st == stateCode {
		if line.Kind == LineFence {
			s.emit(Code)
			s.look.Fence = Fence{}
			s.st = stateNone
			return
		}
		s.buf = append(s.buf, raw)
		return
	}

	// multi-line runs continue while lines keep matching; anything else
	// finalizes the run and the terminating line is reprocessed below
	switch s.st {
	case stateList:
		if line.Kind == LineListItem {
			s.buf = append(s.buf, raw)
			return
		}
		s.emit(List)
	case stateTable:
		if line.Kind == LineTableRow {
			s.buf = append(s.buf, raw)
			return
		}
		s.emit(Table)
	case stateQuote:
		if line.Kind == LineQuote {
			s.buf = append(s.buf, raw)
			return
		}
		s.emit(Quote)
	case stateParagraph:
		if line.Kind == LineText {
			s.buf = append(s.buf, raw)
			return
		}
		s.emit(Paragraph)
	}
	s.st = stateNone

	switch line.Kind {
	case LineBlank:
		// separator only, never a section

	case LineHeader:
		s.out = append(s.out, Section{Type: Header, Content: line.Text, Depth: line.Depth})

	case LineImage:
		s.out = append(s.out, Section{Type: Image, Content: strings.TrimSpace(raw)})

	case LineFence:
		s.st = stateCode
		s.look.Fence = line.Fence
		if line.Text != "" {
			s.meta = map[string]string{"lang": line.Text}
		}

	case LineListItem:
		s.st = stateList
		s.buf = append(s.buf, raw)

	case LineTableRow:
		s.st = stateTable
		s.buf = append(s.buf, raw)

	case LineQuote:
		s.st = stateQuote
		s.buf = append(s.buf, raw)

	case LineText:
		s.st = stateParagraph
		s.buf = append(s.buf, raw)
	}
}

// flush finalizes whatever construct is still open at end of input.
func (s *Scanner) flush() {
	if t := s.st.sectionType(); t != None {
		s.emit(t)
	}
	s.st = stateNone
	s.look = State{}
}

func (s *Scanner) emit(t SectionType) {
	content := strings.TrimRight(strings.Join(s.buf, "\n"), "\n")
	s.out = append(s.out, Section{Type: t, Content: content, Meta: s.meta})
	s.buf = s.buf[:0]
	s.meta = nil
}
