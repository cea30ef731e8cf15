package mdslice

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"unicode/utf8"

	"github.com/mdslice/mdslice/scanmd"
)

// ErrNotUTF8 reports file content that does not decode as UTF-8; no
// transcoding fallback is attempted.
var ErrNotUTF8 = errors.New("markdown input is not valid UTF-8")

// InputError describes a failure to read or decode markdown input. It is
// the only error kind parsing can surface: the grammar itself is total, so
// malformed markdown degrades to best-effort sections instead of failing.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("markdown input %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseText parses an already-materialized markdown string into a
// Document. It cannot fail: every line classifies into exactly one signal
// and every state has a transition for every signal.
func ParseText(text string) *Document {
	return &Document{sections: scanSections(strings.NewReader(text))}
}

// ParseFile reads path as UTF-8 markdown and parses it, retaining path on
// the returned document. Read and decode failures surface as *InputError.
func ParseFile(path string) (*Document, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return nil, &InputError{Path: path, Err: ErrNotUTF8}
	}
	doc := ParseText(string(b))
	doc.path = path
	return doc, nil
}

func scanSections(r io.Reader) []Section {
	var sections []Section
	sc := scanmd.NewScanner(r)
	for sc.Scan() {
		sections = append(sections, sc.Section())
	}
	return sections
}
