// Package mdio provides small write plumbing for emitting reconstructed
// markdown: a line-chunk write buffer and an error-latching writer.
package mdio

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer. Content is
// staged in the buffer and moved to To in whole-line chunks. Example use:
//
// 	var buf WriteBuffer
// 	buf.To = os.Stdout
// 	for _, sec := range sections {
// 		fmt.Fprintf(&buf, "%+v\n", sec)
// 		buf.MaybeFlush() // TODO errcheck
// 	}
// 	buf.Flush() // TODO errcheck
type WriteBuffer struct {
	To io.Writer
	bytes.Buffer
}

// Flush writes all buffered content to To, complete lines or not. Should be
// called once after the main write phase.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes buffered content through the last written newline byte
// to To, retaining any partial trailing line.
func (buf *WriteBuffer) MaybeFlush() error {
	b := buf.Bytes()
	i := bytes.LastIndexByte(b, '\n')
	if i < 0 {
		return nil
	}
	n, err := buf.To.Write(b[:i+1])
	buf.Next(n)
	return err
}

// ErrWriter wraps a writer, latching its first error and dropping all
// writes after a non-nil one.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// WriteLines calls next around an internal WriteBuffer until it returns
// false, flushing complete lines after every call and everything at the
// end. Iteration stops early once a write error is encountered; the first
// such error is returned.
func WriteLines(to io.Writer, next func(w io.Writer, flush func()) bool) error {
	ew, _ := to.(*ErrWriter)
	if ew == nil {
		ew = &ErrWriter{Writer: to}
	}
	var buf WriteBuffer
	buf.To = ew
	for ew.Err == nil && next(&buf, func() { buf.Flush() }) {
		buf.MaybeFlush()
	}
	buf.Flush()
	return ew.Err
}
