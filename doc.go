// Package mdslice slices raw Markdown text into a typed, ordered document
// model: a sequence of classified sections (headers, paragraphs, code
// blocks, lists, tables, images, quotes) each carrying its text content and
// extracted metadata. The model can then be queried, filtered, serialized
// to a dict/JSON interchange form, or re-rendered as Markdown or HTML.
//
// The parser targets a pragmatic, deterministic subset of Markdown, not
// CommonMark compliance: inline formatting is preserved verbatim inside
// section content, never parsed into sub-nodes. Package scanmd holds the
// line classifier and section assembler; this package holds the document
// surface consumers work with.
package mdslice
