package mdslice_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdslice/mdslice"
)

func TestParseFileSample(t *testing.T) {
	path := filepath.Join("testdata", "sample.md")
	doc, err := mdslice.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	require.Equal(t, 7, doc.Len())

	first := doc.At(0)
	assert.Equal(t, mdslice.Header, first.Type)
	assert.Equal(t, 1, first.Depth)
	assert.Equal(t, "Title", first.Content)

	code, ok := doc.Find(func(s mdslice.Section) bool {
		return s.Type == mdslice.Code && s.Lang() == "javascript"
	})
	require.True(t, ok)
	assert.Equal(t, `console.log("This is a javascript code block");`, code.Content)

	lst, ok := doc.Find(func(s mdslice.Section) bool { return s.Type == mdslice.List })
	require.True(t, ok)
	assert.Contains(t, lst.Content, "- item one")
	assert.Contains(t, lst.Content, "- item two")

	table, ok := doc.Find(func(s mdslice.Section) bool { return s.Type == mdslice.Table })
	require.True(t, ok)
	assert.Contains(t, table.Content, "| h1 | h2 |")
	assert.Contains(t, table.Content, "|----|----|")

	img, ok := doc.Find(func(s mdslice.Section) bool { return s.Type == mdslice.Image })
	require.True(t, ok)
	assert.Equal(t, "![alt](path/to/img.png)", img.Content)
}

func TestParseFileMissing(t *testing.T) {
	_, err := mdslice.ParseFile(filepath.Join("testdata", "does-not-exist.md"))
	require.Error(t, err)
	var ie *mdslice.InputError
	require.True(t, errors.As(err, &ie))
	assert.True(t, os.IsNotExist(ie.Err))
}

func TestParseFileNotUTF8(t *testing.T) {
	dir, err := ioutil.TempDir("", "mdslice")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "bad.md")
	require.NoError(t, ioutil.WriteFile(path, []byte{'#', ' ', 0xff, 0xfe}, 0644))

	_, err = mdslice.ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mdslice.ErrNotUTF8))
}

func TestParseTextNoPath(t *testing.T) {
	doc := mdslice.ParseText("# hello\n")
	assert.Equal(t, "", doc.Path())
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, "hello", doc.At(0).Content)
}

func TestHeaderDepthMatchesSource(t *testing.T) {
	doc := mdslice.ParseText("# H1\n## H2\n### H3\n#### H4\n##### H5\n###### H6\n")
	var depths []int
	for _, s := range doc.Headers(0, 0) {
		depths = append(depths, s.Depth)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, depths)

	for _, s := range doc.Sections() {
		assert.Equal(t, s.IsHeader(), 1 <= s.Depth && s.Depth <= 6)
	}
}
