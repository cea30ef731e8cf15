package scanmd_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdslice/mdslice/scanmd"
)

func TestSectionTypeNames(t *testing.T) {
	names := map[scanmd.SectionType]string{
		scanmd.None:      "NONE",
		scanmd.Header:    "HEADER",
		scanmd.Info:      "INFO",
		scanmd.Paragraph: "PARAGRAPH",
		scanmd.List:      "LIST",
		scanmd.Code:      "CODE",
		scanmd.Table:     "TABLE",
		scanmd.Image:     "IMAGE",
		scanmd.Quote:     "QUOTE",
	}
	for st, name := range names {
		assert.Equal(t, name, st.String())
		parsed, ok := scanmd.ParseSectionType(name)
		assert.True(t, ok)
		assert.Equal(t, st, parsed)
	}
	_, ok := scanmd.ParseSectionType("LINK")
	assert.False(t, ok)
}

func TestSectionFormat(t *testing.T) {
	header := scanmd.Section{Type: scanmd.Header, Content: "Title", Depth: 2}
	assert.Equal(t, "HEADER2", fmt.Sprintf("%v", header))
	assert.Equal(t, `HEADER2 "Title"`, fmt.Sprintf("%+v", header))

	code := scanmd.Section{Type: scanmd.Code, Content: "x", Meta: map[string]string{"lang": "go"}}
	assert.Equal(t, "CODE", fmt.Sprintf("%v", code))
	assert.Equal(t, `CODE "x" lang="go"`, fmt.Sprintf("%+v", code))
}

func TestSectionHelpers(t *testing.T) {
	header := scanmd.Section{Type: scanmd.Header, Content: "Some Title!", Depth: 1}
	assert.True(t, header.IsHeader())
	assert.Equal(t, "some-title", header.Anchor())

	para := scanmd.Section{Type: scanmd.Paragraph, Content: "text"}
	assert.False(t, para.IsHeader())
	assert.Equal(t, "", para.Anchor())
	assert.Equal(t, "", para.Lang())

	code := scanmd.Section{Type: scanmd.Code, Content: "x", Meta: map[string]string{"lang": "go"}}
	assert.Equal(t, "go", code.Lang())
}
