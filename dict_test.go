package mdslice_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdslice/mdslice"
)

const interchangeDoc = `# Title

some text
over two lines

- one
- two

> quoted

| a | b |
|---|---|

![alt](img.png)

` + "```go\nfmt.Println(\"hi\")\n```\n"

func TestDictRoundTrip(t *testing.T) {
	doc := mdslice.ParseText(interchangeDoc)
	require.NotZero(t, doc.Len())

	back, err := mdslice.FromDict(doc.Dict())
	require.NoError(t, err)

	assert.Equal(t, doc.Path(), back.Path())
	assert.Equal(t, doc.Sections(), back.Sections())
}

func TestDictShape(t *testing.T) {
	doc := mdslice.ParseText(interchangeDoc)
	dd := doc.Dict()

	assert.Nil(t, dd.Path, "text input carries no path")
	require.Equal(t, doc.Len(), len(dd.Sections))
	for _, sd := range dd.Sections {
		assert.NotNil(t, sd.Meta, "meta is always present in interchange form")
	}

	first := dd.Sections[0]
	assert.Equal(t, "HEADER", first.Type)
	assert.Equal(t, "Title", first.Content)
	assert.Equal(t, 1, first.Depth)
	assert.Empty(t, first.Meta)

	last := dd.Sections[len(dd.Sections)-1]
	assert.Equal(t, "CODE", last.Type)
	assert.Equal(t, map[string]string{"lang": "go"}, last.Meta)
}

func TestJSONRoundTrip(t *testing.T) {
	doc := mdslice.ParseText(interchangeDoc)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"CODE"`)
	assert.Contains(t, string(b), `"path":null`)

	var back mdslice.Document
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, doc.Sections(), back.Sections())
}

func TestFromDictUnknownType(t *testing.T) {
	_, err := mdslice.FromDict(mdslice.DocumentDict{
		Sections: []mdslice.SectionDict{{Type: "LINK"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown section type "LINK"`)
}

func TestWriteJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "mdslice")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	doc, err := mdslice.ParseFile(filepath.Join("testdata", "sample.md"))
	require.NoError(t, err)

	out := filepath.Join(dir, "sample.json")
	require.NoError(t, doc.WriteJSON(out))

	b, err := ioutil.ReadFile(out)
	require.NoError(t, err)

	var back mdslice.Document
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, doc.Path(), back.Path())
	assert.Equal(t, doc.Sections(), back.Sections())
}
