package mdslice

import (
	"encoding/json"
	"fmt"

	"github.com/google/renameio"

	"github.com/mdslice/mdslice/scanmd"
)

// DocumentDict is the interchange form of a Document: a plain nested
// mapping mirroring the model 1:1, suitable for lossless serialization.
type DocumentDict struct {
	Path     *string       `json:"path"`
	Sections []SectionDict `json:"sections"`
}

// SectionDict is the interchange form of one Section; Type holds the enum
// name ("HEADER", "CODE", ...).
type SectionDict struct {
	Type    string            `json:"type"`
	Content string            `json:"content"`
	Depth   int               `json:"depth"`
	Meta    map[string]string `json:"meta"`
}

// Dict produces the document's interchange form. Meta is always present,
// possibly empty. Round-tripping through FromDict preserves section count,
// order, types, depths and metadata exactly.
func (d *Document) Dict() DocumentDict {
	dd := DocumentDict{Sections: make([]SectionDict, 0, len(d.sections))}
	if d.path != "" {
		p := d.path
		dd.Path = &p
	}
	for _, s := range d.sections {
		meta := make(map[string]string, len(s.Meta))
		for k, v := range s.Meta {
			meta[k] = v
		}
		dd.Sections = append(dd.Sections, SectionDict{
			Type:    s.Type.String(),
			Content: s.Content,
			Depth:   s.Depth,
			Meta:    meta,
		})
	}
	return dd
}

// FromDict reconstructs a Document from its interchange form. Fails only on
// a type name outside the serialized enum.
func FromDict(dd DocumentDict) (*Document, error) {
	doc := &Document{}
	if dd.Path != nil {
		doc.path = *dd.Path
	}
	for i, sd := range dd.Sections {
		t, ok := scanmd.ParseSectionType(sd.Type)
		if !ok {
			return nil, fmt.Errorf("section %d: unknown section type %q", i, sd.Type)
		}
		var meta map[string]string
		if len(sd.Meta) > 0 {
			meta = make(map[string]string, len(sd.Meta))
			for k, v := range sd.Meta {
				meta[k] = v
			}
		}
		doc.sections = append(doc.sections, Section{
			Type:    t,
			Content: sd.Content,
			Depth:   sd.Depth,
			Meta:    meta,
		})
	}
	return doc, nil
}

// MarshalJSON encodes the document's interchange form.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Dict())
}

// UnmarshalJSON decodes an interchange form previously produced by
// MarshalJSON or Dict.
func (d *Document) UnmarshalJSON(b []byte) error {
	var dd DocumentDict
	if err := json.Unmarshal(b, &dd); err != nil {
		return err
	}
	doc, err := FromDict(dd)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// WriteJSON writes the document's interchange form to path, atomically
// replacing any prior file.
func (d *Document) WriteJSON(path string) error {
	b, err := json.MarshalIndent(d.Dict(), "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return renameio.WriteFile(path, b, 0644)
}
