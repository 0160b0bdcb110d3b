/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 */

// Package xmlio adapts the standard XML tokenizer and encoder to the flat
// cursor and writer contracts the mapping engines consume: start tags with
// attributes, end tags, character data, byte positions for progress.
package xmlio

import (
	"encoding/xml"
	"io"
)

// Attr is one raw attribute of a start tag, document order preserved.
type Attr struct {
	Name  string
	Value string
}

// Reader is a pull cursor over an XML document. Comments, processing
// instructions and directives are passed over transparently.
type Reader struct {
	d     *xml.Decoder
	size  int64
	kind  TokenKind
	tag   string
	attrs []Attr
	text  string
}

// NewReader returns a reader over r. When r knows its unread length
// (bytes.Reader, strings.Reader and alike) it is taken as the document
// size for position reporting.
func NewReader(r io.Reader) *Reader {
	size := int64(0)
	if l, ok := r.(interface{ Len() int }); ok {
		size = int64(l.Len())
	}
	return NewReaderSize(r, size)
}

// NewReaderSize returns a reader over r with the specified document size
// in bytes. Zero size means unknown.
func NewReaderSize(r io.Reader, size int64) *Reader {
	return &Reader{d: xml.NewDecoder(r), size: size}
}

// Next advances the cursor to the next token.
//
// At the end of the document Next returns TokenKind_EOF with no error;
// malformed documents return the tokenizer error.
func (r *Reader) Next() (TokenKind, error) {
	for {
		tok, err := r.d.Token()
		if err == io.EOF {
			r.set(TokenKind_EOF, "", nil, "")
			return r.kind, nil
		}
		if err != nil {
			r.set(TokenKind_null, "", nil, "")
			return r.kind, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			r.set(TokenKind_StartTag, t.Name.Local, attrs, "")
			return r.kind, nil
		case xml.EndElement:
			r.set(TokenKind_EndTag, t.Name.Local, nil, "")
			return r.kind, nil
		case xml.CharData:
			r.set(TokenKind_Text, "", nil, string(t))
			return r.kind, nil
		}
	}
}

// Kind returns the kind of the current token.
func (r *Reader) Kind() TokenKind { return r.kind }

// Tag returns the local element name of the current start or end tag.
func (r *Reader) Tag() string { return r.tag }

// Attrs returns the attributes of the current start tag in document order.
func (r *Reader) Attrs() []Attr { return r.attrs }

// Text returns the character data of the current text token.
func (r *Reader) Text() string { return r.text }

// Skip reads past the subtree of the current start tag. The cursor is
// left on the matching end tag.
func (r *Reader) Skip() error {
	if r.kind != TokenKind_StartTag {
		return nil
	}
	tag := r.tag
	if err := r.d.Skip(); err != nil {
		r.set(TokenKind_null, "", nil, "")
		return err
	}
	r.set(TokenKind_EndTag, tag, nil, "")
	return nil
}

// Pos returns the number of input bytes consumed so far.
func (r *Reader) Pos() int64 { return r.d.InputOffset() }

// Len returns the document size in bytes, zero when unknown.
func (r *Reader) Len() int64 { return r.size }

func (r *Reader) set(kind TokenKind, tag string, attrs []Attr, text string) {
	r.kind, r.tag, r.attrs, r.text = kind, tag, attrs, text
}

// attrName flattens the tokenizer attribute name. Namespace declarations
// keep their xmlns form, other attributes are reduced to the local name.
func attrName(n xml.Name) string {
	switch {
	case n.Space == "xmlns":
		return "xmlns:" + n.Local
	case n.Space == "" && n.Local == "xmlns":
		return "xmlns"
	}
	return n.Local
}
