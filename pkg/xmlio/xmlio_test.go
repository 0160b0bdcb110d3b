/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 */

package xmlio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Reader(t *testing.T) {
	require := require.New(t)

	const doc = `<?xml version="1.0"?><!-- catalog dump --><Catalog xmlns="urn:books" xmlns:lib="urn:lib" rev="5"><Item lib:sku="A-1">Note &amp; more</Item><Extra><Deep>x</Deep></Extra></Catalog>`

	r := NewReader(strings.NewReader(doc))
	require.EqualValues(len(doc), r.Len())

	k, err := r.Next()
	require.NoError(err)
	require.Equal(TokenKind_StartTag, k)
	require.Equal("Catalog", r.Tag())
	require.Equal([]Attr{
		{Name: "xmlns", Value: "urn:books"},
		{Name: "xmlns:lib", Value: "urn:lib"},
		{Name: "rev", Value: "5"},
	}, r.Attrs())

	k, err = r.Next()
	require.NoError(err)
	require.Equal(TokenKind_StartTag, k)
	require.Equal("Item", r.Tag())
	require.Equal([]Attr{{Name: "sku", Value: "A-1"}}, r.Attrs())

	k, err = r.Next()
	require.NoError(err)
	require.Equal(TokenKind_Text, k)
	require.Equal("Note & more", r.Text())

	// Skip is a no-op unless the cursor is on a start tag
	require.NoError(r.Skip())
	require.Equal(TokenKind_Text, r.Kind())

	k, err = r.Next()
	require.NoError(err)
	require.Equal(TokenKind_EndTag, k)
	require.Equal("Item", r.Tag())

	k, err = r.Next()
	require.NoError(err)
	require.Equal(TokenKind_StartTag, k)
	require.Equal("Extra", r.Tag())

	require.NoError(r.Skip())
	require.Equal(TokenKind_EndTag, r.Kind())
	require.Equal("Extra", r.Tag())

	k, err = r.Next()
	require.NoError(err)
	require.Equal(TokenKind_EndTag, k)
	require.Equal("Catalog", r.Tag())

	k, err = r.Next()
	require.NoError(err)
	require.Equal(TokenKind_EOF, k)
	require.EqualValues(len(doc), r.Pos())

	t.Run("must be zero size if reader length is unknown", func(t *testing.T) {
		r := NewReader(io.MultiReader(strings.NewReader(doc)))
		require.Zero(r.Len())
	})
}

func TestReader_Errors(t *testing.T) {
	require := require.New(t)

	t.Run("must be error if end tag mismatches", func(t *testing.T) {
		r := NewReader(strings.NewReader(`<A><B></A>`))
		_, err := r.Next()
		require.NoError(err)
		_, err = r.Next()
		require.NoError(err)
		k, err := r.Next()
		require.Error(err)
		require.Equal(TokenKind_null, k)
	})

	t.Run("must be error if document is truncated while skipping", func(t *testing.T) {
		r := NewReader(strings.NewReader(`<A><B>`))
		_, err := r.Next()
		require.NoError(err)
		require.Error(r.Skip())
		require.Equal(TokenKind_null, r.Kind())
	})
}

func TestBasicUsage_Writer(t *testing.T) {
	require := require.New(t)

	buf := bytes.Buffer{}
	w := NewWriter(&buf)

	require.NoError(w.StartDocument())
	require.NoError(w.StartElement("Catalog", Attr{Name: "rev", Value: "5"}, Attr{Name: "title", Value: "p & q"}))
	require.NoError(w.StartElement("Item", Attr{Name: "sku", Value: "A-1"}))
	require.NoError(w.Text("Note & more"))
	require.NoError(w.EndElement())
	require.NoError(w.StartElement("Item"))
	require.NoError(w.EndElement())
	require.NoError(w.EndDocument())

	const want = `<?xml version="1.0" encoding="UTF-8"?>` +
		`<Catalog rev="5" title="p &amp; q">` +
		`<Item sku="A-1">Note &amp; more</Item>` +
		`<Item></Item>` +
		`</Catalog>`
	require.Equal(want, buf.String())
	require.EqualValues(buf.Len(), w.Pos())

	t.Run("must be ok to emit indented document", func(t *testing.T) {
		buf := bytes.Buffer{}
		w := NewWriter(&buf)
		w.SetIndent("", "  ")

		require.NoError(w.StartDocument())
		require.NoError(w.StartElement("Catalog"))
		require.NoError(w.StartElement("Item"))
		require.NoError(w.Text("x"))
		require.NoError(w.EndElement())
		require.NoError(w.EndDocument())

		want := `<?xml version="1.0" encoding="UTF-8"?><Catalog>` + "\n" +
			`  <Item>x</Item>` + "\n" +
			`</Catalog>`
		require.Equal(want, buf.String())
	})

	t.Run("must be ok to close open elements on end of document", func(t *testing.T) {
		buf := bytes.Buffer{}
		w := NewWriter(&buf)

		require.NoError(w.StartElement("A"))
		require.NoError(w.StartElement("B"))
		require.NoError(w.EndDocument())
		require.Equal(`<A><B></B></A>`, buf.String())
	})
}

func TestTokenKind_String(t *testing.T) {
	tests := []struct {
		name string
		k    TokenKind
		want string
	}{
		{`null`, TokenKind_null, `null`},
		{`start tag`, TokenKind_StartTag, `start tag`},
		{`end tag`, TokenKind_EndTag, `end tag`},
		{`text`, TokenKind_Text, `text`},
		{`end of document`, TokenKind_EOF, `end of document`},
		{`out of range`, TokenKind_EOF + 1, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.String(); got != tt.want {
				t.Errorf("TokenKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
