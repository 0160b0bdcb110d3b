/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package anydoc

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/mapper"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

func TestBasicUsage_AnyDoc(t *testing.T) {
	require := require.New(t)

	const doc = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<!-- sample -->` + "\n" +
		`<Catalog xmlns="urn:c" rev="7">` +
		`<Item sku="A-1" qty="2">dropped text<Note lang="en">hi</Note></Item>` +
		`<Item></Item>` +
		`</Catalog>`

	ctx := context.Background()

	root, stats, err := Import(ctx, []byte(doc))
	require.NoError(err)
	require.NotNil(root)

	require.Equal(4, stats.Nodes)
	require.Zero(stats.UnmatchedChildren)
	require.Zero(stats.SkippedSubtrees)

	t.Run("must be ok to inspect the tree", func(t *testing.T) {
		require := require.New(t)

		require.Equal("Catalog", root.Elem().Name())
		require.Equal(2, root.AttrCount())

		ns, ok := root.Attr("xmlns")
		require.True(ok)
		require.Equal("urn:c", ns)

		rev, ok := root.Attr("rev")
		require.True(ok)
		require.Equal("7", rev)

		_, ok = root.Attr("bogus")
		require.False(ok)

		items := elements.FindAll[*AnyNode](root)
		require.Len(items, 2)
		require.Equal("Item", items[0].Elem().Name())
		require.Equal(0, items[0].Elem().Pos())
		require.Equal(1, items[1].Elem().Pos())

		attrs := []string{}
		items[0].Attrs(func(name, value string) { attrs = append(attrs, name+"="+value) })
		require.Equal([]string{"sku=A-1", "qty=2"}, attrs)

		note, ok := elements.Find[*AnyNode](items[0])
		require.True(ok)
		require.Equal("Note", note.Elem().Name())
		require.Equal("Catalog/Item/Note", note.Elem().Path())

		require.Zero(items[1].AttrCount())
	})

	t.Run("must be ok to summarize the structure", func(t *testing.T) {
		require := require.New(t)

		s := Stats(root)
		require.Equal(4, s.Elements)
		require.Equal(3, s.MaxDepth)
		require.Equal(5, s.Attrs)
		require.Equal(map[string]int{"Catalog": 1, "Item": 2, "Note": 1}, s.Tags)
	})

	t.Run("must be ok to outline the skeleton", func(t *testing.T) {
		require := require.New(t)

		buf := bytes.Buffer{}
		require.NoError(Outline(ctx, root, xmlio.NewWriter(&buf)))

		const want = `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Catalog xmlns="urn:c" rev="7">` +
			`<Item sku="A-1" qty="2"><Note lang="en"></Note></Item>` +
			`<Item></Item>` +
			`</Catalog>`
		require.Equal(want, buf.String())
	})
}

func TestAnyDoc_RootTag(t *testing.T) {
	require := require.New(t)

	root, _, err := Import(context.Background(), []byte(`<zoo><a/><b/></zoo>`))
	require.NoError(err)
	require.Equal("zoo", root.Elem().Name())
	require.Equal(2, root.Elem().ChildCount())
}

func TestAnyDoc_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("must be error if document is empty", func(t *testing.T) {
		require := require.New(t)

		_, _, err := Import(ctx, nil)
		require.ErrorIs(err, mapper.ErrRootNotFound)
	})

	t.Run("must be error if document is truncated", func(t *testing.T) {
		require := require.New(t)

		_, _, err := Import(ctx, []byte(`<a><b>`))
		require.ErrorIs(err, mapper.ErrMalformedDocument)
	})

	t.Run("must be error if prolog is broken", func(t *testing.T) {
		require := require.New(t)

		_, _, err := Import(ctx, []byte(`<<<`))
		require.Error(err)
	})

	t.Run("must be error if outline is cancelled", func(t *testing.T) {
		require := require.New(t)

		root, _, err := Import(ctx, []byte(`<a><b/></a>`))
		require.NoError(err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		buf := bytes.Buffer{}
		require.ErrorIs(Outline(cancelled, root, xmlio.NewWriter(&buf)), context.Canceled)
	})
}
