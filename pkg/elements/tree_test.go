/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package elements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testDef struct {
	name   string
	tag    string
	text   bool
	admits map[string]bool
}

func (d *testDef) TypeName() string		{ return d.name }
func (d *testDef) Tag() string			{ return d.tag }
func (d *testDef) IsText() bool			{ return d.text }
func (d *testDef) AdmitsChild(tn string) bool	{ return d.admits[tn] }

type shelfNode struct{ Element }
type bookNode struct{ Element }
type noteNode struct{ Element }

var (
	shelfDef = &testDef{name: "test.Shelf", tag: "Shelf",
		admits: map[string]bool{"test.Book": true, "test.Note": true}}
	bookDef = &testDef{name: "test.Book", tag: "Book",
		admits: map[string]bool{"test.Note": true}}
	noteDef = &testDef{name: "test.Note", tag: "Note", text: true,
		admits: map[string]bool{}}
)

func newShelf() *shelfNode {
	n := &shelfNode{}
	Setup(n, shelfDef)
	return n
}

func newBook() *bookNode {
	n := &bookNode{}
	Setup(n, bookDef)
	return n
}

func newNote() *noteNode {
	n := &noteNode{}
	Setup(n, noteDef)
	return n
}

func TestBasicUsage_AddChildren(t *testing.T) {
	require := require.New(t)

	shelf := newShelf()
	b1, n1, b2 := newBook(), newNote(), newBook()

	added, err := AddChildren(shelf, b1, n1, b2)
	require.NoError(err)
	require.Equal(3, added)
	require.Equal(3, shelf.Elem().ChildCount())

	t.Run("must be ok to enumerate children in position order", func(t *testing.T) {
		pos := make([]int, 0, 3)
		names := make([]string, 0, 3)
		shelf.Elem().Children(func(n Node) bool {
			pos = append(pos, n.Elem().Pos())
			names = append(names, n.Elem().Name())
			return true
		})
		require.Equal([]int{0, 1, 2}, pos)
		require.Equal([]string{"Book", "Note", "Book"}, names)
	})

	t.Run("must be ok to enumerate children of one type", func(t *testing.T) {
		cnt := 0
		shelf.Elem().ChildrenOf("test.Book", func(n Node) bool { cnt++; return true })
		require.Equal(2, cnt)
	})

	t.Run("must be ok to find children by type", func(t *testing.T) {
		b, ok := Find[*bookNode](shelf)
		require.True(ok)
		require.Same(b1, b)

		require.Equal([]*bookNode{b1, b2}, FindAll[*bookNode](shelf))
		require.Equal([]*noteNode{n1}, FindAll[*noteNode](shelf))

		_, ok = Find[*shelfNode](shelf)
		require.False(ok)
	})

	t.Run("must be ok to walk parents and root", func(t *testing.T) {
		require.Same(shelf, b1.Elem().Parent())
		require.Same(shelf, b1.Elem().Root())
		require.Same(shelf, shelf.Elem().Root(), "parentless element is its own root")
		require.Nil(shelf.Elem().Parent())

		sub := newNote()
		_, err := AddChildren(b2, sub)
		require.NoError(err)
		require.Same(shelf, sub.Elem().Root())
		require.Equal("Shelf/Book/Note", sub.Elem().Path())
	})
}

func TestAddChildren_Filtering(t *testing.T) {
	require := require.New(t)

	t.Run("must not attach children of types the parent does not admit", func(t *testing.T) {
		book := newBook()
		added, err := AddChildren(book, newShelf(), newNote())
		require.NoError(err)
		require.Equal(1, added)
		require.Equal(1, book.Elem().ChildCount())
	})

	t.Run("must not attach children attached elsewhere", func(t *testing.T) {
		s1, s2 := newShelf(), newShelf()
		b := newBook()
		added, err := AddChildren(s1, b)
		require.NoError(err)
		require.Equal(1, added)

		added, err = AddChildren(s2, b)
		require.NoError(err)
		require.Zero(added)
		require.Same(s1, b.Elem().Parent())
	})

	t.Run("must not attach anything to a text node", func(t *testing.T) {
		note := newNote()
		added, err := AddChildren(note, newBook())
		require.NoError(err)
		require.Zero(added)
	})

	t.Run("must be error if a participating node is untyped", func(t *testing.T) {
		added, err := AddChildren(&shelfNode{}, newBook())
		require.ErrorIs(err, ErrNoRoot)
		require.Zero(added)

		shelf := newShelf()
		_, err = AddChildren(shelf, &bookNode{})
		require.ErrorIs(err, ErrNoRoot)
	})
}

func TestPositions(t *testing.T) {
	require := require.New(t)

	shelf := newShelf()
	b1, b2 := newBook(), newBook()

	_, err := AddChildren(shelf, b1)
	require.NoError(err)

	reserved := shelf.Elem().ReservePos()
	require.Equal(1, reserved, "skipped siblings consume positions too")

	_, err = AddChildren(shelf, b2)
	require.NoError(err)
	require.Equal(2, b2.Elem().Pos())

	t.Run("must not reuse positions after removal", func(t *testing.T) {
		require.Equal(1, RemoveChildren(shelf, b1))
		require.Equal(1, shelf.Elem().ChildCount())
		require.Nil(b1.Elem().Parent())

		b3 := newBook()
		_, err := AddChildren(shelf, b3)
		require.NoError(err)
		require.Equal(3, b3.Elem().Pos())

		prev := -1
		shelf.Elem().Children(func(n Node) bool {
			require.Greater(n.Elem().Pos(), prev)
			prev = n.Elem().Pos()
			return true
		})
	})

	t.Run("must be ok to remove nothing for foreign children", func(t *testing.T) {
		stranger := newBook()
		require.Zero(RemoveChildren(shelf, stranger))
	})
}

func TestElementNaming(t *testing.T) {
	require := require.New(t)

	b := newBook()
	require.Equal("Book", b.Elem().Name(), "declared tag is the default name")

	b.Elem().SetName("Paperback")
	require.Equal("Paperback", b.Elem().Name())
	require.Equal("test.Book", b.Elem().TypeName())

	t.Run("must be ok to keep user payload", func(t *testing.T) {
		require.Nil(b.Elem().Payload())
		b.Elem().SetPayload(42)
		require.Equal(42, b.Elem().Payload())
	})

	t.Run("must be empty name and type for untyped element", func(t *testing.T) {
		e := &Element{}
		require.Empty(e.Name())
		require.Empty(e.TypeName())
		require.Nil(e.Def())
	})
}
