/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package anydoc

import (
	"context"

	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/mapper"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

// DocStats is the structural summary of an imported tree.
type DocStats struct {
	// Total element count, the root included.
	Elements int

	// Deepest element nesting, 1 for a childless root.
	MaxDepth int

	// Total attribute count over all elements.
	Attrs int

	// Element count per tag.
	Tags map[string]int
}

// Stats walks the tree under root and summarizes its structure.
func Stats(root elements.Node) DocStats {
	s := DocStats{Tags: make(map[string]int)}
	measure(root, 1, &s)
	return s
}

func measure(n elements.Node, depth int, s *DocStats) {
	e := n.Elem()
	s.Elements++
	s.Tags[e.Name()]++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if a, ok := n.(*AnyNode); ok {
		s.Attrs += a.AttrCount()
	}
	e.Children(func(c elements.Node) bool {
		measure(c, depth+1, s)
		return true
	})
}

// Outline writes the structural skeleton of the tree under n: every
// element with its attributes in document order, no text content.
func Outline(ctx context.Context, n elements.Node, w mapper.Writer) error {
	if err := w.StartDocument(); err != nil {
		return err
	}
	if err := outline(ctx, n, w); err != nil {
		return err
	}
	return w.EndDocument()
}

func outline(ctx context.Context, n elements.Node, w mapper.Writer) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	e := n.Elem()

	var attrs []xmlio.Attr
	if a, ok := n.(*AnyNode); ok {
		attrs = a.attrs
	}
	if err = w.StartElement(e.Name(), attrs...); err != nil {
		return err
	}

	e.Children(func(c elements.Node) bool {
		err = outline(ctx, c, w)
		return err == nil
	})
	if err != nil {
		return err
	}

	return w.EndElement()
}
