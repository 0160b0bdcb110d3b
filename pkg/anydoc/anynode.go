/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

// Package anydoc reads arbitrary XML documents without a declared
// schema. Every element becomes an AnyNode keeping its tag and raw
// attributes; text content is not kept. Useful for structural
// inspection and as the document model of the xdt tool.
package anydoc

import (
	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/schemas"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

// AnyNode is the universal element node. It handles attributes and
// child resolution manually, so any tag nests under any other.
type AnyNode struct {
	elements.Element
	attrs []xmlio.Attr
}

// HandleAttr keeps the raw attribute, preserving document order.
func (n *AnyNode) HandleAttr(name, value string) {
	n.attrs = append(n.attrs, xmlio.Attr{Name: name, Value: value})
}

// ResolveChild admits every child tag as a nested AnyNode.
func (n *AnyNode) ResolveChild(string, schemas.Version) schemas.QName {
	return QNameAny
}

// AttrCount returns the number of kept attributes.
func (n *AnyNode) AttrCount() int { return len(n.attrs) }

// Attr returns the first value of the named attribute.
func (n *AnyNode) Attr(name string) (value string, ok bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs enumerates the kept attributes in document order.
func (n *AnyNode) Attrs(cb func(name, value string)) {
	for _, a := range n.attrs {
		cb(a.Name, a.Value)
	}
}
