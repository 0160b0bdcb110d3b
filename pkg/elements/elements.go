/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

// Package elements provides the typed document tree. Concrete node types
// embed Element and are produced by schema registry factories; the tree
// operations (attach, remove, find) live in this package so every node
// kind shares one parenting and ordering discipline.
package elements

// Node is any concrete node type. Embedding Element implements it.
type Node interface {
	// Elem returns the embedded tree state.
	Elem() *Element
}

// Def is the node type contract the tree needs from the schema layer.
//
// The schema registry implements it for every declared node type.
type Def interface {
	// TypeName returns the qualified node type name, unique per registry.
	TypeName() string

	// Tag returns the declared element tag. Empty tag is a wildcard, the
	// instance name is assigned while reading.
	Tag() string

	// IsText returns whether the type carries text content instead of
	// child elements.
	IsText() bool

	// AdmitsChild returns whether some child rule of the type lists the
	// specified node type.
	AdmitsChild(typeName string) bool
}

// Element is the per-node tree state embedded into concrete node types.
//
// The zero Element is not operable until Setup stamps the node type and
// the self reference. Registry factories do that.
type Element struct {
	self    Node
	def     Def
	name    string
	pos     int
	parent  Node
	payload any
	byType  map[string][]Node
	ordered []Node
	nextPos int
}

// Elem implements Node.
func (e *Element) Elem() *Element { return e }

// Def returns the node type. Nil before Setup.
func (e *Element) Def() Def { return e.def }

// TypeName returns the qualified node type name, empty before Setup.
func (e *Element) TypeName() string {
	if e.def == nil {
		return ""
	}
	return e.def.TypeName()
}

// Name returns the element name: the instance name when assigned, else
// the declared tag.
func (e *Element) Name() string {
	if e.name != "" {
		return e.name
	}
	if e.def != nil {
		return e.def.Tag()
	}
	return ""
}

// SetName assigns the instance element name. Reading assigns it to nodes
// whose type declares a wildcard tag.
func (e *Element) SetName(name string) { e.name = name }

// Pos returns the zero-based position among all siblings. Positions are
// unique and strictly increase in attach order; removal never frees them.
func (e *Element) Pos() int { return e.pos }

// Path returns element names from the root to this element joined by «/».
func (e *Element) Path() string {
	if e.parent == nil {
		return e.Name()
	}
	return e.parent.Elem().Path() + "/" + e.Name()
}

// Parent returns the owning node, nil for a root.
func (e *Element) Parent() Node { return e.parent }

// Root returns the top of the owning tree. A parentless element is its
// own root.
func (e *Element) Root() Node {
	if e.parent == nil {
		return e.self
	}
	return e.parent.Elem().Root()
}

// Payload returns the user payload assigned by SetPayload.
func (e *Element) Payload() any { return e.payload }

// SetPayload assigns an arbitrary user payload to the element.
func (e *Element) SetPayload(v any) { e.payload = v }

// ChildCount returns the number of attached children of all types.
func (e *Element) ChildCount() int { return len(e.ordered) }

// Children enumerates attached children in strictly increasing position
// order. Enumeration stops when visit returns false.
func (e *Element) Children(visit func(Node) bool) {
	for _, n := range e.ordered {
		if !visit(n) {
			return
		}
	}
}

// ChildrenOf enumerates attached children of the specified node type in
// position order.
func (e *Element) ChildrenOf(typeName string, visit func(Node) bool) {
	for _, n := range e.byType[typeName] {
		if !visit(n) {
			return
		}
	}
}

// ReservePos consumes the next sibling position without attaching a node.
// Reading reserves positions for skipped tags so that sibling order is
// stable regardless of match outcome.
func (e *Element) ReservePos() int {
	p := e.nextPos
	e.nextPos++
	return p
}
