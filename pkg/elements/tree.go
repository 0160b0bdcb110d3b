/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package elements

import "fmt"

// Setup stamps the node type and the self reference into the embedded
// Element. Registry factories call it once per produced node; a node is
// not operable before.
func Setup(n Node, def Def) {
	e := n.Elem()
	e.self = n
	e.def = def
}

// AddChildren attaches those of the specified nodes whose type the parent
// admits through some child rule. Admitted nodes receive the next sibling
// positions in the specified order; nodes of types the parent does not
// admit and nodes attached elsewhere are left off silently.
//
// Returns the number of attached nodes. Returns ErrNoRoot when the parent
// or an admitted node was not produced by a registry factory.
func AddChildren(parent Node, children ...Node) (added int, err error) {
	pe := parent.Elem()
	if pe.self == nil || pe.def == nil {
		return 0, fmt.Errorf("can not attach to element «%s»: %w", pe.Name(), ErrNoRoot)
	}
	for _, n := range children {
		e := n.Elem()
		if e.def == nil {
			return added, fmt.Errorf("can not attach untyped element to «%s»: %w", pe.Name(), ErrNoRoot)
		}
		if e.parent != nil {
			continue
		}
		tn := e.def.TypeName()
		if !pe.def.AdmitsChild(tn) {
			continue
		}
		e.parent = pe.self
		e.pos = pe.ReservePos()
		if pe.byType == nil {
			pe.byType = make(map[string][]Node)
		}
		pe.byType[tn] = append(pe.byType[tn], n)
		pe.ordered = append(pe.ordered, n)
		added++
	}
	return added, nil
}

// RemoveChildren detaches the specified nodes from the parent, matching by
// identity. Positions of remaining children do not change and freed
// positions are never reused. Returns the number of detached nodes.
func RemoveChildren(parent Node, children ...Node) (removed int) {
	pe := parent.Elem()
	for _, n := range children {
		e := n.Elem()
		if e.parent == nil || e.parent.Elem() != pe {
			continue
		}
		tn := e.def.TypeName()
		pe.byType[tn] = exclude(pe.byType[tn], n)
		if len(pe.byType[tn]) == 0 {
			delete(pe.byType, tn)
		}
		pe.ordered = exclude(pe.ordered, n)
		e.parent = nil
		removed++
	}
	return removed
}

// Find returns the first child of the parent assignable to T, in position
// order.
func Find[T Node](parent Node) (T, bool) {
	var found T
	ok := false
	parent.Elem().Children(func(n Node) bool {
		if t, match := n.(T); match {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

// FindAll returns all children of the parent assignable to T, in position
// order. T may be a concrete node type or a capability interface.
func FindAll[T Node](parent Node) []T {
	var found []T
	parent.Elem().Children(func(n Node) bool {
		if t, match := n.(T); match {
			found = append(found, t)
		}
		return true
	})
	return found
}

func exclude(nn []Node, n Node) []Node {
	for i, e := range nn {
		if e == n {
			return append(nn[:i:i], nn[i+1:]...)
		}
	}
	return nn
}
